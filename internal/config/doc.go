// Package config provides configuration loading, merging, and validation
// facilities for jportal and the local fake portal.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. A .env file (loaded into the process environment, never overriding
//     variables that are already set)
//  3. Environment variables
//  4. Command-line flags
//  5. JSON config file
//
// The main entry point is [GetStructuredConfig].
package config

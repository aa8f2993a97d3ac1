// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client wires the portal client together: HTTP adapter, payload
// envelope and session service, plus the interactive application that runs
// the terminal UI on top of them.
package client

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities used across the
// go-jportal client: the portal clock, random character sequences, unverified
// token parsing, HTTP client construction and request identifiers.
package utils

import "time"

// PortalZone is India Standard Time (UTC+5:30, no DST).
// The portal rotates its payload key at 00:00 in this zone, so every
// date-derived value sent to the server must be computed from a time in it.
var PortalZone = time.FixedZone("Asia/Kolkata", 5*60*60+30*60)

// PortalNow returns the current time in the portal's time zone.
func PortalNow() time.Time {
	return time.Now().In(PortalZone)
}

// ToPortal converts t to the portal's time zone.
func ToPortal(t time.Time) time.Time {
	return t.In(PortalZone)
}

// PortalDate returns midnight of the given calendar date in the portal's time zone.
func PortalDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, PortalZone)
}

// StartOfPortalDay returns 00:00 of the portal calendar day containing t,
// i.e. the instant at which the key for that day became active.
func StartOfPortalDay(t time.Time) time.Time {
	p := ToPortal(t)
	return time.Date(p.Year(), p.Month(), p.Day(), 0, 0, 0, 0, PortalZone)
}

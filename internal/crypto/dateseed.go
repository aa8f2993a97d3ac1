// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"time"
)

// DateSeed returns the 7-digit daily seed for the calendar date of t, read in
// t's own location. Pass a time in [utils.PortalZone] when talking to the real
// portal.
//
// Layout: d1 m1 y1 w d2 m2 y2, where dd and mm are zero padded, yy is the
// two-digit year and w is the weekday digit with Sunday=0 … Saturday=6.
func DateSeed(t time.Time) string {
	day := fmt.Sprintf("%02d", t.Day())
	month := fmt.Sprintf("%02d", int(t.Month()))
	year := fmt.Sprintf("%02d", t.Year()%100)
	weekday := byte('0' + int(t.Weekday()))

	return string([]byte{day[0], month[0], year[0], weekday, day[1], month[1], year[1]})
}

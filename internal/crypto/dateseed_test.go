package crypto

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-jportal/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestDateSeed_KnownDates(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"monday", utils.PortalDate(2026, time.October, 19), "1121906"},
		{"sunday", utils.PortalDate(2026, time.October, 18), "1120806"},
		{"saturday", utils.PortalDate(2026, time.October, 24), "2126406"},
		{"leap day thursday", utils.PortalDate(2024, time.February, 29), "2024924"},
		{"single digit day and month", utils.PortalDate(2009, time.January, 5), "0001519"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateSeed(tt.date))
		})
	}
}

func TestDateSeed_WeekdayDigit(t *testing.T) {
	// 2026-10-18 is a Sunday; the fourth digit walks 0..6 through the week.
	start := utils.PortalDate(2026, time.October, 18)
	for i := 0; i < 7; i++ {
		seed := DateSeed(start.AddDate(0, 0, i))
		assert.Equal(t, byte('0'+i), seed[3], "day offset %d", i)
	}
}

func TestDateSeed_IgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2026, time.March, 3, 0, 0, 1, 0, utils.PortalZone)
	night := time.Date(2026, time.March, 3, 23, 59, 59, 0, utils.PortalZone)

	assert.Equal(t, DateSeed(morning), DateSeed(night))
	assert.Len(t, DateSeed(morning), 7)
}

func TestDateSeed_UsesLocationOfTime(t *testing.T) {
	// 20:00 UTC on the 18th is already the 19th in IST.
	utc := time.Date(2026, time.October, 18, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "1120806", DateSeed(utc))
	assert.Equal(t, "1121906", DateSeed(utils.ToPortal(utc)))
}

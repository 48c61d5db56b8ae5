package timezone

import (
	"strings"
	"time"
)

const DefaultTimezone = "Australia/Sydney"

var stateZones = map[string]string{
	"NSW": "Australia/Sydney",
	"ACT": "Australia/Sydney",
	"VIC": "Australia/Melbourne",
	"TAS": "Australia/Hobart",
	"QLD": "Australia/Brisbane",
	"SA":  "Australia/Adelaide",
	"NT":  "Australia/Darwin",
	"WA":  "Australia/Perth",
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ForState returns the IANA zone for an Australian state code.
func ForState(code string) string {
	if tz, ok := stateZones[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return tz
	}
	return DefaultTimezone
}

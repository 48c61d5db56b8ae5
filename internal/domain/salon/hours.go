package salon

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// OpeningHours maps lowercase weekday names to "9:00 AM - 6:00 PM" or "Closed".
type OpeningHours map[string]string

var weekdays = [...]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

var rangePattern = regexp.MustCompile(`(?i)(\d+):?(\d*)\s*(am|pm)\s*-\s*(\d+):?(\d*)\s*(am|pm)`)

func ParseOpeningHours(raw []byte) OpeningHours {
	h := OpeningHours{}
	if len(raw) == 0 {
		return h
	}
	_ = json.Unmarshal(raw, &h)
	return h
}

// DefaultOpeningHours is used by imports when the sheet has no hours.
func DefaultOpeningHours() OpeningHours {
	return OpeningHours{
		"monday":    "9:00 AM - 6:00 PM",
		"tuesday":   "9:00 AM - 6:00 PM",
		"wednesday": "9:00 AM - 6:00 PM",
		"thursday":  "9:00 AM - 6:00 PM",
		"friday":    "9:00 AM - 6:00 PM",
		"saturday":  "9:00 AM - 5:00 PM",
		"sunday":    "10:00 AM - 4:00 PM",
	}
}

// HoursFromSheet applies one hours string to every day; Sunday is closed when
// closedOn mentions it.
func HoursFromSheet(hours, closedOn string) OpeningHours {
	hours = strings.TrimSpace(hours)
	if hours == "" {
		return DefaultOpeningHours()
	}
	h := OpeningHours{}
	for _, d := range weekdays {
		h[d] = hours
	}
	if strings.Contains(strings.ToLower(closedOn), "sunday") {
		h["sunday"] = "Closed"
	}
	return h
}

// OpenAt reports whether now falls inside today's range. Unparseable or
// missing entries count as closed.
func (h OpeningHours) OpenAt(now time.Time) bool {
	today, ok := h[weekdays[now.Weekday()]]
	if !ok || strings.EqualFold(strings.TrimSpace(today), "closed") {
		return false
	}
	m := rangePattern.FindStringSubmatch(today)
	if m == nil {
		return false
	}
	open := minutes(m[1], m[2], m[3])
	closing := minutes(m[4], m[5], m[6])
	cur := now.Hour()*60 + now.Minute()
	return cur >= open && cur < closing
}

func minutes(hour, minute, meridiem string) int {
	h, _ := strconv.Atoi(hour)
	m, _ := strconv.Atoi(minute)
	h %= 12
	if strings.EqualFold(meridiem, "pm") {
		h += 12
	}
	return h*60 + m
}

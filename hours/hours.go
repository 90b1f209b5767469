// Package hours computes open/closed status for a business's weekly
// schedule. It is pure: every function takes the reference instant as an
// argument and touches no storage, so it is safe to call from any number
// of readers. All times are local wall-clock "HH:MM" strings.
package hours

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DayHours is one day's operating rule. An empty OpenTime/CloseTime stands
// for "no time set" (closed or 24-hour days).
type DayHours struct {
	DayOfWeek int    `json:"day_of_week"` // 0=Sunday, 6=Saturday
	IsClosed  bool   `json:"is_closed"`
	Is24Hours bool   `json:"is_24_hours"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

// Schedule is a business's week: up to 7 entries keyed by DayOfWeek.
// Missing days are treated as "hours not available", not as closed.
type Schedule []DayHours

// DayNames maps Sunday-based day numbers to display names.
var DayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

type Status string

const (
	StatusOpen    Status = "open"
	StatusClosed  Status = "closed"
	StatusUnknown Status = "unknown"
)

// StatusInfo is the renderable open/closed state for one instant.
type StatusInfo struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
}

// NextOpening names when the business next opens. Day is "today",
// "tomorrow", or a weekday name; Time is a formatted clock time or
// "24 hours".
type NextOpening struct {
	Day  string `json:"day"`
	Time string `json:"time"`
}

// Day returns the entry for the given day of week, if one exists.
func (s Schedule) Day(day int) (DayHours, bool) {
	for _, d := range s {
		if d.DayOfWeek == day {
			return d, true
		}
	}
	return DayHours{}, false
}

// IsOpenAt reports whether the business is open at the given instant.
// known is false when the schedule has no entry for that day of week,
// which callers must render as "hours not available" rather than closed.
func IsOpenAt(s Schedule, at time.Time) (open, known bool) {
	entry, ok := s.Day(int(at.Weekday()))
	if !ok {
		return false, false
	}
	if entry.IsClosed {
		return false, true
	}
	if entry.Is24Hours {
		return true, true
	}
	return spansMinute(entry, at.Hour()*60+at.Minute()), true
}

// spansMinute reports whether cur falls inside the entry's open span.
// Bounds are inclusive at both ends. A close time numerically before the
// open time is an overnight span: open through midnight into the next day.
func spansMinute(entry DayHours, cur int) bool {
	openMin := minutesOf(entry.OpenTime)
	closeMin := minutesOf(entry.CloseTime)
	if closeMin < openMin {
		return cur >= openMin || cur <= closeMin
	}
	return cur >= openMin && cur <= closeMin
}

// DescribeStatus wraps IsOpenAt into user-facing copy. The literal message
// strings are load-bearing: the public site and the admin console both
// render them verbatim.
func DescribeStatus(s Schedule, at time.Time) StatusInfo {
	day := int(at.Weekday())
	entry, ok := s.Day(day)
	if !ok {
		return StatusInfo{Status: StatusUnknown, Message: "Hours not available"}
	}

	if entry.Is24Hours {
		return StatusInfo{Status: StatusOpen, Message: "Open 24 hours"}
	}

	if entry.IsClosed {
		if t, ok := tomorrowOpening(s, day); ok {
			return StatusInfo{Status: StatusClosed, Message: "Closed today • Opens tomorrow at " + t}
		}
		return StatusInfo{Status: StatusClosed, Message: "Closed today"}
	}

	cur := at.Hour()*60 + at.Minute()
	if spansMinute(entry, cur) {
		return StatusInfo{Status: StatusOpen, Message: "Open • Closes at " + FormatTime(entry.CloseTime)}
	}

	if cur < minutesOf(entry.OpenTime) {
		return StatusInfo{Status: StatusClosed, Message: "Closed • Opens at " + FormatTime(entry.OpenTime)}
	}

	// Past closing time.
	if t, ok := tomorrowOpening(s, day); ok {
		return StatusInfo{Status: StatusClosed, Message: "Closed today • Opens tomorrow at " + t}
	}
	return StatusInfo{Status: StatusClosed, Message: "Closed"}
}

// tomorrowOpening returns the formatted opening time for the day after
// `day` when that day exists, is not closed, and has an open time set.
// A 24-hour tomorrow has no opening time and yields false.
func tomorrowOpening(s Schedule, day int) (string, bool) {
	next, ok := s.Day((day + 1) % 7)
	if !ok || next.IsClosed || next.OpenTime == "" {
		return "", false
	}
	return FormatTime(next.OpenTime), true
}

// NextOpen finds the business's next opening at or after the given
// instant. It returns nil when no day of the week is open, which is a
// valid terminal state for a fully closed business, not an error.
func NextOpen(s Schedule, from time.Time) *NextOpening {
	day := int(from.Weekday())

	if entry, ok := s.Day(day); ok && !entry.IsClosed && !entry.Is24Hours {
		cur := from.Hour()*60 + from.Minute()
		if cur < minutesOf(entry.OpenTime) {
			return &NextOpening{Day: "today", Time: FormatTime(entry.OpenTime)}
		}
	}

	for offset := 1; offset <= 6; offset++ {
		entry, ok := s.Day((day + offset) % 7)
		if !ok || entry.IsClosed {
			continue
		}
		name := "tomorrow"
		if offset > 1 {
			name = DayNames[entry.DayOfWeek]
		}
		if entry.Is24Hours {
			return &NextOpening{Day: name, Time: "24 hours"}
		}
		return &NextOpening{Day: name, Time: FormatTime(entry.OpenTime)}
	}

	return nil
}

// FormatTime converts a 24-hour "HH:MM" string to "h:MM AM/PM".
// Hour 0 renders as 12 AM and hour 12 as 12 PM. Empty or malformed input
// yields an empty string so templates never see a parse error.
func FormatTime(hhmm string) string {
	sep := strings.IndexByte(hhmm, ':')
	if sep < 0 {
		return ""
	}
	h, err := strconv.Atoi(hhmm[:sep])
	if err != nil {
		return ""
	}
	m, err := strconv.Atoi(hhmm[sep+1:])
	if err != nil {
		return ""
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return ""
	}

	suffix := "AM"
	switch {
	case h == 0:
		h = 12
	case h == 12:
		suffix = "PM"
	case h > 12:
		h -= 12
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", h, m, suffix)
}

// minutesOf parses "HH:MM" into minutes since midnight. Parsing is
// deliberately lenient: malformed fields count as 0, matching how legacy
// rows with bad time strings have always rendered. The strict gate lives
// in Validate, which keeps new bad data out of the store.
func minutesOf(hhmm string) int {
	var h, m int
	if sep := strings.IndexByte(hhmm, ':'); sep >= 0 {
		h, _ = strconv.Atoi(hhmm[:sep])
		m, _ = strconv.Atoi(hhmm[sep+1:])
	} else {
		h, _ = strconv.Atoi(hhmm)
	}
	return h*60 + m
}

package hours

import "fmt"

// Validate decides whether an edited schedule is save-worthy and returns
// one message per problem; an empty slice means the save may proceed.
//
// Note the deliberate asymmetry with the engine: IsOpenAt reads overnight
// spans (close before open) from legacy rows, but Validate rejects
// creating new ones. Do not "fix" one side to match the other.
func Validate(s Schedule) []string {
	var errs []string

	for _, day := range s {
		if day.DayOfWeek < 0 || day.DayOfWeek > 6 {
			errs = append(errs, fmt.Sprintf("day_of_week %d is out of range", day.DayOfWeek))
			continue
		}
		name := DayNames[day.DayOfWeek]

		if day.IsClosed && day.Is24Hours {
			errs = append(errs, fmt.Sprintf("%s cannot be both closed and open 24 hours", name))
			continue
		}
		if day.IsClosed || day.Is24Hours {
			continue
		}

		if day.OpenTime == "" || day.CloseTime == "" {
			errs = append(errs, fmt.Sprintf("%s needs both opening and closing times", name))
			continue
		}

		valid := true
		if !validClockTime(day.OpenTime) {
			errs = append(errs, fmt.Sprintf("%s opening time format is invalid", name))
			valid = false
		}
		if !validClockTime(day.CloseTime) {
			errs = append(errs, fmt.Sprintf("%s closing time format is invalid", name))
			valid = false
		}
		if !valid {
			continue
		}

		// Zero-padded HH:MM compares correctly as a string.
		if day.OpenTime >= day.CloseTime {
			errs = append(errs, fmt.Sprintf("%s closing time must be after opening time", name))
		}
	}

	return errs
}

// validClockTime checks the strict "HH:MM" 24-hour shape: exactly five
// characters, digits around a colon, hours 0-23, minutes 0-59.
func validClockTime(t string) bool {
	if len(t) != 5 || t[2] != ':' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if t[i] < '0' || t[i] > '9' {
			return false
		}
	}
	h := int(t[0]-'0')*10 + int(t[1]-'0')
	m := int(t[3]-'0')*10 + int(t[4]-'0')
	return h <= 23 && m <= 59
}

package hours

import (
	"strings"
	"testing"
	"time"
)

func TestValidateAcceptsStandardWeek(t *testing.T) {
	if errs := Validate(standardWeek()); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidateAcceptsClosedAnd24HourDaysWithoutTimes(t *testing.T) {
	s := Schedule{
		{DayOfWeek: 0, IsClosed: true},
		{DayOfWeek: 1, Is24Hours: true},
	}
	if errs := Validate(s); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidateRequiresBothTimes(t *testing.T) {
	s := Schedule{{DayOfWeek: 1, OpenTime: "09:00"}}
	errs := Validate(s)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	if errs[0] != "Monday needs both opening and closing times" {
		t.Errorf("unexpected message %q", errs[0])
	}
}

func TestValidateRejectsBadTimeFormat(t *testing.T) {
	s := Schedule{
		timedDay(2, "9:00", "17:00"),  // missing zero pad
		timedDay(3, "09:00", "24:00"), // hour out of range
	}
	errs := Validate(s)
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", errs)
	}
	if errs[0] != "Tuesday opening time format is invalid" {
		t.Errorf("unexpected message %q", errs[0])
	}
	if errs[1] != "Wednesday closing time format is invalid" {
		t.Errorf("unexpected message %q", errs[1])
	}
}

func TestValidateRejectsCloseBeforeOpen(t *testing.T) {
	s := Schedule{timedDay(4, "18:00", "09:00")}
	errs := Validate(s)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	if errs[0] != "Thursday closing time must be after opening time" {
		t.Errorf("unexpected message %q", errs[0])
	}
}

func TestValidateRejectsEqualOpenAndClose(t *testing.T) {
	s := Schedule{timedDay(5, "10:00", "10:00")}
	errs := Validate(s)
	if len(errs) != 1 || !strings.Contains(errs[0], "must be after") {
		t.Errorf("expected close-after-open error, got %v", errs)
	}
}

// The editor refuses to create overnight spans even though the engine
// reads them from existing rows. Both behaviors are intentional; this
// test pins the divergence down so neither side drifts.
func TestValidateRejectsOvernightSpanTheEngineWouldRead(t *testing.T) {
	overnight := timedDay(5, "22:00", "02:00")

	errs := Validate(Schedule{overnight})
	if len(errs) != 1 {
		t.Fatalf("validator should reject an overnight span, got %v", errs)
	}
	if errs[0] != "Friday closing time must be after opening time" {
		t.Errorf("unexpected message %q", errs[0])
	}

	// Same data is readable: 23:30 Friday counts as open.
	open, known := IsOpenAt(Schedule{overnight}, time.Date(2023, 1, 6, 23, 30, 0, 0, time.UTC))
	if !known || !open {
		t.Errorf("engine should read the overnight span as open (open=%v known=%v)", open, known)
	}
}

func TestValidateRejectsConflictingFlags(t *testing.T) {
	s := Schedule{{DayOfWeek: 6, IsClosed: true, Is24Hours: true}}
	errs := Validate(s)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	if errs[0] != "Saturday cannot be both closed and open 24 hours" {
		t.Errorf("unexpected message %q", errs[0])
	}
}

func TestValidateRejectsOutOfRangeDay(t *testing.T) {
	s := Schedule{{DayOfWeek: 7, OpenTime: "09:00", CloseTime: "17:00"}}
	errs := Validate(s)
	if len(errs) != 1 || !strings.Contains(errs[0], "out of range") {
		t.Errorf("expected out-of-range error, got %v", errs)
	}
}

func TestValidateReportsEveryBrokenDay(t *testing.T) {
	s := Schedule{
		{DayOfWeek: 0},                // no times at all
		timedDay(1, "17:00", "09:00"), // inverted
	}
	errs := Validate(s)
	if len(errs) != 2 {
		t.Errorf("expected one error per broken day, got %v", errs)
	}
}

package timezone_test

import (
	"testing"
	"time"

	"dinedesk/shared/timezone"
)

func TestTimezoneInit(t *testing.T) {
	// Test Now() function
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	// Test GetLocation()
	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed == (time.Time{}) {
		t.Error("Parse() returned a zero time")
	}
}

func TestStartOfDay(t *testing.T) {
	loc := timezone.GetLocation()
	value := time.Date(2024, 3, 9, 18, 45, 10, 0, loc)

	start := timezone.StartOfDay(value)
	if start.Hour() != 0 || start.Minute() != 0 || start.Day() != 9 {
		t.Errorf("StartOfDay() = %v, want midnight of the 9th", start)
	}
}

func TestSameDay(t *testing.T) {
	loc := timezone.GetLocation()
	morning := time.Date(2024, 3, 9, 1, 0, 0, 0, loc)
	evening := time.Date(2024, 3, 9, 23, 0, 0, 0, loc)
	nextDay := time.Date(2024, 3, 10, 0, 30, 0, 0, loc)

	if !timezone.SameDay(morning, evening) {
		t.Error("expected morning and evening to be the same day")
	}

	if timezone.SameDay(evening, nextDay) {
		t.Error("expected evening and next day to differ")
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		value string
		zero  bool
	}{
		{name: "rfc3339 with millis", value: "2024-05-01T10:20:30.123Z"},
		{name: "without zone", value: "2024-05-01T10:20:30"},
		{name: "date only", value: "2024-05-01"},
		{name: "empty", value: "", zero: true},
		{name: "garbage", value: "yesterday", zero: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := timezone.ParseTimestamp(tt.value)
			if got.IsZero() != tt.zero {
				t.Errorf("ParseTimestamp(%q) = %v, zero want %v", tt.value, got, tt.zero)
			}
		})
	}
}

package timezone_test

import (
	"testing"
	"time"

	"apelcal/shared/timezone"
)

func TestNow_UsesAppLocation(t *testing.T) {
	now := timezone.Now()

	if now.Location().String() != timezone.GetLocation().String() {
		t.Errorf("expected location %s, got %s", timezone.GetLocation(), now.Location())
	}

	if time.Since(now) > time.Minute {
		t.Error("Now should be close to the wall clock")
	}
}

func TestToday_IsMidnight(t *testing.T) {
	today := timezone.Today()

	if today.Hour() != 0 || today.Minute() != 0 || today.Second() != 0 || today.Nanosecond() != 0 {
		t.Errorf("expected midnight, got %v", today)
	}

	now := timezone.Now()
	if today.Year() != now.Year() || today.Month() != now.Month() || today.Day() != now.Day() {
		t.Errorf("expected today's date, got %v", today)
	}
}

func TestToAppTime(t *testing.T) {
	utc := time.Date(2030, 1, 7, 10, 0, 0, 0, time.UTC)

	converted := timezone.ToAppTime(utc)

	if !converted.Equal(utc) {
		t.Error("conversion must not change the instant")
	}

	if converted.Location().String() != timezone.GetLocation().String() {
		t.Errorf("expected app location, got %s", converted.Location())
	}
}

// Package timezone provides the single application timezone the whole
// calendar operates in.
//
// All calendar dates, times-of-day and "now" comparisons in the booking
// engine are interpreted in this one zone, configured through the
// APP_TIMEZONE environment variable (standard IANA names only, e.g.
// "Europe/Paris", "UTC"). The package is initialized on import.
//
//	now := timezone.Now()
//	today := timezone.Today()
//	t, err := timezone.Parse("2006-01-02", "2025-01-01")
//	formatted := timezone.Format(t, time.RFC3339)
package timezone

// Package timezone pins presentation to the configured application timezone.
//
// Booking instants are stored and compared in UTC. This package is only used to
// render timestamps in responses and reports, and to resolve calendar months:
//
//	month, _ := timezone.Parse("2006-01", "2026-10")   // midnight on Oct 1 in app time
//	label := timezone.Format(booking.StartTime, time.RFC3339)
//
// Services read the current instant through a Clock so tests can pin it:
//
//	svc := service.New(..., timezone.FixedClock{At: now}, ...)
//
// The zone comes from APP_TIMEZONE and must be an IANA name such as "Asia/Jakarta".
// An unknown or empty value falls back to UTC.
package timezone

// Package timezone pins every dashboard clock to the restaurant's zone.
//
// Day boundaries in the overview ("today's bookings", the week chart) and the
// date-only values sent by the backend are interpreted in the zone named by
// APP_TIMEZONE, falling back to UTC:
//
//	today := timezone.StartOfDay(timezone.Now())
//	if timezone.SameDay(booking.Datetime, today) { ... }
//
// ParseTimestamp accepts the handful of layouts the backend mixes (RFC 3339,
// "2006-01-02T15:04:05", "2006-01-02 15:04:05" and plain dates) and yields the
// zero time for anything else.
package timezone

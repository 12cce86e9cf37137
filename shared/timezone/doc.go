// Package timezone pins every wall-clock computation to the configured APP_TIMEZONE.
//
// Calendar dates (check-in, check-out, expense dates) are handled at day granularity:
//
//	day, err := timezone.ParseDay("2025-01-10") // midnight in the app timezone
//	today := timezone.Today()
//	same := timezone.StartOfDay(t)
//
// The location is loaded once when the package is imported. Unknown names fall back to UTC.
package timezone

package entity

import "errors"

// Error kinds the reporting layer is expected to branch on. A computation
// error must surface as an error, never as a false compliant result.
var (
	// ErrInvalidTimestamp marks an email record whose timestamp could not
	// be normalized. Non-fatal: the record is skipped and counted.
	ErrInvalidTimestamp = errors.New("invalid email timestamp")

	// ErrInvalidDateRange marks a working-day calculation over unusable
	// inputs. Fatal for that single calculation.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrMissingSetting is returned when the follow-up threshold or the
	// holiday registry is unavailable. The whole pass fails rather than
	// classifying against a guessed default.
	ErrMissingSetting = errors.New("required setting missing")
)

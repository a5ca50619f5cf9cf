package domain

import "errors"

// Sentinel errors shared across the engine. Services return these directly;
// the delivery layer maps them to HTTP status codes.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden indicates the acting principal may not mutate the event.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidInput indicates a validation failure detected before any
	// state mutation or network call.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateParticipant indicates a registration attempt with an email
	// already present in the event's roster. Recoverable: callers treat it as
	// an informational no-op, not a failure.
	ErrDuplicateParticipant = errors.New("participant already registered")

	// ErrScheduleConflict indicates the candidate event shares a date and
	// normalized start time with at least one published event.
	ErrScheduleConflict = errors.New("schedule conflict")

	// ErrMissingColumns indicates the imported sheet has no recognizable
	// name or email column. The import fails wholesale before any row is
	// processed.
	ErrMissingColumns = errors.New("sheet is missing a name or email column")

	// ErrSheetUnavailable indicates the spreadsheet source could not be
	// fetched or parsed. The wrapping message is user-actionable (typically:
	// publish the sheet to the web).
	ErrSheetUnavailable = errors.New("sheet unavailable")
)

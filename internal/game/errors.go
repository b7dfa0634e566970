package game

import "errors"

// Validation errors: surfaced to the caller, room state unchanged.
var (
	ErrInvalidFaction     = errors.New("invalid faction")
	ErrInvalidAttribute   = errors.New("invalid attribute")
	ErrInvalidSelection   = errors.New("selection must contain exactly 3 distinct cards")
	ErrCardNotOwned       = errors.New("card is not in the participant's deck")
	ErrUnknownParticipant = errors.New("participant is not seated in this room")
	ErrNoPlayers          = errors.New("at least one player must hold a faction")
	ErrRosterTooSmall     = errors.New("faction roster cannot cover every round")
)

// State-mismatch errors: benign races against a status change. Callers absorb
// them and treat the operation as a no-op.
var (
	ErrWrongStatus      = errors.New("operation not allowed in the current room status")
	ErrFactionTaken     = errors.New("faction already taken")
	ErrAlreadySubmitted = errors.New("selection already submitted this round")
	ErrStartInProgress  = errors.New("game start already in progress")
	ErrIncompleteBids   = errors.New("not every participant has submitted")
)

// ErrInvalidTransition means a caller bypassed the status checks.
var ErrInvalidTransition = errors.New("invalid status transition")

// IsValidation reports whether err should be returned to the participant
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidFaction) ||
		errors.Is(err, ErrInvalidAttribute) ||
		errors.Is(err, ErrInvalidSelection) ||
		errors.Is(err, ErrCardNotOwned) ||
		errors.Is(err, ErrUnknownParticipant) ||
		errors.Is(err, ErrNoPlayers) ||
		errors.Is(err, ErrRosterTooSmall)
}

// IsStateMismatch reports whether err is a benign status race
func IsStateMismatch(err error) bool {
	return errors.Is(err, ErrWrongStatus) ||
		errors.Is(err, ErrFactionTaken) ||
		errors.Is(err, ErrAlreadySubmitted) ||
		errors.Is(err, ErrStartInProgress) ||
		errors.Is(err, ErrIncompleteBids)
}

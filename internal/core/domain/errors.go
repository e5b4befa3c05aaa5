package domain

import "errors"

var (
	ErrBarNotFound        = errors.New("bar not found")
	ErrVoteNotFound       = errors.New("vote not found")
	ErrVisitNotFound      = errors.New("visit not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrAlreadyVoted       = errors.New("you already voted for this bar today")
	ErrAlreadyVisited     = errors.New("visit already recorded for this date")
	ErrBarInUse           = errors.New("bar has votes or visits and cannot be deleted")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrInvalidInput       = errors.New("invalid input")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// IsNotFound reports whether err means a referenced bar, vote, visit or user is absent.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrBarNotFound) ||
		errors.Is(err, ErrVoteNotFound) ||
		errors.Is(err, ErrVisitNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// IsConflict reports whether err is a write refused by a uniqueness or reference rule.
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyVoted) ||
		errors.Is(err, ErrAlreadyVisited) ||
		errors.Is(err, ErrBarInUse) ||
		errors.Is(err, ErrUserExists)
}

// Package domain defines domain-level errors for the users feature.
package domain

import "errors"

// Sentinel errors raised by the user repository. The repository never logs
// and never formats user-facing text; callers translate these into HTTP
// statuses or generic credential failures.
var (
	// ErrUserNotFound indicates an id-based lookup matched no row.
	ErrUserNotFound = errors.New("user not found")

	// ErrUnknownUsername indicates a username-based lookup matched no row.
	// The authentication layer must collapse it into a generic
	// invalid-credentials response so usernames cannot be enumerated.
	ErrUnknownUsername = errors.New("unknown username")

	// ErrUnsupportedPrincipal indicates Refresh was called with a principal
	// kind this repository does not handle. That is a wiring bug in the
	// caller, not a per-request condition.
	ErrUnsupportedPrincipal = errors.New("unsupported principal kind")

	// ErrDuplicateUsername indicates the unique constraint on usr_name
	// rejected an insert or update.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrStorageUnavailable wraps connection-level failures and timeouts.
	// Callers decide whether to retry; the repository does not.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

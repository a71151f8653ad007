package domain

import "errors"

// Error classes of the sync pipeline. Per-platform failures are captured in
// the sync summary; only storage failures abort a whole call.
var (
	// ErrNotConnected means no active credential exists for the platform.
	ErrNotConnected = errors.New("platform not connected")

	// ErrAuthExpired means the token expired and could not be refreshed;
	// the credential stays active but is unusable until the user reconnects.
	ErrAuthExpired = errors.New("credential expired and refresh failed")

	// ErrTransientRemote marks a remote 5xx/429 that survived every retry.
	ErrTransientRemote = errors.New("transient remote error")

	// ErrStorage marks an unreachable sale/credential store. Fatal for the
	// current call; nothing short of it is.
	ErrStorage = errors.New("storage unavailable")
)

package insights

import "errors"

var (
	// ErrSnapshotFetch is returned when the snapshot fetch fails; the report
	// cannot be computed without a snapshot
	ErrSnapshotFetch = errors.New("snapshot fetch failed")

	// ErrNotAuthenticated is returned when authentication is required
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrSessionExpired is returned when session has expired
	ErrSessionExpired = errors.New("session expired")
)

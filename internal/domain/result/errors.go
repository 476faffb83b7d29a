package result

import "errors"

var (
	// ErrNotAuthenticated indicates a gated call carried no identity.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrPermissionDenied indicates the caller lacks the elevated role.
	ErrPermissionDenied = errors.New("permission denied")
)

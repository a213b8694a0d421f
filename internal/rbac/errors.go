package rbac

import "errors"

var (
	// ErrForbidden is returned by every gate that denies a request.
	ErrForbidden = errors.New("forbidden")

	// ErrUnmappedTableView marks a (table, scope) pair with no permission in
	// the view map. It is a programming error and maps to HTTP 500.
	ErrUnmappedTableView = errors.New("no permission is mapped for table view")

	// ErrAccountInactive is wrapped by ErrForbidden for deactivated accounts.
	ErrAccountInactive = errors.New("account is deactivated")

	// ErrUnknownRole is returned by ParseRole for names outside the role set.
	ErrUnknownRole = errors.New("unknown role")

	// ErrUnknownPermission is returned by ParsePermission.
	ErrUnknownPermission = errors.New("unknown permission")
)

package bookings

import "errors"

var (
	ErrNotBookable       = errors.New("permission does not allow bookings")
	ErrPermissionExpired = errors.New("permission has expired")
)

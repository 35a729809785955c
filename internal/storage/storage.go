package storage

import "errors"

var (
	ErrRigNotFound        = errors.New("rig not found")
	ErrPermissionNotFound = errors.New("permission not found")
)

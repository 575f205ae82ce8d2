package models

import "errors"

// ErrNotFound is returned by repositories when a row does not exist,
// so callers never have to match on driver-specific errors.
var ErrNotFound = errors.New("not found")

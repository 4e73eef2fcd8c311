package database

import "errors"

// ErrNotFound is returned by repositories when no document matches a lookup.
var ErrNotFound = errors.New("document not found")

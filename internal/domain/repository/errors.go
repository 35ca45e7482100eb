package repository

import "errors"

// ErrDuplicateKey is returned by Create when a unique constraint rejects the write.
var ErrDuplicateKey = errors.New("duplicate key")

package bip32path

import "errors"

var (
	// ErrNullPath ...
	ErrNullPath = errors.New("derivation path must not be null")
	// ErrMalformedPath ...
	ErrMalformedPath = errors.New(
		"path must not start or end with a '/' and " +
			"can optionally start with 'm/' for absolute paths",
	)
	// ErrPathTooLong ...
	ErrPathTooLong = errors.New("derivation path exceeds the maximum number of steps")
	// ErrTruncatedPath ...
	ErrTruncatedPath = errors.New("serialized path is shorter than its declared length")
)

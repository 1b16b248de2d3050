package application

import "errors"

var (
	// ErrPubkeyTooLong ...
	ErrPubkeyTooLong = errors.New(
		"serialized extended public key exceeds the maximum supported length",
	)
)

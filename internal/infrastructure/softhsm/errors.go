package softhsm

import "errors"

var (
	// ErrNullMnemonic ...
	ErrNullMnemonic = errors.New("mnemonic must not be null")
	// ErrNullPIN ...
	ErrNullPIN = errors.New("pin must not be null")
	// ErrInvalidMnemonic ...
	ErrInvalidMnemonic = errors.New("mnemonic is invalid")
	// ErrInvalidPIN ...
	ErrInvalidPIN = errors.New("pin is not valid")
	// ErrDeviceLocked ...
	ErrDeviceLocked = errors.New("device must be unlocked to derive keys")
)

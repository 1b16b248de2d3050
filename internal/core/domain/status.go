package domain

// StatusWord is the 2-byte status code terminating every device response,
// following the ISO 7816 convention used by smartcard-style wallets.
type StatusWord uint16

const (
	// StatusOK terminates a successful request.
	StatusOK StatusWord = 0x9000
	// StatusSecurityNotSatisfied is returned when the device is locked.
	StatusSecurityNotSatisfied StatusWord = 0x6982
	// StatusWrongDataLength is returned on malformed or truncated input.
	StatusWrongDataLength StatusWord = 0x6700
	// StatusIncorrectData is returned when a field is out of its allowed
	// range.
	StatusIncorrectData StatusWord = 0x6A80
	// StatusNotSupported is returned when a non-standard path is requested
	// without on-device confirmation.
	StatusNotSupported StatusWord = 0x6D00
	// StatusDenied is returned when the user rejects the confirmation.
	StatusDenied StatusWord = 0x6985
	// StatusBadState signals an unexpected derivation failure on a path
	// already judged structurally valid.
	StatusBadState StatusWord = 0xB007
)

// Ok reports whether the status word terminates a successful request.
func (sw StatusWord) Ok() bool {
	return sw == StatusOK
}

func (sw StatusWord) String() string {
	switch sw {
	case StatusOK:
		return "ok"
	case StatusSecurityNotSatisfied:
		return "security status not satisfied"
	case StatusWrongDataLength:
		return "wrong data length"
	case StatusIncorrectData:
		return "incorrect data"
	case StatusNotSupported:
		return "not supported"
	case StatusDenied:
		return "denied by user"
	case StatusBadState:
		return "bad internal state"
	default:
		return "unknown status"
	}
}

package ports

// SecureDevice tracks the lock state of the device. Every command requiring
// access to key material must check the lock state before doing anything
// else.
type SecureDevice interface {
	// IsUnlocked reports whether the device has been unlocked with the
	// correct PIN.
	IsUnlocked() bool
	// Unlock verifies the PIN and unlocks the device.
	Unlock(pin string) error
	// Lock locks the device again.
	Lock()
}

package interfaces

// Service interface defines the methods that every kind of host-facing
// interface, whether a TCP device link, USB HID bridge, or whatever must be
// compliant with.
type Service interface {
	Start() error
	Stop()
}

package bridge

import "errors"

// Sentinel errors for bridge operations.
var (
	// ErrUnauthorized is returned when a device presents a key that does
	// not match the key bound on its first request.
	ErrUnauthorized = errors.New("bridge: device key mismatch")

	// ErrPublishFailed is returned when a discovery or state publish
	// fails. The request stops at the failing channel; progress made on
	// earlier channels is kept.
	ErrPublishFailed = errors.New("bridge: publish failed")

	// ErrInvalidOptions is returned by New when required collaborators
	// are missing.
	ErrInvalidOptions = errors.New("bridge: invalid options")
)

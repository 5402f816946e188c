package domain

import "errors"

var (
	ErrShipmentNotFound  = errors.New("shipment not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrForbidden         = errors.New("access forbidden")
	ErrUnknownCarrier    = errors.New("unknown carrier")

	// ErrTransport wraps failures of the carrier round trip (connection,
	// TLS, non-200 status). The carrier never saw or never answered the call.
	ErrTransport = errors.New("carrier transport failure")
	// ErrMalformedResponse is returned when a carrier body is not well-formed XML.
	ErrMalformedResponse = errors.New("malformed carrier response")
)

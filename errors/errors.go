package errors

import "fmt"

var (
	ErrPersistence       = fmt.Errorf("persistence failure")
	ErrMalformedEnvelope = fmt.Errorf("malformed envelope")
	ErrSessionClosed     = fmt.Errorf("session closed")
	ErrNotConnected      = fmt.Errorf("not connected")
)

package errors

import "fmt"

var (
	// Connection refused, never retried by the server.
	ErrAuth               = fmt.Errorf("invalid or expired credential")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
	ErrInvalidPassword    = fmt.Errorf("password does not meet complexity rules")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
	ErrAlreadyExists      = fmt.Errorf("already exists")

	// Send rejected, reported to the sender only.
	ErrPermission      = fmt.Errorf("not allowed to address this target")
	ErrNotFound        = fmt.Errorf("unknown target")
	ErrInvalidArgument = fmt.Errorf("invalid request")

	// Append/replay I/O failure. A failed append is a hard failure
	// for that send attempt, no partial persistence is left behind.
	ErrStorage = fmt.Errorf("storage failure")

	// Peer disconnect, session torn down.
	ErrTransport = fmt.Errorf("transport lost")

	ErrWorkerPanic = fmt.Errorf("worker panic")
	ErrEmptyWords  = fmt.Errorf("no words have been found")

	// ErrStopReplay is returned by a replay visitor to end the
	// iteration early. It is not a failure.
	ErrStopReplay = fmt.Errorf("stop replay")
)

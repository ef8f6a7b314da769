// Package scanerror defines the error taxonomy for a mailbox scan.
// Session-level and output-level errors abort the run; per-message parse
// errors are isolated so one malformed message never aborts the batch.
package scanerror

import "fmt"

// AuthError represents a rejected login. The run aborts before any output
// is produced.
type AuthError struct {
	User string
	Err  error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed for %s: %v", e.User, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// ConnectionError represents a network or TLS failure while reaching the
// mail server.
type ConnectionError struct {
	Host string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection to %s failed: %v", e.Host, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// ProtocolError represents an unexpected or malformed server response after
// a session was established.
type ProtocolError struct {
	Op  string
	Err error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("unexpected server response during %s: %v", e.Op, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// ParseError represents a single malformed message. The message is skipped
// and the scan continues.
type ParseError struct {
	SeqNum uint32
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to parse message %d: %s: %v", e.SeqNum, e.Reason, e.Err)
	}
	return fmt.Sprintf("failed to parse message %d: %s", e.SeqNum, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError represents a failure writing the report file. Fatal, since the
// report is the sole deliverable of a run.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

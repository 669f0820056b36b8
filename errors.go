package chessclient

import (
	"errors"
	"fmt"
	"net"
)

// Sentinel errors for well-defined error conditions.
var (
	// ErrTransport matches every *TransportError.
	ErrTransport = errors.New("chessclient: transport failure")

	// ErrProtocol matches every *ProtocolError.
	ErrProtocol = errors.New("chessclient: unexpected response")

	// ErrResponseTooLarge indicates the server sent more than the client reads.
	// It is carried by a *ProtocolError.
	ErrResponseTooLarge = errors.New("chessclient: response body too large")

	// ErrClosed indicates the client has been closed.
	ErrClosed = errors.New("chessclient: client closed")

	// ErrInvalidBaseURL indicates the configured server origin is unusable.
	ErrInvalidBaseURL = errors.New("chessclient: invalid base URL")
)

// TransportError reports an HTTP request that could not complete:
// connection refused, DNS failure, timeout, or a body cut short.
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("chessclient: %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// Timeout reports whether the failure was a timeout.
func (e *TransportError) Timeout() bool {
	var ne net.Error
	return errors.As(e.Err, &ne) && ne.Timeout()
}

// maxErrorBody bounds how much of an offending body a ProtocolError keeps.
const maxErrorBody = 256

// ProtocolError reports a response whose body did not have the expected shape.
type ProtocolError struct {
	Op         string
	StatusCode int
	Body       []byte
	Err        error
}

func newProtocolError(op string, status int, body []byte, err error) *ProtocolError {
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return &ProtocolError{
		Op:         op,
		StatusCode: status,
		Body:       append([]byte(nil), body...),
		Err:        err,
	}
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("chessclient: %s: HTTP %d: %v", e.Op, e.StatusCode, e.Err)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

func (e *ProtocolError) Is(target error) bool { return target == ErrProtocol }

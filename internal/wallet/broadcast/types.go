package broadcast

import (
	"fmt"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
)

// ErrorKind classifies a broadcast failure so callers can tell transient
// transport problems from permanent provider rejections.
type ErrorKind string

const (
	// ErrorKindNetwork covers connection and transport failures.
	ErrorKindNetwork ErrorKind = "network"
	// ErrorKindHTTP covers non-2xx HTTP responses from the endpoint.
	ErrorKindHTTP ErrorKind = "http"
	// ErrorKindRPC covers well-formed RPC-level rejections (code + message).
	ErrorKindRPC ErrorKind = "rpc"
	// ErrorKindMalformed covers responses the provider produced but that do
	// not carry a usable result.
	ErrorKindMalformed ErrorKind = "malformed"
)

// Error is a structured broadcast failure: the endpoint it happened against
// together with the HTTP status or RPC error code when the provider supplied
// one. The original error stays reachable through Unwrap.
type Error struct {
	Endpoint   string
	Kind       ErrorKind
	HTTPStatus int // set for ErrorKindHTTP
	RPCCode    int // set for ErrorKindRPC
	cause      error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrorKindHTTP:
		return fmt.Sprintf("broadcast to %s failed: http status %d: %v", e.Endpoint, e.HTTPStatus, e.cause)
	case ErrorKindRPC:
		return fmt.Sprintf("broadcast to %s rejected: rpc code %d: %v", e.Endpoint, e.RPCCode, e.cause)
	case ErrorKindMalformed:
		return fmt.Sprintf("broadcast to %s returned malformed response: %v", e.Endpoint, e.cause)
	default:
		return fmt.Sprintf("broadcast to %s failed: %v", e.Endpoint, e.cause)
	}
}

func (e *Error) Unwrap() error {
	return e.cause
}

// classifyError maps a raw client error onto the structured form without
// collapsing the HTTP-status/RPC-code distinction into text.
func classifyError(endpoint string, err error) *Error {
	var httpErr rpc.HTTPError
	if errors.As(err, &httpErr) {
		return &Error{
			Endpoint:   endpoint,
			Kind:       ErrorKindHTTP,
			HTTPStatus: httpErr.StatusCode,
			cause:      err,
		}
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return &Error{
			Endpoint: endpoint,
			Kind:     ErrorKindRPC,
			RPCCode:  rpcErr.ErrorCode(),
			cause:    err,
		}
	}

	return &Error{
		Endpoint: endpoint,
		Kind:     ErrorKindNetwork,
		cause:    err,
	}
}

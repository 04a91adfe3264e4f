package dispatch

import (
	"errors"
	"fmt"
	"net"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/secrethub/secrethub-go/internals/errio"
)

// Errors
var (
	errDispatch = errio.Namespace("dispatch")

	ErrUnknownParam         = errDispatch.Code("unknown_param").ErrorPref("%s has no parameter named %s")
	ErrUnknownSelectorField = errDispatch.Code("unknown_selector_field").ErrorPref("the response of %s has no field named %s. Use * to select the whole response")
	ErrUnknownEchoParam     = errDispatch.Code("unknown_echo_param").ErrorPref("cannot select ^%s: %s has no such parameter")
	ErrInvalidParamValue    = errDispatch.Code("invalid_param_value").ErrorPref("invalid value for %s: %s")
	ErrInvalidRequestField  = errDispatch.Code("invalid_request_field").ErrorPref("cannot set request field %s: %s")
	ErrEndpointUnreachable  = errDispatch.Code("endpoint_unreachable").ErrorPref(
		"could not resolve the service endpoint: %s\n\n" +
			"Check your network connection and make sure the configured region and endpoint URL exist.",
	)
	ErrInterrupted = errDispatch.Code("interrupted").Error("interrupted before all results were retrieved")

	// ErrOutputClosed can be returned by an Emitter to stop an invocation
	// without failing it, e.g. when the user closed the terminal pager.
	ErrOutputClosed = errors.New("output closed")
)

// InvocationError is the captured failure of a single invocation.
// It carries the operation and the target it was performed on.
type InvocationError struct {
	Operation string
	Target    string
	Err       error
}

func newInvocationError(d *Descriptor, target string, err error) *InvocationError {
	if isNameResolutionFailure(err) {
		err = ErrEndpointUnreachable(err)
	}
	return &InvocationError{
		Operation: d.Name,
		Target:    target,
		Err:       err,
	}
}

// Error implements the error interface.
func (e *InvocationError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("%s (%s): %s", e.Operation, e.Target, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Operation, e.Err)
}

// Unwrap returns the cause of the failure.
func (e *InvocationError) Unwrap() error {
	return e.Err
}

// isNameResolutionFailure reports whether a DNS lookup failure is part of the error chain.
// The SDK wraps transport errors in awserr.Error values, which expose their cause through OrigErr.
func isNameResolutionFailure(err error) bool {
	for err != nil {
		if _, ok := err.(*net.DNSError); ok {
			return true
		}
		if aerr, ok := err.(awserr.Error); ok {
			err = aerr.OrigErr()
			continue
		}
		err = errors.Unwrap(err)
	}
	return false
}

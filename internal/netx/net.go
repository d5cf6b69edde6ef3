// Package netx classifies transport-level failures of outbound HTTP calls.
package netx

import (
	"context"
	"errors"
	"net"
)

// IsTimeout reports whether err comes from a deadline: the client timeout,
// a dial/read timeout or an expired context.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// IsCanceled reports whether err comes from the caller canceling the context.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}

package catalog

import (
	"context"
	"errors"
	"fmt"
)

// ErrMalformedResponse is wrapped when the payload lacks the data or pagination fields.
var ErrMalformedResponse = errors.New("malformed artworks response")

// ErrorClass labels a fetch failure for logs and metrics. The grid treats every class the same.
type ErrorClass string

const (
	ErrorClassNetwork  ErrorClass = "network"
	ErrorClassStatus   ErrorClass = "status"
	ErrorClassDecode   ErrorClass = "decode"
	ErrorClassShape    ErrorClass = "shape"
	ErrorClassCanceled ErrorClass = "canceled"
)

// FetchError is returned by Client.FetchPage for any failed page load.
type FetchError struct {
	Page       int
	Class      ErrorClass
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch artworks page %d: %s error (status %d): %v", e.Page, e.Class, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch artworks page %d: %s error: %v", e.Page, e.Class, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsCanceled reports whether err comes from a superseded or aborted fetch.
func IsCanceled(err error) bool {
	var fe *FetchError
	if errors.As(err, &fe) && fe.Class == ErrorClassCanceled {
		return true
	}
	return errors.Is(err, context.Canceled)
}

func classifyTransport(err error) ErrorClass {
	if errors.Is(err, context.Canceled) {
		return ErrorClassCanceled
	}
	return ErrorClassNetwork
}

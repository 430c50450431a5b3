// Package gateway holds the HTTP clients for the catalog, order and auth
// services, plus the error taxonomy every call maps its failures into.
package gateway

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Kind classifies a gateway failure for the caller
type Kind int

const (
	// KindUnavailable covers network failures and 5xx responses
	KindUnavailable Kind = iota
	// KindAuthRequired means the bearer token was absent or rejected
	KindAuthRequired
	// KindAuthInvalid means the supplied credentials were wrong
	KindAuthInvalid
	// KindDuplicateEmail means registration hit an existing account
	KindDuplicateEmail
	// KindNotFound means the requested document does not exist
	KindNotFound
)

// Error is the single error type gateway calls return. Message carries the
// best available text from the response body.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Message maps any error to a display string: a gateway Error contributes
// the server's message, anything else falls back to its own text, and nil
// input yields a generic notice. This is the one place call-site notices
// get their wording from.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var ge *Error
	if errors.As(err, &ge) && ge.Message != "" {
		return ge.Message
	}
	if err.Error() != "" {
		return err.Error()
	}
	return "Something went wrong. Please try again."
}

// responseError turns a non-2xx response into an *Error, pulling the
// message out of a `{"message": ...}` body when one is present.
func responseError(resp *http.Response) *Error {
	var body struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	msg := body.Message
	if msg == "" {
		msg = resp.Status
	}

	kind := KindUnavailable
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		kind = KindAuthRequired
	case http.StatusNotFound:
		kind = KindNotFound
	}
	return &Error{Kind: kind, Message: msg}
}

// netError wraps a transport failure
func netError(err error) *Error {
	return &Error{Kind: KindUnavailable, Message: err.Error()}
}

package backend

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindNetwork      Kind = "network"
	KindNotFound     Kind = "not_found"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindRejected     Kind = "rejected"
	KindServer       Kind = "server"
	KindDecode       Kind = "decode"
)

// Sentinels for errors.Is; every *Error matches the one for its Kind.
var (
	ErrNetwork      = errors.New("backend unreachable")
	ErrNotFound     = errors.New("backend resource not found")
	ErrUnauthorized = errors.New("backend rejected credentials")
	ErrForbidden    = errors.New("backend denied access")
	ErrRejected     = errors.New("backend rejected request")
	ErrServer       = errors.New("backend server error")
	ErrDecode       = errors.New("backend response malformed")
)

var sentinels = map[Kind]error{
	KindNetwork:      ErrNetwork,
	KindNotFound:     ErrNotFound,
	KindUnauthorized: ErrUnauthorized,
	KindForbidden:    ErrForbidden,
	KindRejected:     ErrRejected,
	KindServer:       ErrServer,
	KindDecode:       ErrDecode,
}

// Error is a failed backend call. Message is the backend's own message when
// it sent one.
type Error struct {
	Kind    Kind
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Status != 0 {
		return fmt.Sprintf("backend %s: %d %s", e.Op, e.Status, msg)
	}
	return fmt.Sprintf("backend %s: %s", e.Op, msg)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	return sentinels[e.Kind] == target
}

func (e *Error) NotFound() bool { return e.Kind == KindNotFound }

// UserMessage is safe to show to the shopper.
func (e *Error) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	switch e.Kind {
	case KindNetwork:
		return "Could not reach the store server. Please check your connection and try again."
	case KindNotFound:
		return "The requested item was not found."
	case KindUnauthorized:
		return "Please sign in again."
	case KindForbidden:
		return "You do not have permission to do that."
	default:
		return "The store server had a problem. Please try again."
	}
}

func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status == http.StatusForbidden:
		return KindForbidden
	case status >= 500:
		return KindServer
	default:
		return KindRejected
	}
}

package apperr

import (
	"net/http"
	"strings"
)

// Error carries an HTTP status plus the user-facing message list that the
// handlers serialize verbatim into the {"errors": [...]} body.
type Error struct {
	Status   int
	Messages []string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Messages) > 0 {
		return strings.Join(e.Messages, "; ")
	}
	return http.StatusText(e.Status)
}

func New(status int, messages ...string) *Error {
	return &Error{Status: status, Messages: messages}
}

func BadRequest(messages ...string) *Error {
	return New(http.StatusBadRequest, messages...)
}

func NotFound(messages ...string) *Error {
	return New(http.StatusNotFound, messages...)
}

func Conflict(messages ...string) *Error {
	return New(http.StatusConflict, messages...)
}

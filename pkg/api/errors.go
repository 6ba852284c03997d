package api

import (
	"errors"
	"net/http"

	"github.com/gestaolivre/brtypes/pkg/document"
)

var (
	ErrUnknownKind         = document.ErrUnknownKind
	ErrGenerateUnsupported = errors.New("kind cannot be generated")
	ErrBadRequest          = errors.New("malformed request")
	ErrTooManyItems        = errors.New("too many items")
)

// HTTPError is an error with a status code and a translatable message.
type HTTPError struct {
	Status int
	Key    string
	Args   []string
	Err    error
}

func (e HTTPError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Status)
}

func (e HTTPError) Unwrap() error {
	return e.Err
}

func badRequest(err error) HTTPError {
	return HTTPError{Status: http.StatusBadRequest, Key: "errors.bad_request", Err: errors.Join(ErrBadRequest, err)}
}

func unknownKind(kind string) HTTPError {
	return HTTPError{Status: http.StatusNotFound, Key: "errors.unknown_kind", Args: []string{"kind", kind}, Err: ErrUnknownKind}
}

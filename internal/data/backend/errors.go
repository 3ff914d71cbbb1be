package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// APIError is returned when the cinema backend responds with a non-2xx status.
type APIError struct {
	StatusCode int
	Status     string
	Endpoint   string
	Body       string
}

func (e *APIError) Error() string {
	if e == nil {
		return "backend api error"
	}
	return fmt.Sprintf("backend api error: %s %s: %s", e.Status, e.Endpoint, e.Body)
}

// IsNotFound reports whether the error represents a 404 from the backend.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsConflict reports whether the backend refused the request because of the
// current state of the resource, e.g. seats booked in the meantime.
func IsConflict(err error) bool {
	return hasStatus(err, http.StatusConflict)
}

func hasStatus(err error, code int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == code
	}
	return false
}

// DecodeError is returned when a backend payload does not match the expected
// shape. Field is the json path of the offending value, when known.
type DecodeError struct {
	Resource string
	Field    string
	Reason   string
	Err      error
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("decode %s: %s", e.Resource, e.Reason)
	}
	return fmt.Sprintf("decode %s: field %s: %s", e.Resource, e.Field, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func IsDecodeError(err error) bool {
	var decodeErr *DecodeError
	return errors.As(err, &decodeErr)
}

func jsonDecodeError(resource string, err error) *DecodeError {
	var (
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
	)
	switch {
	case errors.As(err, &typeErr):
		return &DecodeError{
			Resource: resource,
			Field:    typeErr.Field,
			Reason:   fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
			Err:      err,
		}
	case errors.As(err, &syntaxErr):
		return &DecodeError{Resource: resource, Reason: "malformed json", Err: err}
	default:
		return &DecodeError{Resource: resource, Reason: err.Error(), Err: err}
	}
}

func validationDecodeError(resource string, err error) *DecodeError {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &DecodeError{Resource: resource, Reason: err.Error(), Err: err}
	}

	fe := fieldErrs[0]
	field := fe.Namespace()
	// drop the Go type name in front of the json path
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}

	reason := "failed " + fe.Tag()
	if fe.Param() != "" {
		reason += "=" + fe.Param()
	}
	return &DecodeError{Resource: resource, Field: field, Reason: reason, Err: err}
}

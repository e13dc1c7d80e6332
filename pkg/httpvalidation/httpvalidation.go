package httpvalidation

import (
	"encoding/json"
	"errors"
	"net/http"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/fluentval/pkg/messages"
	"github.com/dmitrymomot/fluentval/pkg/validation"
)

// Response is the JSON envelope written by Render.
type Response struct {
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

// Decode reads a JSON body into T and validates it with v. Rule violations
// come back as a *validation.Error; the decoded value is returned either way.
func Decode[T any](r *http.Request, v validation.Validator[T]) (T, error) {
	var obj T
	if err := json.NewDecoder(r.Body).Decode(&obj); err != nil {
		return obj, errors.Join(ErrMalformedBody, err)
	}

	res, err := v.Execute(obj)
	if err != nil {
		return obj, err
	}
	return obj, res.Err()
}

// Handler decodes and validates the request body, then calls next with the
// valid value. Failures are written with Render. validator is called per
// request so it can pick a request-specific catalog.
func Handler[T any](validator func(r *http.Request) validation.Validator[T], next func(w http.ResponseWriter, r *http.Request, obj T)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := validator(r)
		if v == nil {
			Render(w, ErrNoValidator)
			return
		}
		obj, err := Decode(r, v)
		if err != nil {
			Render(w, err)
			return
		}
		next(w, r, obj)
	}
}

// Render writes err as a JSON error response:
//   - *validation.Error: 422 with messages grouped by property
//   - ErrMalformedBody or validation.ErrNilObject: 400
//   - anything else: 500
func Render(w http.ResponseWriter, err error) {
	status, detail := classify(err)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{Error: detail})
}

func classify(err error) (int, *ErrorDetail) {
	if verr, ok := validation.AsError(err); ok {
		return http.StatusUnprocessableEntity, &ErrorDetail{
			Code:    "validation_error",
			Message: validation.ErrValidationFailed.Error(),
			Details: verr.Details(),
		}
	}

	switch {
	case errors.Is(err, ErrMalformedBody):
		return http.StatusBadRequest, &ErrorDetail{Code: "bad_request", Message: ErrMalformedBody.Error()}
	case errors.Is(err, validation.ErrNilObject):
		return http.StatusBadRequest, &ErrorDetail{Code: "bad_request", Message: "request body is empty"}
	default:
		return http.StatusInternalServerError, &ErrorDetail{Code: "internal_error", Message: http.StatusText(http.StatusInternalServerError)}
	}
}

// Catalog picks the bundle catalog that best matches the request's
// Accept-Language header.
func Catalog(r *http.Request, b *messages.Bundle) *messages.Catalog {
	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return b.Catalog(b.DefaultLanguage())
	}

	preferred := make([]string, 0, len(tags))
	for _, tag := range tags {
		preferred = append(preferred, tag.String())
	}
	return b.Catalog(b.Match(preferred...))
}

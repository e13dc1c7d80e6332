package validation

import (
	"errors"
	"strings"
)

// Result is the outcome of a single Execute call.
// Success is true exactly when Messages is empty.
type Result struct {
	Success  bool      `json:"success"`
	Messages []Message `json:"messages,omitempty"`
}

// NewResult packages messages into a Result. The slice is copied.
func NewResult(messages ...Message) Result {
	snapshot := make([]Message, len(messages))
	copy(snapshot, messages)
	return Result{
		Success:  len(snapshot) == 0,
		Messages: snapshot,
	}
}

// Has reports whether at least one message was recorded for property.
func (r Result) Has(property string) bool {
	for _, m := range r.Messages {
		if m.Property == property {
			return true
		}
	}
	return false
}

// Get returns the message texts recorded for property in declaration order.
func (r Result) Get(property string) []string {
	var texts []string
	for _, m := range r.Messages {
		if m.Property == property {
			texts = append(texts, m.Text)
		}
	}
	return texts
}

// Properties returns the distinct property names in first-seen order.
func (r Result) Properties() []string {
	var props []string
	seen := make(map[string]bool)
	for _, m := range r.Messages {
		if !seen[m.Property] {
			props = append(props, m.Property)
			seen[m.Property] = true
		}
	}
	return props
}

// Err converts a failed result into an *Error. It returns nil on success.
func (r Result) Err() error {
	if r.Success {
		return nil
	}
	return &Error{Messages: r.Messages}
}

func (r Result) String() string {
	if r.Success {
		return "validation passed"
	}
	return (&Error{Messages: r.Messages}).Error()
}

// ObjectResult is a Result that also hands the validated object back to the
// caller.
type ObjectResult[T any] struct {
	Result
	Object T `json:"object"`
}

// WithObject attaches obj to r.
func WithObject[T any](r Result, obj T) ObjectResult[T] {
	return ObjectResult[T]{Result: r, Object: obj}
}

// Error is the error form of a failed Result.
type Error struct {
	Messages []Message
}

func (e *Error) Error() string {
	if len(e.Messages) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(e.Messages))
	for _, m := range e.Messages {
		parts = append(parts, m.String())
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrValidationFailed) match.
func (e *Error) Is(target error) bool {
	return target == ErrValidationFailed
}

// Details groups message texts by property name.
func (e *Error) Details() map[string][]string {
	details := make(map[string][]string)
	for _, m := range e.Messages {
		details[m.Property] = append(details[m.Property], m.Text)
	}
	return details
}

// AsError extracts an *Error from err.
func AsError(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

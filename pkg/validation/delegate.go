package validation

import "fmt"

// Delegate runs child against the property picked by selector and merges
// its messages into e unchanged. A nil property is passed to the child as
// is; for pointer types the child rejects it and the whole Execute call
// fails with ErrNilObject.
func Delegate[T, C any](e *Execution[T], selector func(T) C, child Validator[C]) {
	value := selectChild(e, selector, child)
	runChild(e, child, value)
}

// DelegateIfNotNull is Delegate that skips the child when the selected
// property is nil.
func DelegateIfNotNull[T, C any](e *Execution[T], selector func(T) C, child Validator[C]) {
	value := selectChild(e, selector, child)
	if isNil(value) {
		return
	}
	runChild(e, child, value)
}

// DelegateEach runs child once per element of the selected slice, in order.
// A nil slice aborts the Execute call with ErrNilObject. Elements are not
// null-checked.
func DelegateEach[T, C any](e *Execution[T], selector func(T) []C, child Validator[C]) {
	items := selectChild(e, selector, child)
	if items == nil {
		abort(fmt.Errorf("child validator: %w", ErrNilObject))
	}
	for _, item := range items {
		runChild(e, child, item)
	}
}

// DelegateEachIfNotNull is DelegateEach that skips the whole operation when
// the selected slice is nil.
func DelegateEachIfNotNull[T, C any](e *Execution[T], selector func(T) []C, child Validator[C]) {
	items := selectChild(e, selector, child)
	if items == nil {
		return
	}
	for _, item := range items {
		runChild(e, child, item)
	}
}

func selectChild[T, V, C any](e *Execution[T], selector func(T) V, child Validator[C]) V {
	checkExecution(e)
	if selector == nil {
		abort(argumentError("selector", "is nil"))
	}
	if child == nil {
		abort(argumentError("child validator", "is nil"))
	}
	return selector(e.object)
}

func runChild[T, C any](e *Execution[T], child Validator[C], value C) {
	res, err := child.Execute(value)
	if err != nil {
		abort(fmt.Errorf("child validator: %w", err))
	}
	for _, m := range res.Messages {
		if _, err := NewMessage(m.Property, m.Text); err != nil {
			abort(fmt.Errorf("child validator: %w", err))
		}
	}
	e.messages = append(e.messages, res.Messages...)
}

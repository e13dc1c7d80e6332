package validation

import (
	"fmt"
	"io"
	"log/slog"
)

// Validator validates objects of a single type.
type Validator[T any] interface {
	// Execute runs the rules against obj. A non-nil error means the call
	// itself was malformed; rule violations are reported through Result.
	Execute(obj T) (Result, error)
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc[T any] func(obj T) (Result, error)

func (f ValidatorFunc[T]) Execute(obj T) (Result, error) {
	return f(obj)
}

// Rules declares the checks of a validator. It is invoked once per Execute
// call with a fresh execution bound to the object under validation.
type Rules[T any] func(e *Execution[T])

// Option configures a FluentValidator.
type Option func(*options)

type options struct {
	name    string
	catalog Catalog
	logger  *slog.Logger
}

// WithName sets the name used in log records. Defaults to the validated type.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithCatalog sets the catalog used to render combinator messages.
func WithCatalog(c Catalog) Option {
	return func(o *options) {
		if c != nil {
			o.catalog = c
		}
	}
}

// WithLogger sets the logger. Execution outcomes are logged at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// FluentValidator runs a rule procedure against objects of type T.
// It holds no per-call state, so one instance may serve concurrent callers.
type FluentValidator[T any] struct {
	rules Rules[T]
	opts  options
}

// New creates a validator from a rule procedure.
// Panics if rules is nil.
func New[T any](rules Rules[T], opts ...Option) *FluentValidator[T] {
	if rules == nil {
		panic(argumentError("rules", "is nil"))
	}

	o := options{
		name:    typeName[T](),
		catalog: DefaultCatalog(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &FluentValidator[T]{rules: rules, opts: o}
}

// Name returns the validator name.
func (v *FluentValidator[T]) Name() string {
	return v.opts.name
}

// Execute validates obj. It fails with ErrNilObject when obj is a nil
// pointer, map, slice, interface, func or chan, and with ErrInvalidArgument
// when the rule procedure breaks a call contract. In both cases no Result is
// produced.
func (v *FluentValidator[T]) Execute(obj T) (Result, error) {
	if v == nil {
		return Result{}, argumentError("validator", "is nil")
	}
	if isNil(obj) {
		return Result{}, ErrNilObject
	}

	e := newExecution(obj, v.opts.catalog)
	if err := e.run(v.rules); err != nil {
		v.opts.logger.Debug("validation aborted",
			"validator", v.opts.name,
			"error", err,
		)
		return Result{}, err
	}

	res := NewResult(e.messages...)
	v.opts.logger.Debug("validation executed",
		"validator", v.opts.name,
		"success", res.Success,
		"messages", len(res.Messages),
	)
	return res, nil
}

// Lazy returns a validator that builds its delegate with factory on every
// Execute call. Useful for child validators that need fresh collaborators.
// Panics if factory is nil.
func Lazy[T any](factory func() Validator[T]) Validator[T] {
	if factory == nil {
		panic(argumentError("factory", "is nil"))
	}
	return ValidatorFunc[T](func(obj T) (Result, error) {
		v := factory()
		if v == nil {
			return Result{}, argumentError("factory result", "is nil")
		}
		return v.Execute(obj)
	})
}

func typeName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

package validation

// Property is the validation handle for one selected property value.
// It is created by the For functions and lives for one rule chain.
type Property[T any] struct {
	value   T
	name    string
	emit    func(Message)
	catalog Catalog
}

func newProperty[T any](value T, name string, emit func(Message), catalog Catalog) *Property[T] {
	if name == "" {
		abort(argumentError("property name", "is empty"))
	}
	if emit == nil {
		abort(argumentError("emit callback", "is nil"))
	}
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Property[T]{
		value:   value,
		name:    name,
		emit:    emit,
		catalog: catalog,
	}
}

// Value returns the selected property value.
func (p *Property[T]) Value() T {
	return p.value
}

// Name returns the declared property name.
func (p *Property[T]) Name() string {
	return p.name
}

// AddMessage records text against the property. It may be called any number
// of times on the same handle.
func (p *Property[T]) AddMessage(text string) {
	msg, err := NewMessage(p.name, text)
	if err != nil {
		abort(err)
	}
	p.emit(msg)
}

// Fail records the catalog message for key.
func (p *Property[T]) Fail(key string, args ...any) {
	p.AddMessage(p.catalog.Message(key, args...))
}

// Must records the catalog message for key when ok returns false.
func (p *Property[T]) Must(ok func(T) bool, key string, args ...any) *Property[T] {
	if ok == nil {
		abort(argumentError("predicate", "is nil"))
	}
	if !ok(p.value) {
		p.Fail(key, args...)
	}
	return p
}

// Combinator is a chainable check. It inspects the property, records at
// most the messages it owns, and returns the same handle.
type Combinator[T any] func(p *Property[T]) *Property[T]

// Apply runs combinators in order.
func (p *Property[T]) Apply(combinators ...Combinator[T]) *Property[T] {
	for _, c := range combinators {
		if c == nil {
			abort(argumentError("combinator", "is nil"))
		}
		c(p)
	}
	return p
}

// IsNull fails when the value is not nil.
func (p *Property[T]) IsNull() *Property[T] {
	if !isNil(p.value) {
		p.Fail(KeyIsNotNull)
	}
	return p
}

// IsNotNull fails when the value is nil. Value kinds never fail.
func (p *Property[T]) IsNotNull() *Property[T] {
	if isNil(p.value) {
		p.Fail(KeyIsNull)
	}
	return p
}

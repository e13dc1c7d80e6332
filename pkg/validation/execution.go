package validation

// Execution is the state of one Execute call: the object under validation
// and the messages recorded so far. It is created per call and must not
// outlive the rule procedure it is passed to.
type Execution[T any] struct {
	object   T
	messages []Message
	catalog  Catalog
}

func newExecution[T any](obj T, catalog Catalog) *Execution[T] {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Execution[T]{
		object:   obj,
		messages: make([]Message, 0),
		catalog:  catalog,
	}
}

// Object returns the object under validation.
func (e *Execution[T]) Object() T {
	return e.object
}

// Catalog returns the catalog combinators render messages with.
func (e *Execution[T]) Catalog() Catalog {
	return e.catalog
}

// Messages returns a copy of the messages recorded so far.
func (e *Execution[T]) Messages() []Message {
	out := make([]Message, len(e.messages))
	copy(out, e.messages)
	return out
}

// AddMessage records a message that does not belong to a single For chain,
// such as an object-level rule.
func (e *Execution[T]) AddMessage(property, text string) {
	msg, err := NewMessage(property, text)
	if err != nil {
		abort(err)
	}
	e.add(msg)
}

func (e *Execution[T]) add(m Message) {
	e.messages = append(e.messages, m)
}

func (e *Execution[T]) run(rules Rules[T]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			cv, ok := r.(contractViolation)
			if !ok {
				panic(r)
			}
			err = cv.err
		}
	}()

	rules(e)
	return nil
}

func checkExecution[T any](e *Execution[T]) {
	if e == nil {
		abort(argumentError("execution", "is nil"))
	}
}

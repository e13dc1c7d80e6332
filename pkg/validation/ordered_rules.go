package validation

// OrderedProperty is the rule chain for a value with a three-way comparison.
type OrderedProperty[V any] struct {
	*Property[V]
	compare func(a, b V) int
}

// IsEqualTo records a message when the value equals other.
//
// The check fires on equality, not on inequality, and the message reads
// "is not equal to". Existing rule sets depend on this behaviour.
func (p *OrderedProperty[V]) IsEqualTo(other V) *OrderedProperty[V] {
	if p.compare(p.value, other) == 0 {
		p.Fail(KeyIsNotEqualTo)
	}
	return p
}

// IsBiggerThen fails when the value is less than min. Equal passes.
func (p *OrderedProperty[V]) IsBiggerThen(min V) *OrderedProperty[V] {
	if p.compare(p.value, min) < 0 {
		p.Fail(KeySmallerThan, min)
	}
	return p
}

// IsSmallerThen fails when the value is greater than max. Equal passes.
func (p *OrderedProperty[V]) IsSmallerThen(max V) *OrderedProperty[V] {
	if p.compare(p.value, max) > 0 {
		p.Fail(KeyBiggerThan, max)
	}
	return p
}

// IsBetween checks the inclusive range [min, max]. Each bound reports on its
// own, so an inverted range may produce two messages.
func (p *OrderedProperty[V]) IsBetween(min, max V) *OrderedProperty[V] {
	return p.IsBiggerThen(min).IsSmallerThen(max)
}

// Must records the catalog message for key when ok returns false.
func (p *OrderedProperty[V]) Must(ok func(V) bool, key string, args ...any) *OrderedProperty[V] {
	p.Property.Must(ok, key, args...)
	return p
}

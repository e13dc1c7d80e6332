package validation

// SliceProperty is the rule chain for a sequence. Size checks skip null
// sequences: a missing collection is not a size violation.
type SliceProperty[E any] struct {
	*Property[[]E]
}

// IsNull fails when the sequence is not null.
func (p *SliceProperty[E]) IsNull() *SliceProperty[E] {
	p.Property.IsNull()
	return p
}

// IsNotNull fails when the sequence is null. An empty sequence passes.
func (p *SliceProperty[E]) IsNotNull() *SliceProperty[E] {
	p.Property.IsNotNull()
	return p
}

// IsBiggerThen fails when the sequence has fewer than min elements.
func (p *SliceProperty[E]) IsBiggerThen(min int) *SliceProperty[E] {
	if p.value != nil && len(p.value) < min {
		p.Fail(KeySmallerThan, min)
	}
	return p
}

// IsSmallerThen fails when the sequence has more than max elements.
func (p *SliceProperty[E]) IsSmallerThen(max int) *SliceProperty[E] {
	if p.value != nil && len(p.value) > max {
		p.Fail(KeyBiggerThan, max)
	}
	return p
}

// IsWithinRange checks the element count against the inclusive range
// [min, max]. Lengths min and max pass; min-1 and max+1 fail once each.
func (p *SliceProperty[E]) IsWithinRange(min, max int) *SliceProperty[E] {
	return p.IsBiggerThen(min).IsSmallerThen(max)
}

// Must records the catalog message for key when ok returns false.
func (p *SliceProperty[E]) Must(ok func([]E) bool, key string, args ...any) *SliceProperty[E] {
	p.Property.Must(ok, key, args...)
	return p
}

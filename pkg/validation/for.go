package validation

import (
	"cmp"
	"iter"
	"slices"
)

// For starts a rule chain for the property picked by selector.
func For[T, TOut any](e *Execution[T], selector func(T) TOut, name string) *Property[TOut] {
	value := selectValue(e, selector, name)
	return newProperty(value, name, e.add, e.catalog)
}

// ForString starts a string rule chain. The value is never null.
func ForString[T any](e *Execution[T], selector func(T) string, name string) *StringProperty {
	value := selectValue(e, selector, name)
	return &StringProperty{Property: newProperty(&value, name, e.add, e.catalog)}
}

// ForStringPtr starts a string rule chain where a nil pointer is null.
func ForStringPtr[T any](e *Execution[T], selector func(T) *string, name string) *StringProperty {
	value := selectValue(e, selector, name)
	return &StringProperty{Property: newProperty(value, name, e.add, e.catalog)}
}

// ForOrdered starts a comparison rule chain for an ordered type.
func ForOrdered[T any, V cmp.Ordered](e *Execution[T], selector func(T) V, name string) *OrderedProperty[V] {
	return ForCompareFunc(e, selector, name, cmp.Compare[V])
}

// Comparer is implemented by types with a three-way comparison, such as
// time.Time.
type Comparer[V any] interface {
	Compare(other V) int
}

// ForComparable starts a comparison rule chain for a type that implements
// Comparer.
func ForComparable[T any, V Comparer[V]](e *Execution[T], selector func(T) V, name string) *OrderedProperty[V] {
	return ForCompareFunc(e, selector, name, func(a, b V) int { return a.Compare(b) })
}

// ForCompareFunc starts a comparison rule chain ordered by compare, which
// returns a negative number, zero or a positive number as a is less than,
// equal to or greater than b.
func ForCompareFunc[T, V any](e *Execution[T], selector func(T) V, name string, compare func(a, b V) int) *OrderedProperty[V] {
	if compare == nil {
		abort(argumentError("compare", "is nil"))
	}
	value := selectValue(e, selector, name)
	return &OrderedProperty[V]{
		Property: newProperty(value, name, e.add, e.catalog),
		compare:  compare,
	}
}

// ForSlice starts a sequence rule chain. A nil slice is null.
func ForSlice[T, E any](e *Execution[T], selector func(T) []E, name string) *SliceProperty[E] {
	value := selectValue(e, selector, name)
	return &SliceProperty[E]{Property: newProperty(value, name, e.add, e.catalog)}
}

// ForSeq starts a sequence rule chain over an iterator. A nil iterator is
// null; otherwise it is drained once to count its elements.
func ForSeq[T, E any](e *Execution[T], selector func(T) iter.Seq[E], name string) *SliceProperty[E] {
	seq := selectValue(e, selector, name)
	var value []E
	if seq != nil {
		value = slices.Collect(seq)
		if value == nil {
			value = []E{}
		}
	}
	return &SliceProperty[E]{Property: newProperty(value, name, e.add, e.catalog)}
}

func selectValue[T, TOut any](e *Execution[T], selector func(T) TOut, name string) TOut {
	checkExecution(e)
	if selector == nil {
		abort(argumentError("selector", "is nil"))
	}
	if name == "" {
		abort(argumentError("property name", "is empty"))
	}
	return selector(e.object)
}

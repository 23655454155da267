package dispatch

import (
	"errors"
	"iter"
)

// MaxArity is the largest fixed-arity collection, [Targets8].
const MaxArity = 8

// Results holds the outcome of dispatching to each member of a collection, in
// member order. A nil slot is a success; a failed slot holds the member's
// own error value, unwrapped and untranslated.
//
// Results for up to [MaxArity] members live entirely in the value. Larger
// [Slice] collections spill the remaining slots to the heap.
type Results struct {
	n     int
	slots [MaxArity]error
	spill []error
}

func makeResults(n int) Results {
	r := Results{n: n}
	if n > MaxArity {
		r.spill = make([]error, n-MaxArity)
	}

	return r
}

func (r *Results) set(i int, err error) {
	if i < MaxArity {
		r.slots[i] = err
	} else {
		r.spill[i-MaxArity] = err
	}
}

// Len returns the number of slots.
func (r Results) Len() int { return r.n }

// Err returns the outcome of member i, or nil if i is out of range.
func (r Results) Err(i int) error {
	switch {
	case i < 0 || i >= r.n:
		return nil
	case i < MaxArity:
		return r.slots[i]
	default:
		return r.spill[i-MaxArity]
	}
}

// OK reports whether every member succeeded.
func (r Results) OK() bool {
	for _, err := range r.Failed() {
		if err != nil {
			return false
		}
	}

	return true
}

// Failed returns an iterator over the index and error of each failed member,
// in member order.
func (r Results) Failed() iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		for i := range r.n {
			if err := r.Err(i); err != nil && !yield(i, err) {
				return
			}
		}
	}
}

// Join returns the failures joined with [errors.Join], or nil if every member
// succeeded.
func (r Results) Join() error {
	var errs []error

	for _, err := range r.Failed() {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

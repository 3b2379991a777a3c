package unchecked

import "iter"

// Unchecked wraps a container so that indexing through it skips bounds
// validation in nobounds builds. The default build still checks every
// access and panics with *BoundsError on violation.
type Unchecked[E any, C Container[E]] struct {
	inner C
}

// Index wraps c for unchecked indexing.
//
// Calling it asserts, on the caller's authority, that every index used
// against the result will be in bounds of c at the time of the access.
// The function itself validates nothing and cannot fail; the obligation
// it transfers is what makes later accesses sound in nobounds builds.
func Index[E any, C Container[E]](c C) Unchecked[E, C] {
	return Unchecked[E, C]{inner: c}
}

// Of wraps a plain slice. Same obligation as Index.
func Of[E any](s []E) Unchecked[E, Slice[E]] {
	return Index[E](Slice[E](s))
}

// Len reports the length of the held container.
func (u Unchecked[E, C]) Len() int { return u.inner.Len() }

// Inner returns the held container. Non-indexing operations go through
// it directly.
func (u Unchecked[E, C]) Inner() C { return u.inner }

// At returns the element at position i.
func (u Unchecked[E, C]) At(i int) E {
	assertPos(i, u.inner.Len())
	return *u.inner.ElemUnchecked(i)
}

// Ptr returns a writable pointer to the element at position i.
func (u Unchecked[E, C]) Ptr(i int) *E {
	assertPos(i, u.inner.Len())
	return u.inner.ElemUnchecked(i)
}

// Set stores v at position i.
func (u Unchecked[E, C]) Set(i int, v E) {
	assertPos(i, u.inner.Len())
	*u.inner.ElemUnchecked(i) = v
}

// Span returns the subsequence [start:end), aliasing the container's
// storage.
func (u Unchecked[E, C]) Span(start, end int) []E {
	assertSpan(start, end, u.inner.Len())
	return u.inner.SpanUnchecked(start, end)
}

// SpanFrom returns [start:Len()).
func (u Unchecked[E, C]) SpanFrom(start int) []E {
	n := u.inner.Len()
	assertSpanFrom(start, n)
	return u.inner.SpanUnchecked(start, n)
}

// SpanTo returns [0:end).
func (u Unchecked[E, C]) SpanTo(end int) []E {
	assertSpanTo(end, u.inner.Len())
	return u.inner.SpanUnchecked(0, end)
}

// Whole returns the full [0:Len()) view. Always valid.
func (u Unchecked[E, C]) Whole() []E {
	return u.inner.SpanUnchecked(0, u.inner.Len())
}

// All iterates the container in position order.
func (u Unchecked[E, C]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i := 0; i < u.inner.Len(); i++ {
			if !yield(i, *u.inner.ElemUnchecked(i)) {
				return
			}
		}
	}
}

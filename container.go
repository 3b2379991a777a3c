package unchecked

import "unsafe"

// Container is the capability surface the wrapper indexes through. Len
// reports the current addressable extent. The *Unchecked methods perform
// the access itself with no bounds check of their own: it is invalid to
// call ElemUnchecked with i outside [0, Len()), or SpanUnchecked with a
// span not satisfying 0 <= start <= end <= Len(). Validation, when
// compiled in, is layered on top by the wrapper, never here.
//
// Implementing this interface is all a new container kind needs; the
// wrapper works against it unchanged.
type Container[E any] interface {
	Len() int

	// ElemUnchecked returns a pointer to element i. i must be valid.
	ElemUnchecked(i int) *E

	// SpanUnchecked returns the subsequence [start:end) aliasing the
	// container's backing storage, never a copy. The span must be valid.
	SpanUnchecked(start, end int) []E
}

// Slice adapts a plain slice to Container. Its unchecked methods use
// pointer arithmetic, so an invalid index addresses whatever memory the
// computation lands on.
type Slice[E any] []E

func (s Slice[E]) Len() int { return len(s) }

func (s Slice[E]) ElemUnchecked(i int) *E {
	var zero E
	return (*E)(unsafe.Add(unsafe.Pointer(unsafe.SliceData([]E(s))), uintptr(i)*unsafe.Sizeof(zero)))
}

func (s Slice[E]) SpanUnchecked(start, end int) []E {
	if end == start {
		return nil
	}
	return unsafe.Slice(s.ElemUnchecked(start), end-start)
}

package unchecked

import "golang.org/x/exp/constraints"

// Free-function access to plain slices, for call sites that index with
// narrow integer types (permutation tables, precomputed offsets) and do
// not want to carry a wrapper around. Gating is the same as the wrapper:
// validated by default, raw under -tags nobounds, and the caller owns
// the in-bounds obligation either way.

// GetUnchecked returns s[i].
func GetUnchecked[E any, K constraints.Integer](s []E, i K) E {
	assertPos(int(i), len(s))
	return *Slice[E](s).ElemUnchecked(int(i))
}

// PtrUnchecked returns a writable pointer to s[i].
func PtrUnchecked[E any, K constraints.Integer](s []E, i K) *E {
	assertPos(int(i), len(s))
	return Slice[E](s).ElemUnchecked(int(i))
}

// SetUnchecked stores v at s[i].
func SetUnchecked[E any, K constraints.Integer](s []E, i K, v E) {
	assertPos(int(i), len(s))
	*Slice[E](s).ElemUnchecked(int(i)) = v
}

// SpanUnchecked returns s[start:end) sharing s's storage.
func SpanUnchecked[E any, K constraints.Integer](s []E, start, end K) []E {
	assertSpan(int(start), int(end), len(s))
	return Slice[E](s).SpanUnchecked(int(start), int(end))
}

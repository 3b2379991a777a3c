//go:build !nobounds

package unchecked

// BoundsChecked reports whether this build validates every index before
// the access. Build with -tags nobounds to compile validation out.
const BoundsChecked = true

func assertPos(i, n int) {
	if !posInBounds(i, n) {
		panic(&BoundsError{Kind: KindPos, Start: i, Len: n})
	}
}

func assertSpan(start, end, n int) {
	if !spanInBounds(start, end, n) {
		panic(&BoundsError{Kind: KindSpan, Start: start, End: end, Len: n})
	}
}

func assertSpanTo(end, n int) {
	if !spanToInBounds(end, n) {
		panic(&BoundsError{Kind: KindSpanTo, End: end, Len: n})
	}
}

func assertSpanFrom(start, n int) {
	if !spanFromInBounds(start, n) {
		panic(&BoundsError{Kind: KindSpanFrom, Start: start, Len: n})
	}
}

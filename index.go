package unchecked

import "fmt"

// Kind names the shape of an index value in diagnostics.
type Kind uint8

const (
	KindPos      Kind = iota // single position
	KindSpan                 // bounded range [start,end)
	KindSpanTo               // open range [0,end)
	KindSpanFrom             // open range [start,len)
	KindFull                 // full range [0,len)
)

func (k Kind) String() string {
	switch k {
	case KindPos:
		return "position"
	case KindSpan:
		return "range"
	case KindSpanTo:
		return "to-open range"
	case KindSpanFrom:
		return "from-open range"
	case KindFull:
		return "full range"
	default:
		return "unknown index kind"
	}
}

// BoundsError is the panic value raised when a bounds check rejects an
// index. It records the attempted index and the container's length at
// the time of the check. It is a programming-error abort, not an error
// meant to be recovered and handled.
type BoundsError struct {
	Kind  Kind
	Start int // the position for KindPos, otherwise the range start
	End   int // the range end; unused for KindPos and KindSpanFrom
	Len   int
}

func (e *BoundsError) Error() string {
	switch e.Kind {
	case KindPos:
		return fmt.Sprintf("unchecked: index %d out of range for length %d", e.Start, e.Len)
	case KindSpanTo:
		return fmt.Sprintf("unchecked: range [:%d) out of range for length %d", e.End, e.Len)
	case KindSpanFrom:
		return fmt.Sprintf("unchecked: range [%d:) out of range for length %d", e.Start, e.Len)
	default:
		return fmt.Sprintf("unchecked: range [%d:%d) out of range for length %d", e.Start, e.End, e.Len)
	}
}

// Per-shape validity rules. The uint conversion rejects a negative value
// with the same comparison that rejects an overlong one. The full range
// has no rule; it is always valid.
func posInBounds(i, n int) bool { return uint(i) < uint(n) }

func spanInBounds(s, e, n int) bool { return uint(s) <= uint(e) && uint(e) <= uint(n) }

func spanToInBounds(e, n int) bool { return uint(e) <= uint(n) }

func spanFromInBounds(s, n int) bool { return uint(s) <= uint(n) }

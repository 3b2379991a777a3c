package unchecked

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillThroughWrapper(t *testing.T) {
	data := make([]int, 8)
	u := Of(data)
	for i := 0; i < u.Len(); i++ {
		u.Set(i, i)
	}
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, data)
}

func TestWritesHitBackingStorage(t *testing.T) {
	data := make([]string, 4)
	func() {
		u := Of(data)
		u.Set(2, "x")
		*u.Ptr(0) = "y"
	}()
	// wrapper discarded; writes must still be visible
	require.Equal(t, []string{"y", "", "x", ""}, data)
}

func TestSpansAliasStorage(t *testing.T) {
	data := []int{1, 2, 3, 4, 5}
	u := Of(data)

	mid := u.Span(1, 4)
	require.Equal(t, []int{2, 3, 4}, mid)
	mid[0] = 20
	assert.Equal(t, 20, data[1])

	assert.Equal(t, []int{20, 3, 4, 5}, u.SpanFrom(1))
	assert.Equal(t, []int{1, 20}, u.SpanTo(2))
	assert.Equal(t, data, u.Whole())

	u.SpanFrom(3)[0] = 40
	assert.Equal(t, 40, data[3])
}

func TestEmptySpans(t *testing.T) {
	u := Of([]int{1, 2, 3})
	assert.Empty(t, u.Span(2, 2))
	assert.Empty(t, u.Span(3, 3))
	assert.Empty(t, u.SpanFrom(3))
	assert.Empty(t, u.SpanTo(0))

	empty := Of([]int(nil))
	assert.Equal(t, 0, empty.Len())
	assert.Empty(t, empty.Whole())
}

func TestRepeatedReadsAreIdempotent(t *testing.T) {
	data := []byte{10, 20, 30}
	u := Of(data)
	for range 3 {
		assert.Equal(t, byte(20), u.At(1))
	}
	require.Equal(t, []byte{10, 20, 30}, data)
}

func TestDelegation(t *testing.T) {
	data := []int{4, 5, 6}
	u := Of(data)
	require.Equal(t, 3, u.Len())
	require.Equal(t, Slice[int](data), u.Inner())

	var sum, count int
	for i, v := range u.All() {
		sum += v
		count += i
	}
	assert.Equal(t, 15, sum)
	assert.Equal(t, 3, count)
}

func TestFreeFunctions(t *testing.T) {
	data := make([]int, 4)
	// narrow index types, as a permutation table would use
	for i := uint8(0); i < 4; i++ {
		SetUnchecked(data, i, int(i)*10)
	}
	require.Equal(t, []int{0, 10, 20, 30}, data)

	assert.Equal(t, 20, GetUnchecked(data, uint16(2)))
	*PtrUnchecked(data, int8(3)) = 7
	assert.Equal(t, 7, data[3])

	span := SpanUnchecked(data, uint32(1), uint32(3))
	require.Equal(t, []int{10, 20}, span)
	span[1] = 9
	assert.Equal(t, 9, data[2])
}

// ring is a fixed-capacity ring buffer. It exists to show a second
// container kind plugging into the wrapper with no wrapper changes.
// Spans must not wrap around the buffer end.
type ring struct {
	buf  []int
	head int
	n    int
}

func (r *ring) Len() int { return r.n }

func (r *ring) ElemUnchecked(i int) *int {
	return &r.buf[(r.head+i)%len(r.buf)]
}

func (r *ring) SpanUnchecked(start, end int) []int {
	lo := (r.head + start) % len(r.buf)
	return r.buf[lo : lo+(end-start)]
}

func TestRingContainer(t *testing.T) {
	r := &ring{buf: []int{30, 99, 10, 20}, head: 2, n: 3}
	u := Index[int](r)

	require.Equal(t, 3, u.Len())
	assert.Equal(t, 10, u.At(0))
	assert.Equal(t, 20, u.At(1))
	assert.Equal(t, 30, u.At(2)) // wraps to buf[0]

	u.Set(2, 31)
	assert.Equal(t, 31, r.buf[0])

	span := u.Span(0, 2)
	require.Equal(t, []int{10, 20}, span)
	span[0] = 11
	assert.Equal(t, 11, u.At(0))
}

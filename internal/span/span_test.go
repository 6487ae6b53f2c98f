package span_test

import (
	"testing"

	"github.com/mattfbacon/sneturfahi/internal/span"
	"github.com/stretchr/testify/assert"
)

func TestFromSlice(t *testing.T) {
	s := span.FromSlice("mi prami do")
	assert.Equal(t, span.Location(0), s.Start)
	assert.Equal(t, span.Location(11), s.End)
}

func TestFromEmbeddedSlice(t *testing.T) {
	outer := "mi prami do"
	embedded := outer[3:9]
	s := span.FromEmbeddedSlice(outer, embedded)
	assert.Equal(t, span.Span{Start: 3, End: 9}, s)
	assert.Equal(t, "prami", outer[s.Start:s.Start+5])
}

func TestContainsAndOverlaps(t *testing.T) {
	outer := span.Span{Start: 0, End: 10}
	inner := span.Span{Start: 2, End: 5}
	assert.True(t, outer.Contains(inner))
	assert.False(t, inner.Contains(outer))

	disjoint := span.Span{Start: 10, End: 15}
	assert.False(t, outer.OverlapsWith(disjoint))

	touching := span.Span{Start: 9, End: 12}
	assert.True(t, outer.OverlapsWith(touching))
}

func TestContainsLocation(t *testing.T) {
	s := span.Span{Start: 2, End: 5}
	assert.True(t, s.ContainsLocation(2))
	assert.True(t, s.ContainsLocation(4))
	assert.False(t, s.ContainsLocation(5))
	assert.False(t, s.ContainsLocation(1))
}

func TestSliceOutOfBoundsReturnsFalse(t *testing.T) {
	text := "mi"
	s := span.Span{Start: 0, End: 5}
	_, ok := s.Slice(text)
	assert.False(t, ok)
}

func TestSliceBeforeAfterBetween(t *testing.T) {
	text := "minajimpe"
	full := span.FromSlice(text)
	before := full.SliceBefore(2)
	after := full.SliceAfter(2)
	beforeText, ok := before.Slice(text)
	assert.True(t, ok)
	assert.Equal(t, "mi", beforeText)
	afterText, ok := after.Slice(text)
	assert.True(t, ok)
	assert.Equal(t, "najimpe", afterText)

	a := span.Span{Start: 0, End: 2}
	b := span.Span{Start: 5, End: 9}
	gap := a.Between(b)
	assert.Equal(t, span.Span{Start: 2, End: 5}, gap)
}

func TestCompareTotalOrder(t *testing.T) {
	a := span.Span{Start: 0, End: 2}
	b := span.Span{Start: 0, End: 3}
	c := span.Span{Start: 1, End: 1}

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, -1, a.Compare(c))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, span.Span{Start: 4, End: 4}.IsEmpty())
	assert.False(t, span.Span{Start: 4, End: 5}.IsEmpty())
}

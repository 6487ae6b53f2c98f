// Package span provides the byte-offset position type threaded through the
// decomposer, lexer, and parser stages of the pipeline.
package span

import "fmt"

// Location is a byte offset into some source text.
type Location = uint32

// Span identifies a half-open byte range [Start, End) of some source text.
// A Span carries no reference to the text it was taken from; callers supply
// the text again when slicing.
type Span struct {
	Start Location
	End   Location
}

// FromSlice returns the span covering the whole of text.
func FromSlice(text string) Span {
	return Span{Start: 0, End: Location(len(text))}
}

// FromEmbeddedSlice computes the span of embedded within outer, given that
// embedded's bytes are a substring of outer's bytes at the same address.
// It panics if embedded does not lie within outer.
func FromEmbeddedSlice(outer, embedded string) Span {
	outerStart := sliceHeaderData(outer)
	innerStart := sliceHeaderData(embedded)
	if innerStart < outerStart {
		panic("span: embedded slice starts before outer slice")
	}
	start := innerStart - outerStart
	end := start + uint(len(embedded))
	if end > uint(len(outer)) {
		panic("span: embedded slice extends past outer slice")
	}
	return Span{Start: Location(start), End: Location(end)}
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return int(s.End - s.Start)
}

// IsEmpty reports whether the span covers zero bytes.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Contains reports whether other lies entirely within s.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// ContainsLocation reports whether loc falls inside s, including its start
// but excluding its end, matching the half-open range s identifies.
func (s Span) ContainsLocation(loc Location) bool {
	return s.Start <= loc && loc < s.End
}

// OverlapsWith reports whether s and other share at least one byte.
func (s Span) OverlapsWith(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

// SliceBefore returns the span from s.Start up to (not including) cut.
// cut must lie within [s.Start, s.End].
func (s Span) SliceBefore(cut Location) Span {
	return Span{Start: s.Start, End: cut}
}

// SliceAfter returns the span from cut up to s.End.
// cut must lie within [s.Start, s.End].
func (s Span) SliceAfter(cut Location) Span {
	return Span{Start: cut, End: s.End}
}

// Between returns the span strictly between s and other, i.e. the gap
// separating them. It assumes s ends at or before other begins.
func (s Span) Between(other Span) Span {
	return Span{Start: s.End, End: other.Start}
}

// Slice extracts the substring of text that s identifies. It returns
// ok=false instead of panicking if s's bounds fall outside text, since spans
// read back from a cache may no longer match the source they're applied to.
func (s Span) Slice(text string) (string, bool) {
	if s.Start > s.End || int(s.End) > len(text) {
		return "", false
	}
	return text[s.Start:s.End], true
}

// Compare orders spans first by Start, then by End, giving a total order
// suitable for sorting or use as a map/tree key component.
func (s Span) Compare(other Span) int {
	if s.Start != other.Start {
		if s.Start < other.Start {
			return -1
		}
		return 1
	}
	switch {
	case s.End < other.End:
		return -1
	case s.End > other.End:
		return 1
	default:
		return 0
	}
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

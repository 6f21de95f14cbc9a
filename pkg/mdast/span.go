package mdast

// Span is a 0-based, half-open range of line indices [Start, End).
type Span struct {
	Start int
	End   int
}

// Len returns the number of lines in the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty returns true if the span covers no lines.
func (s Span) IsEmpty() bool {
	return s.End <= s.Start
}

// Union returns the smallest span covering both s and other.
// An empty span is the identity.
func (s Span) Union(other Span) Span {
	if s.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return s
	}
	return Span{Start: min(s.Start, other.Start), End: max(s.End, other.End)}
}

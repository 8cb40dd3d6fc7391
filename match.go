package rgrep

// Match represents the first occurrence of a pattern in a line.
// Start and End are byte offsets into the original, unfolded line text, so
// Text[Start:End] is always the matched region as it appeared in the source.
type Match struct {
	Start int
	End   int
}

// Len returns the length of the matched region in bytes.
func (m Match) Len() int {
	return m.End - m.Start
}

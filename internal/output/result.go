// Package output renders search outcomes for the terminal or as JSON Lines.
package output

import "github.com/dl/docsearch/internal/matcher"

// Result is one search outcome in the shape the formatters need. Offsets
// and columns are in characters; Line is 0-based.
type Result struct {
	Path  string
	Query matcher.Query
	Seq   int // 1-based position in a run of repeated searches

	Found   bool
	Start   int
	End     int
	Wrapped bool

	// Line holds the match start. LineText is that line without its newline;
	// MatchStart and MatchEnd are columns within it, MatchEnd clamped to the
	// line end for a match that spans lines.
	Line       int
	Column     int // horizontal scroll target
	LineText   string
	MatchStart int
	MatchEnd   int

	// Viewport after the scroll was applied.
	Left  int
	Width int
}

// Formatter appends the rendering of r to buf and returns it. Callers may
// pass buf[:0] to reuse the backing array.
type Formatter interface {
	Format(buf []byte, r Result) []byte
}

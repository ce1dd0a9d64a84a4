// Package search finds the next match of a compiled pattern in a document
// and works out how to reveal it.
//
// The engine is stateless. Offsets are in characters (runes); patterns work
// on bytes, so every call maps between the two.
package search

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/dl/docsearch/internal/document"
	"github.com/dl/docsearch/internal/matcher"
)

// ErrInvalidOffset is returned when a start offset lies outside the text.
var ErrInvalidOffset = errors.New("start offset out of range")

// Match is a located occurrence. End is exclusive.
type Match struct {
	Start   int
	End     int
	Wrapped bool // found by the rescan from the start of the text
}

// Len returns the matched length in characters.
func (m Match) Len() int { return m.End - m.Start }

// FindNext returns the first match of p in text that starts at or after
// start. When nothing matches there and wrap is set, the whole text is
// scanned again from offset 0. A miss is reported as ok == false, not as an
// error.
//
// The scan treats start as the beginning of the text, so ^ and \A can match
// there even in the middle of a line.
func FindNext(p matcher.Pattern, text string, start int, wrap bool) (Match, bool, error) {
	from, ok := byteOffset(text, start)
	if !ok {
		return Match{}, false, fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidOffset, start, utf8.RuneCountInString(text))
	}

	if s, e, ok := p.FindString(text[from:]); ok {
		return newMatch(text, start, from, from+s, from+e, false), true, nil
	}

	// From offset 0 the rescan would repeat the primary scan exactly.
	if !wrap || start == 0 {
		return Match{}, false, nil
	}

	if s, e, ok := p.FindString(text); ok {
		return newMatch(text, 0, 0, s, e, true), true, nil
	}
	return Match{}, false, nil
}

// newMatch converts byte offsets s and e into character offsets, counting
// from a known position (originRune at originByte) so only the gap is walked.
func newMatch(text string, originRune, originByte, s, e int, wrapped bool) Match {
	start := originRune + utf8.RuneCountInString(text[originByte:s])
	end := start + utf8.RuneCountInString(text[s:e])
	return Match{Start: start, End: end, Wrapped: wrapped}
}

// byteOffset returns the byte index of the rune at offset, or len(text) when
// offset equals the rune count. ok is false for offsets outside that range.
func byteOffset(text string, offset int) (int, bool) {
	if offset < 0 {
		return 0, false
	}
	n := 0
	for i := range text {
		if n == offset {
			return i, true
		}
		n++
	}
	if n == offset {
		return len(text), true
	}
	return 0, false
}

// ScrollTarget is the line and horizontal offset that reveal a match.
type ScrollTarget struct {
	Line   int
	Column int
}

// Reveal computes where to scroll to show m. When the match starts left of
// the visible area the target is its first column; otherwise it is the
// column just past its end, so the view moves only as far as needed.
func Reveal(lines document.Lines, visibleLeft int, m Match) ScrollTarget {
	line := lines.LineAtOffset(m.Start)
	lineStart := lines.OffsetAtLine(line)
	col := m.Start - lineStart
	if col < visibleLeft {
		return ScrollTarget{Line: line, Column: col}
	}
	return ScrollTarget{Line: line, Column: m.End - lineStart}
}

// Apply selects m in doc with the cursor at its end, scrolls it into view
// and returns the scroll target used.
func Apply(doc document.Document, m Match) ScrollTarget {
	target := Reveal(doc, doc.SmallestVisibleHorizontalIndex(), m)
	doc.SetSelectionRange(m.End, m.Start)
	doc.ScrollToLine(target.Line)
	doc.ScrollToHorizontalOffset(target.Column)
	return target
}

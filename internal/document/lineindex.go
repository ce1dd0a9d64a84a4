package document

import "sort"

// lineIndex records the rune offset at which every line starts.
// starts[0] is always 0; a trailing newline opens an empty final line.
type lineIndex struct {
	starts []int
	length int // total runes
}

func newLineIndex(runes []rune) lineIndex {
	starts := make([]int, 1, 1+len(runes)/32)
	for i, r := range runes {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return lineIndex{starts: starts, length: len(runes)}
}

// count returns the number of lines. Never less than 1.
func (ix lineIndex) count() int {
	return len(ix.starts)
}

// lineAt returns the line containing offset. Offsets are clamped to [0, length].
func (ix lineIndex) lineAt(offset int) int {
	offset = clamp(offset, 0, ix.length)
	// First start strictly greater than offset, minus one.
	return sort.SearchInts(ix.starts, offset+1) - 1
}

// offsetAt returns the first offset of line. Lines are clamped to the valid range.
func (ix lineIndex) offsetAt(line int) int {
	return ix.starts[clamp(line, 0, len(ix.starts)-1)]
}

// lineEnd returns the offset of the newline ending line, or length for the last line.
func (ix lineIndex) lineEnd(line int) int {
	line = clamp(line, 0, len(ix.starts)-1)
	if line+1 < len(ix.starts) {
		return ix.starts[line+1] - 1
	}
	return ix.length
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Package document defines the buffer capabilities the search core consumes
// and an in-memory Buffer implementing them.
//
// All offsets are in characters (runes), 0-based. Lines are 0-based.
package document

// Content exposes the full text of a document.
type Content interface {
	Text() string
}

// Cursor exposes the cursor and selection. A selection spans from the cursor
// to the selection start offset, which may lie on either side of the cursor.
type Cursor interface {
	CursorOffset() int
	// SetCursorOffset moves the cursor and collapses any selection.
	SetCursorOffset(offset int)
	HasSelection() bool
	SelectionStartOffset() int
	SelectedText() string
	// SetSelectionRange puts the cursor at cursor and the other end of the
	// selection at selectionStart. Equal offsets clear the selection.
	SetSelectionRange(cursor, selectionStart int)
}

// Lines maps between character offsets and line numbers.
type Lines interface {
	LineAtOffset(offset int) int
	OffsetAtLine(line int) int
}

// View exposes the scroll position of whatever displays the document.
type View interface {
	// SmallestVisibleHorizontalIndex is the leftmost visible column.
	SmallestVisibleHorizontalIndex() int
	ScrollToLine(line int)
	ScrollToHorizontalOffset(offset int)
}

// Document is the full capability set.
type Document interface {
	Content
	Cursor
	Lines
	View
}

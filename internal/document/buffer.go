package document

// Default viewport size in cells.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Buffer is an in-memory Document. Text is immutable after construction;
// only the cursor, selection and viewport change.
//
// Buffer is not safe for concurrent use.
type Buffer struct {
	text   string
	byteAt []int // byte offset of each rune, plus len(text)
	lines  lineIndex

	cursor   int
	selStart int // equals cursor when there is no selection

	// Viewport: first visible line and column, size in cells.
	topLine int
	leftCol int
	width   int
	height  int
}

// Option configures a Buffer.
type Option func(*Buffer)

// WithViewport sets the viewport size. Values below 1 are raised to 1.
func WithViewport(width, height int) Option {
	return func(b *Buffer) {
		b.width = max(width, 1)
		b.height = max(height, 1)
	}
}

// WithCursor places the cursor, clamped to the text.
func WithCursor(offset int) Option {
	return func(b *Buffer) {
		b.cursor = clamp(offset, 0, b.Len())
		b.selStart = b.cursor
	}
}

// WithScroll sets the initial first visible line and column.
func WithScroll(topLine, leftCol int) Option {
	return func(b *Buffer) {
		b.topLine = max(topLine, 0)
		b.leftCol = max(leftCol, 0)
	}
}

// NewBuffer creates a Buffer holding text.
func NewBuffer(text string, opts ...Option) *Buffer {
	runes := []rune(text)
	byteAt := make([]int, 0, len(runes)+1)
	for i := range text {
		byteAt = append(byteAt, i)
	}
	byteAt = append(byteAt, len(text))
	b := &Buffer{
		text:   text,
		byteAt: byteAt,
		lines:  newLineIndex(runes),
		width:  DefaultWidth,
		height: DefaultHeight,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Text returns the full text.
func (b *Buffer) Text() string { return b.text }

// Len returns the text length in characters.
func (b *Buffer) Len() int { return len(b.byteAt) - 1 }

// LineCount returns the number of lines, at least 1.
func (b *Buffer) LineCount() int { return b.lines.count() }

// Line returns the text of line without its trailing newline.
func (b *Buffer) Line(line int) string {
	return b.Slice(b.lines.offsetAt(line), b.lines.lineEnd(line))
}

// Slice returns the characters in [start, end), clamped to the text. Bytes
// that are not valid UTF-8 are returned unchanged.
func (b *Buffer) Slice(start, end int) string {
	start = clamp(start, 0, b.Len())
	end = clamp(end, start, b.Len())
	return b.text[b.byteAt[start]:b.byteAt[end]]
}

func (b *Buffer) CursorOffset() int { return b.cursor }

func (b *Buffer) SetCursorOffset(offset int) {
	b.cursor = clamp(offset, 0, b.Len())
	b.selStart = b.cursor
}

func (b *Buffer) HasSelection() bool { return b.selStart != b.cursor }

func (b *Buffer) SelectionStartOffset() int { return b.selStart }

func (b *Buffer) SelectedText() string {
	return b.Slice(min(b.cursor, b.selStart), max(b.cursor, b.selStart))
}

func (b *Buffer) SetSelectionRange(cursor, selectionStart int) {
	b.cursor = clamp(cursor, 0, b.Len())
	b.selStart = clamp(selectionStart, 0, b.Len())
}

func (b *Buffer) LineAtOffset(offset int) int { return b.lines.lineAt(offset) }

func (b *Buffer) OffsetAtLine(line int) int { return b.lines.offsetAt(line) }

// TopLine returns the first visible line.
func (b *Buffer) TopLine() int { return b.topLine }

// Width returns the viewport width in cells.
func (b *Buffer) Width() int { return b.width }

// Height returns the viewport height in lines.
func (b *Buffer) Height() int { return b.height }

func (b *Buffer) SmallestVisibleHorizontalIndex() int { return b.leftCol }

// ScrollToLine scrolls the minimum amount needed to make line visible.
func (b *Buffer) ScrollToLine(line int) {
	line = clamp(line, 0, b.lines.count()-1)
	switch {
	case line < b.topLine:
		b.topLine = line
	case line >= b.topLine+b.height:
		b.topLine = line - b.height + 1
	}
}

// ScrollToHorizontalOffset scrolls the minimum amount needed to bring column
// offset to the viewport edge. An offset equal to the right edge is visible
// as the end of a range.
func (b *Buffer) ScrollToHorizontalOffset(offset int) {
	offset = max(offset, 0)
	switch {
	case offset < b.leftCol:
		b.leftCol = offset
	case offset > b.leftCol+b.width:
		b.leftCol = offset - b.width
	}
}

var _ Document = (*Buffer)(nil)

package output

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TextFormatter renders a result as one line:
//
//	path:line:column: [wrapped] visible part of the line
//
// The line is cut to the viewport after scrolling and clipped to its width
// in terminal cells, with the match highlighted when colors are on.
type TextFormatter struct {
	styles Styles
	color  bool
}

// NewTextFormatter creates a TextFormatter. A nil styles disables color.
func NewTextFormatter(styles *Styles) *TextFormatter {
	if styles == nil {
		return &TextFormatter{}
	}
	return &TextFormatter{styles: *styles, color: true}
}

func (f *TextFormatter) Format(buf []byte, r Result) []byte {
	buf = f.paint(buf, f.styles.Path, r.Path)
	buf = f.paint(buf, f.styles.Separator, ":")

	if !r.Found {
		buf = append(buf, " no match for "...)
		buf = strconv.AppendQuote(buf, r.Query.Text)
		return append(buf, '\n')
	}

	buf = f.paint(buf, f.styles.Position, strconv.Itoa(r.Line+1))
	buf = f.paint(buf, f.styles.Separator, ":")
	buf = f.paint(buf, f.styles.Position, strconv.Itoa(r.MatchStart+1))
	buf = f.paint(buf, f.styles.Separator, ":")
	buf = append(buf, ' ')
	if r.Wrapped {
		buf = f.paint(buf, f.styles.Notice, "[wrapped]")
		buf = append(buf, ' ')
	}
	buf = f.appendVisible(buf, r)
	return append(buf, '\n')
}

// appendVisible writes the part of the match line inside the viewport.
func (f *TextFormatter) appendVisible(buf []byte, r Result) []byte {
	runes := []rune(r.LineText)
	left := min(max(r.Left, 0), len(runes))

	end := left
	for cells := 0; end < len(runes); end++ {
		w := cellWidth(runes[end])
		if r.Width > 0 && cells+w > r.Width {
			break
		}
		cells += w
	}

	ms := min(max(r.MatchStart, left), end)
	me := min(max(r.MatchEnd, ms), end)
	buf = appendCells(buf, runes[left:ms])
	buf = f.paint(buf, f.styles.Match, string(appendCells(nil, runes[ms:me])))
	return appendCells(buf, runes[me:end])
}

func (f *TextFormatter) paint(buf []byte, style lipgloss.Style, s string) []byte {
	if !f.color || s == "" {
		return append(buf, s...)
	}
	return append(buf, style.Render(s)...)
}

// Tabs render as a single space.
func cellWidth(r rune) int {
	if r == '\t' {
		return 1
	}
	return runewidth.RuneWidth(r)
}

func appendCells(buf []byte, runes []rune) []byte {
	for _, r := range runes {
		if r == '\t' {
			r = ' '
		}
		buf = append(buf, string(r)...)
	}
	return buf
}

var _ Formatter = (*TextFormatter)(nil)

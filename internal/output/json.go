package output

import (
	"github.com/goccy/go-json"
)

// JSONFormatter formats results as JSON Lines, one object per search.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

type jsonResult struct {
	Type      string `json:"type"`
	Seq       int    `json:"seq"`
	Path      string `json:"path"`
	Query     string `json:"query"`
	Regex     bool   `json:"regex"`
	MatchCase bool   `json:"match_case"`

	Start        *int   `json:"start,omitempty"`
	End          *int   `json:"end,omitempty"`
	Wrapped      bool   `json:"wrapped,omitempty"`
	LineNumber   int    `json:"line_number,omitempty"`
	Column       int    `json:"column,omitempty"`
	Text         string `json:"text,omitempty"`
	ScrollLeft   *int   `json:"scroll_left,omitempty"`
	ScrollColumn *int   `json:"scroll_column,omitempty"`
}

func (f *JSONFormatter) Format(buf []byte, r Result) []byte {
	jr := jsonResult{
		Type:      "miss",
		Seq:       r.Seq,
		Path:      r.Path,
		Query:     r.Query.Text,
		Regex:     r.Query.IsRegex,
		MatchCase: r.Query.MatchCase,
	}
	if r.Found {
		jr.Type = "match"
		jr.Start = &r.Start
		jr.End = &r.End
		jr.Wrapped = r.Wrapped
		jr.LineNumber = r.Line + 1
		jr.Column = r.MatchStart + 1
		jr.Text = r.LineText
		jr.ScrollLeft = &r.Left
		jr.ScrollColumn = &r.Column
	}
	data, _ := json.Marshal(jr)
	buf = append(buf, data...)
	return append(buf, '\n')
}

var _ Formatter = (*JSONFormatter)(nil)

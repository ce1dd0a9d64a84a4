// Package session runs searches against a document on behalf of a UI and
// keeps the shared State holding the previous query current.
package session

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/dl/docsearch/internal/document"
	"github.com/dl/docsearch/internal/matcher"
	"github.com/dl/docsearch/internal/search"
)

// ErrPromptClosed is returned by prompt operations when no prompt is open.
var ErrPromptClosed = errors.New("search prompt is not open")

// Phase is the session's position in the search state machine.
type Phase int

const (
	Idle          Phase = iota // no prompt, no search running
	AwaitingQuery              // prompt open, waiting for input
	Searching                  // a search is running
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case AwaitingQuery:
		return "awaiting-query"
	case Searching:
		return "searching"
	default:
		return "unknown"
	}
}

// Outcome is the result of one search. When Found is false no selection or
// scroll was applied, though the cursor may have moved to the anchor.
type Outcome struct {
	Found   bool
	Start   int
	End     int
	Wrapped bool
	Scroll  search.ScrollTarget
}

// Session searches one document. It is not safe for concurrent use; the
// State it shares may be.
type Session struct {
	doc    document.Document
	state  *State
	engine matcher.Engine
	wrap   bool
	logger *log.Logger

	phase      Phase
	promptOpen bool
	prompt     matcher.Query // what the open prompt currently shows

	anchor    int
	hasAnchor bool
}

// Option configures a Session.
type Option func(*Session)

// WithEngine selects the regex engine. The default is RE2.
func WithEngine(e matcher.Engine) Option {
	return func(s *Session) { s.engine = e }
}

// WithWrap controls whether searches wrap to the start of the document.
// The default is true.
func WithWrap(wrap bool) Option {
	return func(s *Session) { s.wrap = wrap }
}

// WithLogger sets the logger searches are reported to at debug level.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Session over doc. A nil state uses Shared().
func New(doc document.Document, state *State, opts ...Option) *Session {
	if state == nil {
		state = Shared()
	}
	s := &Session{
		doc:    doc,
		state:  state,
		engine: matcher.EngineRE2,
		wrap:   true,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Prompt returns the query the open prompt shows.
func (s *Session) Prompt() matcher.Query { return s.prompt }

// Search stores q in the shared state and finds its next occurrence from the
// anchor resolved from the cursor and selection. A PatternError leaves the
// document and the state untouched.
func (s *Session) Search(q matcher.Query, wrap bool) (Outcome, error) {
	if q.Text == "" {
		s.state.SetPrevious(q)
		return Outcome{}, nil
	}
	p, err := matcher.Compile(q, s.engine)
	if err != nil {
		return Outcome{}, err
	}
	s.state.SetPrevious(q)
	return s.run(p, s.resolveAnchor(), wrap)
}

// RepeatLastSearch searches for the stored query from the cursor.
func (s *Session) RepeatLastSearch() (Outcome, error) {
	q := s.state.Previous()
	if q.Text == "" {
		return Outcome{}, nil
	}
	p, err := matcher.Compile(q, s.engine)
	if err != nil {
		return Outcome{}, err
	}
	return s.run(p, s.doc.CursorOffset(), s.wrap)
}

// UpdateFlags stores new flags and, when a query is stored, searches again
// from the same anchor.
func (s *Session) UpdateFlags(isRegex, matchCase bool) (Outcome, error) {
	s.state.SetFlags(isRegex, matchCase)
	q := s.state.Previous()
	if q.Text == "" {
		return Outcome{}, nil
	}
	p, err := matcher.Compile(q, s.engine)
	if err != nil {
		return Outcome{}, err
	}
	return s.run(p, s.resolveAnchor(), s.wrap)
}

// Open shows the prompt. It is seeded with the selected text when there is
// a selection, otherwise with the stored query; flags come from the state.
func (s *Session) Open() matcher.Query {
	q := s.state.Previous()
	if s.doc.HasSelection() {
		q.Text = s.doc.SelectedText()
	}
	s.prompt = q
	s.promptOpen = true
	s.hasAnchor = false
	s.phase = AwaitingQuery
	return q
}

// Edit replaces the prompt text and searches incrementally from the anchor.
func (s *Session) Edit(text string) (Outcome, error) {
	if !s.promptOpen {
		return Outcome{}, ErrPromptClosed
	}
	s.prompt.Text = text
	return s.Search(s.prompt, s.wrap)
}

// Submit finds the next occurrence after the current match: the anchor is
// dropped and the selection collapsed so the search starts at the cursor.
func (s *Session) Submit() (Outcome, error) {
	if !s.promptOpen {
		return Outcome{}, ErrPromptClosed
	}
	s.hasAnchor = false
	cursor := s.doc.CursorOffset()
	s.doc.SetSelectionRange(cursor, cursor)

	s.state.SetPrevious(s.prompt)
	if s.prompt.Text == "" {
		return Outcome{}, nil
	}
	p, err := matcher.Compile(s.prompt, s.engine)
	if err != nil {
		return Outcome{}, err
	}
	return s.run(p, cursor, s.wrap)
}

// ToggleRegex sets the prompt's regex flag and searches again if the prompt
// holds a query.
func (s *Session) ToggleRegex(isRegex bool) (Outcome, error) {
	if !s.promptOpen {
		return Outcome{}, ErrPromptClosed
	}
	s.prompt.IsRegex = isRegex
	return s.retoggle()
}

// ToggleMatchCase sets the prompt's match-case flag and searches again if
// the prompt holds a query.
func (s *Session) ToggleMatchCase(matchCase bool) (Outcome, error) {
	if !s.promptOpen {
		return Outcome{}, ErrPromptClosed
	}
	s.prompt.MatchCase = matchCase
	return s.retoggle()
}

func (s *Session) retoggle() (Outcome, error) {
	s.state.SetFlags(s.prompt.IsRegex, s.prompt.MatchCase)
	if s.prompt.Text == "" {
		return Outcome{}, nil
	}
	return s.Search(s.prompt, s.wrap)
}

// Close hides the prompt and forgets the anchor.
func (s *Session) Close() {
	s.promptOpen = false
	s.hasAnchor = false
	s.phase = Idle
}

// resolveAnchor updates the recorded anchor and moves the cursor to it.
func (s *Session) resolveAnchor() int {
	cursor := s.doc.CursorOffset()
	var sel *Selection
	if s.doc.HasSelection() {
		sel = &Selection{
			Start:  s.doc.SelectionStartOffset(),
			Length: len([]rune(s.doc.SelectedText())),
		}
	}
	var prev *int
	if s.hasAnchor {
		prev = &s.anchor
	}
	s.anchor = ResolveStartOffset(cursor, sel, prev)
	s.hasAnchor = true
	s.doc.SetCursorOffset(s.anchor)
	return s.anchor
}

func (s *Session) run(p matcher.Pattern, start int, wrap bool) (Outcome, error) {
	defer p.Close()

	s.phase = Searching
	defer func() {
		if s.promptOpen {
			s.phase = AwaitingQuery
		} else {
			s.phase = Idle
		}
	}()

	m, ok, err := search.FindNext(p, s.doc.Text(), start, wrap)
	if err != nil {
		return Outcome{}, err
	}
	if !ok {
		s.logger.Debug("no match", "pattern", p.String(), "start", start, "wrap", wrap)
		return Outcome{}, nil
	}

	target := search.Apply(s.doc, m)
	s.logger.Debug("match", "pattern", p.String(), "start", m.Start, "end", m.End, "wrapped", m.Wrapped, "line", target.Line)
	return Outcome{
		Found:   true,
		Start:   m.Start,
		End:     m.End,
		Wrapped: m.Wrapped,
		Scroll:  target,
	}, nil
}

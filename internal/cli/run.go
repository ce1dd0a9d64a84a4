package cli

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/dl/docsearch/internal/document"
	"github.com/dl/docsearch/internal/input"
	"github.com/dl/docsearch/internal/matcher"
	"github.com/dl/docsearch/internal/output"
	"github.com/dl/docsearch/internal/session"
)

// Exit codes.
const (
	ExitFound    = 0
	ExitNotFound = 1
	ExitError    = 2
)

// Streams are the standard streams a command reads and writes.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process streams, with stdout behind a writev Writer.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: output.NewWriter(), Err: os.Stderr}
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{Level: level})
}

// Run executes the searches cfg describes and prints one line per outcome.
// Returns exit code: 0 = match found, 1 = no match, 2 = error.
func Run(cfg Config, s Streams) int {
	logger := newLogger(s.Err, cfg.Verbose)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid arguments", "err", err)
		return ExitError
	}

	state := session.NewState()
	if cfg.StatePath != "" {
		if err := LoadState(cfg.StatePath, state); err != nil {
			logger.Warn("ignoring saved state", "err", err)
		}
	}
	if cfg.Repeat && state.Previous().Text == "" {
		logger.Error("no previous search to repeat")
		return ExitError
	}

	text, err := input.Load(input.For(cfg.Path, cfg.MmapThreshold, s.In), cfg.Path)
	if err != nil {
		logger.Error("cannot load document", "err", err)
		return ExitError
	}

	doc := document.NewBuffer(text,
		document.WithViewport(cfg.Width, cfg.Height),
		document.WithCursor(cfg.Cursor),
	)
	if cfg.SelectFrom >= 0 {
		doc.SetSelectionRange(doc.CursorOffset(), cfg.SelectFrom)
	}
	logger.Debug("document loaded", "path", cfg.Path, "chars", doc.Len(), "lines", doc.LineCount())

	sess := session.New(doc, state,
		session.WithEngine(cfg.engine()),
		session.WithWrap(!cfg.NoWrap),
		session.WithLogger(logger),
	)

	q := cfg.query()
	if !cfg.Repeat && q.Text == "" {
		q.Text = doc.SelectedText()
	}

	formatter := newFormatter(cfg, s.Out)
	bufs := make([][]byte, 0, cfg.Count)
	found := false
	for i := range cfg.Count {
		var out session.Outcome
		if i == 0 && !cfg.Repeat {
			out, err = sess.Search(q, !cfg.NoWrap)
		} else {
			out, err = sess.RepeatLastSearch()
		}
		if err != nil {
			var perr *matcher.PatternError
			if errors.As(err, &perr) {
				logger.Error("invalid pattern", "pattern", perr.Pattern, "engine", perr.Engine, "err", perr.Err)
			} else {
				logger.Error("search failed", "err", err)
			}
			return ExitError
		}

		bufs = append(bufs, formatter.Format(nil, resultFor(cfg.Path, i+1, state.Previous(), doc, out)))
		if !out.Found {
			break
		}
		found = true
	}

	if err := writeAll(s.Out, bufs); err != nil {
		logger.Error("write failed", "err", err)
		return ExitError
	}

	if cfg.StatePath != "" {
		if err := SaveState(cfg.StatePath, state); err != nil {
			logger.Warn("cannot save state", "err", err)
		}
	}

	if found {
		return ExitFound
	}
	return ExitNotFound
}

// RunState prints the stored query as TOML, or removes it when clear is set.
func RunState(statePath string, clear, verbose bool, s Streams) int {
	logger := newLogger(s.Err, verbose)

	if clear {
		if err := ClearState(statePath); err != nil {
			logger.Error("cannot clear state", "err", err)
			return ExitError
		}
		logger.Debug("state cleared", "path", statePath)
		return ExitFound
	}

	state := session.NewState()
	if err := LoadState(statePath, state); err != nil {
		logger.Error("cannot read state", "err", err)
		return ExitError
	}
	prev := state.Previous()
	data, err := marshalStored(prev)
	if err != nil {
		logger.Error("cannot encode state", "err", err)
		return ExitError
	}
	if err := writeAll(s.Out, [][]byte{data}); err != nil {
		logger.Error("write failed", "err", err)
		return ExitError
	}
	if prev.Text == "" {
		return ExitNotFound
	}
	return ExitFound
}

func newFormatter(cfg Config, w io.Writer) output.Formatter {
	if cfg.JSONOutput {
		return output.NewJSONFormatter()
	}

	useColor := false
	switch cfg.Color {
	case ColorAlways:
		useColor = true
	case ColorNever:
		useColor = false
	case ColorAuto:
		if f, ok := w.(interface{ Fd() uintptr }); ok {
			useColor = output.IsTerminal(f.Fd())
		}
	}
	if !useColor {
		return output.NewTextFormatter(nil)
	}
	styles := output.NewStyles(output.NewRenderer(w, true))
	return output.NewTextFormatter(&styles)
}

func resultFor(path string, seq int, q matcher.Query, doc *document.Buffer, out session.Outcome) output.Result {
	r := output.Result{
		Path:    path,
		Query:   q,
		Seq:     seq,
		Found:   out.Found,
		Start:   out.Start,
		End:     out.End,
		Wrapped: out.Wrapped,
		Left:    doc.SmallestVisibleHorizontalIndex(),
		Width:   doc.Width(),
	}
	if !out.Found {
		return r
	}
	line := doc.LineAtOffset(out.Start)
	lineStart := doc.OffsetAtLine(line)
	r.Line = line
	r.Column = out.Scroll.Column
	r.LineText = doc.Line(line)
	r.MatchStart = out.Start - lineStart
	r.MatchEnd = min(out.End-lineStart, len([]rune(r.LineText)))
	return r
}

// writeAll hands every buffer to w at once when w can gather writes.
func writeAll(w io.Writer, bufs [][]byte) error {
	if ow, ok := w.(*output.Writer); ok {
		return ow.WriteAll(bufs...)
	}
	for _, b := range bufs {
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}

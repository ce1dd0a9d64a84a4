package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/dl/docsearch/internal/document"
	"github.com/dl/docsearch/internal/input"
	"github.com/dl/docsearch/internal/matcher"
)

// ColorMode controls when colored output is used.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // color when stdout is a terminal
	ColorAlways                  // always use color
	ColorNever                   // never use color
)

func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// Set implements pflag.Value.
func (m *ColorMode) Set(s string) error {
	switch s {
	case "auto":
		*m = ColorAuto
	case "always":
		*m = ColorAlways
	case "never":
		*m = ColorNever
	default:
		return fmt.Errorf("must be one of auto, always, never")
	}
	return nil
}

// Type implements pflag.Value.
func (m *ColorMode) Type() string { return "when" }

var _ pflag.Value = (*ColorMode)(nil)

// Config holds all configuration for one docsearch invocation.
type Config struct {
	Path      string // document to search, input.StdinPath for stdin
	Query     string
	Regex     bool
	MatchCase bool
	Repeat    bool // reuse the stored query instead of Query

	NoWrap     bool
	PCRE       bool
	Cursor     int
	SelectFrom int // selection start opposite the cursor, -1 for none
	Count      int

	JSONOutput bool
	Color      ColorMode
	Width      int
	Height     int

	MmapThreshold int64
	StatePath     string
	Verbose       bool
}

// DefaultConfig returns a Config with every default filled in.
func DefaultConfig() Config {
	return Config{
		SelectFrom:    -1,
		Count:         1,
		Width:         document.DefaultWidth,
		Height:        document.DefaultHeight,
		MmapThreshold: input.DefaultMmapThreshold,
	}
}

// query returns the query Config asks for.
func (c *Config) query() matcher.Query {
	return matcher.Query{Text: c.Query, IsRegex: c.Regex, MatchCase: c.MatchCase}
}

// engine returns the regex engine Config selects.
func (c *Config) engine() matcher.Engine {
	if c.PCRE {
		return matcher.EnginePCRE
	}
	return matcher.EngineRE2
}

// Validate checks that the config is valid and returns an error if not.
func (c *Config) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("no document specified")
	}
	if !c.Repeat && c.Query == "" && c.SelectFrom < 0 {
		return fmt.Errorf("no query specified: use -q or select text with --select-from")
	}
	if c.Repeat && (c.Query != "" || c.Regex || c.MatchCase) {
		return fmt.Errorf("repeat uses the stored query and flags")
	}
	if c.Cursor < 0 {
		return fmt.Errorf("invalid cursor: %d", c.Cursor)
	}
	if c.Count < 1 {
		return fmt.Errorf("invalid count: %d", c.Count)
	}
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("invalid viewport: %dx%d", c.Width, c.Height)
	}
	if c.MmapThreshold < 0 {
		return fmt.Errorf("invalid mmap threshold: %d", c.MmapThreshold)
	}
	return nil
}

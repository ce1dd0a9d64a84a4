package matcher

import (
	"regexp"
	"strings"
)

// Query is what the user asked to find.
type Query struct {
	Text      string
	IsRegex   bool
	MatchCase bool // false means case-insensitive matching
}

// Engine selects the regular expression implementation.
type Engine int

const (
	EngineRE2  Engine = iota // Go regexp, linear time
	EnginePCRE               // PCRE2 via pure Go port, may backtrack
)

func (e Engine) String() string {
	switch e {
	case EngineRE2:
		return "re2"
	case EnginePCRE:
		return "pcre"
	default:
		return "unknown"
	}
}

// Source returns the pattern source for q with no flags applied.
// Literal queries are escaped so no character acts as an operator.
func (q Query) Source() string {
	if q.IsRegex {
		return q.Text
	}
	return regexp.QuoteMeta(q.Text)
}

// isLiteral returns true if the pattern contains no regex metacharacters
// and can be treated as a fixed string.
func isLiteral(pattern string) bool {
	return !strings.ContainsAny(pattern, `\.+*?()|[]{}^$`)
}

package matcher

import "strings"

// Pattern is a compiled query.
type Pattern interface {
	// FindString returns the byte offsets of the leftmost match in s.
	// s is treated as a whole text: anchors such as ^ and \A match at s[0].
	FindString(s string) (start, end int, ok bool)

	// String returns the pattern source as compiled.
	String() string

	// Close releases engine resources. The pattern must not be used afterwards.
	Close()
}

// Compile turns q into a Pattern for the given engine.
// Selection logic:
//   - case-sensitive query with no active metacharacters -> literalPattern (strings.Index)
//   - PCRE engine -> pcrePattern
//   - otherwise -> regexPattern (RE2)
//
// A regex query that fails to compile returns a *PatternError.
func Compile(q Query, engine Engine) (Pattern, error) {
	if q.MatchCase && (!q.IsRegex || isLiteral(q.Text)) {
		return &literalPattern{needle: q.Text}, nil
	}

	src := q.Source()
	var (
		p   Pattern
		err error
	)
	switch engine {
	case EnginePCRE:
		p, err = newPCREPattern(src, !q.MatchCase)
	default:
		p, err = newRegexPattern(src, !q.MatchCase)
	}
	if err != nil {
		return nil, &PatternError{Pattern: q.Text, Engine: engine, Err: err}
	}
	return p, nil
}

// literalPattern bypasses the regex engine for plain case-sensitive text.
// Leftmost occurrence is the same answer any regex engine would give.
type literalPattern struct {
	needle string
}

func (p *literalPattern) FindString(s string) (int, int, bool) {
	idx := strings.Index(s, p.needle)
	if idx < 0 {
		return 0, 0, false
	}
	return idx, idx + len(p.needle), true
}

func (p *literalPattern) String() string { return p.needle }

func (p *literalPattern) Close() {}

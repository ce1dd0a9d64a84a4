package matcher

import (
	"regexp"
	"strings"
)

// regexPattern uses Go's RE2 regexp engine.
// ^ and $ match at line boundaries; . does not match newline.
type regexPattern struct {
	re        *regexp.Regexp
	src       string
	prefilter string // literal every match must contain, "" if none
}

func newRegexPattern(src string, ignoreCase bool) (*regexPattern, error) {
	flags := "(?m)"
	if ignoreCase {
		flags = "(?mi)"
	}
	re, err := regexp.Compile(flags + src)
	if err != nil {
		return nil, err
	}
	p := &regexPattern{re: re, src: src}
	if lit, ok := extractLiteral(src, ignoreCase); ok && !lit.ignoreCase {
		p.prefilter = lit.literal
	}
	return p, nil
}

func (p *regexPattern) FindString(s string) (int, int, bool) {
	// Cheap reject: a required literal that is absent rules out any match.
	if p.prefilter != "" && !strings.Contains(s, p.prefilter) {
		return 0, 0, false
	}
	loc := p.re.FindStringIndex(s)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1], true
}

func (p *regexPattern) String() string { return p.src }

func (p *regexPattern) Close() {}

package matcher

import (
	"strings"
	"unicode/utf8"

	"go.elara.ws/pcre"
)

// pcrePattern matches with PCRE2 for lookaround and backreferences. The
// (*UTF) verb keeps offsets on rune boundaries; (?m) matches the RE2 flavour.
const pcrePrefix = "(*UTF)(?m)"

// invalidByteMask stands in for bytes that are not UTF-8. It is one byte
// wide, so offsets into the masked text are offsets into the original.
const invalidByteMask = '\x1a'

type pcrePattern struct {
	re  *pcre.Regexp
	src string
}

func newPCREPattern(src string, ignoreCase bool) (*pcrePattern, error) {
	var opts pcre.CompileOption
	if ignoreCase {
		opts |= pcre.Caseless
	}
	re, err := pcre.CompileOpts(pcrePrefix+src, opts)
	if err != nil {
		return nil, err
	}
	return &pcrePattern{re: re, src: src}, nil
}

func (p *pcrePattern) FindString(s string) (int, int, bool) {
	// PCRE2 in UTF mode rejects malformed subjects outright.
	locs := p.re.FindAllIndex([]byte(maskInvalidUTF8(s)), 1)
	if len(locs) == 0 {
		return 0, 0, false
	}
	return locs[0][0], locs[0][1], true
}

func (p *pcrePattern) String() string { return p.src }

func (p *pcrePattern) Close() {
	if p.re != nil {
		p.re.Close()
		p.re = nil
	}
}

// maskInvalidUTF8 replaces every byte that does not start a valid rune with
// invalidByteMask. Valid text is returned as is.
func maskInvalidUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			b.WriteByte(invalidByteMask)
		} else {
			b.WriteString(s[:size])
		}
		s = s[size:]
	}
	return b.String()
}

package matcher

import (
	"regexp/syntax"
)

const minPrefilterLen = 3

// literalInfo is a substring that must appear in every match of a regex.
type literalInfo struct {
	literal    string
	ignoreCase bool
}

// extractLiteral parses a regex pattern and extracts the longest required
// literal substring that must appear in any match. Returns false when no
// literal of at least minPrefilterLen bytes exists or the pattern does not parse.
func extractLiteral(pattern string, ignoreCase bool) (literalInfo, bool) {
	flags := syntax.Perl
	if ignoreCase {
		flags |= syntax.FoldCase
	}

	re, err := syntax.Parse(pattern, flags)
	if err != nil {
		return literalInfo{}, false
	}

	var best candidate
	for _, c := range requiredLiterals(re.Simplify()) {
		if len(string(c.runes)) > len(string(best.runes)) {
			best = c
		}
	}

	lit := string(best.runes)
	if len(lit) < minPrefilterLen {
		return literalInfo{}, false
	}
	return literalInfo{literal: lit, ignoreCase: best.foldCase || ignoreCase}, true
}

type candidate struct {
	runes    []rune
	foldCase bool
}

// requiredLiterals walks the AST and returns the literal runs every match contains.
func requiredLiterals(re *syntax.Regexp) []candidate {
	switch re.Op {
	case syntax.OpLiteral:
		if len(re.Rune) == 0 {
			return nil
		}
		return []candidate{{runes: re.Rune, foldCase: re.Flags&syntax.FoldCase != 0}}

	case syntax.OpConcat:
		return concatLiterals(re.Sub)

	case syntax.OpCapture, syntax.OpPlus:
		if len(re.Sub) > 0 {
			return requiredLiterals(re.Sub[0])
		}
		return nil

	case syntax.OpRepeat:
		if re.Min >= 1 && len(re.Sub) > 0 {
			return requiredLiterals(re.Sub[0])
		}
		return nil

	default:
		// Star, quest, alternation, classes, anchors: nothing is guaranteed.
		return nil
	}
}

// concatLiterals merges adjacent literal children of a concatenation into
// longer runs, splitting wherever the fold-case flag changes.
func concatLiterals(subs []*syntax.Regexp) []candidate {
	var (
		out  []candidate
		run  []rune
		fold bool
	)
	flush := func() {
		if len(run) > 0 {
			out = append(out, candidate{runes: run, foldCase: fold})
			run = nil
		}
	}

	for _, sub := range subs {
		if sub.Op != syntax.OpLiteral || len(sub.Rune) == 0 {
			flush()
			out = append(out, requiredLiterals(sub)...)
			continue
		}
		fc := sub.Flags&syntax.FoldCase != 0
		if len(run) > 0 && fc != fold {
			flush()
		}
		fold = fc
		run = append(run, sub.Rune...)
	}
	flush()
	return out
}

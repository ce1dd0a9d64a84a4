package matcher

import (
	"errors"
	"testing"
)

func TestCompile_FindString(t *testing.T) {
	tests := []struct {
		name      string
		query     Query
		input     string
		wantStart int
		wantEnd   int
		wantOK    bool
	}{
		{"literal case sensitive", Query{Text: "foo", MatchCase: true}, "xx foo", 3, 6, true},
		{"literal case sensitive miss", Query{Text: "Foo", MatchCase: true}, "xx foo", 0, 0, false},
		{"literal case insensitive", Query{Text: "hello"}, "say Hello", 4, 9, true},
		{"literal dot is not a wildcard", Query{Text: "a.c"}, "abc a.c", 4, 7, true},
		{"literal star and parens", Query{Text: "f(*)"}, "f() f(*)", 4, 8, true},
		{"literal caret", Query{Text: "^x", MatchCase: true}, "a^x", 1, 3, true},
		{"regex digits", Query{Text: `\d+`, IsRegex: true}, "abc 123", 4, 7, true},
		{"regex case sensitive", Query{Text: `H\w+`, IsRegex: true, MatchCase: true}, "hello Hi", 6, 8, true},
		{"regex without metacharacters", Query{Text: "bar", IsRegex: true, MatchCase: true}, "foo bar", 4, 7, true},
		{"regex caret is per line", Query{Text: `^b`, IsRegex: true}, "ab\nbc", 3, 4, true},
		{"regex dollar is per line", Query{Text: `a$`, IsRegex: true}, "ba\nc", 1, 2, true},
		{"regex dot stops at newline", Query{Text: `a.b`, IsRegex: true}, "a\nb", 0, 0, false},
		{"empty literal matches at start", Query{Text: ""}, "abc", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Compile(tt.query, EngineRE2)
			if err != nil {
				t.Fatalf("Compile() error: %v", err)
			}
			defer p.Close()

			start, end, ok := p.FindString(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("FindString(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && (start != tt.wantStart || end != tt.wantEnd) {
				t.Errorf("FindString(%q) = [%d,%d), want [%d,%d)", tt.input, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestCompile_SelectsLiteralPattern(t *testing.T) {
	tests := []struct {
		query   Query
		literal bool
	}{
		{Query{Text: "foo", MatchCase: true}, true},
		{Query{Text: "a.b", MatchCase: true}, true},
		{Query{Text: "foo", IsRegex: true, MatchCase: true}, true},
		{Query{Text: "a.b", IsRegex: true, MatchCase: true}, false},
		{Query{Text: "foo"}, false},
	}
	for _, tt := range tests {
		p, err := Compile(tt.query, EngineRE2)
		if err != nil {
			t.Fatalf("Compile(%+v) error: %v", tt.query, err)
		}
		_, isLit := p.(*literalPattern)
		if isLit != tt.literal {
			t.Errorf("Compile(%+v) literal = %v, want %v", tt.query, isLit, tt.literal)
		}
	}
}

func TestCompile_InvalidRegex(t *testing.T) {
	_, err := Compile(Query{Text: "(unbalanced", IsRegex: true}, EngineRE2)
	if err == nil {
		t.Fatal("expected error for unbalanced paren")
	}
	var perr *PatternError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *PatternError, got %T", err)
	}
	if perr.Pattern != "(unbalanced" {
		t.Errorf("Pattern = %q, want %q", perr.Pattern, "(unbalanced")
	}
	if perr.Unwrap() == nil {
		t.Error("PatternError should wrap the compiler error")
	}
}

func TestCompile_LiteralNeverFails(t *testing.T) {
	for _, text := range []string{"(", "[", `\`, "*", "a{2", "?"} {
		if _, err := Compile(Query{Text: text}, EngineRE2); err != nil {
			t.Errorf("Compile(%q) literal error: %v", text, err)
		}
	}
}

func TestQuery_Source(t *testing.T) {
	if got := (Query{Text: "a.b"}).Source(); got != `a\.b` {
		t.Errorf("literal Source() = %q, want %q", got, `a\.b`)
	}
	if got := (Query{Text: "a.b", IsRegex: true}).Source(); got != "a.b" {
		t.Errorf("regex Source() = %q, want %q", got, "a.b")
	}
}

func TestEngine_String(t *testing.T) {
	if EngineRE2.String() != "re2" || EnginePCRE.String() != "pcre" {
		t.Errorf("unexpected engine names %q %q", EngineRE2, EnginePCRE)
	}
}

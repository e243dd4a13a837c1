//go:build go1.18
// +build go1.18

package commalist

import (
	"strings"
	"testing"
)

// FuzzSplit tests the tokenizer with random inputs to find edge cases and
// panics.
// Run with: go test -fuzz=FuzzSplit -fuzztime=30s ./pkg/commalist
func FuzzSplit(f *testing.F) {
	seeds := []string{
		"",
		"a",
		",",
		",,",
		`"`,
		`'`,
		`\`,
		"a,b,c",
		`"a,b",c`,
		`'a,b',c`,
		`"a\",b",c`,
		`a,"b`,
		`a,b\`,
		"héllo,wörld",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		tokens := Split(input)

		// Round trip: forward tokens joined with the delimiter reproduce
		// the input, for every input.
		if got := strings.Join(tokens, ","); input != "" && got != input {
			t.Fatalf("round trip broke: %q -> %v -> %q", input, tokens, got)
		}
		if input == "" && len(tokens) != 0 {
			t.Fatalf("empty input produced tokens %v", tokens)
		}

		if got := Count(input); got != len(tokens) {
			t.Fatalf("Count(%q) = %d, Split found %d", input, got, len(tokens))
		}

		// Every token is a substring slice, never out of the input's
		// alphabet.
		for _, tok := range tokens {
			if !strings.Contains(input, tok) {
				t.Fatalf("token %q is not a substring of %q", tok, input)
			}
		}

		// Direction equivalence holds when quoting is balanced and
		// backslashes stay inside quoted spans.
		if !wellQuoted(input) {
			return
		}
		backward := collectBackward(New(input))
		if len(backward) != len(tokens) {
			t.Fatalf("backward found %d tokens, forward %d (input %q)",
				len(backward), len(tokens), input)
		}
		for i, tok := range tokens {
			if back := backward[len(backward)-1-i]; back != tok {
				t.Fatalf("token %d: forward %q, backward %q (input %q)", i, tok, back, input)
			}
		}
	})
}

// FuzzJoin checks that rendering arbitrary fields always survives a split.
func FuzzJoin(f *testing.F) {
	f.Add("a", "b,c")
	f.Add("", "")
	f.Add(`say "hi"`, `don't`)
	f.Add(`\`, `"`)

	f.Fuzz(func(t *testing.T, a, b string) {
		line := Join([]string{a, b})
		tokens := Split(line)
		if len(tokens) != 2 {
			t.Fatalf("Join(%q, %q) = %q split into %v", a, b, line, tokens)
		}
		if tokens[0] != Quote(a) || tokens[1] != Quote(b) {
			t.Fatalf("Join(%q, %q) = %q round-tripped as %v", a, b, line, tokens)
		}
	})
}

// wellQuoted reports whether every quoted span in s is terminated and every
// backslash sits inside a quoted span. Outside that shape the backward scan
// is allowed to disagree with the forward scan (escapes are a forward-only
// construct).
func wellQuoted(s string) bool {
	const (
		outside = iota
		quoted
		escaped
	)
	st := outside
	var kind rune
	for _, r := range s {
		switch st {
		case outside:
			switch r {
			case '\\':
				return false
			case '"', '\'':
				st = quoted
				kind = r
			}
		case quoted:
			switch r {
			case kind:
				st = outside
			case '\\':
				st = escaped
			}
		case escaped:
			st = quoted
		}
	}
	return st == outside
}

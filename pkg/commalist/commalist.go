// Package commalist provides lazy, quote-aware splitting of comma lists.
//
// A comma list is a single line whose fields are separated by commas, except
// where a comma sits inside a single- or double-quoted span. Inside a quoted
// span a backslash escapes the following character, so an escaped quote does
// not close the span. This shape turns up in HTTP-header-style value lists
// and loosely CSV-like configuration values.
//
// Tokens are returned verbatim: nothing is trimmed, quotes are not stripped,
// and escapes are not rewritten. Joining all forward tokens with the
// delimiter reproduces the input exactly. Malformed input is never rejected;
// an unterminated quoted span simply extends to the end of the line and
// becomes part of the final token.
//
// # Zero copy
//
// Every token is a substring of the input, sharing its backing memory. The
// input must therefore outlive the tokens; copy a token if it needs to be
// retained past the input.
//
// # Thread Safety
//
// Package-level functions are safe for concurrent use by multiple
// goroutines; each call creates its own tokenizer with no shared mutable
// state. A Tokenizer value is single-goroutine: it owns its remaining window
// and provides no internal locking.
//
// # Example usage
//
//	t := commalist.New(`text/html, "custom,type", text/plain`)
//	for tok, ok := t.Next(); ok; tok, ok = t.Next() {
//	    fmt.Println(tok)
//	}
//	// text/html
//	//  "custom,type"
//	//  text/plain
package commalist

import (
	"iter"
	"unicode/utf8"

	"github.com/shapestone/shape-commalist/internal/scanner"
)

// Tokenizer lazily splits one line into tokens, consumable from the front,
// the back, or both ends alternately. The unconsumed remainder is always a
// contiguous window of the original input; each call shrinks it from the
// end that was consumed. Once both ends meet the tokenizer is exhausted and
// cannot be restarted; construct a new one to re-scan.
type Tokenizer struct {
	input string
	// The remaining window is input[front:back].
	front int
	back  int
	comma rune
	// done distinguishes a pending trailing empty token from exhaustion:
	// after consuming "a," the window is empty but one empty token remains.
	done bool
}

// New creates a tokenizer over input with the default comma delimiter.
func New(input string) *Tokenizer {
	return NewWithOptions(input, DefaultOptions())
}

// NewWithOptions creates a tokenizer with custom options. The input is not
// validated; construction always succeeds. An unusable delimiter falls back
// to the default (use Options.Validate to check beforehand).
func NewWithOptions(input string, opts Options) *Tokenizer {
	opts = opts.normalize()
	return &Tokenizer{
		input: input,
		back:  len(input),
		comma: opts.Comma,
		done:  input == "",
	}
}

// Next returns the next token from the front of the remaining window.
// It returns false when the tokenizer is exhausted.
func (t *Tokenizer) Next() (string, bool) {
	if t.done {
		return "", false
	}
	window := t.input[t.front:t.back]
	if off, ok := scanner.Forward(window, t.comma); ok {
		tok := window[:off]
		t.front += off + utf8.RuneLen(t.comma)
		return tok, true
	}
	t.front = t.back
	t.done = true
	return window, true
}

// NextBack returns the next token from the back of the remaining window.
// It returns false when the tokenizer is exhausted.
//
// Interleaving Next and NextBack never changes where token boundaries fall,
// only which token a given call returns: for input with balanced quoting
// the tokens produced, read in original order, match what Next alone would
// produce.
func (t *Tokenizer) NextBack() (string, bool) {
	if t.done {
		return "", false
	}
	window := t.input[t.front:t.back]
	if off, ok := scanner.Backward(window, t.comma); ok {
		tok := window[off+utf8.RuneLen(t.comma):]
		t.back = t.front + off
		return tok, true
	}
	t.back = t.front
	t.done = true
	return window, true
}

// Remaining returns the unconsumed portion of the input.
func (t *Tokenizer) Remaining() string {
	if t.done {
		return ""
	}
	return t.input[t.front:t.back]
}

// All returns a front-to-back iterator over the remaining tokens. It
// consumes the tokenizer as it goes.
//
//	for tok := range commalist.New(line).All() {
//	    // ...
//	}
func (t *Tokenizer) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			tok, ok := t.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Backward returns a back-to-front iterator over the remaining tokens. It
// consumes the tokenizer as it goes.
func (t *Tokenizer) Backward() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			tok, ok := t.NextBack()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Split returns all tokens of s, front to back, with the default comma
// delimiter. Empty input yields no tokens.
//
// For input without quote characters this is equivalent to a naive split on
// the delimiter.
func Split(s string) []string {
	return SplitWithOptions(s, DefaultOptions())
}

// SplitWithOptions returns all tokens of s with custom options.
func SplitWithOptions(s string, opts Options) []string {
	if s == "" {
		return nil
	}
	tokens := make([]string, 0, 8)
	t := NewWithOptions(s, opts)
	for {
		tok, ok := t.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// Count returns the number of tokens in s without collecting them.
func Count(s string) int {
	return CountWithOptions(s, DefaultOptions())
}

// CountWithOptions returns the number of tokens in s with custom options.
func CountWithOptions(s string, opts Options) int {
	if s == "" {
		return 0
	}
	opts = opts.normalize()
	n := 1
	base := 0
	for {
		off, ok := scanner.Forward(s[base:], opts.Comma)
		if !ok {
			return n
		}
		n++
		base += off + utf8.RuneLen(opts.Comma)
	}
}

// Package scanner implements the quote-aware scan over a window of text.
//
// The scanner finds structural delimiters: delimiter runes that sit outside
// any single- or double-quoted span. Inside a quoted span a backslash escapes
// the following character, so an escaped quote does not close the span.
// Scanning is stateless between calls; every scan starts in the default
// state at the edge of the window.
//
// The scanner walks rune by rune and only ever reports offsets at rune
// boundaries, so slicing the window at a reported offset is always valid
// UTF-8.
package scanner

import "unicode/utf8"

// state is the scan state, an explicit enumerated machine rather than
// anything clever. The two quoted states carry the opening quote rune
// alongside, tracked as a separate variable in the scan loops.
type state uint8

const (
	// stateDefault: outside any quoted span.
	stateDefault state = iota
	// stateQuoted: inside a quoted span; the kind records which quote
	// character opened it.
	stateQuoted
	// stateQuotedEscape: the character after a backslash inside a quoted
	// span. The next rune is consumed as literal content unconditionally.
	stateQuotedEscape
)

// isQuote reports whether r opens a quoted span.
func isQuote(r rune) bool {
	return r == '"' || r == '\''
}

// Forward scans window left to right and returns the byte offset of the
// first structural delimiter, or (len(window), false) if the window contains
// none.
//
// Transition rules, from the default state:
//   - a quote character enters the quoted state of that kind
//   - the delimiter ends the scan
//   - anything else stays in the default state
//
// From the quoted state:
//   - the matching quote character returns to the default state
//   - a backslash enters the escape state
//   - anything else, including the other quote kind, is span content
//
// The escape state consumes exactly one rune and returns to the quoted
// state. A window that ends mid-span or mid-escape simply has no structural
// delimiter; the caller takes the whole window as the final token.
func Forward(window string, delim rune) (int, bool) {
	st := stateDefault
	var kind rune

	for i, r := range window {
		switch st {
		case stateDefault:
			switch {
			case r == delim:
				return i, true
			case isQuote(r):
				st = stateQuoted
				kind = r
			}
		case stateQuoted:
			switch r {
			case kind:
				st = stateDefault
			case '\\':
				st = stateQuotedEscape
			}
		case stateQuotedEscape:
			st = stateQuoted
		}
	}
	return len(window), false
}

// Backward scans window right to left and returns the byte offset of the
// last structural delimiter, or (0, false) if the window contains none.
//
// The rules mirror Forward with one twist: escapes are defined left to
// right (backslash, then the escaped rune), so walking right to left the
// escaped rune is visited before its backslash. A matching quote inside a
// quoted span therefore closes the span only if the byte to its left is not
// a backslash; if it is, the quote was escaped content and the span
// continues. The backslash itself is then visited as ordinary span content.
func Backward(window string, delim rune) (int, bool) {
	st := stateDefault
	var kind rune

	for i := len(window); i > 0; {
		r, size := utf8.DecodeLastRuneInString(window[:i])
		i -= size

		switch st {
		case stateDefault:
			switch {
			case r == delim:
				return i, true
			case isQuote(r):
				st = stateQuoted
				kind = r
			}
		case stateQuoted:
			if r == kind && !escapedAt(window, i) {
				st = stateDefault
			}
		}
	}
	return 0, false
}

// escapedAt reports whether the rune starting at byte offset i is preceded
// by a backslash.
func escapedAt(window string, i int) bool {
	return i > 0 && window[i-1] == '\\'
}

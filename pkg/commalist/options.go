// Package commalist provides configurable options for list tokenization.
package commalist

import (
	"fmt"
	"unicode/utf8"
)

// Options configures the tokenizer behavior.
type Options struct {
	// Comma is the list delimiter.
	// It must be a valid rune and must not be a quote character ('"' or '\''),
	// a backslash, or the Unicode replacement character (0xFFFD).
	// The zero value selects the default.
	// Default: ','
	Comma rune
}

// DefaultOptions returns default tokenizer options.
func DefaultOptions() Options {
	return Options{
		Comma: ',',
	}
}

// Validate checks that the options describe a usable delimiter.
func (o Options) Validate() error {
	c := o.Comma
	if c == 0 {
		return nil
	}
	switch c {
	case '"', '\'':
		return fmt.Errorf("delimiter %q collides with a quote character", c)
	case '\\':
		return fmt.Errorf("delimiter %q collides with the escape character", c)
	case utf8.RuneError:
		return fmt.Errorf("delimiter is not a valid rune")
	}
	if !utf8.ValidRune(c) {
		return fmt.Errorf("delimiter is not a valid rune")
	}
	return nil
}

// normalize resolves the zero value and replaces an unusable delimiter with
// the default. Construction never fails; callers that care should Validate
// first.
func (o Options) normalize() Options {
	if o.Comma == 0 || o.Validate() != nil {
		o.Comma = ','
	}
	return o
}

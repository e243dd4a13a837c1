// Package commalist provides rendering of fields back into a comma list.
package commalist

import "strings"

// Quote wraps field in double quotes with backslash escaping, if the field
// needs it to survive a round trip through Split. Quoting is needed when the
// field contains the delimiter, or when it starts with a quote character
// that the tokenizer would read as opening a span.
//
// Fields that need no quoting are returned unchanged.
func Quote(field string) string {
	return QuoteWithOptions(field, DefaultOptions())
}

// QuoteWithOptions is Quote with custom options.
func QuoteWithOptions(field string, opts Options) string {
	opts = opts.normalize()
	if !needsQuoting(field, opts.Comma) {
		return field
	}

	var b strings.Builder
	b.Grow(len(field) + 2)
	b.WriteByte('"')
	for _, r := range field {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}

// needsQuoting reports whether field would tokenize differently if joined
// bare. A delimiter needs quoting, and so does any quote character: a bare
// quote opens a span that could swallow a following join delimiter.
func needsQuoting(field string, comma rune) bool {
	if strings.ContainsRune(field, comma) {
		return true
	}
	return strings.ContainsAny(field, `"'`)
}

// Join renders fields as a single comma list line, quoting fields as needed
// so that Split(Join(fields)) returns content equivalent to fields:
// unquoted fields come back verbatim, quoted ones come back with their
// added quotes and escapes (the tokenizer never strips them).
//
// Joining fields that contain no delimiter or quote characters is exactly
// strings.Join with the delimiter. One edge: a single empty field renders
// as an empty line, which splits back to no tokens.
func Join(fields []string) string {
	return JoinWithOptions(fields, DefaultOptions())
}

// JoinWithOptions is Join with custom options.
func JoinWithOptions(fields []string, opts Options) string {
	opts = opts.normalize()
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteRune(opts.Comma)
		}
		b.WriteString(QuoteWithOptions(f, opts))
	}
	return b.String()
}

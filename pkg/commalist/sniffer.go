// Package commalist provides delimiter detection for list-shaped input.
package commalist

import "strings"

// Sniffer detects the delimiter of a sample of list-shaped lines.
type Sniffer struct {
	sample    string
	delimiter rune
	analyzed  bool
}

// NewSniffer creates a new Sniffer with a sample of input.
// For best results, provide at least 2-3 lines of data.
func NewSniffer(sample string) *Sniffer {
	return &Sniffer{
		sample: sample,
	}
}

// DetectDelimiter returns the detected delimiter.
// Common delimiters checked: comma, tab, semicolon, pipe.
// With no signal it defaults to comma.
func (s *Sniffer) DetectDelimiter() rune {
	if !s.analyzed {
		s.delimiter = s.detectDelimiter()
		s.analyzed = true
	}
	return s.delimiter
}

// detectDelimiter performs the actual delimiter detection.
//
// Candidates are scored by how many structural occurrences they have per
// line, with a bonus when the count is consistent across lines. Counting is
// quote-aware: a candidate inside a quoted span does not count, so quoted
// content does not skew the vote.
func (s *Sniffer) detectDelimiter() rune {
	if s.sample == "" {
		return ','
	}

	delimiters := []rune{',', '\t', ';', '|'}
	scores := make(map[rune]int)

	lines := strings.Split(s.sample, "\n")

	for _, delim := range delimiters {
		counts := make([]int, 0, len(lines))
		for _, line := range lines {
			line = strings.TrimSuffix(line, "\r")
			if line == "" {
				continue
			}
			counts = append(counts, structuralCount(line, delim))
		}

		if len(counts) > 0 && counts[0] > 0 {
			consistent := true
			for i := 1; i < len(counts); i++ {
				if counts[i] != counts[0] {
					consistent = false
					break
				}
			}
			if consistent {
				scores[delim] = counts[0] * 10 // Bonus for consistency
			} else {
				scores[delim] = counts[0]
			}
		}
	}

	best := ','
	bestScore := 0
	for _, delim := range delimiters {
		if scores[delim] > bestScore {
			best = delim
			bestScore = scores[delim]
		}
	}
	return best
}

// structuralCount counts structural (outside-quotes) occurrences of delim
// in line.
func structuralCount(line string, delim rune) int {
	return CountWithOptions(line, Options{Comma: delim}) - 1
}

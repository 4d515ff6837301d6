package rules

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/gozhlint/pkg/lint"
)

// Character class bodies shared by the rule patterns.
const (
	classCJK      = `\x{4e00}-\x{9fff}`
	classFullPunc = `\x{3000}-\x{303f}\x{ff00}-\x{ffef}`
	classSpace    = `\t\n\v\f\r\x{1c}-\x{1f}\x{85}\p{Z}`

	// classFullPuncNoParens is classFullPunc without U+FF08 and U+FF09.
	classFullPuncNoParens = `\x{3000}-\x{303f}\x{ff00}-\x{ff07}\x{ff0a}-\x{ffef}`
)

// IsCJK reports whether r is a CJK unified ideograph in the basic block.
func IsCJK(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}

// IsFullwidthPunct reports whether r is in the CJK symbols and punctuation
// block or the halfwidth and fullwidth forms block.
func IsFullwidthPunct(r rune) bool {
	return (r >= 0x3000 && r <= 0x303F) || (r >= 0xFF00 && r <= 0xFFEF)
}

// IsSpace reports whether r is whitespace. In addition to unicode.IsSpace
// it accepts the information separators U+001C..U+001F.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1C && r <= 0x1F)
}

// isAlnum reports whether r is a letter or a number in any script.
func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// runeCounter converts increasing byte offsets within s to code-point offsets.
type runeCounter struct {
	s      string
	byteAt int
	runeAt int
}

func newRuneCounter(s string) *runeCounter {
	return &runeCounter{s: s}
}

// at returns the code-point offset of byte offset b. Calls must not go
// backwards.
func (c *runeCounter) at(b int) int {
	if b > c.byteAt {
		c.runeAt += utf8.RuneCountInString(c.s[c.byteAt:b])
		c.byteAt = b
	}
	return c.runeAt
}

// findAll returns every non-overlapping leftmost match of re in line.
// transform, when non-nil, maps the matched text to the reported text.
func findAll(re *regexp.Regexp, line string, transform func(string) string) []lint.Match {
	locs := re.FindAllStringIndex(line, -1)
	if len(locs) == 0 {
		return nil
	}

	counter := newRuneCounter(line)
	matches := make([]lint.Match, 0, len(locs))
	for _, loc := range locs {
		text := line[loc[0]:loc[1]]
		if transform != nil {
			text = transform(text)
		}
		matches = append(matches, lint.Match{
			Start: counter.at(loc[0]),
			End:   counter.at(loc[1]),
			Text:  text,
		})
	}
	return matches
}

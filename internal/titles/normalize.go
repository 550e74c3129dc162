package titles

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	trademarkPattern = regexp.MustCompile(`[™®©]`)
	editionPattern   = regexp.MustCompile(`\s*[-:(]?\s*\b(game of the year|goty|definitive|enhanced|special|complete|collector's|director's|extended|deluxe|gold|premium|ultimate|anniversary|remastered)\s+edition\b\)?`)
	yearPattern      = regexp.MustCompile(`\s*\(\d{4}\)\s*$`)
	gapPattern       = regexp.MustCompile(`[:\-_/|.&+]`)
	noGapPattern     = regexp.MustCompile(`['"’‘“”!?,]`)
	spacePattern     = regexp.MustCompile(`\s+`)
)

// Normalize reduces a title to the key used for fuzzy comparison.
func Normalize(title string) string {
	s := cases.Fold().String(title)
	s = trademarkPattern.ReplaceAllString(s, " ")
	s = editionPattern.ReplaceAllString(s, "")
	s = yearPattern.ReplaceAllString(s, "")
	s = stripMarks(s)
	s = gapPattern.ReplaceAllString(s, " ")
	s = noGapPattern.ReplaceAllString(s, "")
	s = spacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

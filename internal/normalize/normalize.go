// Package normalize builds search keys: lowercase, diacritic free,
// whitespace normalized forms of names, places and publishers.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// letters without a canonical decomposition
var ligatures = map[rune]string{
	'æ': "ae",
	'œ': "oe",
	'ß': "ss",
	'ĳ': "ij",
	'ﬀ': "ff",
	'ﬁ': "fi",
	'ﬂ': "fl",
	'ﬃ': "ffi",
	'ﬄ': "ffl",
	'ﬅ': "st",
	'ﬆ': "st",
	'ø': "o",
	'đ': "d",
	'ð': "d",
	'ł': "l",
	'þ': "th",
	'ı': "i",
}

// decompose then drop combining marks and modifier letters; transformers
// keep state, a chain is built per call
func stripMarks() transform.Transformer {
	return transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.In(unicode.Me)),
		runes.Remove(runes.In(unicode.Lm)),
		runes.Remove(runes.In(unicode.Sk)),
	)
}

// Key returns the search key of text. It is total and idempotent:
// Key(Key(s)) == Key(s).
func Key(text string) string {
	// a dollar sign is a subfield boundary that leaked into the value
	if i := strings.IndexByte(text, '$'); i >= 0 {
		text = text[:i]
	}

	text = cases.Fold().String(text)
	stripped, _, err := transform.String(stripMarks(), text)
	if err == nil {
		text = stripped
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		// folding leaves a few scripts in uppercase (Cherokee)
		r = unicode.ToLower(r)
		if unicode.IsUpper(r) {
			continue
		}
		if s, ok := ligatures[r]; ok {
			b.WriteString(s)
			continue
		}
		if isSeparator(r) {
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(r)
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) ||
		unicode.In(r, unicode.P, unicode.Z, unicode.C)
}

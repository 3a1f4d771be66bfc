package itemname

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CapitalizeWords title-cases the first letter of every whitespace-delimited
// word and lower-cases the rest. The first letter keeps its length: a letter
// with no single-rune title case, such as "ß", is left as is. Whitespace is
// copied through unchanged.
func CapitalizeWords(text string) string {
	if text == "" {
		return ""
	}

	lower := cases.Lower(language.Und)

	var b strings.Builder
	b.Grow(len(text))

	writeWord := func(word string) {
		r, size := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToTitle(r))
		b.WriteString(lower.String(word[size:]))
	}

	start := -1
	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				writeWord(text[start:i])
				start = -1
			}
			b.WriteRune(r)
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		writeWord(text[start:])
	}

	return b.String()
}

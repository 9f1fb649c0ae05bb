package render

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slug turns a title into an anchor id: accents are folded, letters
// lowercased, and every run of other characters becomes one hyphen.
//
//	"GET /pet/{petId}"       -> "get-pet-petid"
//	"body parameter (Pet)"   -> "body-parameter-pet"
func Slug(title string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), title)
	if err != nil {
		folded = title
	}
	folded = cases.Lower(language.Und).String(folded)

	var b strings.Builder
	pendingDash := false
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	if b.Len() == 0 {
		return "section"
	}
	return b.String()
}

// idRegistry hands out slugs that are unique within one document.
type idRegistry map[string]int

func (ids idRegistry) next(title string) string {
	base := Slug(title)
	ids[base]++
	if n := ids[base]; n > 1 {
		return base + "-" + strconv.Itoa(n)
	}
	return base
}

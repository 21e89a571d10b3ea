package textfold

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold returns the Unicode case-folded form of s.
func Fold(s string) string {
	// Casers carry state and are not safe for concurrent use.
	return cases.Fold().String(s)
}

// letters that carry a stroke or ligature rather than a combining mark and
// so survive NFD; mapped the way PostgreSQL's unaccent rules map them.
var undecomposable = strings.NewReplacer(
	"Ł", "L", "ł", "l",
	"Ø", "O", "ø", "o",
	"Đ", "D", "đ", "d",
	"Ħ", "H", "ħ", "h",
	"ı", "i",
	"Æ", "AE", "æ", "ae",
	"Œ", "OE", "œ", "oe",
	"Þ", "TH", "þ", "th",
	"ß", "ss",
)

// StripAccents removes combining marks, e.g. "María" becomes "Maria", and
// flattens stroked letters such as "Ł" and "ø".
func StripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return undecomposable.Replace(out)
}

// Key folds both case and accents.
func Key(s string) string {
	return Fold(StripAccents(s))
}

// EqualFold reports whether a and b are equal ignoring case.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}

// EqualKey reports whether a and b are equal ignoring case and accents.
func EqualKey(a, b string) bool {
	return Key(a) == Key(b)
}

package yaduha

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// foldCase folds the case of an English lookup key. A cases.Caser is not
// safe for concurrent use, so one is built per call.
func foldCase(s string) string {
	return cases.Fold().String(s)
}

// NormalizeKey returns the canonical lookup key for an English lemma:
// surrounding space trimmed, inner whitespace runs collapsed to "_"
// ("lie down" and "lie_down" are the same lemma), case folded and
// composed to NFC.
func NormalizeKey(s string) string {
	fields := strings.FieldsFunc(s, unicode.IsSpace)
	return norm.NFC.String(foldCase(strings.Join(fields, "_")))
}

// terminalPunct is the set of characters that already end a sentence.
const terminalPunct = ".!?"

// Punctuate turns a rendered sentence into display text: trimmed, first
// letter upper-cased and a full stop appended unless the text already ends
// with terminal punctuation. Rendering itself never punctuates.
func Punctuate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	s = string(unicode.ToUpper(r)) + s[size:]
	if !strings.ContainsAny(s[len(s)-1:], terminalPunct) {
		s += "."
	}
	return s
}

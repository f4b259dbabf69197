package kethara

import (
	"strings"

	"github.com/cours-de-latin/yaduha"
)

const frontVowels = "eiäöy"

var frontHarmony = strings.NewReplacer("a", "ä", "o", "ö", "u", "y")

// HasFrontVowel reports whether root contains any of e, i, ä, ö, y.
func HasFrontVowel(root string) bool {
	return strings.ContainsAny(strings.ToLower(root), frontVowels)
}

// Harmonize fronts the vowels of suffix (a→ä, o→ö, u→y) when root has a
// front vowel. The root, never the suffixed stem, decides.
func Harmonize(suffix, root string) string {
	if !HasFrontVowel(root) {
		return suffix
	}
	return frontHarmony.Replace(suffix)
}

// harmonizer returns the Agglutinate adapter for root.
func harmonizer(root string) func(string) string {
	return func(suffix string) string {
		return Harmonize(suffix, root)
	}
}

var caseSuffixes = [...]string{
	Nominative: "",
	Accusative: "n",
	Illative:   "han",
	Elative:    "sta",
	Adessive:   "lla",
	Inessive:   "ssa",
}

const pluralSuffix = "t"

var (
	tenseSuffixes      = [...]string{yaduha.Past: "i", yaduha.Present: "a", yaduha.Future: "kse"}
	moodSuffixes       = [...]string{Indicative: "", Conditional: "isi", Imperative: "ko"}
	politenessSuffixes = [...]string{Plain: "", Polite: "vat", Formal: "nne"}
)

func _() {
	var x [1]struct{}
	_ = x[len(caseSuffixes)-int(Inessive)-1]
	_ = x[len(tenseSuffixes)-int(yaduha.Future)-1]
	_ = x[len(moodSuffixes)-int(Imperative)-1]
	_ = x[len(politenessSuffixes)-int(Formal)-1]
}

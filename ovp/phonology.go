package ovp

import (
	"strings"
	"unicode/utf8"
)

// lenisMap maps a fortis onset to its lenis counterpart.
var lenisMap = map[rune]string{
	'p': "b",
	't': "d",
	'k': "g",
	's': "z",
	'm': "w\u0303",
}

// Lenite softens the first consonant of a verb stem. It applies once, to
// the stem only; onsets outside the table are left alone.
func Lenite(stem string) string {
	r, size := utf8.DecodeRuneInString(stem)
	if lenis, ok := lenisMap[r]; ok {
		return lenis + stem[size:]
	}
	return stem
}

// EndsInGlottal reports whether a target form ends in a glottal stop,
// written as an apostrophe.
func EndsInGlottal(target string) bool {
	return strings.HasSuffix(target, "'")
}

type allomorphs struct {
	plain   string
	glottal string
}

// objectSuffixes is indexed by proximity; the allomorph is chosen by the
// noun's final glottal stop.
var objectSuffixes = [...]allomorphs{
	Proximal: {plain: "neika", glottal: "eika"},
	Distal:   {plain: "noka", glottal: "uka"},
}

var subjectSuffixes = [...]string{
	Proximal: "ii",
	Distal:   "uu",
}

func _() {
	var x [1]struct{}
	_ = x[len(objectSuffixes)-int(Distal)-1]
	_ = x[len(subjectSuffixes)-int(Distal)-1]
}

// ObjectSuffix returns the object case suffix of a noun whose target form
// is target.
func ObjectSuffix(p Proximity, target string) string {
	a := objectSuffixes[p]
	if EndsInGlottal(target) {
		return a.glottal
	}
	return a.plain
}

// SubjectSuffix returns the subject case suffix, which has no allomorphs.
func SubjectSuffix(p Proximity) string {
	return subjectSuffixes[p]
}

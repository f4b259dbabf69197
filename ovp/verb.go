package ovp

import (
	"github.com/cours-de-latin/yaduha"
)

// Verb is a verb lemma with its tense and aspect. Whether the lemma is
// looked up as transitive or intransitive is decided by the sentence.
type Verb struct {
	Lemma  string       `json:"lemma"`
	Tense  yaduha.Tense `json:"tense"`
	Aspect Aspect       `json:"aspect"`
}

// verbSuffixes is indexed by tense then aspect. The future has a single
// suffix whatever the aspect.
var verbSuffixes = [...][4]string{
	yaduha.Past:    {Perfect: "pü", Continuous: "ti", Simple: "ku"},
	yaduha.Present: {Perfect: "pü", Continuous: "ti", Simple: "dü"},
	yaduha.Future:  {Perfect: "wei", Continuous: "wei", Simple: "wei"},
}

func _() {
	var x [1]struct{}
	_ = x[len(verbSuffixes)-int(yaduha.Future)-1]
	_ = x[len(verbSuffixes[0])-int(Perfect)-1]
}

// Suffix returns the combined tense/aspect suffix.
func (v Verb) Suffix() string {
	return verbSuffixes[v.Tense][v.Aspect]
}

// Validate checks the features and that the lemma exists with the given
// transitivity.
func (v Verb) Validate(transitive bool) error {
	if _, err := Vocabulary.Verb(v.Lemma, transitive); err != nil {
		return err
	}
	if err := yaduha.Tenses.Check("verb.tense", v.Tense); err != nil {
		return err
	}
	return Aspects.Check("verb.aspect", v.Aspect)
}

// Render returns stem-suffix for an intransitive verb (prefix == "") and
// prefix-lenited_stem-suffix for a transitive one.
func (v Verb) Render(prefix string) string {
	if prefix == "" {
		stem := Vocabulary.MustTarget(yaduha.IntransitiveVerbs, v.Lemma)
		return yaduha.Hyphenate(stem, v.Suffix())
	}
	stem := Vocabulary.MustTarget(yaduha.TransitiveVerbs, v.Lemma)
	return yaduha.Hyphenate(prefix, Lenite(stem), v.Suffix())
}

package kethara

import (
	"github.com/cours-de-latin/yaduha"
)

// Verb is a verb lemma with tense, mood and politeness. Zero mood and
// politeness mean indicative and plain.
type Verb struct {
	Lemma      string       `json:"lemma"`
	Tense      yaduha.Tense `json:"tense"`
	Mood       Mood         `json:"mood,omitempty"`
	Politeness Politeness   `json:"politeness,omitempty"`
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
	if err := checkOptional(Moods, "verb.mood", v.Mood); err != nil {
		return err
	}
	return checkOptional(Politenesses, "verb.politeness", v.Politeness)
}

// Conjugate stacks tense, mood and politeness onto root, each suffix
// harmonised against root.
func (v Verb) Conjugate(root string) string {
	return yaduha.Agglutinate(root, harmonizer(root),
		tenseSuffixes[v.Tense],
		moodSuffixes[v.Mood],
		politenessSuffixes[v.Politeness],
	)
}

// Render conjugates the lemma taken from the transitive or intransitive
// lexicon.
func (v Verb) Render(transitive bool) string {
	p := yaduha.IntransitiveVerbs
	if transitive {
		p = yaduha.TransitiveVerbs
	}
	return v.Conjugate(Vocabulary.MustTarget(p, v.Lemma))
}

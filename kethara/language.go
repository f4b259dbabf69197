package kethara

import (
	"iter"
	"math/rand/v2"
	"slices"

	"github.com/cours-de-latin/yaduha"
)

// Name identifies the grammar.
const Name = "kethara"

type language struct{}

// Language exposes the Kethara grammar through the common interface.
var Language yaduha.Language = language{}

func (language) Name() string                                { return Name }
func (language) Lexicon() *yaduha.Lexicon                     { return Vocabulary }
func (language) Decode(data []byte) (yaduha.Sentence, error) { return Decode(data) }
func (language) Examples() []yaduha.Example                  { return Examples() }
func (language) Schema() map[string]any                      { return Schema() }

func (language) Inflect(lemma string) (*yaduha.InflectionTable, error) {
	return Inflect(lemma)
}

func (language) SampleSeq(r *rand.Rand, n int) iter.Seq[yaduha.Sentence] {
	return yaduha.Repeat(n, func() yaduha.Sentence { return Random(r) })
}

func (l language) Sample(r *rand.Rand, n int) []yaduha.Sentence {
	return slices.Collect(l.SampleSeq(r, n))
}

// Schema returns the JSON Schema of a sentence document: either shape.
func Schema() map[string]any {
	pronoun := yaduha.ObjectSchema("Pronoun", map[string]any{
		"person": yaduha.FeatureSchema(yaduha.Persons),
		"number": yaduha.FeatureSchema(yaduha.Numbers),
		"case":   yaduha.FeatureSchema(Cases),
	}, "person", "number")
	noun := yaduha.ObjectSchema("Noun", map[string]any{
		"head":   yaduha.LemmaSchema(Vocabulary, "An English noun lemma from the Kethara vocabulary", yaduha.Nouns),
		"number": yaduha.FeatureSchema(yaduha.Numbers),
		"case":   yaduha.FeatureSchema(Cases),
	}, "head", "number")
	verb := func(title, desc string, p yaduha.Partition) map[string]any {
		return yaduha.ObjectSchema(title, map[string]any{
			"lemma":      yaduha.LemmaSchema(Vocabulary, desc, p),
			"tense":      yaduha.FeatureSchema(yaduha.Tenses),
			"mood":       yaduha.FeatureSchema(Moods),
			"politeness": yaduha.FeatureSchema(Politenesses),
		}, "lemma", "tense")
	}
	nominal := yaduha.AnyOf(noun, pronoun)
	return yaduha.AnyOf(
		yaduha.ObjectSchema("SubjectVerbSentence", map[string]any{
			"subject": nominal,
			"verb":    verb("IntransitiveVerb", "An English intransitive verb lemma", yaduha.IntransitiveVerbs),
		}, "subject", "verb"),
		yaduha.ObjectSchema("SubjectObjectVerbSentence", map[string]any{
			"subject": nominal,
			"object":  nominal,
			"verb":    verb("TransitiveVerb", "An English transitive verb lemma", yaduha.TransitiveVerbs),
		}, "subject", "object", "verb"),
	)
}

// Inflect enumerates every form of a verb lemma, keyed
// tense.mood.politeness.
func Inflect(lemma string) (*yaduha.InflectionTable, error) {
	transitive := Vocabulary.Has(yaduha.TransitiveVerbs, lemma)
	e, err := Vocabulary.Verb(lemma, transitive)
	if err != nil {
		return nil, err
	}
	t := yaduha.NewInflectionTable(e.English, e.Target, transitive)
	for _, tense := range yaduha.Tenses.Values() {
		for _, mood := range Moods.Values() {
			for _, pol := range Politenesses.Values() {
				v := Verb{Tense: tense, Mood: mood, Politeness: pol}
				t.Add(v.Conjugate(e.Target), tense.String(), mood.String(), pol.String())
			}
		}
	}
	return t, nil
}

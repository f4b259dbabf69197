package velar

import (
	"iter"
	"math/rand/v2"
	"slices"

	"github.com/cours-de-latin/yaduha"
)

// Name identifies the grammar.
const Name = "velar"

type language struct{}

// Language exposes the Velar grammar through the common interface.
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
		"person":    yaduha.FeatureSchema(yaduha.Persons),
		"number":    yaduha.FeatureSchema(yaduha.Numbers),
		"gender":    yaduha.FeatureSchema(Genders),
		"formality": yaduha.Nullable(yaduha.FeatureSchema(Formalities)),
	}, "person", "number", "gender")
	noun := yaduha.ObjectSchema("Noun", map[string]any{
		"head":     yaduha.LemmaSchema(Vocabulary, "An English noun lemma from the Velar vocabulary", yaduha.Nouns),
		"number":   yaduha.FeatureSchema(yaduha.Numbers),
		"definite": yaduha.BoolSchema(),
	}, "head", "number")
	verb := func(title, desc string, p yaduha.Partition) map[string]any {
		return yaduha.ObjectSchema(title, map[string]any{
			"lemma":         yaduha.LemmaSchema(Vocabulary, desc, p),
			"tense":         yaduha.FeatureSchema(yaduha.Tenses),
			"aspect":        yaduha.FeatureSchema(Aspects),
			"evidentiality": yaduha.FeatureSchema(Evidentialities),
		}, "lemma", "tense", "aspect", "evidentiality")
	}
	nominal := yaduha.AnyOf(noun, pronoun)
	return yaduha.AnyOf(
		yaduha.ObjectSchema("VerbSubjectSentence", map[string]any{
			"verb":    verb("IntransitiveVerb", "An English intransitive verb lemma", yaduha.IntransitiveVerbs),
			"subject": nominal,
		}, "verb", "subject"),
		yaduha.ObjectSchema("VerbSubjectObjectSentence", map[string]any{
			"verb":    verb("TransitiveVerb", "An English transitive verb lemma", yaduha.TransitiveVerbs),
			"subject": nominal,
			"object":  nominal,
		}, "verb", "subject", "object"),
	)
}

// Inflect enumerates every form of a verb lemma, keyed
// tense.aspect.evidentiality.
func Inflect(lemma string) (*yaduha.InflectionTable, error) {
	transitive := Vocabulary.Has(yaduha.TransitiveVerbs, lemma)
	e, err := Vocabulary.Verb(lemma, transitive)
	if err != nil {
		return nil, err
	}
	t := yaduha.NewInflectionTable(e.English, e.Target, transitive)
	for _, tense := range yaduha.Tenses.Values() {
		for _, aspect := range Aspects.Values() {
			for _, ev := range Evidentialities.Values() {
				v := Verb{Tense: tense, Aspect: aspect, Evidentiality: ev}
				t.Add(v.Conjugate(e.Target), tense.String(), aspect.String(), ev.String())
			}
		}
	}
	return t, nil
}

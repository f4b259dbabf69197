package ovp

import (
	"iter"
	"math/rand/v2"
	"slices"

	"github.com/cours-de-latin/yaduha"
)

// Name identifies the grammar.
const Name = "ovp"

type language struct{}

// Language exposes the OVP grammar through the common interface.
var Language yaduha.Language = language{}

func (language) Name() string               { return Name }
func (language) Lexicon() *yaduha.Lexicon    { return Vocabulary }
func (language) Examples() []yaduha.Example { return Examples() }
func (language) Schema() map[string]any     { return Schema() }

func (language) Inflect(lemma string) (*yaduha.InflectionTable, error) {
	return Inflect(lemma)
}

func (language) InflectAs(lemma string, transitive bool) (*yaduha.InflectionTable, error) {
	return InflectAs(lemma, transitive)
}

func (language) Decode(data []byte) (yaduha.Sentence, error) {
	s, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (language) SampleSeq(r *rand.Rand, n int) iter.Seq[yaduha.Sentence] {
	return yaduha.Repeat(n, func() yaduha.Sentence { return Random(r) })
}

func (l language) Sample(r *rand.Rand, n int) []yaduha.Sentence {
	return slices.Collect(l.SampleSeq(r, n))
}

// Schema returns the JSON Schema of a sentence document.
func Schema() map[string]any {
	pronoun := yaduha.ObjectSchema("Pronoun", map[string]any{
		"person":      yaduha.FeatureSchema(yaduha.Persons),
		"plurality":   yaduha.FeatureSchema(Pluralities),
		"proximity":   yaduha.FeatureSchema(Proximities),
		"inclusivity": yaduha.FeatureSchema(Inclusivities),
		"reflexive":   yaduha.BoolSchema(),
	}, "person", "plurality", "proximity", "inclusivity")
	noun := yaduha.ObjectSchema("Noun", map[string]any{
		"head":                  yaduha.LemmaSchema(Vocabulary, "A noun lemma", yaduha.Nouns),
		"possessive_determiner": yaduha.Nullable(pronoun),
		"proximity":             yaduha.FeatureSchema(Proximities),
		"plurality":             yaduha.FeatureSchema(Pluralities),
	}, "head", "proximity", "plurality")
	verb := yaduha.ObjectSchema("Verb", map[string]any{
		"lemma": yaduha.LemmaSchema(Vocabulary, "A verb lemma (transitive or intransitive)",
			yaduha.TransitiveVerbs, yaduha.IntransitiveVerbs),
		"tense":  yaduha.FeatureSchema(yaduha.Tenses),
		"aspect": yaduha.FeatureSchema(Aspects),
	}, "lemma", "tense", "aspect")
	nominal := yaduha.AnyOf(noun, pronoun)
	return yaduha.ObjectSchema("Sentence", map[string]any{
		"subject": nominal,
		"verb":    verb,
		"object":  yaduha.Nullable(nominal),
	}, "subject", "verb")
}

// ObjectPrefixes lists every distinct object prefix in paradigm order.
func ObjectPrefixes() []string {
	var out []string
	seen := make(map[string]bool)
	for _, person := range yaduha.Persons.Values() {
		for _, pl := range Pluralities.Values() {
			for _, prox := range Proximities.Values() {
				for _, incl := range Inclusivities.Values() {
					for _, refl := range []bool{false, true} {
						form := Pronoun{person, pl, prox, incl, refl}.ObjectForm()
						if !seen[form] {
							seen[form] = true
							out = append(out, form)
						}
					}
				}
			}
		}
	}
	return out
}

// Inflect enumerates the forms of a verb lemma. A lemma that is both
// transitive and intransitive gets its transitive paradigm; use InflectAs
// to pick one.
func Inflect(lemma string) (*yaduha.InflectionTable, error) {
	return InflectAs(lemma, Vocabulary.Has(yaduha.TransitiveVerbs, lemma))
}

// InflectAs enumerates the forms of lemma with the given transitivity.
// Transitive cells are keyed tense.aspect.prefix, intransitive ones
// tense.aspect.
func InflectAs(lemma string, transitive bool) (*yaduha.InflectionTable, error) {
	e, err := Vocabulary.Verb(lemma, transitive)
	if err != nil {
		return nil, err
	}
	t := yaduha.NewInflectionTable(e.English, e.Target, transitive)
	prefixes := []string{""}
	if transitive {
		prefixes = ObjectPrefixes()
	}
	for _, tense := range yaduha.Tenses.Values() {
		for _, aspect := range Aspects.Values() {
			v := Verb{Lemma: e.English, Tense: tense, Aspect: aspect}
			for _, prefix := range prefixes {
				if prefix == "" {
					t.Add(v.Render(""), tense.String(), aspect.String())
				} else {
					t.Add(v.Render(prefix), tense.String(), aspect.String(), prefix)
				}
			}
		}
	}
	return t, nil
}

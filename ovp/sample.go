package ovp

import (
	"iter"
	"math/rand/v2"
	"slices"

	"github.com/cours-de-latin/yaduha"
)

type verbChoice struct {
	lemma      string
	transitive bool
}

// verbPool is the union of both verb partitions. A lemma present in both
// appears twice, once per transitivity.
var verbPool = func() []verbChoice {
	var pool []verbChoice
	for _, lemma := range Vocabulary.Lemmas(yaduha.TransitiveVerbs) {
		pool = append(pool, verbChoice{lemma, true})
	}
	for _, lemma := range Vocabulary.Lemmas(yaduha.IntransitiveVerbs) {
		pool = append(pool, verbChoice{lemma, false})
	}
	return pool
}()

var nounPool = Vocabulary.Lemmas(yaduha.Nouns)

// RandomPronoun draws every feature uniformly. Sampled pronouns are never
// reflexive.
func RandomPronoun(r *rand.Rand) Pronoun {
	return Pronoun{
		Person:      yaduha.Persons.Random(r),
		Plurality:   Pluralities.Random(r),
		Proximity:   Proximities.Random(r),
		Inclusivity: Inclusivities.Random(r),
	}
}

// RandomNoun draws a head and features uniformly.
func RandomNoun(r *rand.Rand) Noun {
	return Noun{
		Head:      yaduha.Pick(r, nounPool),
		Proximity: Proximities.Random(r),
		Plurality: Pluralities.Random(r),
	}
}

func randomNominal(r *rand.Rand) Nominal {
	if yaduha.Coin(r) {
		return RandomPronoun(r)
	}
	return RandomNoun(r)
}

// Random returns a well-formed sentence. A nil r uses the global source.
func Random(r *rand.Rand) Sentence {
	v := yaduha.Pick(r, verbPool)
	s := Sentence{
		Subject: randomNominal(r),
		Verb: Verb{
			Lemma:  v.lemma,
			Tense:  yaduha.Tenses.Random(r),
			Aspect: Aspects.Random(r),
		},
	}
	if v.transitive {
		s.Object = randomNominal(r)
	}
	return s
}

// SampleSeq yields n random sentences.
func SampleSeq(r *rand.Rand, n int) iter.Seq[Sentence] {
	return yaduha.Repeat(n, func() Sentence { return Random(r) })
}

// Sample returns n random sentences.
func Sample(r *rand.Rand, n int) []Sentence {
	return slices.Collect(SampleSeq(r, n))
}

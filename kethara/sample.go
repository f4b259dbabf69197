package kethara

import (
	"math/rand/v2"

	"github.com/cours-de-latin/yaduha"
)

var (
	nounPool         = Vocabulary.Lemmas(yaduha.Nouns)
	transitivePool   = Vocabulary.Lemmas(yaduha.TransitiveVerbs)
	intransitivePool = Vocabulary.Lemmas(yaduha.IntransitiveVerbs)
)

// RandomPronoun draws person and number uniformly; the case is given.
func RandomPronoun(r *rand.Rand, c Case) Pronoun {
	return Pronoun{
		Person: yaduha.Persons.Random(r),
		Number: yaduha.Numbers.Random(r),
		Case:   c,
	}
}

// RandomNoun draws a head and number uniformly; the case is given.
func RandomNoun(r *rand.Rand, c Case) Noun {
	return Noun{
		Head:   yaduha.Pick(r, nounPool),
		Number: yaduha.Numbers.Random(r),
		Case:   c,
	}
}

func randomNominal(r *rand.Rand, c Case) Nominal {
	if yaduha.Coin(r) {
		return RandomPronoun(r, c)
	}
	return RandomNoun(r, c)
}

func randomVerb(r *rand.Rand, lemma string) Verb {
	return Verb{
		Lemma:      lemma,
		Tense:      yaduha.Tenses.Random(r),
		Mood:       Moods.Random(r),
		Politeness: Politenesses.Random(r),
	}
}

// Random returns a well-formed sentence. Every case is drawn uniformly;
// a nominative object is rendered accusative. A nil r uses the global
// source.
func Random(r *rand.Rand) yaduha.Sentence {
	k := yaduha.IntN(r, len(transitivePool)+len(intransitivePool))
	if k < len(transitivePool) {
		return SubjectObjectVerb{
			Subject: randomNominal(r, Cases.Random(r)),
			Object:  randomNominal(r, Cases.Random(r)),
			Verb:    randomVerb(r, transitivePool[k]),
		}
	}
	return SubjectVerb{
		Subject: randomNominal(r, Cases.Random(r)),
		Verb:    randomVerb(r, intransitivePool[k-len(transitivePool)]),
	}
}

package velar

import (
	"math/rand/v2"

	"github.com/cours-de-latin/yaduha"
)

var (
	nounPool         = Vocabulary.Lemmas(yaduha.Nouns)
	transitivePool   = Vocabulary.Lemmas(yaduha.TransitiveVerbs)
	intransitivePool = Vocabulary.Lemmas(yaduha.IntransitiveVerbs)
)

// RandomPronoun draws every feature uniformly, formality included.
func RandomPronoun(r *rand.Rand) Pronoun {
	return Pronoun{
		Person:    yaduha.Persons.Random(r),
		Number:    yaduha.Numbers.Random(r),
		Gender:    Genders.Random(r),
		Formality: Formalities.Random(r).Ref(),
	}
}

// RandomNoun draws a head, a number and definiteness uniformly.
func RandomNoun(r *rand.Rand) Noun {
	return Noun{
		Head:     yaduha.Pick(r, nounPool),
		Number:   yaduha.Numbers.Random(r),
		Definite: yaduha.Coin(r),
	}
}

func randomNominal(r *rand.Rand) Nominal {
	if yaduha.Coin(r) {
		return RandomPronoun(r)
	}
	return RandomNoun(r)
}

func randomVerb(r *rand.Rand, lemma string) Verb {
	return Verb{
		Lemma:         lemma,
		Tense:         yaduha.Tenses.Random(r),
		Aspect:        Aspects.Random(r),
		Evidentiality: Evidentialities.Random(r),
	}
}

// Random returns a well-formed sentence, a VerbSubject or a
// VerbSubjectObject depending on the drawn verb. A nil r uses the global
// source.
func Random(r *rand.Rand) yaduha.Sentence {
	k := yaduha.IntN(r, len(transitivePool)+len(intransitivePool))
	if k < len(transitivePool) {
		return VerbSubjectObject{
			Verb:    randomVerb(r, transitivePool[k]),
			Subject: randomNominal(r),
			Object:  randomNominal(r),
		}
	}
	return VerbSubject{
		Verb:    randomVerb(r, intransitivePool[k-len(transitivePool)]),
		Subject: randomNominal(r),
	}
}

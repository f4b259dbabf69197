package ovp

import "github.com/cours-de-latin/yaduha"

// examples pairs English sentences with their structured form. Every
// entry must validate.
var examples = []struct {
	english  string
	sentence Sentence
}{
	{
		"The dog eats the rice.",
		Sentence{
			Subject: Noun{Head: "dog", Proximity: Proximal, Plurality: Singular},
			Verb:    Verb{Lemma: "eat", Tense: yaduha.Present, Aspect: Simple},
			Object:  Noun{Head: "rice", Proximity: Distal, Plurality: Singular},
		},
	},
	{
		"I sleep.",
		Sentence{
			Subject: Pronoun{Person: yaduha.First, Plurality: Singular, Proximity: Proximal, Inclusivity: Exclusive},
			Verb:    Verb{Lemma: "sleep", Tense: yaduha.Present, Aspect: Simple},
		},
	},
	{
		"That coyote saw me.",
		Sentence{
			Subject: Noun{Head: "coyote", Proximity: Distal, Plurality: Singular},
			Verb:    Verb{Lemma: "see", Tense: yaduha.Past, Aspect: Simple},
			Object:  Pronoun{Person: yaduha.First, Plurality: Singular, Proximity: Proximal, Inclusivity: Exclusive},
		},
	},
	{
		"We will all sing.",
		Sentence{
			Subject: Pronoun{Person: yaduha.First, Plurality: Plural, Proximity: Proximal, Inclusivity: Inclusive},
			Verb:    Verb{Lemma: "sing", Tense: yaduha.Future, Aspect: Simple},
		},
	},
	{
		"You are drinking this water.",
		Sentence{
			Subject: Pronoun{Person: yaduha.Second, Plurality: Singular, Proximity: Proximal, Inclusivity: Exclusive},
			Verb:    Verb{Lemma: "drink", Tense: yaduha.Present, Aspect: Continuous},
			Object:  Noun{Head: "water", Proximity: Proximal, Plurality: Singular},
		},
	},
	{
		"The cats are chasing this coyote.",
		Sentence{
			Subject: Noun{Head: "cat", Proximity: Proximal, Plurality: Plural},
			Verb:    Verb{Lemma: "chase", Tense: yaduha.Present, Aspect: Continuous},
			Object:  Noun{Head: "coyote", Proximity: Proximal, Plurality: Singular},
		},
	},
	{
		"Those two birds have flown.",
		Sentence{
			Subject: Noun{Head: "bird", Proximity: Distal, Plurality: Dual},
			Verb:    Verb{Lemma: "fly", Tense: yaduha.Past, Aspect: Perfect},
		},
	},
}

// Examples returns the few-shot examples.
func Examples() []yaduha.Example {
	out := make([]yaduha.Example, len(examples))
	for i, e := range examples {
		out[i] = yaduha.Example{English: e.english, Sentence: e.sentence}
	}
	return out
}

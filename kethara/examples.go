package kethara

import "github.com/cours-de-latin/yaduha"

func present(lemma string, p Politeness) Verb {
	return Verb{Lemma: lemma, Tense: yaduha.Present, Mood: Indicative, Politeness: p}
}

var examples = []yaduha.Example{
	{
		English: "I sleep.",
		Sentence: SubjectVerb{
			Subject: Pronoun{Person: yaduha.First, Number: yaduha.Singular, Case: Nominative},
			Verb:    present("sleep", Plain),
		},
	},
	{
		English: "The dog runs.",
		Sentence: SubjectVerb{
			Subject: Noun{Head: "dog", Number: yaduha.Singular, Case: Nominative},
			Verb:    present("run", Plain),
		},
	},
	{
		English: "The birds are singing.",
		Sentence: SubjectVerb{
			Subject: Noun{Head: "bird", Number: yaduha.Plural, Case: Nominative},
			Verb:    present("sing", Plain),
		},
	},
	{
		English: "I see you.",
		Sentence: SubjectObjectVerb{
			Subject: Pronoun{Person: yaduha.First, Number: yaduha.Singular, Case: Nominative},
			Object:  Pronoun{Person: yaduha.Second, Number: yaduha.Singular, Case: Accusative},
			Verb:    present("see", Plain),
		},
	},
	{
		English: "The cat sees the bird.",
		Sentence: SubjectObjectVerb{
			Subject: Noun{Head: "cat", Number: yaduha.Singular, Case: Nominative},
			Object:  Noun{Head: "bird", Number: yaduha.Singular, Case: Accusative},
			Verb:    present("see", Plain),
		},
	},
	{
		English: "The woman loves the man.",
		Sentence: SubjectObjectVerb{
			Subject: Noun{Head: "woman", Number: yaduha.Singular, Case: Nominative},
			Object:  Noun{Head: "man", Number: yaduha.Singular, Case: Accusative},
			Verb:    present("love", Polite),
		},
	},
}

// Examples returns the few-shot examples.
func Examples() []yaduha.Example {
	out := make([]yaduha.Example, len(examples))
	copy(out, examples)
	return out
}

package velar

import "github.com/cours-de-latin/yaduha"

func presentDirect(lemma string) Verb {
	return Verb{Lemma: lemma, Tense: yaduha.Present, Aspect: Simple, Evidentiality: Direct}
}

var examples = []yaduha.Example{
	{
		English: "I sleep.",
		Sentence: VerbSubject{
			Verb:    presentDirect("sleep"),
			Subject: Pronoun{Person: yaduha.First, Number: yaduha.Singular, Gender: Neuter},
		},
	},
	{
		English: "The dog runs.",
		Sentence: VerbSubject{
			Verb:    presentDirect("run"),
			Subject: Noun{Head: "dog", Number: yaduha.Singular, Definite: true},
		},
	},
	{
		English: "She was dancing.",
		Sentence: VerbSubject{
			Verb:    Verb{Lemma: "dance", Tense: yaduha.Past, Aspect: Progressive, Evidentiality: Direct},
			Subject: Pronoun{Person: yaduha.Third, Number: yaduha.Singular, Gender: Feminine},
		},
	},
	{
		English: "I see you.",
		Sentence: VerbSubjectObject{
			Verb:    presentDirect("see"),
			Subject: Pronoun{Person: yaduha.First, Number: yaduha.Singular, Gender: Neuter},
			Object:  Pronoun{Person: yaduha.Second, Number: yaduha.Singular, Gender: Neuter, Formality: Informal.Ref()},
		},
	},
	{
		English: "The cat sees the bird.",
		Sentence: VerbSubjectObject{
			Verb:    presentDirect("see"),
			Subject: Noun{Head: "cat", Number: yaduha.Singular, Definite: true},
			Object:  Noun{Head: "bird", Number: yaduha.Singular, Definite: true},
		},
	},
	{
		English: "He was reading the book.",
		Sentence: VerbSubjectObject{
			Verb:    Verb{Lemma: "read", Tense: yaduha.Past, Aspect: Progressive, Evidentiality: Direct},
			Subject: Pronoun{Person: yaduha.Third, Number: yaduha.Singular, Gender: Masculine},
			Object:  Noun{Head: "book", Number: yaduha.Singular, Definite: true},
		},
	},
	{
		English: "They heard that the woman loves the man.",
		Sentence: VerbSubjectObject{
			Verb:    Verb{Lemma: "love", Tense: yaduha.Present, Aspect: Simple, Evidentiality: Hearsay},
			Subject: Noun{Head: "woman", Number: yaduha.Singular, Definite: true},
			Object:  Noun{Head: "man", Number: yaduha.Singular, Definite: true},
		},
	},
}

// Examples returns the few-shot examples.
func Examples() []yaduha.Example {
	out := make([]yaduha.Example, len(examples))
	copy(out, examples)
	return out
}

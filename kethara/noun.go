package kethara

import (
	"github.com/cours-de-latin/yaduha"
)

// Noun is a case-marked noun. There are no articles.
type Noun struct {
	Head   string        `json:"head"`
	Number yaduha.Number `json:"number"`
	Case   Case          `json:"case,omitempty"`
}

func (Noun) isNominal() {}

func (n Noun) Validate() error {
	if _, err := Vocabulary.Entry(yaduha.Nouns, n.Head); err != nil {
		return err
	}
	if err := yaduha.Numbers.Check("number", n.Number); err != nil {
		return err
	}
	return checkOptional(Cases, "case", n.Case)
}

// Class returns the semantic class of the head noun.
func (n Noun) Class() (NounClass, error) {
	name, err := Vocabulary.ClassOf(yaduha.Nouns, n.Head)
	if err != nil {
		return 0, err
	}
	return NounClasses.Parse(name)
}

// Render returns root, plural t, then the case suffix harmonised against
// the root.
func (n Noun) Render(role yaduha.Role) string {
	root := Vocabulary.MustTarget(yaduha.Nouns, n.Head)
	var plural string
	if n.Number == yaduha.Plural {
		plural = pluralSuffix
	}
	return yaduha.Agglutinate(root, harmonizer(root), plural, caseSuffixes[caseIn(role, n.Case)])
}

// caseIn resolves the case a nominal is rendered with. An unset case
// takes the positional default and an object is never nominative.
func caseIn(role yaduha.Role, c Case) Case {
	if role == yaduha.ObjectRole {
		if c == 0 || c == Nominative {
			return Accusative
		}
		return c
	}
	if c == 0 {
		return Nominative
	}
	return c
}

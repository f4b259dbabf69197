package kethara

import (
	"fmt"

	"github.com/cours-de-latin/yaduha"
)

// Pronoun is a case-marked personal pronoun.
type Pronoun struct {
	Person yaduha.Person `json:"person"`
	Number yaduha.Number `json:"number"`
	Case   Case          `json:"case,omitempty"`
}

func (Pronoun) isNominal() {}

func (p Pronoun) Validate() error {
	if err := yaduha.Persons.Check("person", p.Person); err != nil {
		return err
	}
	if err := yaduha.Numbers.Check("number", p.Number); err != nil {
		return err
	}
	return checkOptional(Cases, "case", p.Case)
}

// Stem returns the case-less pronoun.
func (p Pronoun) Stem() string {
	switch p.Person {
	case yaduha.First:
		if p.Number == yaduha.Singular {
			return "min"
		}
		return "me"
	case yaduha.Second:
		if p.Number == yaduha.Singular {
			return "sin"
		}
		return "te"
	case yaduha.Third:
		if p.Number == yaduha.Singular {
			return "han"
		}
		return "he"
	}
	panic(fmt.Sprintf("kethara: rendering unvalidated pronoun %+v", p))
}

// Render appends the case suffix, harmonised against the stem.
func (p Pronoun) Render(role yaduha.Role) string {
	stem := p.Stem()
	return yaduha.Agglutinate(stem, harmonizer(stem), caseSuffixes[caseIn(role, p.Case)])
}

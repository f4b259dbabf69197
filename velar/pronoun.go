package velar

import (
	"fmt"

	"github.com/cours-de-latin/yaduha"
)

// Pronoun is a personal pronoun. Formality is only consulted for a second
// person subject, where it is required.
type Pronoun struct {
	Person    yaduha.Person `json:"person"`
	Number    yaduha.Number `json:"number"`
	Gender    Gender        `json:"gender"`
	Formality *Formality    `json:"formality,omitempty"`
}

func (Pronoun) isNominal() {}

// Validate checks the features the pronoun needs in role.
func (p Pronoun) Validate(role yaduha.Role) error {
	if err := yaduha.Persons.Check("person", p.Person); err != nil {
		return err
	}
	if err := yaduha.Numbers.Check("number", p.Number); err != nil {
		return err
	}
	if err := Genders.Check("gender", p.Gender); err != nil {
		return err
	}
	if p.Formality != nil {
		return Formalities.Check("formality", *p.Formality)
	}
	if p.Person == yaduha.Second && role == yaduha.SubjectRole {
		return yaduha.InvalidFeature("formality", "required for a second person subject")
	}
	return nil
}

// Render returns the nominative form for a subject, the accusative one
// for an object.
func (p Pronoun) Render(role yaduha.Role) string {
	if role == yaduha.ObjectRole {
		return p.ObjectForm()
	}
	return p.SubjectForm()
}

// Third person forms, indexed by number then gender.
var (
	thirdSubject = [...][4]string{
		yaduha.Singular: {Masculine: "el", Feminine: "ela", Neuter: "lo"},
		yaduha.Plural:   {Masculine: "els", Feminine: "elas", Neuter: "los"},
	}
	thirdObject = [...][4]string{
		yaduha.Singular: {Masculine: "lo", Feminine: "la", Neuter: "lo"},
		yaduha.Plural:   {Masculine: "los", Feminine: "las", Neuter: "los"},
	}
)

func _() {
	var x [1]struct{}
	_ = x[len(thirdSubject)-int(yaduha.Plural)-1]
	_ = x[len(thirdSubject[0])-int(Neuter)-1]
}

// SubjectForm returns the nominative pronoun.
func (p Pronoun) SubjectForm() string {
	switch p.Person {
	case yaduha.First:
		if p.Number == yaduha.Singular {
			return "jo"
		}
		return "nos"
	case yaduha.Second:
		if p.Formality == nil {
			break
		}
		switch f := *p.Formality; {
		case p.Number == yaduha.Singular && f == Informal:
			return "tu"
		case p.Number == yaduha.Singular && f == Formal:
			return "vos"
		case p.Number == yaduha.Singular:
			return "dom"
		case f == Informal:
			return "tus"
		default:
			return "voses"
		}
	case yaduha.Third:
		return thirdSubject[p.Number][p.Gender]
	}
	panic(fmt.Sprintf("velar: rendering unvalidated pronoun %+v", p))
}

// ObjectForm returns the accusative pronoun.
func (p Pronoun) ObjectForm() string {
	switch p.Person {
	case yaduha.First:
		if p.Number == yaduha.Singular {
			return "me"
		}
		return "nos"
	case yaduha.Second:
		if p.Number == yaduha.Singular {
			return "te"
		}
		return "vos"
	case yaduha.Third:
		return thirdObject[p.Number][p.Gender]
	}
	panic(fmt.Sprintf("velar: rendering unvalidated pronoun %+v", p))
}

package ovp

import (
	"fmt"

	"github.com/cours-de-latin/yaduha"
)

// Pronoun is a personal pronoun. Inclusivity only matters in the first
// person plural, proximity only in the third person and reflexive only
// in the third person object form, but all fields are always required.
type Pronoun struct {
	Person      yaduha.Person `json:"person"`
	Plurality   Plurality     `json:"plurality"`
	Proximity   Proximity     `json:"proximity"`
	Inclusivity Inclusivity   `json:"inclusivity"`
	Reflexive   bool          `json:"reflexive"`
}

func (Pronoun) isNominal() {}

// Validate checks that every feature is set and in range.
func (p Pronoun) Validate() error {
	if err := yaduha.Persons.Check("person", p.Person); err != nil {
		return err
	}
	if err := Pluralities.Check("plurality", p.Plurality); err != nil {
		return err
	}
	if err := Proximities.Check("proximity", p.Proximity); err != nil {
		return err
	}
	return Inclusivities.Check("inclusivity", p.Inclusivity)
}

// Render returns the subject or object form of the pronoun.
func (p Pronoun) Render(role yaduha.Role) string {
	if role == yaduha.ObjectRole {
		return p.ObjectForm()
	}
	return p.SubjectForm()
}

// Prefix is the object form, fused onto a transitive verb.
func (p Pronoun) Prefix() string {
	return p.ObjectForm()
}

// objectWord is empty: an object pronoun surfaces only as the verb prefix.
func (p Pronoun) objectWord() string {
	return ""
}

// SubjectForm returns the independent subject pronoun.
func (p Pronoun) SubjectForm() string {
	switch p.Person {
	case yaduha.First:
		switch p.Plurality {
		case Singular:
			return "nüü"
		case Dual:
			return "taa"
		case Plural:
			if p.Inclusivity == Inclusive {
				return "taagwa"
			}
			return "nüügwa"
		}
	case yaduha.Second:
		if p.Plurality == Singular {
			return "üü"
		}
		return "üügwa"
	case yaduha.Third:
		if p.Plurality == Singular {
			if p.Proximity == Proximal {
				return "mahu"
			}
			return "uhu"
		}
		if p.Proximity == Proximal {
			return "mahuw̃a"
		}
		return "uhuw̃a"
	}
	panic(fmt.Sprintf("ovp: rendering unvalidated pronoun %+v", p))
}

// ObjectForm returns the object pronoun, used as a verb prefix.
func (p Pronoun) ObjectForm() string {
	switch p.Person {
	case yaduha.First:
		switch p.Plurality {
		case Singular:
			return "i"
		case Dual:
			return "ta"
		case Plural:
			if p.Inclusivity == Inclusive {
				return "tei"
			}
			return "ni"
		}
	case yaduha.Second:
		if p.Plurality == Singular {
			return "ü"
		}
		return "üi"
	case yaduha.Third:
		if p.Reflexive {
			return "na"
		}
		if p.Plurality == Singular {
			if p.Proximity == Proximal {
				return "a"
			}
			return "u"
		}
		if p.Proximity == Proximal {
			return "ai"
		}
		return "ui"
	}
	panic(fmt.Sprintf("ovp: rendering unvalidated pronoun %+v", p))
}

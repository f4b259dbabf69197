package ovp

import (
	"github.com/cours-de-latin/yaduha"
)

// Noun is a lexical noun phrase. Plurality only feeds agreement (the verb
// prefix); the noun form itself carries no number marking.
type Noun struct {
	Head string `json:"head"`
	// PossessiveDeterminer is carried and validated but has no surface
	// realisation.
	PossessiveDeterminer *Pronoun `json:"possessive_determiner,omitempty"`
	Proximity            Proximity `json:"proximity"`
	Plurality            Plurality `json:"plurality"`
}

func (Noun) isNominal() {}

// Validate checks the head against the noun lexicon and every feature.
func (n Noun) Validate() error {
	if _, err := Vocabulary.Entry(yaduha.Nouns, n.Head); err != nil {
		return err
	}
	if err := Proximities.Check("proximity", n.Proximity); err != nil {
		return err
	}
	if err := Pluralities.Check("plurality", n.Plurality); err != nil {
		return err
	}
	if n.PossessiveDeterminer != nil {
		if err := n.PossessiveDeterminer.Validate(); err != nil {
			return yaduha.InField("possessive_determiner", err)
		}
	}
	return nil
}

// Render returns root-suffix, the suffix depending on role and proximity
// (and, for objects, on a final glottal stop).
func (n Noun) Render(role yaduha.Role) string {
	root := Vocabulary.MustTarget(yaduha.Nouns, n.Head)
	if role == yaduha.ObjectRole {
		return yaduha.Hyphenate(root, ObjectSuffix(n.Proximity, root))
	}
	return yaduha.Hyphenate(root, SubjectSuffix(n.Proximity))
}

// Prefix is the third person object pronoun agreeing with the noun.
func (n Noun) Prefix() string {
	return Pronoun{
		Person:      yaduha.Third,
		Plurality:   n.Plurality,
		Proximity:   n.Proximity,
		Inclusivity: Exclusive,
	}.ObjectForm()
}

func (n Noun) objectWord() string {
	return n.Render(yaduha.ObjectRole)
}

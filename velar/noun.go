package velar

import (
	"github.com/cours-de-latin/yaduha"
)

const (
	pluralSuffix     = "-es"
	animateArticle   = "le"
	inanimateArticle = "la"
)

// Noun is a lexical noun phrase. Its form does not depend on its role.
type Noun struct {
	Head     string        `json:"head"`
	Number   yaduha.Number `json:"number"`
	Definite bool          `json:"definite"`
}

func (Noun) isNominal() {}

// Validate checks the head and number. The role is irrelevant.
func (n Noun) Validate(yaduha.Role) error {
	if _, err := Vocabulary.Entry(yaduha.Nouns, n.Head); err != nil {
		return err
	}
	return yaduha.Numbers.Check("number", n.Number)
}

// Animate reports whether the head noun is in the animate class.
func (n Noun) Animate() bool {
	class, _ := Vocabulary.ClassOf(yaduha.Nouns, n.Head)
	return class == Animate
}

// Render returns the root, pluralised with -es, preceded by le or la when
// definite.
func (n Noun) Render(yaduha.Role) string {
	form := Vocabulary.MustTarget(yaduha.Nouns, n.Head)
	if n.Number == yaduha.Plural {
		form += pluralSuffix
	}
	if !n.Definite {
		return form
	}
	if n.Animate() {
		return yaduha.JoinWords(animateArticle, form)
	}
	return yaduha.JoinWords(inanimateArticle, form)
}

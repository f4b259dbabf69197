package ovp

import (
	"encoding/json"

	"github.com/cours-de-latin/yaduha"
)

// Nominal is a subject or object: a Noun or a Pronoun.
type Nominal interface {
	Validate() error
	// Render returns the free-standing form of the nominal in role.
	Render(role yaduha.Role) string
	// Prefix returns the object pronoun fused onto a transitive verb
	// when the nominal is its object.
	Prefix() string
	// objectWord returns the separate object constituent, empty when the
	// object only surfaces as the verb prefix.
	objectWord() string
	isNominal()
}

// Sentence is the single OVP sentence shape. The presence of Object
// selects the transitive verb lexicon and the word order.
type Sentence struct {
	Subject Nominal `json:"subject"`
	Verb    Verb    `json:"verb"`
	Object  Nominal `json:"object"`
}

// New builds and validates a sentence. A nil object makes it intransitive.
func New(subject Nominal, verb Verb, object Nominal) (Sentence, error) {
	s := Sentence{Subject: subject, Verb: verb, Object: object}
	if err := s.Validate(); err != nil {
		return Sentence{}, err
	}
	return s, nil
}

// Transitive reports whether the sentence has an object.
func (s Sentence) Transitive() bool {
	return s.Object != nil
}

// Validate checks the constituents and that the verb lemma exists with
// the transitivity implied by the object.
func (s Sentence) Validate() error {
	if s.Subject == nil {
		return yaduha.InvalidFeature("subject", "missing subject")
	}
	if err := s.Subject.Validate(); err != nil {
		return yaduha.InField("subject", err)
	}
	if err := s.Verb.Validate(s.Transitive()); err != nil {
		return err
	}
	if s.Object != nil {
		if err := s.Object.Validate(); err != nil {
			return yaduha.InField("object", err)
		}
	}
	return nil
}

// String renders the sentence. Without an object the order is Verb
// Subject; with one it is Subject Object Verb, the verb carrying the
// object prefix. A pronoun object has no word of its own.
func (s Sentence) String() string {
	subject := s.Subject.Render(yaduha.SubjectRole)
	if s.Object == nil {
		return yaduha.JoinWords(s.Verb.Render(""), subject)
	}
	return yaduha.JoinWords(subject, s.Object.objectWord(), s.Verb.Render(s.Object.Prefix()))
}

// UnmarshalJSON decodes and validates a sentence document.
func (s *Sentence) UnmarshalJSON(data []byte) error {
	members, err := yaduha.Members(data)
	if err != nil {
		return err
	}
	if err := yaduha.CheckMembers(members, "subject", "verb", "object"); err != nil {
		return err
	}

	var out Sentence
	raw, err := yaduha.Member(members, "subject")
	if err != nil {
		return err
	}
	if out.Subject, err = decodeNominal("subject", raw); err != nil {
		return err
	}
	if raw, err = yaduha.Member(members, "verb"); err != nil {
		return err
	}
	if err := yaduha.DecodeJSON(raw, &out.Verb); err != nil {
		return yaduha.InField("verb", err)
	}
	if yaduha.HasMember(members, "object") {
		if out.Object, err = decodeNominal("object", members["object"]); err != nil {
			return err
		}
	}
	if err := out.Validate(); err != nil {
		return err
	}
	*s = out
	return nil
}

func decodeNominal(field string, raw json.RawMessage) (Nominal, error) {
	isNoun, err := yaduha.IsNounDocument(field, raw)
	if err != nil {
		return nil, err
	}
	if isNoun {
		var n Noun
		if err := yaduha.DecodeJSON(raw, &n); err != nil {
			return nil, yaduha.InField(field, err)
		}
		return n, nil
	}
	var p Pronoun
	if err := yaduha.DecodeJSON(raw, &p); err != nil {
		return nil, yaduha.InField(field, err)
	}
	return p, nil
}

// Decode parses and validates a sentence document.
func Decode(data []byte) (Sentence, error) {
	var s Sentence
	if err := yaduha.DecodeJSON(data, &s); err != nil {
		return Sentence{}, err
	}
	return s, nil
}

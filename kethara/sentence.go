package kethara

import (
	"encoding/json"

	"github.com/cours-de-latin/yaduha"
)

// Nominal is a subject or object: a Noun or a Pronoun.
type Nominal interface {
	Validate() error
	Render(role yaduha.Role) string
	isNominal()
}

// SubjectVerb is an intransitive sentence, rendered Subject Verb.
type SubjectVerb struct {
	Subject Nominal `json:"subject"`
	Verb    Verb    `json:"verb"`
}

// SubjectObjectVerb is a transitive sentence, rendered Subject Object
// Verb with the object in the accusative unless it has a spatial case.
type SubjectObjectVerb struct {
	Subject Nominal `json:"subject"`
	Object  Nominal `json:"object"`
	Verb    Verb    `json:"verb"`
}

// NewSubjectVerb builds and validates an intransitive sentence.
func NewSubjectVerb(subject Nominal, verb Verb) (SubjectVerb, error) {
	s := SubjectVerb{Subject: subject, Verb: verb}
	if err := s.Validate(); err != nil {
		return SubjectVerb{}, err
	}
	return s, nil
}

// NewSubjectObjectVerb builds and validates a transitive sentence.
func NewSubjectObjectVerb(subject, object Nominal, verb Verb) (SubjectObjectVerb, error) {
	s := SubjectObjectVerb{Subject: subject, Object: object, Verb: verb}
	if err := s.Validate(); err != nil {
		return SubjectObjectVerb{}, err
	}
	return s, nil
}

func (SubjectVerb) Transitive() bool       { return false }
func (SubjectObjectVerb) Transitive() bool { return true }

func validateNominal(field string, n Nominal) error {
	if n == nil {
		return yaduha.InvalidFeature(field, "missing %s", field)
	}
	return yaduha.InField(field, n.Validate())
}

func (s SubjectVerb) Validate() error {
	if err := validateNominal("subject", s.Subject); err != nil {
		return err
	}
	return s.Verb.Validate(false)
}

func (s SubjectObjectVerb) Validate() error {
	if err := validateNominal("subject", s.Subject); err != nil {
		return err
	}
	if err := validateNominal("object", s.Object); err != nil {
		return err
	}
	return s.Verb.Validate(true)
}

func (s SubjectVerb) String() string {
	return yaduha.JoinWords(s.Subject.Render(yaduha.SubjectRole), s.Verb.Render(false))
}

func (s SubjectObjectVerb) String() string {
	return yaduha.JoinWords(
		s.Subject.Render(yaduha.SubjectRole),
		s.Object.Render(yaduha.ObjectRole),
		s.Verb.Render(true),
	)
}

// UnmarshalJSON decodes and validates an intransitive sentence document.
// A null object is accepted.
func (s *SubjectVerb) UnmarshalJSON(data []byte) error {
	members, err := yaduha.Members(data)
	if err != nil {
		return err
	}
	if yaduha.IsNull(members["object"]) {
		delete(members, "object")
	}
	if err := yaduha.CheckMembers(members, "subject", "verb"); err != nil {
		return err
	}
	var out SubjectVerb
	if out.Subject, err = decodeNominal(members, "subject"); err != nil {
		return err
	}
	if err := decodeVerb(members, &out.Verb); err != nil {
		return err
	}
	if err := out.Validate(); err != nil {
		return err
	}
	*s = out
	return nil
}

// UnmarshalJSON decodes and validates a transitive sentence document.
func (s *SubjectObjectVerb) UnmarshalJSON(data []byte) error {
	members, err := yaduha.Members(data)
	if err != nil {
		return err
	}
	if err := yaduha.CheckMembers(members, "subject", "object", "verb"); err != nil {
		return err
	}
	var out SubjectObjectVerb
	if out.Subject, err = decodeNominal(members, "subject"); err != nil {
		return err
	}
	if out.Object, err = decodeNominal(members, "object"); err != nil {
		return err
	}
	if err := decodeVerb(members, &out.Verb); err != nil {
		return err
	}
	if err := out.Validate(); err != nil {
		return err
	}
	*s = out
	return nil
}

func decodeVerb(members map[string]json.RawMessage, v *Verb) error {
	raw, err := yaduha.Member(members, "verb")
	if err != nil {
		return err
	}
	return yaduha.InField("verb", yaduha.DecodeJSON(raw, v))
}

func decodeNominal(members map[string]json.RawMessage, field string) (Nominal, error) {
	raw, err := yaduha.Member(members, field)
	if err != nil {
		return nil, err
	}
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

// Decode parses a sentence document. A document with a non-null object
// is a SubjectObjectVerb, any other a SubjectVerb.
func Decode(data []byte) (yaduha.Sentence, error) {
	members, err := yaduha.Members(data)
	if err != nil {
		return nil, err
	}
	if yaduha.HasMember(members, "object") {
		var s SubjectObjectVerb
		if err := yaduha.DecodeJSON(data, &s); err != nil {
			return nil, err
		}
		return s, nil
	}
	var s SubjectVerb
	if err := yaduha.DecodeJSON(data, &s); err != nil {
		return nil, err
	}
	return s, nil
}

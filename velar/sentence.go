package velar

import (
	"encoding/json"

	"github.com/cours-de-latin/yaduha"
)

// Nominal is a subject or object: a Noun or a Pronoun.
type Nominal interface {
	Validate(role yaduha.Role) error
	Render(role yaduha.Role) string
	isNominal()
}

// VerbSubject is an intransitive sentence, rendered Verb Subject.
type VerbSubject struct {
	Verb    Verb    `json:"verb"`
	Subject Nominal `json:"subject"`
}

// VerbSubjectObject is a transitive sentence, rendered Verb Subject Object.
type VerbSubjectObject struct {
	Verb    Verb    `json:"verb"`
	Subject Nominal `json:"subject"`
	Object  Nominal `json:"object"`
}

// NewVerbSubject builds and validates an intransitive sentence.
func NewVerbSubject(verb Verb, subject Nominal) (VerbSubject, error) {
	s := VerbSubject{Verb: verb, Subject: subject}
	if err := s.Validate(); err != nil {
		return VerbSubject{}, err
	}
	return s, nil
}

// NewVerbSubjectObject builds and validates a transitive sentence.
func NewVerbSubjectObject(verb Verb, subject, object Nominal) (VerbSubjectObject, error) {
	s := VerbSubjectObject{Verb: verb, Subject: subject, Object: object}
	if err := s.Validate(); err != nil {
		return VerbSubjectObject{}, err
	}
	return s, nil
}

func (VerbSubject) Transitive() bool       { return false }
func (VerbSubjectObject) Transitive() bool { return true }

func validateNominal(field string, n Nominal, role yaduha.Role) error {
	if n == nil {
		return yaduha.InvalidFeature(field, "missing %s", field)
	}
	return yaduha.InField(field, n.Validate(role))
}

// Validate checks that the verb is intransitive and the subject valid.
func (s VerbSubject) Validate() error {
	if err := s.Verb.Validate(false); err != nil {
		return err
	}
	return validateNominal("subject", s.Subject, yaduha.SubjectRole)
}

// Validate checks that the verb is transitive and both nominals valid.
func (s VerbSubjectObject) Validate() error {
	if err := s.Verb.Validate(true); err != nil {
		return err
	}
	if err := validateNominal("subject", s.Subject, yaduha.SubjectRole); err != nil {
		return err
	}
	return validateNominal("object", s.Object, yaduha.ObjectRole)
}

func (s VerbSubject) String() string {
	return yaduha.JoinWords(s.Verb.Render(false), s.Subject.Render(yaduha.SubjectRole))
}

func (s VerbSubjectObject) String() string {
	return yaduha.JoinWords(
		s.Verb.Render(true),
		s.Subject.Render(yaduha.SubjectRole),
		s.Object.Render(yaduha.ObjectRole),
	)
}

// UnmarshalJSON decodes and validates an intransitive sentence document.
// A null object is accepted.
func (s *VerbSubject) UnmarshalJSON(data []byte) error {
	members, err := yaduha.Members(data)
	if err != nil {
		return err
	}
	if yaduha.IsNull(members["object"]) {
		delete(members, "object")
	}
	if err := yaduha.CheckMembers(members, "verb", "subject"); err != nil {
		return err
	}
	var out VerbSubject
	if err := decodeVerb(members, &out.Verb); err != nil {
		return err
	}
	if out.Subject, err = decodeNominal(members, "subject"); err != nil {
		return err
	}
	if err := out.Validate(); err != nil {
		return err
	}
	*s = out
	return nil
}

// UnmarshalJSON decodes and validates a transitive sentence document.
func (s *VerbSubjectObject) UnmarshalJSON(data []byte) error {
	members, err := yaduha.Members(data)
	if err != nil {
		return err
	}
	if err := yaduha.CheckMembers(members, "verb", "subject", "object"); err != nil {
		return err
	}
	var out VerbSubjectObject
	if err := decodeVerb(members, &out.Verb); err != nil {
		return err
	}
	if out.Subject, err = decodeNominal(members, "subject"); err != nil {
		return err
	}
	if out.Object, err = decodeNominal(members, "object"); err != nil {
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
// is a VerbSubjectObject, any other a VerbSubject.
func Decode(data []byte) (yaduha.Sentence, error) {
	members, err := yaduha.Members(data)
	if err != nil {
		return nil, err
	}
	if yaduha.HasMember(members, "object") {
		var s VerbSubjectObject
		if err := yaduha.DecodeJSON(data, &s); err != nil {
			return nil, err
		}
		return s, nil
	}
	var s VerbSubject
	if err := yaduha.DecodeJSON(data, &s); err != nil {
		return nil, err
	}
	return s, nil
}

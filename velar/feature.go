package velar

import "github.com/cours-de-latin/yaduha"

// Gender of a pronoun.
type Gender uint8

const (
	_ Gender = iota
	Masculine
	Feminine
	Neuter
)

var Genders = yaduha.NewEnum[Gender]("gender", "masculine", "feminine", "neuter")

func (g Gender) String() string                { return Genders.Name(g) }
func (g Gender) MarshalText() ([]byte, error)  { return Genders.Marshal(g) }
func (g *Gender) UnmarshalText(b []byte) error { return Genders.Unmarshal(b, g) }

// Formality is the register of a second person pronoun.
type Formality uint8

const (
	_ Formality = iota
	Informal
	Formal
	Honorific
)

var Formalities = yaduha.NewEnum[Formality]("formality", "informal", "formal", "honorific")

func (f Formality) String() string                { return Formalities.Name(f) }
func (f Formality) MarshalText() ([]byte, error)  { return Formalities.Marshal(f) }
func (f *Formality) UnmarshalText(b []byte) error { return Formalities.Unmarshal(b, f) }

// Ref returns a pointer to a copy of f, for the optional Pronoun field.
func (f Formality) Ref() *Formality { return &f }

// Aspect of a verb.
type Aspect uint8

const (
	_ Aspect = iota
	Simple
	Progressive
	Perfect
)

var Aspects = yaduha.NewEnum[Aspect]("aspect", "simple", "progressive", "perfect")

func (a Aspect) String() string                { return Aspects.Name(a) }
func (a Aspect) MarshalText() ([]byte, error)  { return Aspects.Marshal(a) }
func (a *Aspect) UnmarshalText(b []byte) error { return Aspects.Unmarshal(b, a) }

// Evidentiality marks how the speaker knows what the verb states.
type Evidentiality uint8

const (
	_ Evidentiality = iota
	Direct
	Hearsay
	Inferential
)

var Evidentialities = yaduha.NewEnum[Evidentiality]("evidentiality", "direct", "hearsay", "inferential")

func (e Evidentiality) String() string                { return Evidentialities.Name(e) }
func (e Evidentiality) MarshalText() ([]byte, error)  { return Evidentialities.Marshal(e) }
func (e *Evidentiality) UnmarshalText(b []byte) error { return Evidentialities.Unmarshal(b, e) }

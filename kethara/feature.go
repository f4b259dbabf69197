package kethara

import "github.com/cours-de-latin/yaduha"

// NounClass is the semantic class of a noun. It has no effect on
// rendering.
type NounClass uint8

const (
	_ NounClass = iota
	Human
	Animal
	Plant
	Object
	Abstract
)

var NounClasses = yaduha.NewEnum[NounClass]("noun class", "human", "animal", "plant", "object", "abstract")

func (c NounClass) String() string                { return NounClasses.Name(c) }
func (c NounClass) MarshalText() ([]byte, error)  { return NounClasses.Marshal(c) }
func (c *NounClass) UnmarshalText(b []byte) error { return NounClasses.Unmarshal(b, c) }

// Case is the grammatical or spatial case of a nominal. The zero value
// stands for the positional default: nominative for a subject,
// accusative for an object.
type Case uint8

const (
	_ Case = iota
	Nominative
	Accusative
	Illative
	Elative
	Adessive
	Inessive
)

var Cases = yaduha.NewEnum[Case]("case", "nominative", "accusative", "illative", "elative", "adessive", "inessive")

func (c Case) String() string                { return Cases.Name(c) }
func (c Case) MarshalText() ([]byte, error)  { return Cases.Marshal(c) }
func (c *Case) UnmarshalText(b []byte) error { return Cases.Unmarshal(b, c) }

// Mood of a verb; zero means indicative.
type Mood uint8

const (
	_ Mood = iota
	Indicative
	Conditional
	Imperative
)

var Moods = yaduha.NewEnum[Mood]("mood", "indicative", "conditional", "imperative")

func (m Mood) String() string                { return Moods.Name(m) }
func (m Mood) MarshalText() ([]byte, error)  { return Moods.Marshal(m) }
func (m *Mood) UnmarshalText(b []byte) error { return Moods.Unmarshal(b, m) }

// Politeness is marked on the verb; zero means plain.
type Politeness uint8

const (
	_ Politeness = iota
	Plain
	Polite
	Formal
)

var Politenesses = yaduha.NewEnum[Politeness]("politeness", "plain", "polite", "formal")

func (p Politeness) String() string                { return Politenesses.Name(p) }
func (p Politeness) MarshalText() ([]byte, error)  { return Politenesses.Marshal(p) }
func (p *Politeness) UnmarshalText(b []byte) error { return Politenesses.Unmarshal(b, p) }

// checkOptional validates v unless it is zero, which selects a default.
func checkOptional[T ~uint8](e yaduha.Enum[T], field string, v T) error {
	if v == 0 {
		return nil
	}
	return e.Check(field, v)
}

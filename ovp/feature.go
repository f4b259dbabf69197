package ovp

import "github.com/cours-de-latin/yaduha"

// Plurality distinguishes singular, dual and plural referents.
type Plurality uint8

const (
	_ Plurality = iota
	Singular
	Dual
	Plural
)

var Pluralities = yaduha.NewEnum[Plurality]("plurality", "singular", "dual", "plural")

func (p Plurality) String() string                { return Pluralities.Name(p) }
func (p Plurality) MarshalText() ([]byte, error)  { return Pluralities.Marshal(p) }
func (p *Plurality) UnmarshalText(b []byte) error { return Pluralities.Unmarshal(b, p) }

// Proximity marks a referent as near (proximal) or far (distal).
type Proximity uint8

const (
	_ Proximity = iota
	Proximal
	Distal
)

var Proximities = yaduha.NewEnum[Proximity]("proximity", "proximal", "distal")

func (p Proximity) String() string                { return Proximities.Name(p) }
func (p Proximity) MarshalText() ([]byte, error)  { return Proximities.Marshal(p) }
func (p *Proximity) UnmarshalText(b []byte) error { return Proximities.Unmarshal(b, p) }

// Inclusivity tells whether a first person plural includes the hearer.
type Inclusivity uint8

const (
	_ Inclusivity = iota
	Inclusive
	Exclusive
)

var Inclusivities = yaduha.NewEnum[Inclusivity]("inclusivity", "inclusive", "exclusive")

func (i Inclusivity) String() string                { return Inclusivities.Name(i) }
func (i Inclusivity) MarshalText() ([]byte, error)  { return Inclusivities.Marshal(i) }
func (i *Inclusivity) UnmarshalText(b []byte) error { return Inclusivities.Unmarshal(b, i) }

// Aspect combines with tense into a single verb suffix.
type Aspect uint8

const (
	_ Aspect = iota
	Continuous
	Simple
	Perfect
)

var Aspects = yaduha.NewEnum[Aspect]("aspect", "continuous", "simple", "perfect")

func (a Aspect) String() string                { return Aspects.Name(a) }
func (a Aspect) MarshalText() ([]byte, error)  { return Aspects.Marshal(a) }
func (a *Aspect) UnmarshalText(b []byte) error { return Aspects.Unmarshal(b, a) }

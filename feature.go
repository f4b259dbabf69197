package yaduha

import (
	"fmt"
	"math/rand/v2"
)

// Enum describes a closed set of feature values of type T.
//
// Values are 1-based: names[0] is unused and the zero value of T means
// "unset", so a field that was never assigned fails validation instead of
// silently taking the first value.
type Enum[T ~uint8] struct {
	kind  string
	names []string
}

// NewEnum builds an Enum whose value i (1-based) is named names[i-1].
func NewEnum[T ~uint8](kind string, names ...string) Enum[T] {
	return Enum[T]{
		kind:  kind,
		names: append([]string{""}, names...), // index 0 unused
	}
}

// Kind is the feature dimension name ("tense", "person", ...).
func (e Enum[T]) Kind() string {
	return e.kind
}

// Len is the number of valid values.
func (e Enum[T]) Len() int {
	return len(e.names) - 1
}

// Valid reports whether v is one of the enum's values.
func (e Enum[T]) Valid(v T) bool {
	return v > 0 && int(v) < len(e.names)
}

// Name returns the lowercase name of v.
func (e Enum[T]) Name(v T) string {
	if !e.Valid(v) {
		return fmt.Sprintf("%s(%d)", e.kind, uint8(v))
	}
	return e.names[v]
}

// Names returns all value names in declaration order.
func (e Enum[T]) Names() []string {
	out := make([]string, len(e.names)-1)
	copy(out, e.names[1:])
	return out
}

// Values returns all values in declaration order.
func (e Enum[T]) Values() []T {
	out := make([]T, 0, len(e.names)-1)
	for i := 1; i < len(e.names); i++ {
		out = append(out, T(i))
	}
	return out
}

// Parse maps a name back to its value.
func (e Enum[T]) Parse(s string) (T, error) {
	for i := 1; i < len(e.names); i++ {
		if e.names[i] == s {
			return T(i), nil
		}
	}
	return 0, InvalidFeature(e.kind, "unknown value %q", s)
}

// Check validates v as the value of field.
func (e Enum[T]) Check(field string, v T) error {
	if v == 0 {
		return InvalidFeature(field, "missing %s", e.kind)
	}
	if !e.Valid(v) {
		return InvalidFeature(field, "%s value %d out of range", e.kind, uint8(v))
	}
	return nil
}

// Marshal is a MarshalText helper.
func (e Enum[T]) Marshal(v T) ([]byte, error) {
	if !e.Valid(v) {
		return nil, InvalidFeature(e.kind, "cannot encode value %d", uint8(v))
	}
	return []byte(e.names[v]), nil
}

// Unmarshal is an UnmarshalText helper.
func (e Enum[T]) Unmarshal(text []byte, v *T) error {
	parsed, err := e.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Random draws a value uniformly.
func (e Enum[T]) Random(r *rand.Rand) T {
	return T(1 + IntN(r, e.Len()))
}

// Person is shared by all three grammars.
type Person uint8

const (
	_ Person = iota
	First
	Second
	Third
)

var Persons = NewEnum[Person]("person", "first", "second", "third")

func (p Person) String() string                { return Persons.Name(p) }
func (p Person) MarshalText() ([]byte, error)  { return Persons.Marshal(p) }
func (p *Person) UnmarshalText(b []byte) error { return Persons.Unmarshal(b, p) }

// Number is the singular/plural opposition of Velar and Kethara.
// OVP has its own three-way plurality.
type Number uint8

const (
	_ Number = iota
	Singular
	Plural
)

var Numbers = NewEnum[Number]("number", "singular", "plural")

func (n Number) String() string                { return Numbers.Name(n) }
func (n Number) MarshalText() ([]byte, error)  { return Numbers.Marshal(n) }
func (n *Number) UnmarshalText(b []byte) error { return Numbers.Unmarshal(b, n) }

// Tense is shared by all three grammars.
type Tense uint8

const (
	_ Tense = iota
	Past
	Present
	Future
)

var Tenses = NewEnum[Tense]("tense", "past", "present", "future")

func (t Tense) String() string                { return Tenses.Name(t) }
func (t Tense) MarshalText() ([]byte, error)  { return Tenses.Marshal(t) }
func (t *Tense) UnmarshalText(b []byte) error { return Tenses.Unmarshal(b, t) }

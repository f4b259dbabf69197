// Package yaduha renders structured sentences of small constructed
// languages into surface text.
//
// Each grammar (see the ovp, velar and kethara packages) defines its own
// feature enums, vocabulary and sentence shapes; this package holds what
// they share: the closed lexicon registry, the enum machinery, the two
// construction-time error kinds and the Sentence/Language contracts used
// by the command-line tool and the HTTP server.
package yaduha

import (
	"fmt"
	"iter"
	"math/rand/v2"
)

// Role is the syntactic position a nominal is rendered in.
type Role uint8

const (
	_ Role = iota
	SubjectRole
	ObjectRole
)

func (r Role) String() string {
	switch r {
	case SubjectRole:
		return "subject"
	case ObjectRole:
		return "object"
	default:
		return fmt.Sprintf("Role(%d)", uint8(r))
	}
}

// Sentence is a validated structured sentence of one grammar.
//
// String renders the sentence. It is total for every value that passed
// Validate; sentences obtained from a grammar's constructors, its decoder
// or its sampler are always valid.
type Sentence interface {
	fmt.Stringer
	// Validate reports an ErrUnknownLexeme or ErrInvalidFeatureCombination
	// error if the sentence cannot be rendered.
	Validate() error
	// Transitive reports whether the sentence carries an object.
	Transitive() bool
}

// Example is a few-shot pair of an English sentence and its structured form.
type Example struct {
	English  string
	Sentence Sentence
}

// Language is the public surface of one grammar.
type Language interface {
	// Name is the lowercase identifier of the grammar ("ovp", "velar", ...).
	Name() string
	// Lexicon returns the grammar's closed vocabulary.
	Lexicon() *Lexicon
	// Decode parses and validates a sentence document.
	Decode(data []byte) (Sentence, error)
	// SampleSeq yields n random well-formed sentences. A nil r uses
	// the global random source.
	SampleSeq(r *rand.Rand, n int) iter.Seq[Sentence]
	// Sample collects SampleSeq.
	Sample(r *rand.Rand, n int) []Sentence
	// Examples returns the bundled few-shot examples.
	Examples() []Example
	// Schema returns the JSON Schema of a sentence document.
	Schema() map[string]any
	// Inflect enumerates every form of a verb lemma.
	Inflect(lemma string) (*InflectionTable, error)
}

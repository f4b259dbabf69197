package yaduha

import (
	"fmt"
)

// Partition is one of the three disjoint parts of a lexicon.
type Partition uint8

const (
	Nouns Partition = iota
	TransitiveVerbs
	IntransitiveVerbs
	numPartitions
)

func (p Partition) String() string {
	switch p {
	case Nouns:
		return "noun"
	case TransitiveVerbs:
		return "transitive verb"
	case IntransitiveVerbs:
		return "intransitive verb"
	default:
		return fmt.Sprintf("Partition(%d)", uint8(p))
	}
}

// Entry links an English lemma to its target-language form.
type Entry struct {
	// English is the lemma as written in the vocabulary file.
	English string `json:"english"`
	// Target is the root form in the constructed language.
	Target string `json:"target"`
	// Class is the semantic tag of a noun (animacy or noun class);
	// empty when the grammar has none.
	Class string `json:"class,omitempty"`
}

// Lexicon is a closed, immutable vocabulary: one lookup per partition,
// keyed by NormalizeKey of the English lemma. There is no way to add or
// change entries after construction, so a *Lexicon may be shared by any
// number of goroutines.
type Lexicon struct {
	// entries holds each partition in definition order.
	entries [numPartitions][]Entry
	// index maps partition → normalized key → position in entries.
	index [numPartitions]map[string]int
}

// LexiconOption relaxes a check made by NewLexicon.
type LexiconOption func(*lexiconConf)

type lexiconConf struct {
	sharedVerbLemmas bool
}

// AllowSharedVerbLemmas permits a lemma in both verb partitions. Only
// grammars whose sentence shape selects the partition may use it.
func AllowSharedVerbLemmas() LexiconOption {
	return func(c *lexiconConf) {
		c.sharedVerbLemmas = true
	}
}

// NewLexicon builds a lexicon from the three partitions. It fails if a
// lemma repeats within a partition, if an entry has an empty lemma or
// target, or (unless AllowSharedVerbLemmas is given) if a lemma is both
// transitive and intransitive.
func NewLexicon(nouns, transitive, intransitive []Entry, opts ...LexiconOption) (*Lexicon, error) {
	var conf lexiconConf
	for _, opt := range opts {
		opt(&conf)
	}
	l := &Lexicon{}
	parts := [numPartitions][]Entry{
		Nouns:             nouns,
		TransitiveVerbs:   transitive,
		IntransitiveVerbs: intransitive,
	}
	for p, list := range parts {
		l.entries[p] = make([]Entry, 0, len(list))
		l.index[p] = make(map[string]int, len(list))
		for _, e := range list {
			key := NormalizeKey(e.English)
			if key == "" || e.Target == "" {
				return nil, fmt.Errorf("%s entry %q: empty lemma or target", Partition(p), e.English)
			}
			if _, dup := l.index[p][key]; dup {
				return nil, fmt.Errorf("duplicate %s %q", Partition(p), e.English)
			}
			l.index[p][key] = len(l.entries[p])
			l.entries[p] = append(l.entries[p], e)
		}
	}
	if !conf.sharedVerbLemmas {
		for key := range l.index[TransitiveVerbs] {
			if _, ok := l.index[IntransitiveVerbs][key]; ok {
				return nil, fmt.Errorf("lemma %q is both transitive and intransitive", key)
			}
		}
	}
	return l, nil
}

func (l *Lexicon) find(p Partition, lemma string) (Entry, bool) {
	if p >= numPartitions {
		return Entry{}, false
	}
	i, ok := l.index[p][NormalizeKey(lemma)]
	if !ok {
		return Entry{}, false
	}
	return l.entries[p][i], true
}

// Has reports whether lemma is in partition p.
func (l *Lexicon) Has(p Partition, lemma string) bool {
	_, ok := l.find(p, lemma)
	return ok
}

// Entry returns the entry of lemma in partition p.
func (l *Lexicon) Entry(p Partition, lemma string) (Entry, error) {
	e, ok := l.find(p, lemma)
	if !ok {
		return Entry{}, &LexemeError{Partition: p, Lemma: lemma}
	}
	return e, nil
}

// Lookup returns the target form of lemma in partition p.
func (l *Lexicon) Lookup(p Partition, lemma string) (string, error) {
	e, err := l.Entry(p, lemma)
	if err != nil {
		return "", err
	}
	return e.Target, nil
}

// ClassOf returns the semantic tag of lemma in partition p.
func (l *Lexicon) ClassOf(p Partition, lemma string) (string, error) {
	e, err := l.Entry(p, lemma)
	if err != nil {
		return "", err
	}
	return e.Class, nil
}

// Verb resolves a verb lemma for the given transitivity. A lemma known
// only with the other transitivity is an invalid feature combination
// (an object was given to an intransitive verb or withheld from a
// transitive one); a lemma in neither partition is an unknown lexeme.
func (l *Lexicon) Verb(lemma string, transitive bool) (Entry, error) {
	want, other := IntransitiveVerbs, TransitiveVerbs
	if transitive {
		want, other = TransitiveVerbs, IntransitiveVerbs
	}
	if e, ok := l.find(want, lemma); ok {
		return e, nil
	}
	if l.Has(other, lemma) {
		if transitive {
			return Entry{}, InvalidFeature("verb.lemma", "%q is intransitive but the sentence has an object", lemma)
		}
		return Entry{}, InvalidFeature("verb.lemma", "%q is transitive but the sentence has no object", lemma)
	}
	return Entry{}, &LexemeError{Partition: want, Lemma: lemma}
}

// MustTarget is Lookup for renderers working on validated values; a miss
// is a programming error and panics.
func (l *Lexicon) MustTarget(p Partition, lemma string) string {
	t, err := l.Lookup(p, lemma)
	if err != nil {
		panic(fmt.Sprintf("rendering unvalidated value: %v", err))
	}
	return t
}

// Entries returns a copy of partition p in definition order.
func (l *Lexicon) Entries(p Partition) []Entry {
	if p >= numPartitions {
		return nil
	}
	out := make([]Entry, len(l.entries[p]))
	copy(out, l.entries[p])
	return out
}

// Lemmas returns the English lemmas of partition p in definition order.
func (l *Lexicon) Lemmas(p Partition) []string {
	if p >= numPartitions {
		return nil
	}
	out := make([]string, len(l.entries[p]))
	for i, e := range l.entries[p] {
		out[i] = e.English
	}
	return out
}

// Len returns the number of entries in partition p.
func (l *Lexicon) Len(p Partition) int {
	if p >= numPartitions {
		return 0
	}
	return len(l.entries[p])
}

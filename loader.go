package yaduha

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// sectionPartitions maps a vocabulary file section name to its partition.
var sectionPartitions = map[string]Partition{
	"nouns":        Nouns,
	"transitive":   TransitiveVerbs,
	"intransitive": IntransitiveVerbs,
}

// LoadLexicon reads a vocabulary file and builds a Lexicon.
//
// Format: lines starting with "!" are comments, blank lines are skipped.
// A section header "[nouns]", "[transitive]" or "[intransitive]" selects
// the partition of the following entries; a header may carry a class,
// "[nouns:animate]", which becomes the Class of every entry until the next
// header. Entries are "english|target" or "english|target|class", the
// explicit class winning over the section one.
func LoadLexicon(r io.Reader, opts ...LexiconOption) (*Lexicon, error) {
	var parts [numPartitions][]Entry
	var (
		current      Partition
		sectionClass string
		inSection    bool
		lineNo       int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") {
				return nil, fmt.Errorf("line %d: unterminated section header %q", lineNo, line)
			}
			name, class, _ := strings.Cut(line[1:len(line)-1], ":")
			p, ok := sectionPartitions[strings.TrimSpace(name)]
			if !ok {
				return nil, fmt.Errorf("line %d: unknown section %q", lineNo, name)
			}
			current, sectionClass, inSection = p, strings.TrimSpace(class), true
			continue
		}

		if !inSection {
			return nil, fmt.Errorf("line %d: entry outside of a section", lineNo)
		}
		eclats := strings.Split(line, "|")
		if len(eclats) < 2 || len(eclats) > 3 {
			return nil, fmt.Errorf("line %d: expected english|target[|class], got %q", lineNo, line)
		}
		e := Entry{
			English: strings.TrimSpace(eclats[0]),
			Target:  strings.TrimSpace(eclats[1]),
			Class:   sectionClass,
		}
		if len(eclats) == 3 {
			e.Class = strings.TrimSpace(eclats[2])
		}
		parts[current] = append(parts[current], e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}
	return NewLexicon(parts[Nouns], parts[TransitiveVerbs], parts[IntransitiveVerbs], opts...)
}

// MustLoadLexicon is LoadLexicon for vocabularies compiled into the
// binary; a parse error is a build defect and panics.
func MustLoadLexicon(src string, opts ...LexiconOption) *Lexicon {
	l, err := LoadLexicon(strings.NewReader(src), opts...)
	if err != nil {
		panic(fmt.Sprintf("load vocabulary: %v", err))
	}
	return l
}

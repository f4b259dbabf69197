package velar

import (
	_ "embed"

	"github.com/cours-de-latin/yaduha"
)

//go:embed vocabulary.txt
var vocabularySrc string

// Vocabulary is the closed Velar lexicon. Nouns are classed "animate" or
// "inanimate".
var Vocabulary = yaduha.MustLoadLexicon(vocabularySrc)

// Animacy classes of the noun partition.
const (
	Animate   = "animate"
	Inanimate = "inanimate"
)

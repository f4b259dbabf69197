package kethara

import (
	_ "embed"

	"github.com/cours-de-latin/yaduha"
)

//go:embed vocabulary.txt
var vocabularySrc string

// Vocabulary is the closed Kethara lexicon. Every noun carries its
// NounClass name as class.
var Vocabulary = yaduha.MustLoadLexicon(vocabularySrc)

package ovp

import (
	_ "embed"

	"github.com/cours-de-latin/yaduha"
)

//go:embed vocabulary.txt
var vocabularySrc string

// Vocabulary is the closed OVP lexicon. Some verbs exist in both verb
// partitions; the sentence shape decides which form is used.
var Vocabulary = yaduha.MustLoadLexicon(vocabularySrc, yaduha.AllowSharedVerbLemmas())

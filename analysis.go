package yaduha

import "strings"

// InflectionTable holds every verb form of one lemma.
type InflectionTable struct {
	// Lemma is the English lemma.
	Lemma string `json:"lemma"`
	// Root is the target-language root the forms are built on.
	Root string `json:"root"`
	// Transitive tells which verb partition Root comes from.
	Transitive bool `json:"transitive"`
	// Keys lists the cell keys in enumeration order.
	Keys []string `json:"keys"`
	// Cells maps a dotted feature key ("past.perfect.direct") to the form.
	Cells map[string]string `json:"cells"`
}

// NewInflectionTable returns an empty table for lemma.
func NewInflectionTable(lemma, root string, transitive bool) *InflectionTable {
	return &InflectionTable{
		Lemma:      lemma,
		Root:       root,
		Transitive: transitive,
		Cells:      make(map[string]string),
	}
}

// Add stores form under the key built from the feature names.
func (t *InflectionTable) Add(form string, features ...string) {
	key := strings.Join(features, ".")
	if _, ok := t.Cells[key]; !ok {
		t.Keys = append(t.Keys, key)
	}
	t.Cells[key] = form
}

// Form returns the form stored under the given feature names.
func (t *InflectionTable) Form(features ...string) (string, bool) {
	f, ok := t.Cells[strings.Join(features, ".")]
	return f, ok
}

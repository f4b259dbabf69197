package kethara

import (
	"encoding/json"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cours-de-latin/yaduha"
)

func TestCatSeesBird(t *testing.T) {
	s, err := NewSubjectObjectVerb(
		Noun{Head: "cat", Number: yaduha.Singular},
		Noun{Head: "bird", Number: yaduha.Singular},
		Verb{Lemma: "see", Tense: yaduha.Present, Mood: Indicative, Politeness: Plain},
	)
	require.NoError(t, err)
	assert.Equal(t, "shiva telunn nakha", s.String())
}

func TestVowelHarmony(t *testing.T) {
	tests := []struct {
		root  string
		front bool
	}{
		{"kirjoit", true},
		{"nakh", false},
		{"juo", false},
		{"syo", true},
		{"TEH", true},
		{"anna", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.front, HasFrontVowel(tt.root), tt.root)
	}

	assert.Equal(t, "ä", Harmonize("a", "kirjoit"))
	assert.Equal(t, "a", Harmonize("a", "nakh"))
	assert.Equal(t, "kö", Harmonize("ko", "tied"))
	assert.Equal(t, "hän", Harmonize("han", "pelki"))
	assert.Equal(t, "ssy", Harmonize("ssu", "e"))
	assert.Equal(t, "nne", Harmonize("nne", "anna"))
}

func TestVerbConjugation(t *testing.T) {
	tests := []struct {
		v          Verb
		transitive bool
		want       string
	}{
		{Verb{Lemma: "write", Tense: yaduha.Present}, true, "kirjoitä"},
		{Verb{Lemma: "drink", Tense: yaduha.Present}, true, "juoa"},
		{Verb{Lemma: "see", Tense: yaduha.Past, Mood: Conditional, Politeness: Polite}, true, "nakhiisivat"},
		{Verb{Lemma: "know", Tense: yaduha.Future, Mood: Imperative, Politeness: Polite}, true, "tiedksekövät"},
		{Verb{Lemma: "sleep", Tense: yaduha.Future, Mood: Imperative, Politeness: Formal}, false, "nukuksekonne"},
		{Verb{Lemma: "cry", Tense: yaduha.Present, Mood: Indicative, Politeness: Plain}, false, "itkeä"},
	}
	for _, tt := range tests {
		require.NoError(t, tt.v.Validate(tt.transitive))
		assert.Equal(t, tt.want, tt.v.Render(tt.transitive), tt.v.Lemma)
	}
}

func TestNounCases(t *testing.T) {
	tests := []struct {
		n    Noun
		role yaduha.Role
		want string
	}{
		{Noun{Head: "house", Number: yaduha.Singular}, yaduha.SubjectRole, "talo"},
		{Noun{Head: "house", Number: yaduha.Plural}, yaduha.SubjectRole, "talot"},
		{Noun{Head: "house", Number: yaduha.Singular}, yaduha.ObjectRole, "talon"},
		{Noun{Head: "house", Number: yaduha.Singular, Case: Nominative}, yaduha.ObjectRole, "talon"},
		{Noun{Head: "house", Number: yaduha.Singular, Case: Inessive}, yaduha.ObjectRole, "talossa"},
		{Noun{Head: "house", Number: yaduha.Plural, Case: Illative}, yaduha.SubjectRole, "talothan"},
		{Noun{Head: "child", Number: yaduha.Singular, Case: Elative}, yaduha.SubjectRole, "pelkistä"},
		{Noun{Head: "rain", Number: yaduha.Plural, Case: Adessive}, yaduha.ObjectRole, "sadetllä"},
	}
	for _, tt := range tests {
		require.NoError(t, tt.n.Validate())
		assert.Equal(t, tt.want, tt.n.Render(tt.role), "%+v %s", tt.n, tt.role)
	}
}

func TestPronounCases(t *testing.T) {
	tests := []struct {
		p    Pronoun
		role yaduha.Role
		want string
	}{
		{Pronoun{Person: yaduha.First, Number: yaduha.Singular}, yaduha.SubjectRole, "min"},
		{Pronoun{Person: yaduha.First, Number: yaduha.Singular}, yaduha.ObjectRole, "minn"},
		{Pronoun{Person: yaduha.Third, Number: yaduha.Singular, Case: Illative}, yaduha.SubjectRole, "hanhan"},
		{Pronoun{Person: yaduha.Third, Number: yaduha.Plural, Case: Illative}, yaduha.SubjectRole, "hehän"},
		{Pronoun{Person: yaduha.Second, Number: yaduha.Plural, Case: Inessive}, yaduha.ObjectRole, "tessä"},
	}
	for _, tt := range tests {
		require.NoError(t, tt.p.Validate())
		assert.Equal(t, tt.want, tt.p.Render(tt.role))
	}
}

func TestNounClasses(t *testing.T) {
	for _, lemma := range Vocabulary.Lemmas(yaduha.Nouns) {
		c, err := Noun{Head: lemma}.Class()
		require.NoError(t, err, lemma)
		assert.True(t, NounClasses.Valid(c))
	}
	c, err := Noun{Head: "seed"}.Class()
	require.NoError(t, err)
	assert.Equal(t, Plant, c)
}

func TestExamples(t *testing.T) {
	want := []string{
		"min nukua",
		"kurma juoksa",
		"telunt laulaa",
		"min sinn nakha",
		"shiva telunn nakha",
		"thera kodann rakastavat",
	}
	ex := Examples()
	require.Len(t, ex, len(want))
	for i, e := range ex {
		require.NoError(t, e.Sentence.Validate(), e.English)
		assert.Equal(t, want[i], e.Sentence.String(), e.English)
	}
}

func TestDecodeDefaults(t *testing.T) {
	doc := `{"subject": {"head": "cat", "number": "singular"},
		"object": {"head": "bird", "number": "singular"},
		"verb": {"lemma": "see", "tense": "present"}}`
	s, err := Decode([]byte(doc))
	require.NoError(t, err)
	require.IsType(t, SubjectObjectVerb{}, s)
	assert.Equal(t, "shiva telunn nakha", s.String())

	doc = `{"subject": {"person": "third", "number": "plural", "case": "adessive"},
		"verb": {"lemma": "laugh", "tense": "past", "mood": "conditional"}, "object": null}`
	s, err = Decode([]byte(doc))
	require.NoError(t, err)
	require.IsType(t, SubjectVerb{}, s)
	assert.Equal(t, "hellä nauraiisi", s.String())
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name, doc, kind string
	}{
		{"unknown case",
			`{"subject": {"head": "cat", "number": "singular", "case": "vocative"}, "verb": {"lemma": "sleep", "tense": "past"}}`,
			"invalid_feature_combination"},
		{"intransitive with object",
			`{"subject": {"head": "cat", "number": "singular"}, "object": {"head": "bird", "number": "singular"}, "verb": {"lemma": "sleep", "tense": "past"}}`,
			"invalid_feature_combination"},
		{"unknown verb",
			`{"subject": {"head": "cat", "number": "singular"}, "verb": {"lemma": "teleport", "tense": "past"}}`,
			"unknown_lexeme"},
		{"missing tense",
			`{"subject": {"head": "cat", "number": "singular"}, "verb": {"lemma": "sleep"}}`,
			"invalid_feature_combination"},
		{"gender is velar",
			`{"subject": {"person": "first", "number": "singular", "gender": "neuter"}, "verb": {"lemma": "sleep", "tense": "past"}}`,
			"invalid_feature_combination"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.doc))
			require.Error(t, err)
			assert.Equal(t, tt.kind, yaduha.ErrorKind(err), err.Error())
		})
	}
}

func TestExamplesRoundTrip(t *testing.T) {
	for _, e := range Examples() {
		data, err := json.Marshal(e.Sentence)
		require.NoError(t, err)
		got, err := Decode(data)
		require.NoError(t, err, string(data))
		if diff := cmp.Diff(e.Sentence, got); diff != "" {
			t.Errorf("%s: round trip mismatch (-want +got):\n%s", e.English, diff)
		}
	}
}

func TestSampleTotal(t *testing.T) {
	for _, s := range Language.Sample(rand.New(rand.NewPCG(5, 6)), 400) {
		require.NoError(t, s.Validate())
		assert.NotEmpty(t, s.String())
	}
}

func nominalCase(n Nominal) Case {
	switch n := n.(type) {
	case Noun:
		return n.Case
	case Pronoun:
		return n.Case
	}
	return 0
}

func TestSampleCoversEveryCase(t *testing.T) {
	seen := make(map[Case]int)
	for _, s := range Language.Sample(rand.New(rand.NewPCG(7, 8)), 2000) {
		switch s := s.(type) {
		case SubjectVerb:
			seen[nominalCase(s.Subject)]++
		case SubjectObjectVerb:
			seen[nominalCase(s.Subject)]++
			seen[nominalCase(s.Object)]++
		}
	}
	for _, c := range Cases.Values() {
		assert.Positive(t, seen[c], c.String())
	}
}

func TestInflect(t *testing.T) {
	tbl, err := Inflect("write")
	require.NoError(t, err)
	assert.Len(t, tbl.Keys, 27)
	form, ok := tbl.Form("present", "indicative", "plain")
	require.True(t, ok)
	assert.Equal(t, "kirjoitä", form)
	form, _ = tbl.Form("present", "indicative", "polite")
	assert.Equal(t, "kirjoitävät", form)

	_, err = Inflect("teleport")
	assert.ErrorIs(t, err, yaduha.ErrUnknownLexeme)
}

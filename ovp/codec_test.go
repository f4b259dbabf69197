package ovp

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cours-de-latin/yaduha"
)

func TestMarshalCanonical(t *testing.T) {
	s := Examples()[0].Sentence
	data, err := json.Marshal(s)
	require.NoError(t, err)
	want := `{"subject":{"head":"dog","proximity":"proximal","plurality":"singular"},` +
		`"verb":{"lemma":"eat","tense":"present","aspect":"simple"},` +
		`"object":{"head":"rice","proximity":"distal","plurality":"singular"}}`
	assert.JSONEq(t, want, string(data))

	data, err = json.Marshal(Examples()[1].Sentence)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"object":null`)
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
		assert.Equal(t, e.Sentence.String(), got.String())
	}
}

func TestDecodePossessive(t *testing.T) {
	doc := `{
		"subject": {
			"head": "dog",
			"possessive_determiner": {"person": "first", "plurality": "singular", "proximity": "proximal", "inclusivity": "exclusive"},
			"proximity": "proximal",
			"plurality": "singular"
		},
		"verb": {"lemma": "run", "tense": "past", "aspect": "continuous"}
	}`
	s, err := Decode([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "poyoha-ti ishapugu-ii", s.String())
	n, ok := s.Subject.(Noun)
	require.True(t, ok)
	require.NotNil(t, n.PossessiveDeterminer)
	assert.Equal(t, yaduha.First, n.PossessiveDeterminer.Person)
}

func TestDecodeErrors(t *testing.T) {
	const verb = `"verb": {"lemma": "sleep", "tense": "past", "aspect": "simple"}`
	const me = `{"person": "first", "plurality": "singular", "proximity": "proximal", "inclusivity": "exclusive"}`
	tests := []struct {
		name, doc string
		kind      string
	}{
		{"unknown tense", `{"subject": ` + me + `, "verb": {"lemma": "sleep", "tense": "someday", "aspect": "simple"}}`, "invalid_feature_combination"},
		{"unknown field", `{"subject": ` + me + `, ` + verb + `, "mood": "indicative"}`, "invalid_feature_combination"},
		{"unknown nested field", `{"subject": {"person": "first", "plurality": "singular", "proximity": "proximal", "inclusivity": "exclusive", "gender": "neuter"}, ` + verb + `}`, "invalid_feature_combination"},
		{"neither noun nor pronoun", `{"subject": {"proximity": "proximal"}, ` + verb + `}`, "invalid_feature_combination"},
		{"missing subject", `{` + verb + `}`, "invalid_feature_combination"},
		{"missing verb", `{"subject": ` + me + `}`, "invalid_feature_combination"},
		{"missing inclusivity", `{"subject": {"person": "first", "plurality": "singular", "proximity": "proximal"}, ` + verb + `}`, "invalid_feature_combination"},
		{"object with intransitive", `{"subject": ` + me + `, ` + verb + `, "object": ` + me + `}`, "invalid_feature_combination"},
		{"unknown noun", `{"subject": {"head": "unicorn", "proximity": "proximal", "plurality": "singular"}, ` + verb + `}`, "unknown_lexeme"},
		{"wrong type", `{"subject": ` + me + `, "verb": {"lemma": 3, "tense": "past", "aspect": "simple"}}`, "invalid_feature_combination"},
		{"malformed", `{"subject": `, ""},
		{"trailing document", `{"subject": ` + me + `, ` + verb + `} {"garbage": true}`, ""},
		{"trailing garbage", `{"subject": ` + me + `, ` + verb + `} x`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.doc))
			require.Error(t, err)
			assert.Equal(t, tt.kind, yaduha.ErrorKind(err), err.Error())
		})
	}
}

func TestDecodeFieldPath(t *testing.T) {
	doc := `{"subject": {"person": "first", "plurality": "singular", "proximity": "proximal"},
		"verb": {"lemma": "sleep", "tense": "past", "aspect": "simple"}}`
	_, err := Decode([]byte(doc))
	var fe *yaduha.FeatureError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "subject.inclusivity", fe.Field)
}

func TestDecodeListEnvelope(t *testing.T) {
	doc := `{"sentences": [
		{"subject": {"head": "bird", "proximity": "distal", "plurality": "dual"}, "verb": {"lemma": "fly", "tense": "past", "aspect": "perfect"}, "object": null},
		{"subject": {"head": "bird", "proximity": "distal", "plurality": "dual"}, "verb": {"lemma": "fly", "tense": "past", "aspect": "never"}}
	]}`
	_, err := yaduha.DecodeList(Language, []byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sentences[1]")
	assert.ErrorIs(t, err, yaduha.ErrInvalidFeatureCombination)
}

func TestSchema(t *testing.T) {
	s := Schema()
	assert.Equal(t, false, s["additionalProperties"])
	assert.Equal(t, []string{"subject", "verb"}, s["required"])
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"coyote"`)
	assert.Contains(t, string(data), `"inclusivity"`)
}

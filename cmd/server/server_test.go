package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const dogEatsRice = `{"subject":{"head":"dog","proximity":"proximal","plurality":"singular"},` +
	`"verb":{"lemma":"eat","tense":"present","aspect":"simple"},` +
	`"object":{"head":"rice","proximity":"distal","plurality":"singular"}}`

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	conf, err := LoadConfig("")
	require.NoError(t, err)
	return newHandler(conf, prometheus.NewRegistry())
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestLanguages(t *testing.T) {
	h := newTestServer(t)
	rec := do(t, h, http.MethodGet, "/api/languages", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[languagesResponse](t, rec)
	require.Len(t, resp.Languages, 3)
	assert.Equal(t, "kethara", resp.Languages[0].Name)
	assert.Equal(t, "ovp", resp.Languages[1].Name)
	assert.Equal(t, languageJSON{Name: "ovp", Nouns: 33, TransitiveVerbs: 14, IntransitiveVerbs: 22}, resp.Languages[1])
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestServer(t)
	rec := do(t, h, http.MethodGet, "/api/render?lang=ovp", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	rec = do(t, h, http.MethodPost, "/api/languages", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRender(t *testing.T) {
	h := newTestServer(t)
	rec := do(t, h, http.MethodPost, "/api/render?lang=ovp", dogEatsRice)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp struct {
		Text       string          `json:"text"`
		Transitive bool            `json:"transitive"`
		Sentence   json.RawMessage `json:"sentence"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ishapugu-ii wai-noka u-düka-dü", resp.Text)
	assert.True(t, resp.Transitive)
	assert.JSONEq(t, dogEatsRice, string(resp.Sentence))

	rec = do(t, h, http.MethodPost, "/api/render?lang=OVP&punctuate=true", dogEatsRice)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ishapugu-ii wai-noka u-düka-dü.", decodeBody[struct{ Text string }](t, rec).Text)
}

func TestRenderErrors(t *testing.T) {
	h := newTestServer(t)
	tests := []struct {
		name   string
		target string
		body   string
		status int
		kind   string
	}{
		{"missing lang", "/api/render", dogEatsRice, http.StatusBadRequest, ""},
		{"unknown lang", "/api/render?lang=klingon", dogEatsRice, http.StatusNotFound, ""},
		{"malformed", "/api/render?lang=ovp", `{"subject":`, http.StatusBadRequest, ""},
		{"unknown lexeme", "/api/render?lang=ovp", strings.Replace(dogEatsRice, `"rice"`, `"unicorn"`, 1),
			http.StatusUnprocessableEntity, "unknown_lexeme"},
		{"bad feature", "/api/render?lang=ovp", strings.Replace(dogEatsRice, `"present"`, `"someday"`, 1),
			http.StatusUnprocessableEntity, "invalid_feature_combination"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, tt.target, tt.body)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			resp := decodeBody[errorResponse](t, rec)
			assert.NotEmpty(t, resp.Error)
			assert.Equal(t, tt.kind, resp.Kind)
		})
	}
}

func TestRenderList(t *testing.T) {
	h := newTestServer(t)
	body := `{"sentences":[` + dogEatsRice + `,` + dogEatsRice + `]}`
	rec := do(t, h, http.MethodPost, "/api/render/list?lang=ovp", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp struct {
		Language string `json:"language"`
		Results  []struct {
			Text string `json:"text"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ovp", resp.Language)
	require.Len(t, resp.Results, 2)
	for _, r := range resp.Results {
		assert.Equal(t, "ishapugu-ii wai-noka u-düka-dü", r.Text)
	}

	bad := `{"sentences":[` + dogEatsRice + `,{"verb":{"lemma":"eat","tense":"present","aspect":"simple"}}]}`
	rec = do(t, h, http.MethodPost, "/api/render/list?lang=ovp", bad)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decodeBody[errorResponse](t, rec).Error, "sentences[1]")
}

func TestRenderListTooLong(t *testing.T) {
	conf, err := LoadConfig("")
	require.NoError(t, err)
	conf.MaxListSize = 1
	h := newHandler(conf, prometheus.NewRegistry())
	body := `{"sentences":[` + dogEatsRice + `,` + dogEatsRice + `]}`
	rec := do(t, h, http.MethodPost, "/api/render/list?lang=ovp", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody[errorResponse](t, rec).Error, "too many sentences")

	// the limit is checked before the sentences are validated
	bad := `{"sentences":[` + dogEatsRice + `,{"verb":{}}]}`
	rec = do(t, h, http.MethodPost, "/api/render/list?lang=ovp", bad)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeBody[errorResponse](t, rec)
	assert.Contains(t, resp.Error, "too many sentences")
	assert.Empty(t, resp.Kind)
}

func TestBodyTooLarge(t *testing.T) {
	conf, err := LoadConfig("")
	require.NoError(t, err)
	conf.MaxBodyBytes = 16
	h := newHandler(conf, prometheus.NewRegistry())
	rec := do(t, h, http.MethodPost, "/api/render?lang=ovp", dogEatsRice)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestSample(t *testing.T) {
	h := newTestServer(t)
	rec := do(t, h, http.MethodGet, "/api/sample?lang=velar&n=5&seed=42", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decodeBody[struct {
		Language  string `json:"language"`
		Seed      uint64 `json:"seed"`
		Sentences []struct {
			Text string `json:"text"`
		} `json:"sentences"`
	}](t, rec)
	assert.Equal(t, "velar", resp.Language)
	assert.Equal(t, uint64(42), resp.Seed)
	require.Len(t, resp.Sentences, 5)

	again := do(t, h, http.MethodGet, "/api/sample?lang=velar&n=5&seed=42", "")
	assert.JSONEq(t, rec.Body.String(), again.Body.String())

	for _, target := range []string{
		"/api/sample?lang=velar&n=-1",
		"/api/sample?lang=velar&n=many",
		"/api/sample?lang=velar&n=100000",
		"/api/sample?lang=velar&seed=x",
	} {
		rec := do(t, h, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestExamples(t *testing.T) {
	h := newTestServer(t)
	rec := do(t, h, http.MethodGet, "/api/examples?lang=kethara", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[struct {
		Examples []struct {
			English string `json:"english"`
			Text    string `json:"text"`
		} `json:"examples"`
	}](t, rec)
	require.Len(t, resp.Examples, 6)
	assert.Equal(t, "min nukua", resp.Examples[0].Text)
	assert.NotEmpty(t, resp.Examples[0].English)
}

func TestVocabulary(t *testing.T) {
	h := newTestServer(t)
	rec := do(t, h, http.MethodGet, "/api/vocabulary?lang=ovp", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[vocabularyResponse](t, rec)
	assert.Len(t, resp.Nouns, 33)
	assert.Len(t, resp.TransitiveVerbs, 14)
	assert.Len(t, resp.IntransitiveVerbs, 22)
}

func TestSchema(t *testing.T) {
	h := newTestServer(t)
	rec := do(t, h, http.MethodGet, "/api/schema?lang=velar", "")
	require.Equal(t, http.StatusOK, rec.Code)
	schema := decodeBody[map[string]any](t, rec)
	assert.Contains(t, schema, "anyOf")

	rec = do(t, h, http.MethodGet, "/api/schema?lang=velar&list=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody[map[string]any](t, rec)
	assert.Contains(t, list["properties"], "sentences")
}

func TestInflection(t *testing.T) {
	h := newTestServer(t)
	rec := do(t, h, http.MethodGet, "/api/inflection?lang=velar&lemma=see", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var table struct {
		Lemma string            `json:"lemma"`
		Cells map[string]string `json:"cells"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &table))
	assert.Equal(t, "see", table.Lemma)
	assert.Len(t, table.Cells, 27)
	assert.Equal(t, "viden-as-vi", table.Cells["present.simple.direct"])

	rec = do(t, h, http.MethodGet, "/api/inflection?lang=velar&lemma=teleport", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "unknown_lexeme", decodeBody[errorResponse](t, rec).Kind)

	rec = do(t, h, http.MethodGet, "/api/inflection?lang=velar", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestIDPropagated(t *testing.T) {
	h := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/languages", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}

func TestMetrics(t *testing.T) {
	h := newTestServer(t)
	do(t, h, http.MethodPost, "/api/render?lang=ovp", dogEatsRice)
	do(t, h, http.MethodPost, "/api/render?lang=ovp", strings.Replace(dogEatsRice, `"rice"`, `"unicorn"`, 1))

	rec := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `yaduha_sentences_rendered_total{language="ovp"} 1`)
	assert.Contains(t, body, `yaduha_construction_errors_total{kind="unknown_lexeme",language="ovp"} 1`)
	assert.Contains(t, body, `yaduha_http_requests_total{code="422",route="/api/render"} 1`)
}

func TestCORS(t *testing.T) {
	conf, err := LoadConfig("")
	require.NoError(t, err)
	conf.CORSAllowedOrigins = []string{"https://example.org"}
	h := newHandler(conf, prometheus.NewRegistry())

	req := httptest.NewRequest(http.MethodGet, "/api/languages", nil)
	req.Header.Set("Origin", "https://example.org")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "https://example.org", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/languages", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLemmatize(t *testing.T) {
	h := newTestServer(t)
	rec := do(t, h, http.MethodGet, "/api/lemmatize?lang=velar&form=viden-et-au", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decodeBody[lemmatizeWordResponse](t, rec)
	require.Len(t, resp.Analyses, 1)
	assert.Equal(t, "see", resp.Analyses[0].Lemma)
	assert.Equal(t, "past.simple.hearsay", resp.Analyses[0].Key)

	rec = do(t, h, http.MethodGet, "/api/lemmatize?lang=velar&form=kanir", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, decodeBody[lemmatizeWordResponse](t, rec).Analyses)

	rec = do(t, h, http.MethodGet, "/api/lemmatize?lang=velar", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/lemmatize/text?lang=velar", `{"text":"Viden-as-vi jo te."}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	text := decodeBody[lemmatizeTextResponse](t, rec)
	require.Len(t, text.Results, 3)
	assert.Equal(t, "Viden-as-vi", text.Results[0].Token)
	assert.NotEmpty(t, text.Results[0].Analyses)

	rec = do(t, h, http.MethodPost, "/api/lemmatize/text?lang=velar", `{"text":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

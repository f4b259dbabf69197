package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/cours-de-latin/yaduha"
	"github.com/cours-de-latin/yaduha/languages"
)

// ---- JSON response types ------------------------------------------------

type languageJSON struct {
	Name              string `json:"name"`
	Nouns             int    `json:"nouns"`
	TransitiveVerbs   int    `json:"transitive_verbs"`
	IntransitiveVerbs int    `json:"intransitive_verbs"`
}

type languagesResponse struct {
	Languages []languageJSON `json:"languages"`
}

type renderedJSON struct {
	Text       string          `json:"text"`
	Transitive bool            `json:"transitive"`
	Sentence   yaduha.Sentence `json:"sentence"`
}

type renderListResponse struct {
	Language string         `json:"language"`
	Results  []renderedJSON `json:"results"`
}

type sampleResponse struct {
	Language  string         `json:"language"`
	Seed      *uint64        `json:"seed,omitempty"`
	Sentences []renderedJSON `json:"sentences"`
}

type exampleJSON struct {
	English string `json:"english"`
	renderedJSON
}

type examplesResponse struct {
	Language string        `json:"language"`
	Examples []exampleJSON `json:"examples"`
}

type vocabularyResponse struct {
	Language          string         `json:"language"`
	Nouns             []yaduha.Entry `json:"nouns"`
	TransitiveVerbs   []yaduha.Entry `json:"transitive_verbs"`
	IntransitiveVerbs []yaduha.Entry `json:"intransitive_verbs"`
}

type lemmatizeWordResponse struct {
	Form     string            `json:"form"`
	Analyses []yaduha.Analysis `json:"analyses"`
}

type lemmatizeTextResponse struct {
	Results []yaduha.TokenResult `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeDecodeError maps a sentence decoding error to 422 for construction
// errors and to 400 for anything else (malformed JSON mostly).
func writeDecodeError(w http.ResponseWriter, m *metrics, lang string, err error) {
	kind := yaduha.ErrorKind(err)
	if kind == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	m.constructionErrs.WithLabelValues(lang, kind).Inc()
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Kind: kind})
}

func render(s yaduha.Sentence, punctuate bool) renderedJSON {
	text := s.String()
	if punctuate {
		text = yaduha.Punctuate(text)
	}
	return renderedJSON{Text: text, Transitive: s.Transitive(), Sentence: s}
}

// language resolves the mandatory "lang" query parameter, writing the
// error response itself when it fails.
func language(w http.ResponseWriter, r *http.Request) (yaduha.Language, bool) {
	name := r.URL.Query().Get("lang")
	if name == "" {
		writeError(w, http.StatusBadRequest, "missing 'lang' query parameter")
		return nil, false
	}
	lang, err := languages.Lookup(name)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return nil, false
	}
	return lang, true
}

func readBody(w http.ResponseWriter, r *http.Request, limit int64) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("body exceeds %d bytes", limit))
			return nil, false
		}
		writeError(w, http.StatusBadRequest, "failed to read body")
		return nil, false
	}
	return body, true
}

func boolParam(r *http.Request, name string) bool {
	v, _ := strconv.ParseBool(r.URL.Query().Get(name))
	return v
}

// ---- handlers -----------------------------------------------------------

func handleLanguages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		all := languages.All()
		out := make([]languageJSON, 0, len(all))
		for _, lang := range all {
			lex := lang.Lexicon()
			out = append(out, languageJSON{
				Name:              lang.Name(),
				Nouns:             lex.Len(yaduha.Nouns),
				TransitiveVerbs:   lex.Len(yaduha.TransitiveVerbs),
				IntransitiveVerbs: lex.Len(yaduha.IntransitiveVerbs),
			})
		}
		writeJSON(w, http.StatusOK, languagesResponse{Languages: out})
	}
}

func handleRender(conf *Config, m *metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		lang, ok := language(w, r)
		if !ok {
			return
		}
		body, ok := readBody(w, r, conf.MaxBodyBytes)
		if !ok {
			return
		}
		s, err := lang.Decode(body)
		if err != nil {
			writeDecodeError(w, m, lang.Name(), err)
			return
		}
		m.rendered.WithLabelValues(lang.Name()).Inc()
		writeJSON(w, http.StatusOK, render(s, boolParam(r, "punctuate")))
	}
}

func handleRenderList(conf *Config, m *metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		lang, ok := language(w, r)
		if !ok {
			return
		}
		body, ok := readBody(w, r, conf.MaxBodyBytes)
		if !ok {
			return
		}
		sentences, err := yaduha.DecodeListLimit(lang, body, conf.MaxListSize)
		if err != nil {
			writeDecodeError(w, m, lang.Name(), err)
			return
		}

		punctuate := boolParam(r, "punctuate")
		results := make([]renderedJSON, len(sentences))
		g, ctx := errgroup.WithContext(r.Context())
		g.SetLimit(conf.RenderWorkers)
		for i, s := range sentences {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				results[i] = render(s, punctuate)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			// client went away
			log.Debug().Err(err).Msg("render list aborted")
			return
		}
		m.rendered.WithLabelValues(lang.Name()).Add(float64(len(results)))
		writeJSON(w, http.StatusOK, renderListResponse{Language: lang.Name(), Results: results})
	}
}

func handleSample(conf *Config, m *metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		lang, ok := language(w, r)
		if !ok {
			return
		}
		n := 1
		if v := r.URL.Query().Get("n"); v != "" {
			var err error
			n, err = strconv.Atoi(v)
			if err != nil || n < 0 || n > conf.MaxSampleSize {
				writeError(w, http.StatusBadRequest,
					fmt.Sprintf("'n' must be an integer between 0 and %d", conf.MaxSampleSize))
				return
			}
		}
		resp := sampleResponse{Language: lang.Name()}
		var src *rand.Rand
		if v := r.URL.Query().Get("seed"); v != "" {
			seed, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				writeError(w, http.StatusBadRequest, "'seed' must be an unsigned integer")
				return
			}
			src = rand.New(rand.NewPCG(seed, seed))
			resp.Seed = &seed
		}
		punctuate := boolParam(r, "punctuate")
		resp.Sentences = make([]renderedJSON, 0, n)
		for s := range lang.SampleSeq(src, n) {
			resp.Sentences = append(resp.Sentences, render(s, punctuate))
		}
		m.rendered.WithLabelValues(lang.Name()).Add(float64(n))
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleExamples() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		lang, ok := language(w, r)
		if !ok {
			return
		}
		punctuate := boolParam(r, "punctuate")
		examples := lang.Examples()
		out := make([]exampleJSON, 0, len(examples))
		for _, ex := range examples {
			out = append(out, exampleJSON{English: ex.English, renderedJSON: render(ex.Sentence, punctuate)})
		}
		writeJSON(w, http.StatusOK, examplesResponse{Language: lang.Name(), Examples: out})
	}
}

func handleVocabulary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		lang, ok := language(w, r)
		if !ok {
			return
		}
		lex := lang.Lexicon()
		writeJSON(w, http.StatusOK, vocabularyResponse{
			Language:          lang.Name(),
			Nouns:             lex.Entries(yaduha.Nouns),
			TransitiveVerbs:   lex.Entries(yaduha.TransitiveVerbs),
			IntransitiveVerbs: lex.Entries(yaduha.IntransitiveVerbs),
		})
	}
}

func handleSchema() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		lang, ok := language(w, r)
		if !ok {
			return
		}
		schema := lang.Schema()
		if boolParam(r, "list") {
			schema = yaduha.ListSchema(schema)
		}
		writeJSON(w, http.StatusOK, schema)
	}
}

func handleInflection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		lang, ok := language(w, r)
		if !ok {
			return
		}
		lemma := r.URL.Query().Get("lemma")
		if lemma == "" {
			writeError(w, http.StatusBadRequest, "missing 'lemma' query parameter")
			return
		}
		table, err := lang.Inflect(lemma)
		if err != nil {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error(), Kind: yaduha.ErrorKind(err)})
			return
		}
		writeJSON(w, http.StatusOK, table)
	}
}

func lemmatizer(w http.ResponseWriter, lang yaduha.Language) (*yaduha.Lemmatizer, bool) {
	lem, err := languages.Lemmatizer(lang.Name())
	if err != nil {
		log.Error().Err(err).Str("language", lang.Name()).Msg("failed to build lemmatizer")
		writeError(w, http.StatusInternalServerError, "lemmatizer unavailable")
		return nil, false
	}
	return lem, true
}

func handleLemmatizeWord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		lang, ok := language(w, r)
		if !ok {
			return
		}
		form := r.URL.Query().Get("form")
		if form == "" {
			writeError(w, http.StatusBadRequest, "missing 'form' query parameter")
			return
		}
		lem, ok := lemmatizer(w, lang)
		if !ok {
			return
		}
		analyses := lem.LemmatizeWord(form)
		status := http.StatusOK
		if len(analyses) == 0 {
			status = http.StatusNotFound
			analyses = []yaduha.Analysis{}
		}
		writeJSON(w, status, lemmatizeWordResponse{Form: form, Analyses: analyses})
	}
}

func handleLemmatizeText(conf *Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		lang, ok := language(w, r)
		if !ok {
			return
		}
		raw, ok := readBody(w, r, conf.MaxBodyBytes)
		if !ok {
			return
		}
		var body struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(raw, &body); err != nil || body.Text == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
			return
		}
		lem, ok := lemmatizer(w, lang)
		if !ok {
			return
		}
		results := lem.LemmatizeText(body.Text)
		if results == nil {
			results = []yaduha.TokenResult{}
		}
		writeJSON(w, http.StatusOK, lemmatizeTextResponse{Results: results})
	}
}

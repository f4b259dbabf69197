package yaduha

import (
	"cmp"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// TransitivityInflector is implemented by languages whose lexicon may hold
// a lemma in both verb partitions; Inflect then only covers one paradigm.
type TransitivityInflector interface {
	InflectAs(lemma string, transitive bool) (*InflectionTable, error)
}

// Analysis is one reading of a surface verb form.
type Analysis struct {
	Lemma      string `json:"lemma"`
	Transitive bool   `json:"transitive"`
	// Key is the inflection table cell the form comes from.
	Key string `json:"key"`
}

// Features splits Key into its feature names.
func (a Analysis) Features() []string {
	return strings.Split(a.Key, ".")
}

// TokenResult pairs a token of a text with its readings.
type TokenResult struct {
	Token    string     `json:"token"`
	Analyses []Analysis `json:"analyses"`
}

// Lemmatizer maps rendered verb forms back to lemma and features. It is
// built once from every verb paradigm of a language and never modified
// afterwards.
type Lemmatizer struct {
	language string
	// forms maps formKey(form) → readings, sorted by lemma then key.
	forms map[string][]Analysis
}

// NewLemmatizer indexes every verb form of lang.
func NewLemmatizer(lang Language) (*Lemmatizer, error) {
	l := &Lemmatizer{
		language: lang.Name(),
		forms:    make(map[string][]Analysis),
	}
	lex := lang.Lexicon()
	withTransitivity, _ := lang.(TransitivityInflector)
	for _, transitive := range []bool{true, false} {
		p := IntransitiveVerbs
		if transitive {
			p = TransitiveVerbs
		}
		for _, lemma := range lex.Lemmas(p) {
			var (
				table *InflectionTable
				err   error
			)
			if withTransitivity != nil {
				table, err = withTransitivity.InflectAs(lemma, transitive)
			} else {
				table, err = lang.Inflect(lemma)
			}
			if err != nil {
				return nil, err
			}
			if table.Transitive != transitive {
				continue
			}
			l.add(table)
		}
	}
	for _, readings := range l.forms {
		slices.SortFunc(readings, func(a, b Analysis) int {
			return cmp.Or(cmp.Compare(a.Lemma, b.Lemma), cmp.Compare(a.Key, b.Key))
		})
	}
	return l, nil
}

func (l *Lemmatizer) add(t *InflectionTable) {
	for _, key := range t.Keys {
		k := formKey(t.Cells[key])
		l.forms[k] = append(l.forms[k], Analysis{Lemma: t.Lemma, Transitive: t.Transitive, Key: key})
	}
}

// formKey folds case and composes a surface form so that a capitalised
// sentence-initial word finds its entry.
func formKey(form string) string {
	return norm.NFC.String(foldCase(form))
}

// Language names the grammar the lemmatizer was built for.
func (l *Lemmatizer) Language() string {
	return l.language
}

// Len is the number of distinct indexed forms.
func (l *Lemmatizer) Len() int {
	return len(l.forms)
}

// LemmatizeWord returns every reading of form, nil when it is not a
// verb form of the language.
func (l *Lemmatizer) LemmatizeWord(form string) []Analysis {
	readings := l.forms[formKey(trimToken(form))]
	if len(readings) == 0 {
		return nil
	}
	return slices.Clone(readings)
}

// LemmatizeText splits text on white space and lemmatizes each token.
// Tokens keep their inner hyphens and apostrophes; surrounding sentence
// punctuation is dropped.
func (l *Lemmatizer) LemmatizeText(text string) []TokenResult {
	var out []TokenResult
	for _, field := range strings.FieldsFunc(text, unicode.IsSpace) {
		token := trimToken(field)
		if token == "" {
			continue
		}
		out = append(out, TokenResult{Token: token, Analyses: l.LemmatizeWord(token)})
	}
	return out
}

const tokenPunct = `.,;:!?"()`

func trimToken(s string) string {
	return strings.Trim(strings.TrimSpace(s), tokenPunct)
}

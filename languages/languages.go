// Package languages registers the bundled grammars by name.
package languages

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/cours-de-latin/yaduha"
	"github.com/cours-de-latin/yaduha/kethara"
	"github.com/cours-de-latin/yaduha/ovp"
	"github.com/cours-de-latin/yaduha/velar"
)

var registry = map[string]yaduha.Language{
	ovp.Name:     ovp.Language,
	velar.Name:   velar.Language,
	kethara.Name: kethara.Language,
}

// lemmatizers builds each language's verb form index on first use.
var lemmatizers = func() map[string]func() (*yaduha.Lemmatizer, error) {
	out := make(map[string]func() (*yaduha.Lemmatizer, error), len(registry))
	for name, lang := range registry {
		out[name] = sync.OnceValues(func() (*yaduha.Lemmatizer, error) {
			return yaduha.NewLemmatizer(lang)
		})
	}
	return out
}()

// ErrUnknownLanguage is returned by Lookup for unregistered names.
var ErrUnknownLanguage = errors.New("unknown language")

// Lookup returns the grammar registered under name (case-insensitive).
func Lookup(name string) (yaduha.Language, error) {
	l, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownLanguage, name, strings.Join(Names(), ", "))
	}
	return l, nil
}

// Names lists the registered grammars in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// All returns the registered grammars ordered by name.
func All() []yaduha.Language {
	out := make([]yaduha.Language, 0, len(registry))
	for _, name := range Names() {
		out = append(out, registry[name])
	}
	return out
}

// Lemmatizer returns the shared verb form lemmatizer of the named grammar.
func Lemmatizer(name string) (*yaduha.Lemmatizer, error) {
	lang, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return lemmatizers[lang.Name()]()
}

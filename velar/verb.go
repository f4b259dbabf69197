package velar

import (
	"github.com/cours-de-latin/yaduha"
)

// Verb is a verb lemma with its features. The sentence shape decides
// which verb partition the lemma must come from.
type Verb struct {
	Lemma         string        `json:"lemma"`
	Tense         yaduha.Tense  `json:"tense"`
	Aspect        Aspect        `json:"aspect"`
	Evidentiality Evidentiality `json:"evidentiality"`
}

var (
	aspectSuffixes        = [...]string{Simple: "", Progressive: "-ik", Perfect: "-um"}
	tenseSuffixes         = [...]string{yaduha.Past: "-et", yaduha.Present: "-as", yaduha.Future: "-os"}
	evidentialitySuffixes = [...]string{Direct: "-vi", Hearsay: "-au", Inferential: "-if"}
)

func _() {
	var x [1]struct{}
	_ = x[len(aspectSuffixes)-int(Perfect)-1]
	_ = x[len(tenseSuffixes)-int(yaduha.Future)-1]
	_ = x[len(evidentialitySuffixes)-int(Inferential)-1]
}

// Validate checks the features and that the lemma exists with the given
// transitivity.
func (v Verb) Validate(transitive bool) error {
	if _, err := Vocabulary.Verb(v.Lemma, transitive); err != nil {
		return err
	}
	if err := yaduha.Tenses.Check("verb.tense", v.Tense); err != nil {
		return err
	}
	if err := Aspects.Check("verb.aspect", v.Aspect); err != nil {
		return err
	}
	return Evidentialities.Check("verb.evidentiality", v.Evidentiality)
}

// Conjugate stacks aspect, tense and evidentiality onto root, in that
// order.
func (v Verb) Conjugate(root string) string {
	return yaduha.Agglutinate(root, nil,
		aspectSuffixes[v.Aspect],
		tenseSuffixes[v.Tense],
		evidentialitySuffixes[v.Evidentiality],
	)
}

// Render conjugates the lemma taken from the transitive or intransitive
// lexicon.
func (v Verb) Render(transitive bool) string {
	p := yaduha.IntransitiveVerbs
	if transitive {
		p = yaduha.TransitiveVerbs
	}
	return v.Conjugate(Vocabulary.MustTarget(p, v.Lemma))
}

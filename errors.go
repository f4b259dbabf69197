package yaduha

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownLexeme is matched by errors for lemmas missing from the
	// expected vocabulary partition.
	ErrUnknownLexeme = errors.New("unknown lexeme")

	// ErrInvalidFeatureCombination is matched by errors for sentences whose
	// shape or features violate the grammar (object with an intransitive
	// verb, a missing or out-of-range enum value, ...).
	ErrInvalidFeatureCombination = errors.New("invalid feature combination")
)

// LexemeError reports a lemma absent from a lexicon partition.
type LexemeError struct {
	Partition Partition
	Lemma     string
}

func (e *LexemeError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Partition, e.Lemma)
}

func (e *LexemeError) Is(target error) bool {
	return target == ErrUnknownLexeme
}

// FeatureError reports an invalid feature value or sentence shape.
// Field is the dotted path of the offending value (e.g. "subject.person").
type FeatureError struct {
	Field  string
	Reason string
}

func (e *FeatureError) Error() string {
	if e.Field == "" {
		return "invalid feature combination: " + e.Reason
	}
	return fmt.Sprintf("invalid feature combination: %s: %s", e.Field, e.Reason)
}

func (e *FeatureError) Is(target error) bool {
	return target == ErrInvalidFeatureCombination
}

// InvalidFeature builds a *FeatureError.
func InvalidFeature(field, format string, args ...any) error {
	return &FeatureError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// InField prefixes the field path of a *FeatureError with parent.
// Other errors are returned unchanged.
func InField(parent string, err error) error {
	var fe *FeatureError
	if err == nil || !errors.As(err, &fe) {
		return err
	}
	field := parent
	if fe.Field != "" {
		field = parent + "." + fe.Field
	}
	return &FeatureError{Field: field, Reason: fe.Reason}
}

// ErrorKind names the construction error kind of err: "unknown_lexeme",
// "invalid_feature_combination" or "" for anything else.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrUnknownLexeme):
		return "unknown_lexeme"
	case errors.Is(err, ErrInvalidFeatureCombination):
		return "invalid_feature_combination"
	default:
		return ""
	}
}

package yaduha

// JSON Schema builders for sentence documents. Every object schema is
// closed (additionalProperties: false) so that a model asked to follow it
// cannot invent fields.

// ObjectSchema describes a closed object with the given properties.
func ObjectSchema(title string, props map[string]any, required ...string) map[string]any {
	s := map[string]any{
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
	if title != "" {
		s["title"] = title
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

// EnumSchema describes a string restricted to values.
func EnumSchema(values []string) map[string]any {
	return map[string]any{
		"type": "string",
		"enum": values,
	}
}

// FeatureSchema describes a feature field by its enum names.
func FeatureSchema[T ~uint8](e Enum[T]) map[string]any {
	return EnumSchema(e.Names())
}

// LemmaSchema describes a lemma drawn from the given partitions.
func LemmaSchema(l *Lexicon, description string, parts ...Partition) map[string]any {
	var lemmas []string
	seen := make(map[string]bool)
	for _, p := range parts {
		for _, lemma := range l.Lemmas(p) {
			if !seen[lemma] {
				seen[lemma] = true
				lemmas = append(lemmas, lemma)
			}
		}
	}
	s := EnumSchema(lemmas)
	s["description"] = description
	return s
}

// BoolSchema describes a boolean.
func BoolSchema() map[string]any {
	return map[string]any{"type": "boolean"}
}

// AnyOf describes a value matching one of schemas.
func AnyOf(schemas ...map[string]any) map[string]any {
	return map[string]any{"anyOf": schemas}
}

// Nullable describes s or null.
func Nullable(s map[string]any) map[string]any {
	return AnyOf(s, map[string]any{"type": "null"})
}

// ListSchema wraps a sentence schema into the {"sentences": [...]}
// envelope accepted by DecodeList.
func ListSchema(sentence map[string]any) map[string]any {
	return ObjectSchema("SentenceList", map[string]any{
		"sentences": map[string]any{
			"type":  "array",
			"items": sentence,
		},
	}, "sentences")
}

package yaduha

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

// DecodeJSON unmarshals data into v, rejecting unknown fields. Type
// mismatches are reported as invalid feature combinations on the
// offending field, as are unknown fields; malformed JSON and trailing
// data after the document are returned as plain errors.
func DecodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return InvalidFeature(typeErr.Field, "expected %s, got %s", typeErr.Type, typeErr.Value)
		}
		if errors.Is(err, ErrInvalidFeatureCombination) || errors.Is(err, ErrUnknownLexeme) {
			return err
		}
		// encoding/json has no error type for DisallowUnknownFields.
		if name, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
			return InvalidFeature(strings.Trim(name, `"`), "unknown field")
		}
		return fmt.Errorf("decode document: %w", err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("decode document: trailing data after the document")
	}
	return nil
}

// Members splits a JSON object into its raw members.
func Members(data []byte) (map[string]json.RawMessage, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if m == nil {
		return nil, InvalidFeature("", "expected an object, got null")
	}
	return m, nil
}

// CheckMembers rejects any member not named in allowed, so that a
// hand-decoded document is as strict as one decoded by DecodeJSON.
func CheckMembers(members map[string]json.RawMessage, allowed ...string) error {
	for _, name := range slices.Sorted(maps.Keys(members)) {
		if !slices.Contains(allowed, name) {
			return InvalidFeature(name, "unknown field")
		}
	}
	return nil
}

// Member returns the named member, failing when it is absent or null.
func Member(members map[string]json.RawMessage, name string) (json.RawMessage, error) {
	raw, ok := members[name]
	if !ok || IsNull(raw) {
		return nil, InvalidFeature(name, "missing %s", name)
	}
	return raw, nil
}

// IsNull reports whether raw is absent or the JSON literal null.
func IsNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// HasMember reports whether member name exists and is not null.
func HasMember(members map[string]json.RawMessage, name string) bool {
	raw, ok := members[name]
	return ok && !IsNull(raw)
}

// IsNounDocument tells a noun document (it has a "head") from a pronoun
// document (it has a "person"). Documents with neither are rejected.
func IsNounDocument(field string, raw json.RawMessage) (bool, error) {
	m, err := Members(raw)
	if err != nil {
		return false, InField(field, err)
	}
	switch {
	case HasMember(m, "head"):
		return true, nil
	case HasMember(m, "person"):
		return false, nil
	default:
		return false, InvalidFeature(field, "neither a noun (head) nor a pronoun (person)")
	}
}

// ErrListTooLong is returned by DecodeListLimit for envelopes holding
// more sentences than allowed.
var ErrListTooLong = errors.New("too many sentences")

// DecodeList decodes a {"sentences": [...]} envelope, the shape a model
// is asked to answer with, validating every sentence.
func DecodeList(lang Language, data []byte) ([]Sentence, error) {
	return DecodeListLimit(lang, data, 0)
}

// DecodeListLimit is DecodeList rejecting envelopes of more than limit
// sentences before any of them is decoded. A limit <= 0 means no limit.
func DecodeListLimit(lang Language, data []byte, limit int) ([]Sentence, error) {
	var envelope struct {
		Sentences []json.RawMessage `json:"sentences"`
	}
	if err := DecodeJSON(data, &envelope); err != nil {
		return nil, err
	}
	if limit > 0 && len(envelope.Sentences) > limit {
		return nil, fmt.Errorf("%w: %d (max %d)", ErrListTooLong, len(envelope.Sentences), limit)
	}
	out := make([]Sentence, 0, len(envelope.Sentences))
	for i, raw := range envelope.Sentences {
		s, err := lang.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("sentences[%d]: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

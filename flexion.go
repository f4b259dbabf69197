package yaduha

import "strings"

// Hyphenate joins morphemes with "-", skipping empty ones.
func Hyphenate(morphemes ...string) string {
	return joinNonEmpty("-", morphemes)
}

// JoinWords joins constituents with single spaces, skipping empty ones.
func JoinWords(words ...string) string {
	return joinNonEmpty(" ", words)
}

// Agglutinate appends suffixes to root in order. Each suffix is passed
// through adapt first (when not nil); adapt sees the suffix only, so a
// phonological rule conditioned on the root must close over the root,
// not over the growing stem.
func Agglutinate(root string, adapt func(string) string, suffixes ...string) string {
	var sb strings.Builder
	sb.WriteString(root)
	for _, s := range suffixes {
		if s == "" {
			continue
		}
		if adapt != nil {
			s = adapt(s)
		}
		sb.WriteString(s)
	}
	return sb.String()
}

func joinNonEmpty(sep string, parts []string) string {
	var sb strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(p)
	}
	return sb.String()
}

package ui

import "strings"

// CN merges class lists. Future versions may include conflict resolution (tailwind-merge).
// It performs simple string joining and deduplication of exact matches.
func CN(inputs ...string) string {
	var classes []string
	seen := make(map[string]bool)

	for _, input := range inputs {
		// Split by space to handle multiple classes in one string
		parts := strings.Fields(input)
		for _, part := range parts {
			if !seen[part] {
				classes = append(classes, part)
				seen[part] = true
			}
		}
	}
	return strings.Join(classes, " ")
}

// Modifier is a class token that is emitted only when On is set.
type Modifier struct {
	Class string
	On    bool
}

// ClassNames composes base, the enabled modifiers in order, and the caller's
// override. Unlike CN it does not deduplicate: each modifier is its own flag.
func ClassNames(base string, modifiers []Modifier, override string) string {
	parts := make([]string, 0, len(modifiers)+2)
	if base != "" {
		parts = append(parts, base)
	}
	for _, m := range modifiers {
		if m.On && m.Class != "" {
			parts = append(parts, m.Class)
		}
	}
	if override = strings.TrimSpace(override); override != "" {
		parts = append(parts, override)
	}
	return strings.Join(parts, " ")
}

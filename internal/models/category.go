package models

import "strings"

// Category is the shared vocabulary between events and goals. Events may
// leave it null; goals always carry one.
type Category string

const (
	CategorySpiritual    Category = "Spiritual"
	CategorySocial       Category = "Social"
	CategoryIntellectual Category = "Intellectual"
	CategoryPhysical     Category = "Physical"
	CategoryRomantic     Category = "Romantic"
)

// Categories returns the five canonical labels in display order.
func Categories() []Category {
	return []Category{
		CategorySpiritual,
		CategorySocial,
		CategoryIntellectual,
		CategoryPhysical,
		CategoryRomantic,
	}
}

// NormalizeCategory matches free-text input against the canonical set,
// case-insensitively. Returns the canonically-cased label on a match,
// and false when the input matches nothing. A failed match is not an
// error by itself; callers decide whether an uncategorized value is
// acceptable.
func NormalizeCategory(s string) (Category, bool) {
	lower := strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories() {
		if strings.ToLower(string(c)) == lower {
			return c, true
		}
	}
	return "", false
}

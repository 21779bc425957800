package relief

import "strings"

// Matcher decides whether a donation preference's item name pairs with a
// requested item name. Kept behind an interface so a fuzzy or tokenizing
// matcher can be swapped in without touching callers.
type Matcher interface {
	Match(preferenceItem, requestItem string) bool
}

// SubstringMatcher matches when either name contains the other,
// case-insensitively. Deliberately permissive so that naming variants like
// "생수" and "생수 500ml" still pair up.
type SubstringMatcher struct{}

func (SubstringMatcher) Match(preferenceItem, requestItem string) bool {
	p := strings.ToLower(strings.TrimSpace(preferenceItem))
	r := strings.ToLower(strings.TrimSpace(requestItem))
	if p == "" || r == "" {
		return false
	}
	return strings.Contains(p, r) || strings.Contains(r, p)
}

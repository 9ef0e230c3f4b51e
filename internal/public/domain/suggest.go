package domain

import "fmt"

// MaxSuggestions caps the number of search-as-you-type suggestions.
const MaxSuggestions = 5

// Suggest returns up to MaxSuggestions distinct completions for term, in the
// order they are first produced while walking businesses.
func Suggest(businesses []Business, term string) []string {
	needle := normalize(term)
	if needle == "" {
		return []string{}
	}

	seen := make(map[string]struct{})
	suggestions := make([]string, 0, MaxSuggestions)
	add := func(s string) {
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		suggestions = append(suggestions, s)
	}

	for _, b := range businesses {
		if containsFold(b.Name, needle) {
			add(b.Name)
		}
		if containsFold(b.Category, needle) {
			add(b.Category)
		}
		if containsFold(b.Location, needle) {
			add(fmt.Sprintf("%s in %s", b.Category, b.Location))
		}
		for _, service := range b.Services {
			if containsFold(service, needle) {
				add(fmt.Sprintf("%s with %s", b.Category, service))
			}
		}
		if len(suggestions) >= MaxSuggestions {
			break
		}
	}

	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}
	return suggestions
}

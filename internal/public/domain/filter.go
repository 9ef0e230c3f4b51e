package domain

import (
	"sort"
	"strings"
)

// Keyword sets recognised by the search heuristics.
var (
	budgetKeywords    = []string{"cheap", "affordable", "budget"}
	premiumKeywords   = []string{"expensive", "premium"}
	intenseKeywords   = []string{"intense", "hardcore", "challenging"}
	gentleKeywords    = []string{"gentle", "easy"}
	priceKeywords     = append(append([]string{}, budgetKeywords...), premiumKeywords...)
	intensityKeywords = append(append([]string{}, intenseKeywords...), gentleKeywords...)
)

const (
	// BudgetPriceCeiling is the highest weekly price matched by budget keywords.
	BudgetPriceCeiling = 35
	// PremiumPriceFloor is the lowest weekly price matched by premium keywords.
	PremiumPriceFloor = 50
)

// Filter returns the businesses matching every active criterion, ordered by
// rating (highest first). Ties keep their input order. The input slice is not
// modified.
func Filter(businesses []Business, criteria FilterCriteria) []Business {
	criteria = criteria.Normalize()
	query := newSearchQuery(criteria.Search)

	result := make([]Business, 0, len(businesses))
	for _, b := range businesses {
		if !matchesCategory(b, criteria.Category) ||
			!matchesPrice(b, criteria.MinPrice, criteria.MaxPrice) ||
			!matchesServices(b, criteria.Services) ||
			!matchesVibe(b, criteria.Vibe) ||
			!query.matches(b) {
			continue
		}
		result = append(result, b)
	}

	SortByRating(result)
	if criteria.Sort.Field != "" {
		SortBusinesses(result, criteria.Sort)
	}
	return result
}

// SortByRating orders businesses by rating, highest first, keeping ties stable.
func SortByRating(businesses []Business) {
	sort.SliceStable(businesses, func(i, j int) bool {
		return businesses[i].Rating > businesses[j].Rating
	})
}

func matchesCategory(b Business, category string) bool {
	if category == AllSentinel {
		return true
	}
	return normalize(b.Category) == normalize(category)
}

func matchesPrice(b Business, minPrice, maxPrice int) bool {
	return b.Price >= minPrice && b.Price <= maxPrice
}

func matchesServices(b Business, requested []string) bool {
	if len(requested) == 0 {
		return true
	}
	for _, want := range requested {
		for _, have := range b.Services {
			if containsFold(have, want) {
				return true
			}
		}
	}
	return false
}

func matchesVibe(b Business, vibe string) bool {
	if vibe == AllSentinel {
		return true
	}
	return containsFold(b.Vibe, vibe)
}

// searchQuery is a normalised search term plus the intents detected in it.
type searchQuery struct {
	term         string
	hasPrice     bool
	hasIntensity bool
}

func newSearchQuery(raw string) searchQuery {
	term := normalize(raw)
	return searchQuery{
		term:         term,
		hasPrice:     containsAny(term, priceKeywords),
		hasIntensity: containsAny(term, intensityKeywords),
	}
}

func (q searchQuery) matches(b Business) bool {
	if q.term == "" {
		return true
	}
	return q.basicMatch(b) || q.heuristicMatch(b)
}

func (q searchQuery) basicMatch(b Business) bool {
	if containsFold(b.Name, q.term) ||
		containsFold(b.Category, q.term) ||
		containsFold(b.Location, q.term) ||
		containsFold(b.Description, q.term) ||
		containsFold(b.Vibe, q.term) {
		return true
	}
	for _, service := range b.Services {
		if containsFold(service, q.term) {
			return true
		}
	}
	return false
}

// heuristicMatch evaluates price intent first, then intensity intent. When a
// term carries both, the intensity result decides.
func (q searchQuery) heuristicMatch(b Business) bool {
	matched := false
	if q.hasPrice {
		switch {
		case containsAny(q.term, budgetKeywords):
			matched = b.Price <= BudgetPriceCeiling
		case containsAny(q.term, premiumKeywords):
			matched = b.Price >= PremiumPriceFloor
		}
	}
	if q.hasIntensity {
		switch {
		case containsAny(q.term, intenseKeywords):
			matched = containsFold(b.Vibe, VibePerformance)
		case containsAny(q.term, gentleKeywords):
			matched = containsFold(b.Vibe, VibeCalm)
		}
	}
	return matched
}

func containsAny(term string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(term, keyword) {
			return true
		}
	}
	return false
}

package domain

import "strings"

const (
	// AllSentinel disables the category and vibe filters.
	AllSentinel = "all"
	// DefaultMinPrice and DefaultMaxPrice bound the weekly price filter.
	DefaultMinPrice = 0
	DefaultMaxPrice = 100
)

// FilterCriteria expresses one listing query. Build it with DefaultCriteria and
// override the fields the caller cares about.
type FilterCriteria struct {
	Category string
	MinPrice int
	MaxPrice int
	Services []string
	Vibe     string
	Search   string
	Sort     SortSpec
}

// DefaultCriteria returns criteria that match every business.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		Category: AllSentinel,
		MinPrice: DefaultMinPrice,
		MaxPrice: DefaultMaxPrice,
		Vibe:     AllSentinel,
	}
}

// Normalize trims string inputs, maps blank category/vibe to the "all"
// sentinel and drops blank service names.
func (c FilterCriteria) Normalize() FilterCriteria {
	c.Category = choiceOrAll(c.Category)
	c.Vibe = choiceOrAll(c.Vibe)
	c.Search = strings.TrimSpace(c.Search)

	services := make([]string, 0, len(c.Services))
	for _, s := range c.Services {
		s = strings.TrimSpace(s)
		if s != "" {
			services = append(services, s)
		}
	}
	c.Services = services
	return c
}

// ParseServices splits a comma-joined service list.
func ParseServices(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	services := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			services = append(services, part)
		}
	}
	return services
}

func choiceOrAll(value string) string {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, AllSentinel) {
		return AllSentinel
	}
	return value
}

// normalize is the single lowercase+trim helper used by every text comparison.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(normalize(haystack), normalize(needle))
}

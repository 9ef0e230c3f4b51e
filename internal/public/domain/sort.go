package domain

import (
	"sort"
	"strings"
)

// SortField names a sortable business column.
type SortField string

const (
	SortFieldName     SortField = "name"
	SortFieldCategory SortField = "category"
	SortFieldLocation SortField = "location"
	SortFieldPrice    SortField = "price"
	SortFieldVibe     SortField = "vibe"
	SortFieldRating   SortField = "rating"
)

// SortDirection is either ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortSpec selects an explicit column ordering. The zero value keeps the
// default rating order.
type SortSpec struct {
	Field     SortField
	Direction SortDirection
}

// ParseSortSpec builds a SortSpec from loose user input. Unknown fields yield
// the zero SortSpec; anything other than "desc" sorts ascending.
func ParseSortSpec(field, direction string) SortSpec {
	f := SortField(normalize(field))
	switch f {
	case SortFieldName, SortFieldCategory, SortFieldLocation, SortFieldPrice, SortFieldVibe, SortFieldRating:
	default:
		return SortSpec{}
	}
	d := SortAsc
	if normalize(direction) == string(SortDesc) {
		d = SortDesc
	}
	return SortSpec{Field: f, Direction: d}
}

// SortBusinesses reorders businesses in place by the given column. Strings
// compare case-insensitively and equal keys keep their current order.
func SortBusinesses(businesses []Business, spec SortSpec) {
	less := columnLess(spec.Field)
	if less == nil {
		return
	}
	desc := spec.Direction == SortDesc
	sort.SliceStable(businesses, func(i, j int) bool {
		if desc {
			return less(businesses[j], businesses[i])
		}
		return less(businesses[i], businesses[j])
	})
}

func columnLess(field SortField) func(a, b Business) bool {
	switch field {
	case SortFieldName:
		return stringLess(func(b Business) string { return b.Name })
	case SortFieldCategory:
		return stringLess(func(b Business) string { return b.Category })
	case SortFieldLocation:
		return stringLess(func(b Business) string { return b.Location })
	case SortFieldVibe:
		return stringLess(func(b Business) string { return b.Vibe })
	case SortFieldPrice:
		return func(a, b Business) bool { return a.Price < b.Price }
	case SortFieldRating:
		return func(a, b Business) bool { return a.Rating < b.Rating }
	default:
		return nil
	}
}

func stringLess(key func(Business) string) func(a, b Business) bool {
	return func(a, b Business) bool {
		return strings.ToLower(key(a)) < strings.ToLower(key(b))
	}
}

package public

import (
	"net/url"
	"strings"

	"github.com/sngm3741/fitness-directory/api/internal/interfaces/http/common"
	publicdomain "github.com/sngm3741/fitness-directory/api/internal/public/domain"
)

// criteriaFromQuery builds filter criteria from list query parameters.
// Malformed prices fall back to the defaults instead of failing the request.
func criteriaFromQuery(query url.Values) publicdomain.FilterCriteria {
	criteria := publicdomain.DefaultCriteria()
	criteria.Category = query.Get("category")
	criteria.MinPrice = common.ParseIntOrDefault(query.Get("minPrice"), publicdomain.DefaultMinPrice)
	criteria.MaxPrice = common.ParseIntOrDefault(query.Get("maxPrice"), publicdomain.DefaultMaxPrice)
	// services may be repeated, comma-joined, or both.
	criteria.Services = publicdomain.ParseServices(strings.Join(query["services"], ","))
	criteria.Vibe = query.Get("vibe")
	criteria.Search = query.Get("search")
	criteria.Sort = publicdomain.ParseSortSpec(query.Get("sort"), query.Get("order"))
	return criteria.Normalize()
}

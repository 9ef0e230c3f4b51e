package application

import (
	"github.com/sngm3741/fitness-directory/api/internal/public/domain"
)

// businessQueryService is the concrete implementation of BusinessQueryService.
type businessQueryService struct {
	catalog *Catalog
}

// NewBusinessQueryService creates a query service over catalog.
func NewBusinessQueryService(catalog *Catalog) BusinessQueryService {
	return &businessQueryService{catalog: catalog}
}

func (s *businessQueryService) List(criteria domain.FilterCriteria) ListResult {
	items := domain.Filter(s.catalog.All(), criteria)
	return ListResult{
		Items: items,
		Count: len(items),
		Total: s.catalog.Len(),
	}
}

func (s *businessQueryService) Detail(id int) (domain.Business, error) {
	b, ok := s.catalog.Find(id)
	if !ok {
		return domain.Business{}, ErrBusinessNotFound
	}
	return b.Clone(), nil
}

func (s *businessQueryService) Suggest(term string) []string {
	return domain.Suggest(s.catalog.All(), term)
}

func (s *businessQueryService) Categories() []string {
	return append([]string{}, s.catalog.categories...)
}

func (s *businessQueryService) Services() []string {
	return append([]string{}, s.catalog.services...)
}

func (s *businessQueryService) Vibes() []string {
	return domain.Vibes()
}

func (s *businessQueryService) PriceBounds() domain.PriceRange {
	return s.catalog.prices
}

package application

import (
	"context"
	"fmt"

	"github.com/sngm3741/fitness-directory/api/internal/public/domain"
)

// Catalog is the immutable in-memory business list served by the API.
// It is built once and safe for concurrent reads.
type Catalog struct {
	businesses []domain.Business
	index      map[int]int
	categories []string
	services   []string
	prices     domain.PriceRange
}

// NewCatalog copies businesses and indexes them by id. When ids repeat the
// first record wins.
func NewCatalog(businesses []domain.Business) *Catalog {
	c := &Catalog{
		businesses: make([]domain.Business, 0, len(businesses)),
		index:      make(map[int]int, len(businesses)),
	}
	for _, b := range businesses {
		if _, dup := c.index[b.ID]; dup {
			continue
		}
		c.index[b.ID] = len(c.businesses)
		c.businesses = append(c.businesses, b.Clone())
	}
	c.categories = domain.Categories(c.businesses)
	c.services = domain.Services(c.businesses)
	c.prices = domain.PriceBounds(c.businesses)
	return c
}

// LoadCatalog reads every business through loader. On failure it returns an
// empty catalog together with the error so callers can keep serving.
func LoadCatalog(ctx context.Context, loader BusinessLoader) (*Catalog, error) {
	businesses, err := loader.Load(ctx)
	if err != nil {
		return NewCatalog(nil), fmt.Errorf("load businesses: %w", err)
	}
	return NewCatalog(businesses), nil
}

// All returns the catalog list in dataset order. Callers must not modify it.
func (c *Catalog) All() []domain.Business {
	return c.businesses
}

// Len returns the number of businesses.
func (c *Catalog) Len() int {
	return len(c.businesses)
}

// Find looks up a business by id.
func (c *Catalog) Find(id int) (domain.Business, bool) {
	i, ok := c.index[id]
	if !ok {
		return domain.Business{}, false
	}
	return c.businesses[i], true
}

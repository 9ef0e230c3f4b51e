package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategories_FirstOccurrenceOrder(t *testing.T) {
	businesses := []Business{
		{Category: "Yoga"},
		{Category: "Gym"},
		{Category: "Yoga"},
		{Category: "Pilates"},
		{Category: "Gym"},
	}

	assert.Equal(t, []string{"Yoga", "Gym", "Pilates"}, Categories(businesses))
}

func TestServices_Flattened(t *testing.T) {
	businesses := []Business{
		{Services: []string{"Sauna", "PT"}},
		{Services: nil},
		{Services: []string{"PT", "Hot Yoga", "Sauna"}},
	}

	assert.Equal(t, []string{"Sauna", "PT", "Hot Yoga"}, Services(businesses))
}

func TestMetadata_EmptyList(t *testing.T) {
	assert.Empty(t, Categories(nil))
	assert.Empty(t, Services(nil))
	assert.Equal(t, PriceRange{}, PriceBounds(nil))
}

func TestPriceBounds(t *testing.T) {
	assert.Equal(t, PriceRange{Min: 35, Max: 80}, PriceBounds(sampleBusinesses()))
}

func TestVibes_ReturnsCopy(t *testing.T) {
	v := Vibes()
	assert.Len(t, v, 5)
	v[0] = "mutated"
	assert.Equal(t, VibePerformance, Vibes()[0])
}

// Package filestore loads the business dataset from a JSON or YAML file.
package filestore

import "github.com/sngm3741/fitness-directory/api/internal/public/domain"

// BusinessRecord is the on-disk schema of one business. JSON and YAML share
// the same camelCase keys.
type BusinessRecord struct {
	ID             int      `json:"id" yaml:"id" validate:"gt=0"`
	Name           string   `json:"name" yaml:"name"`
	Category       string   `json:"category" yaml:"category"`
	Location       string   `json:"location" yaml:"location"`
	Price          int      `json:"price" yaml:"price" validate:"gte=0"`
	Services       []string `json:"services" yaml:"services"`
	Vibe           string   `json:"vibe" yaml:"vibe"`
	Description    string   `json:"description" yaml:"description"`
	Rating         float64  `json:"rating" yaml:"rating" validate:"gte=0,lte=5"`
	Image          string   `json:"image" yaml:"image"`
	Type           string   `json:"type,omitempty" yaml:"type,omitempty"`
	Reviews        int      `json:"reviews,omitempty" yaml:"reviews,omitempty" validate:"gte=0"`
	Amenities      []string `json:"amenities,omitempty" yaml:"amenities,omitempty"`
	Hours          string   `json:"hours,omitempty" yaml:"hours,omitempty"`
	MonthlyPrice   int      `json:"monthlyPrice,omitempty" yaml:"monthlyPrice,omitempty" validate:"gte=0"`
	JoinFee        int      `json:"joinFee,omitempty" yaml:"joinFee,omitempty" validate:"gte=0"`
	MemberCapacity int      `json:"memberCapacity,omitempty" yaml:"memberCapacity,omitempty" validate:"gte=0"`
}

// ToDomain maps a record onto the domain model.
func (r BusinessRecord) ToDomain() domain.Business {
	return domain.Business{
		ID:          r.ID,
		Name:        r.Name,
		Category:    r.Category,
		Location:    r.Location,
		Price:       r.Price,
		Services:    append([]string{}, r.Services...),
		Vibe:        r.Vibe,
		Description: r.Description,
		Rating:      r.Rating,
		Image:       r.Image,
		Details: domain.BusinessDetails{
			Type:           r.Type,
			Reviews:        r.Reviews,
			Amenities:      append([]string{}, r.Amenities...),
			Hours:          r.Hours,
			MonthlyPrice:   r.MonthlyPrice,
			JoinFee:        r.JoinFee,
			MemberCapacity: r.MemberCapacity,
		},
	}
}

// RecordFromDomain maps a business back onto the on-disk schema.
func RecordFromDomain(b domain.Business) BusinessRecord {
	return BusinessRecord{
		ID:             b.ID,
		Name:           b.Name,
		Category:       b.Category,
		Location:       b.Location,
		Price:          b.Price,
		Services:       append([]string{}, b.Services...),
		Vibe:           b.Vibe,
		Description:    b.Description,
		Rating:         b.Rating,
		Image:          b.Image,
		Type:           b.Details.Type,
		Reviews:        b.Details.Reviews,
		Amenities:      append([]string(nil), b.Details.Amenities...),
		Hours:          b.Details.Hours,
		MonthlyPrice:   b.Details.MonthlyPrice,
		JoinFee:        b.Details.JoinFee,
		MemberCapacity: b.Details.MemberCapacity,
	}
}

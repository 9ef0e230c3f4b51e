package public

import (
	"time"

	publicdomain "github.com/sngm3741/fitness-directory/api/internal/public/domain"
)

type businessResponse struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Location       string   `json:"location"`
	Price          int      `json:"price"`
	Services       []string `json:"services"`
	Vibe           string   `json:"vibe"`
	Description    string   `json:"description"`
	Rating         float64  `json:"rating"`
	Image          string   `json:"image"`
	Type           string   `json:"type,omitempty"`
	Reviews        int      `json:"reviews,omitempty"`
	Amenities      []string `json:"amenities,omitempty"`
	Hours          string   `json:"hours,omitempty"`
	MonthlyPrice   int      `json:"monthlyPrice,omitempty"`
	JoinFee        int      `json:"joinFee,omitempty"`
	MemberCapacity int      `json:"memberCapacity,omitempty"`
}

type compareResponse struct {
	Items      []businessResponse `json:"items"`
	Count      int                `json:"count"`
	ModalOpen  bool               `json:"modalOpen"`
	CanAdd     bool               `json:"canAdd"`
	CanCompare bool               `json:"canCompare"`
	Changed    *bool              `json:"changed,omitempty"`
}

type compareSessionResponse struct {
	SessionID string    `json:"sessionId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type compareAddRequest struct {
	ID int `json:"id"`
}

type priceRangeResponse struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// buildBusinessResponse は Business ドメインモデルを API 用 DTO に変換する。
func buildBusinessResponse(b publicdomain.Business) businessResponse {
	services := append([]string{}, b.Services...)
	return businessResponse{
		ID:             b.ID,
		Name:           b.Name,
		Category:       b.Category,
		Location:       b.Location,
		Price:          b.Price,
		Services:       services,
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

func buildBusinessResponses(businesses []publicdomain.Business) []businessResponse {
	items := make([]businessResponse, 0, len(businesses))
	for _, b := range businesses {
		items = append(items, buildBusinessResponse(b))
	}
	return items
}

func buildCompareResponse(snapshot publicdomain.CompareSnapshot) compareResponse {
	return compareResponse{
		Items:      buildBusinessResponses(snapshot.Items),
		Count:      len(snapshot.Items),
		ModalOpen:  snapshot.ModalOpen,
		CanAdd:     snapshot.CanAdd,
		CanCompare: snapshot.CanCompare,
	}
}

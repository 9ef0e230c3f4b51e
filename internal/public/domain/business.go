package domain

// Business represents a publicly listed fitness business.
type Business struct {
	ID          int
	Name        string
	Category    string
	Location    string
	Price       int
	Services    []string
	Vibe        string
	Description string
	Rating      float64
	Image       string
	Details     BusinessDetails
}

// BusinessDetails carries optional listing attributes shown on detail and compare views.
type BusinessDetails struct {
	Type           string
	Reviews        int
	Amenities      []string
	Hours          string
	MonthlyPrice   int
	JoinFee        int
	MemberCapacity int
}

// Vibe labels used by the directory. The set is fixed.
const (
	VibePerformance = "Performance & Intensity"
	VibeCalm        = "Calm & Wellness"
	VibeCommunity   = "Community & Support"
	VibeModern      = "Modern & Tech-Forward"
	VibeFlexibility = "Flexibility & Lifestyle"
)

var vibes = []string{VibePerformance, VibeCalm, VibeCommunity, VibeModern, VibeFlexibility}

// Vibes returns the fixed vibe labels in display order.
func Vibes() []string {
	return append([]string{}, vibes...)
}

// Clone returns a deep copy so callers cannot mutate catalog-owned slices.
func (b Business) Clone() Business {
	b.Services = append([]string{}, b.Services...)
	b.Details.Amenities = append([]string{}, b.Details.Amenities...)
	return b
}

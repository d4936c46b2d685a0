package entity

// Project is a job listing on the projects market: a client describing work
// they want professionals to bid on.
type Project struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Client      string          `json:"client"`
	Budget      string          `json:"budget,omitempty"`
	Deadline    string          `json:"deadline"`
	Category    ProjectCategory `json:"category"`
	Description string          `json:"description"`
	City        string          `json:"city,omitempty"`
	PostedDate  string          `json:"postedDate"` // YYYY-MM-DD
}

// LandListing is a plot of land offered by its owner for development deals.
type LandListing struct {
	ID           string `json:"id"`
	OwnerName    string `json:"ownerName"`
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood"`
	Area         int    `json:"area"` // Square meters.
	Description  string `json:"description"`
	PostedDate   string `json:"postedDate"`
	ImageURL     string `json:"imageUrl"`
}

// PropertyType classifies a real-estate market listing.
type PropertyType string

const (
	PropertyVilla      PropertyType = "villa"
	PropertyApartment  PropertyType = "apartment"
	PropertyLand       PropertyType = "land"
	PropertyCommercial PropertyType = "commercial"
)

// IsValid checks if the PropertyType is a valid value.
func (t PropertyType) IsValid() bool {
	switch t {
	case PropertyVilla, PropertyApartment, PropertyLand, PropertyCommercial:
		return true
	default:
		return false
	}
}

// PropertyListing is a finished property for sale on the real-estate market,
// published by a developer profile.
type PropertyListing struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Location      string       `json:"location"`
	Price         int64        `json:"price"`
	Type          PropertyType `json:"type"`
	Bedrooms      int          `json:"bedrooms,omitempty"`
	Bathrooms     int          `json:"bathrooms,omitempty"`
	Area          int          `json:"area"`
	CoverImageURL string       `json:"coverImageUrl"`
	Images        []string     `json:"images"`
	Description   string       `json:"description"`
	Amenities     []string     `json:"amenities"`
	DeveloperID   int64        `json:"developerId"`
}

package entity

// Profile is a professional directory entry: a company or office offering
// design, construction, or development services.
type Profile struct {
	ID                  int64             `json:"id"`
	Name                string            `json:"name"`
	Specialty           string            `json:"specialty"`
	Location            string            `json:"location"`
	Rating              float64           `json:"rating"`
	ImageURL            string            `json:"imageUrl"`
	IsVerified          bool              `json:"isVerified"`
	Category            DirectoryCategory `json:"category"`
	PortfolioProjectIDs []string          `json:"portfolioProjectIds,omitempty"`
	Bio                 string            `json:"bio"`
	Services            []string          `json:"services"`
}

// FeaturedProject is a promoted development listed alongside profiles in the
// directory, typically under the real-estate opportunities category.
type FeaturedProject struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Developer   string            `json:"developer"`
	Description string            `json:"description"`
	ImageURL    string            `json:"imageUrl"`
	Category    DirectoryCategory `json:"category"`
}

// PortfolioProject is a completed work shown in a professional's portfolio
// and in the inspiration gallery.
type PortfolioProject struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	ProfessionalID int64             `json:"professionalId"`
	CoverImageURL  string            `json:"coverImageUrl"`
	Description    string            `json:"description,omitempty"`
	Location       string            `json:"location"`
	Year           int               `json:"year"`
	Category       PortfolioCategory `json:"category"`
	Style          PortfolioStyle    `json:"style"`
	Images         []string          `json:"images"`
	ModelURL       string            `json:"modelUrl,omitempty"` // Optional 3D model viewer asset.
}

// Review is a client review attached to a directory profile.
type Review struct {
	ID           int64   `json:"id"`
	ProfileID    int64   `json:"profileId"`
	AuthorName   string  `json:"authorName"`
	AuthorAvatar string  `json:"authorAvatar"`
	Rating       float64 `json:"rating"`
	Comment      string  `json:"comment"`
	Date         string  `json:"date"`
}

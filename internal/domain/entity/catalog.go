package entity

// Store is a curated shop. Vendors own exactly one store, created when they
// register; curated stores come from the seed data.
type Store struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	ImageURL        string `json:"imageUrl"`
	MainImageURL    string `json:"mainImageUrl"`
	CollectionTitle string `json:"collectionTitle"`
}

// Product is a shop item. Physical products link out to a retailer; digital
// products carry downloadable file formats.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Price         string          `json:"price"`
	OriginalPrice string          `json:"originalPrice,omitempty"`
	ImageURL      string          `json:"imageUrl"`
	Category      ProductCategory `json:"category"`
	ProductType   ProductType     `json:"productType"`
	Subcategory   string          `json:"subcategory"`
	StoreID       string          `json:"storeId"`
	StoreName     string          `json:"storeName"`
	Retailer      string          `json:"retailer"`
	ExternalURL   string          `json:"externalUrl"`
	FileFormats   []string        `json:"fileFormats,omitempty"`
}

package entity

// The catalogue facets below are closed sets. Each facet value is a
// language-independent symbol; display text lives in per-language label
// tables. Parse helpers accept either the symbol or a display label so
// filter inputs written in Arabic or English resolve to the same value.

// DirectoryCategory classifies an entry in the professional directory.
type DirectoryCategory string

const (
	DirectoryRealEstateDevelopers DirectoryCategory = "realestate_developers"
	DirectoryContracting          DirectoryCategory = "contracting"
	DirectoryEngineering          DirectoryCategory = "engineering"
	DirectoryDecor                DirectoryCategory = "decor"
	DirectoryMaterials            DirectoryCategory = "materials"
	DirectoryLandscape            DirectoryCategory = "landscape"
	DirectoryServices             DirectoryCategory = "services"
	DirectoryOpportunities        DirectoryCategory = "opportunities"
)

var directoryCategoryLabels = map[DirectoryCategory]map[Language]string{
	DirectoryRealEstateDevelopers: {LanguageArabic: "شركات تطوير عقاري", LanguageEnglish: "Real Estate Developers"},
	DirectoryContracting:          {LanguageArabic: "شركات مقاولات", LanguageEnglish: "Contracting Companies"},
	DirectoryEngineering:          {LanguageArabic: "مكاتب هندسية", LanguageEnglish: "Engineering Offices"},
	DirectoryDecor:                {LanguageArabic: "مكاتب ديكور", LanguageEnglish: "Decor Offices"},
	DirectoryMaterials:            {LanguageArabic: "مواد البناء والعلامات التجارية", LanguageEnglish: "Building Materials & Brands"},
	DirectoryLandscape:            {LanguageArabic: "لاندسكيب", LanguageEnglish: "Landscape"},
	DirectoryServices:             {LanguageArabic: "خدمات فنية وتسويقية", LanguageEnglish: "Technical & Marketing Services"},
	DirectoryOpportunities:        {LanguageArabic: "فرص عقارية", LanguageEnglish: "Real Estate Opportunities"},
}

// String returns the string representation of the DirectoryCategory.
func (c DirectoryCategory) String() string {
	return string(c)
}

// IsValid checks if the DirectoryCategory is a valid value.
func (c DirectoryCategory) IsValid() bool {
	_, ok := directoryCategoryLabels[c]

	return ok
}

// Label returns the display label for the given language.
func (c DirectoryCategory) Label(lang Language) string {
	return directoryCategoryLabels[c][lang]
}

// ParseDirectoryCategory resolves a symbol or display label to a category.
func ParseDirectoryCategory(s string) (DirectoryCategory, bool) {
	if c := DirectoryCategory(s); c.IsValid() {
		return c, true
	}
	for c, labels := range directoryCategoryLabels {
		for _, label := range labels {
			if label == s {
				return c, true
			}
		}
	}

	return "", false
}

// PortfolioCategory classifies a portfolio project by use.
type PortfolioCategory string

const (
	PortfolioResidential   PortfolioCategory = "residential"
	PortfolioCommercial    PortfolioCategory = "commercial"
	PortfolioHospitality   PortfolioCategory = "hospitality"
	PortfolioOffice        PortfolioCategory = "office"
	PortfolioEntertainment PortfolioCategory = "entertainment"
)

var portfolioCategoryLabels = map[PortfolioCategory]map[Language]string{
	PortfolioResidential:   {LanguageArabic: "سكني", LanguageEnglish: "Residential"},
	PortfolioCommercial:    {LanguageArabic: "تجاري", LanguageEnglish: "Commercial"},
	PortfolioHospitality:   {LanguageArabic: "ضيافة", LanguageEnglish: "Hospitality"},
	PortfolioOffice:        {LanguageArabic: "مكتبي", LanguageEnglish: "Office"},
	PortfolioEntertainment: {LanguageArabic: "ترفيهي", LanguageEnglish: "Entertainment"},
}

// String returns the string representation of the PortfolioCategory.
func (c PortfolioCategory) String() string {
	return string(c)
}

// IsValid checks if the PortfolioCategory is a valid value.
func (c PortfolioCategory) IsValid() bool {
	_, ok := portfolioCategoryLabels[c]

	return ok
}

// Label returns the display label for the given language.
func (c PortfolioCategory) Label(lang Language) string {
	return portfolioCategoryLabels[c][lang]
}

// ParsePortfolioCategory resolves a symbol or display label to a category.
func ParsePortfolioCategory(s string) (PortfolioCategory, bool) {
	if c := PortfolioCategory(s); c.IsValid() {
		return c, true
	}
	for c, labels := range portfolioCategoryLabels {
		for _, label := range labels {
			if label == s {
				return c, true
			}
		}
	}

	return "", false
}

// PortfolioStyle classifies a portfolio project by design style.
type PortfolioStyle string

const (
	StyleModern       PortfolioStyle = "modern"
	StyleNeoclassic   PortfolioStyle = "neoclassic"
	StyleIndustrial   PortfolioStyle = "industrial"
	StyleBohemian     PortfolioStyle = "bohemian"
	StyleContemporary PortfolioStyle = "contemporary"
)

var portfolioStyleLabels = map[PortfolioStyle]map[Language]string{
	StyleModern:       {LanguageArabic: "مودرن", LanguageEnglish: "Modern"},
	StyleNeoclassic:   {LanguageArabic: "نيوكلاسيك", LanguageEnglish: "Neoclassic"},
	StyleIndustrial:   {LanguageArabic: "صناعي", LanguageEnglish: "Industrial"},
	StyleBohemian:     {LanguageArabic: "بوهيمي", LanguageEnglish: "Bohemian"},
	StyleContemporary: {LanguageArabic: "معاصر", LanguageEnglish: "Contemporary"},
}

// String returns the string representation of the PortfolioStyle.
func (s PortfolioStyle) String() string {
	return string(s)
}

// IsValid checks if the PortfolioStyle is a valid value.
func (s PortfolioStyle) IsValid() bool {
	_, ok := portfolioStyleLabels[s]

	return ok
}

// Label returns the display label for the given language.
func (s PortfolioStyle) Label(lang Language) string {
	return portfolioStyleLabels[s][lang]
}

// ParsePortfolioStyle resolves a symbol or display label to a style.
func ParsePortfolioStyle(raw string) (PortfolioStyle, bool) {
	if s := PortfolioStyle(raw); s.IsValid() {
		return s, true
	}
	for s, labels := range portfolioStyleLabels {
		for _, label := range labels {
			if label == raw {
				return s, true
			}
		}
	}

	return "", false
}

// ProjectCategory classifies a job listing posted on the projects market.
type ProjectCategory string

const (
	ProjectArchitectural ProjectCategory = "architectural"
	ProjectInterior      ProjectCategory = "interior"
	ProjectContracting   ProjectCategory = "contracting"
	ProjectSupply        ProjectCategory = "supply"
	ProjectConsulting    ProjectCategory = "consulting"
)

var projectCategoryLabels = map[ProjectCategory]map[Language]string{
	ProjectArchitectural: {LanguageArabic: "تصميم معماري", LanguageEnglish: "Architectural Design"},
	ProjectInterior:      {LanguageArabic: "تصميم داخلي", LanguageEnglish: "Interior Design"},
	ProjectContracting:   {LanguageArabic: "مقاولات عامة", LanguageEnglish: "General Contracting"},
	ProjectSupply:        {LanguageArabic: "توريد مواد", LanguageEnglish: "Material Supply"},
	ProjectConsulting:    {LanguageArabic: "استشارات هندسة", LanguageEnglish: "Engineering Consulting"},
}

// String returns the string representation of the ProjectCategory.
func (c ProjectCategory) String() string {
	return string(c)
}

// IsValid checks if the ProjectCategory is a valid value.
func (c ProjectCategory) IsValid() bool {
	_, ok := projectCategoryLabels[c]

	return ok
}

// Label returns the display label for the given language.
func (c ProjectCategory) Label(lang Language) string {
	return projectCategoryLabels[c][lang]
}

// ParseProjectCategory resolves a symbol or display label to a category.
func ParseProjectCategory(s string) (ProjectCategory, bool) {
	if c := ProjectCategory(s); c.IsValid() {
		return c, true
	}
	for c, labels := range projectCategoryLabels {
		for _, label := range labels {
			if label == s {
				return c, true
			}
		}
	}

	return "", false
}

// ProductCategory classifies a shop product.
type ProductCategory string

const (
	ProductLandscape         ProductCategory = "landscape"
	ProductDecor             ProductCategory = "decor"
	ProductBuildingMaterials ProductCategory = "building_materials"
	ProductDigitalDesigns    ProductCategory = "digital_designs"
	ProductPlans             ProductCategory = "plans"
)

var productCategoryLabels = map[ProductCategory]map[Language]string{
	ProductLandscape:         {LanguageArabic: "لاندسكيب", LanguageEnglish: "Landscape"},
	ProductDecor:             {LanguageArabic: "ديكور", LanguageEnglish: "Decor"},
	ProductBuildingMaterials: {LanguageArabic: "مواد بناء", LanguageEnglish: "Building Materials"},
	ProductDigitalDesigns:    {LanguageArabic: "تصاميم رقمية", LanguageEnglish: "Digital Designs"},
	ProductPlans:             {LanguageArabic: "مخططات", LanguageEnglish: "Plans"},
}

// String returns the string representation of the ProductCategory.
func (c ProductCategory) String() string {
	return string(c)
}

// IsValid checks if the ProductCategory is a valid value.
func (c ProductCategory) IsValid() bool {
	_, ok := productCategoryLabels[c]

	return ok
}

// Label returns the display label for the given language.
func (c ProductCategory) Label(lang Language) string {
	return productCategoryLabels[c][lang]
}

// ParseProductCategory resolves a symbol or display label to a category.
func ParseProductCategory(s string) (ProductCategory, bool) {
	if c := ProductCategory(s); c.IsValid() {
		return c, true
	}
	for c, labels := range productCategoryLabels {
		for _, label := range labels {
			if label == s {
				return c, true
			}
		}
	}

	return "", false
}

// ProductType distinguishes how a product is delivered.
type ProductType string

const (
	ProductPhysical  ProductType = "physical"
	ProductDigital   ProductType = "digital"
	ProductExclusive ProductType = "exclusive"
)

// String returns the string representation of the ProductType.
func (t ProductType) String() string {
	return string(t)
}

// IsValid checks if the ProductType is a valid value.
func (t ProductType) IsValid() bool {
	switch t {
	case ProductPhysical, ProductDigital, ProductExclusive:
		return true
	default:
		return false
	}
}

// IsAllFacet reports whether a filter input selects every value of a facet.
// The empty string and the "all" sentinel in either language pass everything.
func IsAllFacet(s string) bool {
	switch s {
	case "", "all", "الكل":
		return true
	default:
		return false
	}
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Page identifies a navigable screen of the site. The set is closed; any
// value outside it resolves to PageHome.
type Page string

const (
	PageHome              Page = "home"
	PageDirectory         Page = "directory"
	PageAIDesignStudio    Page = "ai-design-studio"
	PageShop              Page = "shop"
	PageUpgrade           Page = "upgrade"
	PageBlog              Page = "blog"
	PageNewsletter        Page = "newsletter"
	PageProjectDetail     Page = "projectDetail"
	PageProfileDetail     Page = "profileDetail"
	PageStoreDetail       Page = "storeDetail"
	PageHub               Page = "hub"
	PageVendorDashboard   Page = "vendorDashboard"
	PageJoinPro           Page = "join-pro"
	PageJoinProSuccess    Page = "join-pro-success"
	PageADOffer           Page = "ad-offer"
	PageBeesmotion        Page = "beesmotion"
	PageInspirations      Page = "inspirations"
	PageAboutUs           Page = "about-us"
	PageGraphicsHouse     Page = "graphics-house"
	PageFullService       Page = "full-service"
	PageListLandLanding   Page = "list-land-landing"
	PageLandOwnerForm     Page = "land-owner-form"
	PageLandMarket        Page = "land-market"
	PageOpportunities     Page = "opportunities"
	PageRealEstateMarket  Page = "real-estate-market"
	PagePropertyDetail    Page = "propertyDetail"
	PageRealEstateLanding Page = "real-estate-landing"
)

var validPages = map[Page]struct{}{
	PageHome: {}, PageDirectory: {}, PageAIDesignStudio: {}, PageShop: {},
	PageUpgrade: {}, PageBlog: {}, PageNewsletter: {}, PageProjectDetail: {},
	PageProfileDetail: {}, PageStoreDetail: {}, PageHub: {}, PageVendorDashboard: {},
	PageJoinPro: {}, PageJoinProSuccess: {}, PageADOffer: {}, PageBeesmotion: {},
	PageInspirations: {}, PageAboutUs: {}, PageGraphicsHouse: {}, PageFullService: {},
	PageListLandLanding: {}, PageLandOwnerForm: {}, PageLandMarket: {},
	PageOpportunities: {}, PageRealEstateMarket: {}, PagePropertyDetail: {},
	PageRealEstateLanding: {},
}

// String returns the string representation of the Page.
func (p Page) String() string {
	return string(p)
}

// IsValid checks if the Page is a valid value.
func (p Page) IsValid() bool {
	_, ok := validPages[p]

	return ok
}

// ParsePage resolves a raw page name. Unknown names resolve to home rather
// than erroring, so a bad link never strands the visitor.
func ParsePage(s string) Page {
	if p := Page(s); p.IsValid() {
		return p
	}

	return PageHome
}

// Theme is the visual theme of a session.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}

	return ThemeLight
}

// AuthModalView selects which form the auth modal shows.
type AuthModalView string

const (
	AuthViewLogin  AuthModalView = "login"
	AuthViewSignup AuthModalView = "signup"
)

// IsValid checks if the AuthModalView is a valid value.
func (v AuthModalView) IsValid() bool {
	return v == AuthViewLogin || v == AuthViewSignup
}

// AuthModalState tracks the auth modal of a session. RedirectPage is the
// page to jump to once authentication succeeds.
type AuthModalState struct {
	Open         bool          `json:"open"`
	View         AuthModalView `json:"view"`
	RedirectPage Page          `json:"redirectPage,omitempty"`
}

// Session is the per-visitor navigation and UI state container. It lives for
// the lifetime of the process only.
type Session struct {
	ID              uuid.UUID      `json:"id"`
	Language        Language       `json:"language"`
	Theme           Theme          `json:"theme"`
	CurrentPage     Page           `json:"currentPage"`
	AuthModal       AuthModalState `json:"authModal"`
	UserID          uuid.UUID      `json:"userId,omitempty"`
	ActiveProjectID string         `json:"activeProjectId,omitempty"`
	ActiveProfileID int64          `json:"activeProfileId,omitempty"`
	ActiveStoreID   string         `json:"activeStoreId,omitempty"`
	Studio          StudioState    `json:"studio"`
	CreatedAt       time.Time      `json:"createdAt"`
}

// NewSession returns a session with the default state: home page, Arabic,
// light theme, auth modal closed on the login view.
func NewSession() *Session {
	return &Session{
		ID:          uuid.New(),
		Language:    DefaultLanguage,
		Theme:       ThemeLight,
		CurrentPage: PageHome,
		AuthModal:   AuthModalState{View: AuthViewLogin},
		CreatedAt:   time.Now(),
	}
}

// Authenticated reports whether a user is attached to the session.
func (s *Session) Authenticated() bool {
	return s.UserID != uuid.Nil
}

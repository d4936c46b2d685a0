// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Language identifies one of the two content languages the platform serves.
// Arabic is the primary language and the default for new sessions.
type Language string

const (
	// LanguageArabic is the primary content language, rendered RTL.
	LanguageArabic Language = "ar"
	// LanguageEnglish is the secondary content language, rendered LTR.
	LanguageEnglish Language = "en"
)

// DefaultLanguage is the language assigned to a freshly created session.
const DefaultLanguage = LanguageArabic

// String returns the string representation of the Language.
func (l Language) String() string {
	return string(l)
}

// IsValid checks if the Language is a valid value.
func (l Language) IsValid() bool {
	switch l {
	case LanguageArabic, LanguageEnglish:
		return true
	default:
		return false
	}
}

// Other returns the opposite language. Content mutations are applied to both
// language variants, so callers often need the counterpart of the active one.
func (l Language) Other() Language {
	if l == LanguageArabic {
		return LanguageEnglish
	}

	return LanguageArabic
}

// Languages returns every supported language.
func Languages() []Language {
	return []Language{LanguageArabic, LanguageEnglish}
}

package constants

// Language is the closed set of languages with dedicated downstream models.
type Language string

const (
	LangEnglish Language = "en"
	LangFrench  Language = "fr"
)

// DefaultLanguage is the fallback when detection is uncertain or the detected
// language has no dedicated model.
const DefaultLanguage = LangEnglish

// SupportedLanguages holds the allowed values for the language field.
var SupportedLanguages = []string{string(LangEnglish), string(LangFrench)}

// IsSupportedLanguage reports whether code has a dedicated model.
func IsSupportedLanguage(code string) bool {
	for _, l := range SupportedLanguages {
		if l == code {
			return true
		}
	}
	return false
}

package locale

import "strings"

const (
	LanguageEnglish = "en"
	LanguageHindi   = "hi"
)

// Preference captures the resolved language of a request.
type Preference struct {
	Language string
	Locale   string
	HTMLLang string
}

// NormalizeLanguage maps free-form language hints to a supported language,
// or "" when the hint matches neither.
func NormalizeLanguage(raw string) string {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "hi") || trimmed == "hin" {
		return LanguageHindi
	}
	if strings.HasPrefix(trimmed, "en") {
		return LanguageEnglish
	}
	return ""
}

// LanguageFromCountryCode guesses a language from a two-letter country code.
func LanguageFromCountryCode(code string) string {
	trimmed := strings.ToUpper(strings.TrimSpace(code))
	if trimmed == "" {
		return ""
	}
	if trimmed == "IN" {
		return LanguageHindi
	}
	return LanguageEnglish
}

// LanguageFromAcceptLanguage picks a supported language out of an
// Accept-Language header, preferring whichever appears first.
func LanguageFromAcceptLanguage(header string) string {
	trimmed := strings.ToLower(strings.TrimSpace(header))
	if trimmed == "" {
		return ""
	}
	hindi := strings.Index(trimmed, "hi")
	english := strings.Index(trimmed, "en")
	switch {
	case hindi >= 0 && (english < 0 || hindi < english):
		return LanguageHindi
	case english >= 0:
		return LanguageEnglish
	}
	return ""
}

// PreferenceForLanguage expands a language code into a full preference.
// Hindi is the default for anything unrecognised.
func PreferenceForLanguage(language string) Preference {
	if NormalizeLanguage(language) == LanguageEnglish {
		return Preference{Language: LanguageEnglish, Locale: "en_IN", HTMLLang: "en-IN"}
	}
	return Preference{Language: LanguageHindi, Locale: "hi_IN", HTMLLang: "hi-IN"}
}

// Pick returns the variant matching language, falling back to the other
// variant when the preferred one is empty. Bilingual pairs are stored
// independently, so either side may be blank.
func Pick(language, en, hi string) string {
	if NormalizeLanguage(language) == LanguageEnglish {
		if strings.TrimSpace(en) != "" {
			return en
		}
		return hi
	}
	if strings.TrimSpace(hi) != "" {
		return hi
	}
	return en
}

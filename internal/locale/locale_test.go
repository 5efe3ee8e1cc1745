package locale

import "testing"

func TestNormalizeLanguage(t *testing.T) {
	cases := map[string]string{
		"hi":    LanguageHindi,
		"HI":    LanguageHindi,
		"hi-IN": LanguageHindi,
		"hin":   LanguageHindi,
		"en":    LanguageEnglish,
		"en-US": LanguageEnglish,
		"":      "",
		"fr":    "",
	}
	for input, want := range cases {
		if got := NormalizeLanguage(input); got != want {
			t.Errorf("NormalizeLanguage(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestLanguageFromAcceptLanguagePrefersFirstMatch(t *testing.T) {
	if got := LanguageFromAcceptLanguage("hi-IN,en;q=0.8"); got != LanguageHindi {
		t.Fatalf("expected hi, got %q", got)
	}
	if got := LanguageFromAcceptLanguage("en-GB,hi;q=0.5"); got != LanguageEnglish {
		t.Fatalf("expected en, got %q", got)
	}
	if got := LanguageFromAcceptLanguage("fr-FR"); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestLanguageFromCountryCode(t *testing.T) {
	if got := LanguageFromCountryCode("IN"); got != LanguageHindi {
		t.Fatalf("expected hi for IN, got %q", got)
	}
	if got := LanguageFromCountryCode("us"); got != LanguageEnglish {
		t.Fatalf("expected en for US, got %q", got)
	}
	if got := LanguageFromCountryCode(""); got != "" {
		t.Fatalf("expected empty for blank code, got %q", got)
	}
}

func TestPreferenceForLanguageDefaultsToHindi(t *testing.T) {
	pref := PreferenceForLanguage("unknown")
	if pref.Language != LanguageHindi || pref.HTMLLang != "hi-IN" {
		t.Fatalf("unexpected preference: %+v", pref)
	}

	pref = PreferenceForLanguage("en")
	if pref.Language != LanguageEnglish || pref.Locale != "en_IN" {
		t.Fatalf("unexpected preference: %+v", pref)
	}
}

func TestPickFallsBackAcrossLanguages(t *testing.T) {
	if got := Pick("en", "Temple", "मंदिर"); got != "Temple" {
		t.Fatalf("expected English value, got %q", got)
	}
	if got := Pick("hi", "Temple", "मंदिर"); got != "मंदिर" {
		t.Fatalf("expected Hindi value, got %q", got)
	}
	if got := Pick("hi", "Temple", ""); got != "Temple" {
		t.Fatalf("expected fallback to English, got %q", got)
	}
	if got := Pick("en", "", "मंदिर"); got != "मंदिर" {
		t.Fatalf("expected fallback to Hindi, got %q", got)
	}
}

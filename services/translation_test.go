package services

import "testing"

func TestTranslateSwedish(t *testing.T) {
	if got := Translate(LangSwedish, "nav.destinations"); got != "Resmål" {
		t.Errorf("expected Swedish translation, got %q", got)
	}
}

func TestTranslateFallsBackToEnglish(t *testing.T) {
	if got := Translate("de", "nav.destinations"); got != "Destinations" {
		t.Errorf("expected English fallback for unknown language, got %q", got)
	}
}

func TestTranslateFallsBackToKey(t *testing.T) {
	if got := Translate(LangEnglish, "nav.missing_key"); got != "nav.missing_key" {
		t.Errorf("expected key fallback, got %q", got)
	}
}

func TestAllTranslationsDefaultsToEnglish(t *testing.T) {
	dict := AllTranslations("xx")
	if dict["nav.login"] != "Sign In" {
		t.Errorf("expected English dictionary for unknown language")
	}
}

func TestLanguageDictionariesCoverSameKeys(t *testing.T) {
	en := translations[LangEnglish]
	sv := translations[LangSwedish]

	for key := range en {
		if _, ok := sv[key]; !ok {
			t.Errorf("missing Swedish translation for %q", key)
		}
	}
	for key := range sv {
		if _, ok := en[key]; !ok {
			t.Errorf("missing English translation for %q", key)
		}
	}
}

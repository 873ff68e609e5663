package services

const (
	LangEnglish = "en"
	LangSwedish = "sv"
)

var translations = map[string]map[string]string{
	LangEnglish: {
		"nav.destinations":   "Destinations",
		"nav.travel_reports": "Travel Reports",
		"nav.about":          "About",
		"nav.contact":        "Contact",
		"nav.login":          "Sign In",
		"nav.register":       "Get Started",
		"nav.logout":         "Logout",
		"nav.profile":        "My Profile",

		"home.hero.title":    "Discover Your Perfect Golf Destination",
		"home.hero.subtitle": "Personalized golf travel recommendations powered by AI",
		"home.hero.cta":      "Start Planning",
		"home.featured":      "Featured Destinations",

		"auth.login.title":    "Welcome Back",
		"auth.register.title": "Create Account",
		"auth.email":          "Email",
		"auth.password":       "Password",

		"booking.title":          "Book Your Golf Experience",
		"booking.select_date":    "Select Date",
		"booking.select_time":    "Select Tee Time",
		"booking.players":        "Players",
		"booking.confirm":        "Confirm Booking",
		"booking.reference":      "Booking Reference",
		"booking.status.pending": "Pending",
		"booking.cancelled":      "Booking cancelled",

		"search.placeholder": "Search destinations, countries or courses",
		"search.no_results":  "No destinations matched your search",
		"search.sort_by":     "Sort by",
		"search.price_range": "Price range",
		"search.featured":    "Featured only",
		"search.suggestions": "You might also try",
		"search.results_for": "Results for",

		"payment.pay_now":   "Pay Now",
		"payment.succeeded": "Payment received - see you on the first tee!",
		"payment.failed":    "Payment failed, please try again",

		"gdpr.consent.marketing": "Marketing emails",
		"gdpr.consent.analytics": "Analytics cookies",
		"gdpr.export.requested":  "Your data export has been requested",
		"gdpr.delete.requested":  "Your deletion request has been received",
	},
	LangSwedish: {
		"nav.destinations":   "Resmål",
		"nav.travel_reports": "Resereportage",
		"nav.about":          "Om oss",
		"nav.contact":        "Kontakt",
		"nav.login":          "Logga in",
		"nav.register":       "Kom igång",
		"nav.logout":         "Logga ut",
		"nav.profile":        "Min profil",

		"home.hero.title":    "Hitta din perfekta golfresa",
		"home.hero.subtitle": "Personliga golfresor med hjälp av AI",
		"home.hero.cta":      "Börja planera",
		"home.featured":      "Utvalda resmål",

		"auth.login.title":    "Välkommen tillbaka",
		"auth.register.title": "Skapa konto",
		"auth.email":          "E-post",
		"auth.password":       "Lösenord",

		"booking.title":          "Boka din golfupplevelse",
		"booking.select_date":    "Välj datum",
		"booking.select_time":    "Välj starttid",
		"booking.players":        "Spelare",
		"booking.confirm":        "Bekräfta bokning",
		"booking.reference":      "Bokningsreferens",
		"booking.status.pending": "Väntande",
		"booking.cancelled":      "Bokningen avbokad",

		"search.placeholder": "Sök resmål, länder eller banor",
		"search.no_results":  "Inga resmål matchade din sökning",
		"search.sort_by":     "Sortera efter",
		"search.price_range": "Prisintervall",
		"search.featured":    "Endast utvalda",
		"search.suggestions": "Du kan också prova",
		"search.results_for": "Resultat för",

		"payment.pay_now":   "Betala nu",
		"payment.succeeded": "Betalning mottagen - vi ses på första tee!",
		"payment.failed":    "Betalningen misslyckades, försök igen",

		"gdpr.consent.marketing": "Marknadsföringsmejl",
		"gdpr.consent.analytics": "Analyskakor",
		"gdpr.export.requested":  "Din dataexport har begärts",
		"gdpr.delete.requested":  "Din raderingsbegäran har tagits emot",
	},
}

// Translate looks a key up for the given language, falling back to English
// and finally to the key itself.
func Translate(lang, key string) string {
	if dict, ok := translations[lang]; ok {
		if value, ok := dict[key]; ok {
			return value
		}
	}
	if value, ok := translations[LangEnglish][key]; ok {
		return value
	}
	return key
}

// AllTranslations returns the full dictionary for a language, defaulting to
// English for unknown codes.
func AllTranslations(lang string) map[string]string {
	if dict, ok := translations[lang]; ok {
		return dict
	}
	return translations[LangEnglish]
}

// SupportedLanguages lists language codes clients can request.
func SupportedLanguages() []string {
	return []string{LangEnglish, LangSwedish}
}

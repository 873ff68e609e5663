package routes

import (
	"strings"
	"testing"
)

func TestBuildSitemap(t *testing.T) {
	out := buildSitemap("https://golftrip.se",
		[]string{"costa-del-sol-golf-resort", "st-andrews-links"},
		[]string{"packing-for-portugal"})

	if !strings.HasPrefix(out, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>") {
		t.Fatalf("missing xml declaration: %q", out[:44])
	}
	if !strings.Contains(out, "<urlset xmlns=\"http://www.sitemaps.org/schemas/sitemap/0.9\">") {
		t.Error("missing urlset element")
	}

	for _, want := range []string{
		"<url><loc>https://golftrip.se/</loc><priority>1.0</priority></url>",
		"<url><loc>https://golftrip.se/destinations</loc><priority>0.9</priority></url>",
		"<url><loc>https://golftrip.se/destinations/costa-del-sol-golf-resort</loc><priority>0.8</priority></url>",
		"<url><loc>https://golftrip.se/destinations/st-andrews-links</loc><priority>0.8</priority></url>",
		"<url><loc>https://golftrip.se/articles/packing-for-portugal</loc><priority>0.7</priority></url>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("sitemap missing entry %s", want)
		}
	}

	// 5 static pages, 2 destinations, 1 article
	if got := strings.Count(out, "<url>"); got != 8 {
		t.Errorf("expected 8 url entries, got %d", got)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "</urlset>") {
		t.Error("urlset element not closed")
	}
}

func TestSiteBaseURLTrimsTrailingSlash(t *testing.T) {
	t.Setenv("SITE_BASE_URL", "https://staging.golftrip.se/")
	if got := siteBaseURL(); got != "https://staging.golftrip.se" {
		t.Errorf("siteBaseURL() = %q, want trailing slash trimmed", got)
	}
}

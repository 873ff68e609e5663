package routes

import (
	"fmt"
	"os"
	"strings"

	"golftrip-server/models"
	"golftrip-server/storage"
	"golftrip-server/utils"

	"github.com/kataras/iris/v12"
)

func siteBaseURL() string {
	if base := os.Getenv("SITE_BASE_URL"); base != "" {
		return strings.TrimRight(base, "/")
	}
	return "https://golftrip.se"
}

// buildSitemap renders the sitemap XML: the static pages plus one entry per
// published destination and article slug.
func buildSitemap(baseURL string, destinationSlugs, articleSlugs []string) string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<urlset xmlns=\"http://www.sitemaps.org/schemas/sitemap/0.9\">\n")

	writeURL := func(loc, priority string) {
		fmt.Fprintf(&b, "<url><loc>%s</loc><priority>%s</priority></url>\n", loc, priority)
	}

	writeURL(baseURL+"/", "1.0")
	writeURL(baseURL+"/destinations", "0.9")
	writeURL(baseURL+"/articles", "0.9")
	writeURL(baseURL+"/about", "0.7")
	writeURL(baseURL+"/contact", "0.8")

	for _, slug := range destinationSlugs {
		writeURL(baseURL+"/destinations/"+slug, "0.8")
	}
	for _, slug := range articleSlugs {
		writeURL(baseURL+"/articles/"+slug, "0.7")
	}

	b.WriteString("</urlset>\n")
	return b.String()
}

func Sitemap(ctx iris.Context) {
	var destinationSlugs []string
	if err := storage.DB.Model(&models.Destination{}).
		Where("published = ?", true).
		Pluck("slug", &destinationSlugs).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	var articleSlugs []string
	if err := storage.DB.Model(&models.Article{}).
		Where("published = ?", true).
		Pluck("slug", &articleSlugs).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.ContentType("application/xml")
	ctx.WriteString(buildSitemap(siteBaseURL(), destinationSlugs, articleSlugs))
}

func Robots(ctx iris.Context) {
	ctx.ContentType("text/plain")
	ctx.WriteString("User-agent: *\nAllow: /\nSitemap: " + siteBaseURL() + "/sitemap.xml\n")
}

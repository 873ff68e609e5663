package routes

import (
	"time"

	"github.com/kataras/iris/v12"
)

// GetInstagramFeed serves the feed the landing page renders. The Instagram
// Basic Display integration is not connected yet, so the posts are canned.
func GetInstagramFeed(ctx iris.Context) {
	now := time.Now().UTC()

	ctx.JSON([]iris.Map{
		{
			"id":        "1",
			"caption":   "Experience the stunning fairways of Costa del Sol",
			"media_url": "https://images.unsplash.com/photo-1683836018144-6e5f398102de?w=400",
			"permalink": "https://instagram.com/p/golftrip1",
			"timestamp": now.Format(time.RFC3339),
		},
		{
			"id":        "2",
			"caption":   "Sunset rounds at Portugal's finest courses",
			"media_url": "https://images.unsplash.com/photo-1602798416092-03afbccf616a?w=400",
			"permalink": "https://instagram.com/p/golftrip2",
			"timestamp": now.AddDate(0, 0, -2).Format(time.RFC3339),
		},
		{
			"id":        "3",
			"caption":   "Turkish golf paradise awaits",
			"media_url": "https://images.unsplash.com/photo-1668890966028-889d8f67f2b1?w=400",
			"permalink": "https://instagram.com/p/golftrip3",
			"timestamp": now.AddDate(0, 0, -5).Format(time.RFC3339),
		},
	})
}

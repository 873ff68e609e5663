package routes

import (
	"golftrip-server/services"

	"github.com/kataras/iris/v12"
)

// GetTranslations returns the full UI string table for one language.
// Unknown languages fall back to English.
func GetTranslations(ctx iris.Context) {
	lang := ctx.Params().Get("lang")

	ctx.JSON(iris.Map{
		"language":     lang,
		"translations": services.AllTranslations(lang),
	})
}

func GetSupportedLanguages(ctx iris.Context) {
	ctx.JSON(iris.Map{
		"languages": services.SupportedLanguages(),
	})
}

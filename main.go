package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"golftrip-server/routes"
	"golftrip-server/services"
	"golftrip-server/storage"
	"golftrip-server/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func main() {
	// Only load .env in development
	if os.Getenv("RENDER") == "" {
		godotenv.Load()
	}

	// Initialize services
	storage.InitializeDB()
	storage.InitializeS3()
	storage.InitializeRedis()
	routes.InitializeStripe()

	scheduler := services.StartScheduler()
	defer scheduler.Stop()

	app := iris.New()
	app.Validator = validator.New()

	// CORS configuration
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	// Minimal middleware - compression only
	app.Use(iris.Compression)

	// JWT Verifiers
	resetTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("EMAIL_TOKEN_SECRET")))
	resetTokenVerifier.WithDefaultBlocklist()
	resetTokenVerifierMiddleware := resetTokenVerifier.Verify(func() interface{} {
		return new(utils.ForgotPasswordToken)
	})

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	refreshTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("REFRESH_TOKEN_SECRET")))
	refreshTokenVerifier.WithDefaultBlocklist()
	refreshTokenVerifierMiddleware := refreshTokenVerifier.Verify(func() interface{} {
		return new(jwt.Claims)
	})

	refreshTokenVerifier.Extractors = append(refreshTokenVerifier.Extractors, func(ctx iris.Context) string {
		var tokenInput utils.RefreshTokenInput
		err := ctx.ReadJSON(&tokenInput)
		if err != nil {
			return ""
		}
		return tokenInput.RefreshToken
	})

	// Public write endpoints share one limiter per client IP
	publicLimiter := utils.RateLimitMiddleware(utils.NewRateLimiter(30, time.Minute))

	// Health check endpoint - CRITICAL for Render
	app.Get("/health", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"status": "ok"})
	})

	// Routes
	user := app.Party("/api/user")
	{
		user.Post("/register", publicLimiter, routes.Register)
		user.Post("/login", publicLimiter, routes.Login)
		user.Post("/forgotpassword", publicLimiter, routes.ForgotPassword)
		user.Post("/resetpassword", resetTokenVerifierMiddleware, routes.ResetPassword)
		user.Post("/refresh", refreshTokenVerifierMiddleware, utils.RefreshToken)
		user.Get("/me", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.GetUser)
		user.Get("/destinations/saved", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.GetUserSavedDestinations)
		user.Patch("/destinations/saved", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.AlterUserSavedDestinations)
		user.Get("/profile", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.GetUserProfile)
		user.Put("/profile", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.UpdateUserProfile)
		user.Get("/bookings", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.GetUserBookings)
		user.Post("/bookings", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.CreateBooking)
		user.Get("/bookings/{id:uint}", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.GetUserBooking)
		user.Post("/bookings/{id:uint}/cancel", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.CancelBooking)
		user.Post("/search", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.SearchDestinations)
		user.Post("/chat", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.Chat)
		user.Get("/recommendations", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.GetRecommendations)
	}

	destination := app.Party("/api/destination")
	{
		destination.Get("/", routes.GetDestinations)
		destination.Get("/slug/{slug}", routes.GetDestinationBySlug)
		destination.Get("/{id:uint}", routes.GetDestinationByID)
		destination.Get("/{id:uint}/availability", routes.GetAvailability)
	}

	search := app.Party("/api/search")
	{
		search.Post("/", routes.SearchDestinations)
		search.Get("/filters", routes.GetSearchFilters)
		search.Get("/popular", routes.GetPopularSearches)
	}

	booking := app.Party("/api/booking")
	{
		booking.Post("/", publicLimiter, routes.CreateBooking)
		booking.Get("/{reference}", routes.GetBookingByReference)
	}

	payment := app.Party("/api/payment")
	{
		payment.Post("/checkout", publicLimiter, routes.CreateCheckoutSession)
		payment.Get("/status/{reference}", routes.GetPaymentStatus)
		payment.Post("/webhook", routes.StripeWebhook)
	}

	gdpr := app.Party("/api/gdpr", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware)
	{
		gdpr.Post("/consent", routes.RecordConsent)
		gdpr.Get("/consent", routes.GetConsentStatus)
		gdpr.Post("/export", routes.RequestDataExport)
		gdpr.Get("/export/{id:uint}", routes.GetDataExport)
		gdpr.Post("/delete", routes.RequestDataDeletion)
	}

	article := app.Party("/api/article")
	{
		article.Get("/", routes.GetArticles)
		article.Get("/{slug}", routes.GetArticleBySlug)
	}

	chat := app.Party("/api/chat")
	{
		chat.Post("/", publicLimiter, routes.Chat)
	}

	translation := app.Party("/api/translations")
	{
		translation.Get("/languages", routes.GetSupportedLanguages)
		translation.Get("/{lang}", routes.GetTranslations)
	}

	inquiry := app.Party("/api/inquiry")
	{
		inquiry.Post("/", publicLimiter, routes.CreateInquiry)
	}

	hero := app.Party("/api/hero")
	{
		hero.Get("/", routes.GetHeroSlides)
	}

	testimonial := app.Party("/api/testimonials")
	{
		testimonial.Get("/", routes.GetTestimonials)
	}

	partner := app.Party("/api/partners")
	{
		partner.Get("/", routes.GetPartners)
	}

	settings := app.Party("/api/settings")
	{
		settings.Get("/{key}", routes.GetSiteSetting)
	}

	instagram := app.Party("/api/instagram")
	{
		instagram.Get("/latest", routes.GetInstagramFeed)
	}

	app.Get("/sitemap.xml", routes.Sitemap)
	app.Get("/robots.txt", routes.Robots)

	admin := app.Party("/api/admin", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware)
	{
		admin.Get("/users", routes.AdminListUsers)
		admin.Patch("/users/{id:uint}/role", utils.SuperAdminOnlyMiddleware, routes.AdminChangeUserRole)
		admin.Patch("/users/{id:uint}/deactivate", routes.AdminDeactivateUser)
		admin.Get("/bookings", routes.AdminListBookings)
		admin.Patch("/bookings/{id:uint}/status", routes.AdminUpdateBookingStatus)
		admin.Post("/bookings/{id:uint}/refund", routes.RefundBooking)
		admin.Get("/destinations", routes.AdminListDestinations)
		admin.Post("/destinations", routes.CreateDestination)
		admin.Patch("/destinations/{id:uint}", routes.UpdateDestination)
		admin.Patch("/destinations/{id:uint}/publish", routes.SetDestinationPublished)
		admin.Delete("/destinations/{id:uint}", routes.DeleteDestination)
		admin.Post("/articles", routes.CreateArticle)
		admin.Patch("/articles/{id:uint}", routes.UpdateArticle)
		admin.Delete("/articles/{id:uint}", routes.DeleteArticle)
		admin.Post("/hero", routes.CreateHeroSlide)
		admin.Patch("/hero/{id:uint}", routes.UpdateHeroSlide)
		admin.Delete("/hero/{id:uint}", routes.DeleteHeroSlide)
		admin.Post("/testimonials", routes.CreateTestimonial)
		admin.Patch("/testimonials/{id:uint}", routes.UpdateTestimonial)
		admin.Delete("/testimonials/{id:uint}", routes.DeleteTestimonial)
		admin.Post("/partners", routes.CreatePartner)
		admin.Patch("/partners/{id:uint}", routes.UpdatePartner)
		admin.Delete("/partners/{id:uint}", routes.DeletePartner)
		admin.Put("/settings/{key}", routes.UpdateSiteSetting)
		admin.Get("/inquiries", routes.GetInquiries)
		admin.Patch("/inquiries/{id:uint}/status", routes.UpdateInquiryStatus)
		admin.Get("/inquiries/export", routes.ExportInquiriesCSV)
		admin.Post("/upload", routes.UploadImage)
		admin.Delete("/upload", routes.DeleteImage)
		admin.Get("/stats", routes.AdminStats)
		admin.Get("/activity", routes.AdminActivity)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	addr := fmt.Sprintf(":%s", port)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

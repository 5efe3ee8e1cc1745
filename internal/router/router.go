package router

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/mandirseva/internal/config"
	"github.com/mandirseva/internal/handler"
)

// SetupRouter wires the gin engine, session store, and every API route.
func SetupRouter(api *handler.API, cfg *config.AppConfig) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("mandirseva_session", store))
	r.Use(api.LocaleMiddleware())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Uploaded files are served directly from disk.
	r.Static(cfg.UploadURLPath, cfg.UploadDir)

	pub := r.Group("/api")
	{
		pub.POST("/auth/login", api.Login)
		pub.POST("/auth/logout", api.Logout)
		pub.GET("/auth/me", api.Me)

		pub.GET("/slider-images", api.GetSliderImages)
		pub.GET("/about", api.GetAbout)
		pub.GET("/pooja-timings", api.GetPoojaTimings)
		pub.GET("/services", api.GetServices)
		pub.GET("/gallery", api.GetGallery)
		pub.GET("/gallery/:type", api.GetGalleryByType)
		pub.GET("/settings", api.GetSettings)
		pub.GET("/settings/:key", api.GetSetting)
		pub.GET("/trust", api.GetTrust)
		pub.GET("/contact", api.GetContact)
		pub.GET("/terms", api.GetTerms)
		pub.GET("/team-members", api.GetTeamMembers)

		// The donation form is open to visitors.
		pub.POST("/donations", api.CreateDonation)

		pub.GET("/vivaah/page-info", api.GetVivaahPageInfo)
		pub.GET("/vivaah/sammelans", api.GetSammelans)
		pub.GET("/vivaah/active-sammelan", api.GetActiveSammelan)
		pub.GET("/vivaah/participants/:sammelanId", api.GetParticipants)
		// Nested forms kept for clients that address participants through
		// their sammelan.
		pub.GET("/vivaah/sammelans/active", api.GetActiveSammelan)
		pub.GET("/vivaah/sammelans/:sammelanId/participants", api.GetParticipants)

		pub.GET("/gaushala/sliders", api.GetGaushalaSliders)
		// Alias matching the main-site collection name.
		pub.GET("/gaushala/slider-images", api.GetGaushalaSliders)
		pub.GET("/gaushala/about", api.GetGaushalaAbout)
		pub.GET("/gaushala/services", api.GetGaushalaServices)
		pub.GET("/gaushala/gallery", api.GetGaushalaGallery)
		pub.GET("/gaushala/gallery/:type", api.GetGaushalaGalleryByType)
	}

	admin := r.Group("/api")
	admin.Use(handler.AuthRequired())
	{
		admin.POST("/uploads", api.UploadFile)

		admin.POST("/slider-images", api.CreateSliderImage)
		admin.PATCH("/slider-images/:id", api.UpdateSliderImage)
		admin.DELETE("/slider-images/:id", api.DeleteSliderImage)

		admin.PUT("/about", api.UpsertAbout)

		admin.POST("/pooja-timings", api.CreatePoojaTiming)
		admin.PATCH("/pooja-timings/:id", api.UpdatePoojaTiming)
		admin.DELETE("/pooja-timings/:id", api.DeletePoojaTiming)

		admin.POST("/services", api.CreateService)
		admin.PATCH("/services/:id", api.UpdateService)
		admin.DELETE("/services/:id", api.DeleteService)

		admin.POST("/gallery", api.CreateGalleryItem)
		admin.PATCH("/gallery/:id", api.UpdateGalleryItem)
		admin.DELETE("/gallery/:id", api.DeleteGalleryItem)

		admin.PUT("/settings/:key", api.UpsertSetting)
		admin.DELETE("/settings/:key", api.DeleteSetting)

		admin.PUT("/trust", api.UpsertTrust)
		admin.PUT("/contact", api.UpsertContact)
		admin.PUT("/terms", api.UpsertTerms)

		admin.GET("/donations", api.GetDonations)
		admin.DELETE("/donations/:id", api.DeleteDonation)

		admin.POST("/team-members", api.CreateTeamMember)
		admin.PATCH("/team-members/:id", api.UpdateTeamMember)
		admin.DELETE("/team-members/:id", api.DeleteTeamMember)

		admin.PUT("/vivaah/page-info", api.UpsertVivaahPageInfo)
		admin.POST("/vivaah/sammelans", api.CreateSammelan)
		admin.PATCH("/vivaah/sammelans/:id", api.UpdateSammelan)
		admin.DELETE("/vivaah/sammelans/:id", api.DeleteSammelan)
		admin.POST("/vivaah/participants", api.CreateParticipant)
		admin.PATCH("/vivaah/participants/:id", api.UpdateParticipant)
		admin.DELETE("/vivaah/participants/:id", api.DeleteParticipant)

		admin.POST("/gaushala/sliders", api.CreateGaushalaSlider)
		admin.PATCH("/gaushala/sliders/:id", api.UpdateGaushalaSlider)
		admin.DELETE("/gaushala/sliders/:id", api.DeleteGaushalaSlider)
		admin.POST("/gaushala/slider-images", api.CreateGaushalaSlider)
		admin.PATCH("/gaushala/slider-images/:id", api.UpdateGaushalaSlider)
		admin.DELETE("/gaushala/slider-images/:id", api.DeleteGaushalaSlider)

		admin.PUT("/gaushala/about", api.UpsertGaushalaAbout)

		admin.POST("/gaushala/services", api.CreateGaushalaService)
		admin.PATCH("/gaushala/services/:id", api.UpdateGaushalaService)
		admin.DELETE("/gaushala/services/:id", api.DeleteGaushalaService)

		admin.POST("/gaushala/gallery", api.CreateGaushalaGalleryItem)
		admin.PATCH("/gaushala/gallery/:id", api.UpdateGaushalaGalleryItem)
		admin.DELETE("/gaushala/gallery/:id", api.DeleteGaushalaGalleryItem)
	}

	return r
}

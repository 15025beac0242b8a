package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/dheerendra45/news-analyzer/internal/http/handlers"
	"github.com/dheerendra45/news-analyzer/internal/http/middleware"
)

// BuildRouter assembles the full HTTP surface. Content reads are public with
// optional auth (admins see drafts); content writes, uploads, admin creation
// and the subscriber list require an admin token.
func BuildRouter(
	ah *handlers.AuthHandlers,
	nh *handlers.NewsHandlers,
	rh *handlers.ReportHandlers,
	ch *handlers.CardHandlers,
	sh *handlers.SubscriptionHandlers,
	authmw *middleware.AuthMW,
	uploadDir string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "healthy"}) })

	r.Static("/uploads", uploadDir)

	auth := r.Group("/api/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)
	auth.POST("/admin/register", ah.RegisterAdmin)
	auth.POST("/admin/login", ah.AdminLogin)
	auth.POST("/admin/verify-otp", ah.AdminVerifyOTP)
	auth.GET("/me", authmw.RequireAuth(), ah.Me)

	adm := r.Group("/api/auth").Use(authmw.RequireAuth(), authmw.RequireAdmin())
	adm.POST("/admin/create", ah.CreateAdmin)
	adm.POST("/upload/image", ah.UploadImage)
	adm.POST("/upload/pdf", ah.UploadPDF)

	news := r.Group("/api/news")
	news.GET("", authmw.OptionalAuth(), nh.List)
	news.GET("/:id", authmw.OptionalAuth(), nh.Get)
	news.POST("", authmw.RequireAuth(), authmw.RequireAdmin(), nh.Create)
	news.PUT("/:id", authmw.RequireAuth(), authmw.RequireAdmin(), nh.Update)
	news.DELETE("/:id", authmw.RequireAuth(), authmw.RequireAdmin(), nh.Delete)

	reports := r.Group("/api/reports")
	reports.GET("", authmw.OptionalAuth(), rh.List)
	reports.GET("/:id", authmw.OptionalAuth(), rh.Get)
	reports.POST("", authmw.RequireAuth(), authmw.RequireAdmin(), rh.Create)
	reports.PUT("/:id", authmw.RequireAuth(), authmw.RequireAdmin(), rh.Update)
	reports.DELETE("/:id", authmw.RequireAuth(), authmw.RequireAdmin(), rh.Delete)

	cards := r.Group("/api/intelligence-cards")
	cards.GET("", authmw.OptionalAuth(), ch.List)
	cards.GET("/:id", authmw.OptionalAuth(), ch.Get)
	cards.POST("", authmw.RequireAuth(), authmw.RequireAdmin(), ch.Create)
	cards.PUT("/:id", authmw.RequireAuth(), authmw.RequireAdmin(), ch.Update)
	cards.DELETE("/:id", authmw.RequireAuth(), authmw.RequireAdmin(), ch.Delete)

	subs := r.Group("/api/subscriptions")
	subs.POST("", sh.Create)
	subs.GET("", authmw.RequireAuth(), authmw.RequireAdmin(), sh.List)

	return r
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"synctech/internal/handlers"
	"synctech/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	jwtSecret []byte,
	authHandler *handlers.AuthHandler,
	leadHandler *handlers.LeadHandler,
	outreachHandler *handlers.OutreachHandler,
	blogHandler *handlers.BlogHandler,
	clientHandler *handlers.ClientHandler,
	contactHandler *handlers.ContactHandler,
	invoiceHandler *handlers.InvoiceHandler,
	analyticsHandler *handlers.AnalyticsHandler,
) *gin.Engine {

	// ---- public
	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.POST("/api/contact", contactHandler.Submit)
	r.OPTIONS("/api/contact", contactHandler.Options)

	// ---- protected
	auth := r.Group("/", middleware.AuthMiddleware(jwtSecret), middleware.ReadOnlyGuard())

	// LEADS
	leads := auth.Group("/leads")
	{
		leads.POST("/search", leadHandler.Search)
		leads.POST("/saved", leadHandler.Save)
		leads.GET("/saved", leadHandler.ListSaved)
		leads.DELETE("/saved/:id", leadHandler.DeleteSaved)
	}

	// OUTREACH
	outreach := auth.Group("/outreach")
	{
		outreach.POST("", outreachHandler.Generate)
		outreach.POST("/send", outreachHandler.Send)
	}

	// BLOG
	blog := auth.Group("/blog")
	{
		blog.POST("", blogHandler.Generate)
		blog.POST("/posts", blogHandler.SavePost)
		blog.GET("/posts", blogHandler.ListPosts)
	}

	// CLIENTS
	clients := auth.Group("/clients")
	{
		clients.POST("", clientHandler.Create)
		clients.GET("", clientHandler.List)
		clients.GET("/:id", clientHandler.GetByID)
		clients.PUT("/:id", clientHandler.Update)
		clients.DELETE("/:id", clientHandler.Delete)
	}

	// CONTACT SUBMISSIONS (admin view of the public form inbox)
	subs := auth.Group("/contact-submissions")
	{
		subs.GET("", contactHandler.List)
		subs.POST("/:id/read", contactHandler.MarkRead)
		subs.DELETE("/:id", contactHandler.Delete)
	}

	// INVOICES
	invoices := auth.Group("/invoices")
	{
		invoices.GET("/presets", invoiceHandler.Presets)
		invoices.POST("/preview", invoiceHandler.Preview)
		invoices.POST("/pdf", invoiceHandler.DownloadPDF)
	}

	// SOCIALS
	auth.GET("/socials", handlers.ListSocials)

	// ANALYTICS
	auth.GET("/analytics", analyticsHandler.Summary)

	return r
}

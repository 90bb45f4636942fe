package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"synctech/internal/ai"
	"synctech/internal/config"
	"synctech/internal/handlers"
	"synctech/internal/middleware"
	"synctech/internal/pdf"
	"synctech/internal/repositories"
	"synctech/internal/routes"
	"synctech/internal/services"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "synctech/docs"
)

func Run() {
	cfg := config.LoadConfig()

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("failed to open database: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()

	// === Generation client (one per process) ===
	generator, err := ai.NewGeminiGenerator(context.Background(), cfg.Gemini)
	if err != nil {
		log.Fatal("failed to create generation client: ", err)
	}
	flows := ai.NewFlows(generator)

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	savedLeadRepo := repositories.NewSavedLeadRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	blogRepo := repositories.NewBlogPostRepository(db)
	contactRepo := repositories.NewContactRepository(db)

	// === Services ===
	authService := services.NewAuthService([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL.Std())
	userService := services.NewUserService(userRepo, authService)
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)
	telegramService, err := services.NewTelegramService(cfg.Telegram)
	if err != nil {
		log.Fatal("failed to create telegram service: ", err)
	}

	leadService := services.NewLeadService(flows, savedLeadRepo)
	outreachService := services.NewOutreachService(flows, emailService)
	blogService := services.NewBlogService(flows, blogRepo)
	clientService := services.NewClientService(clientRepo)
	contactService := services.NewContactService(contactRepo, telegramService)
	invoiceService := services.NewInvoiceService(pdf.NewInvoiceGenerator("SYNC TECH"))
	analyticsService := services.NewAnalyticsService(clientRepo, savedLeadRepo, blogRepo)

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(userService)
	leadHandler := handlers.NewLeadHandler(leadService)
	outreachHandler := handlers.NewOutreachHandler(outreachService)
	blogHandler := handlers.NewBlogHandler(blogService)
	clientHandler := handlers.NewClientHandler(clientService)
	contactHandler := handlers.NewContactHandler(contactService, cfg.Contact.AllowedOrigin)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// === Gin ===
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.Metrics())
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		[]byte(cfg.Auth.JWTSecret),
		authHandler,
		leadHandler,
		outreachHandler,
		blogHandler,
		clientHandler,
		contactHandler,
		invoiceHandler,
		analyticsHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("server failed: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// the public contact endpoint manages its own, stricter CORS
		if c.Request.URL.Path == "/api/contact" {
			c.Next()
			return
		}
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

package app

import (
	"github.com/rezsam09/remuncandygramdatabase/internal/auth"
	"github.com/rezsam09/remuncandygramdatabase/internal/cache"
	"github.com/rezsam09/remuncandygramdatabase/internal/config"
	"github.com/rezsam09/remuncandygramdatabase/internal/handlers"
	"github.com/rezsam09/remuncandygramdatabase/internal/repo"
	"github.com/rezsam09/remuncandygramdatabase/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	userRepo := repo.NewPGUserRepo(db)
	accountSvc := service.NewAccountService(userRepo)
	authHandler := handlers.NewAuthHandler(accountSvc)

	msgRepo := repo.NewPGMessageRepo(db)
	inboxCache := cache.NewInboxCache(rdb, cfg.Redis.DefaultTTL.Duration())
	mailboxSvc := service.NewMailboxService(msgRepo, accountSvc, inboxCache)
	msgHandler := handlers.NewMessageHandler(mailboxSvc)

	r.POST("/auth", authHandler.Auth)
	r.POST("/send", msgHandler.Send)
	r.GET("/inbox/:username", msgHandler.Inbox)

	admin := r.Group("/admin", auth.RequireAdminKey(cfg.Admin.Key))
	admin.GET("/messages", msgHandler.AllMessages)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Candygram API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

package routes

import (
	"beadcraft/configs"
	"beadcraft/controllers"
	"beadcraft/middlewares"
	"beadcraft/pkg/mailer"
	"beadcraft/repository"
	"beadcraft/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, logger *zap.Logger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/metrics", middlewares.PrometheusHandler())

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	convRepo := repository.NewConversationRepository(db)
	merchantRepo := repository.NewMerchantRepository(db)

	// Notification mailer (no-op when SMTP is unset)
	var m mailer.Mailer = mailer.Noop{}
	if cfg.SMTPHost != "" {
		m = mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.NotifyEmail)
	}

	// Services
	orderSvc := services.NewOrderService(db, orderRepo, productRepo)
	productSvc := services.NewProductService(productRepo)
	convSvc := services.NewConversationService(convRepo, m, cfg.AppURL, logger)
	authSvc := services.NewAuthService(merchantRepo, cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	orderCtrl := controllers.NewOrderController(orderSvc)
	merchantOrderCtrl := controllers.NewMerchantOrderController(orderSvc)
	productCtrl := controllers.NewProductController(productSvc)
	convCtrl := controllers.NewConversationController(convSvc)
	authCtrl := controllers.NewAuthController(authSvc)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret, "merchant"), authCtrl.Me)
	}

	// Public storefront
	r.GET("/products", productCtrl.List)
	r.GET("/products/:id", productCtrl.Detail)
	r.POST("/orders", orderCtrl.Create)
	r.GET("/orders/:ref", orderCtrl.DetailByRef)

	// Conversation threads: token-addressed, no customer auth. Both sides
	// poll GET on an interval; there is no push channel.
	r.POST("/conversation", convCtrl.Start)
	r.GET("/conversation", convCtrl.Get)
	r.POST("/conversation/reply", convCtrl.Reply)

	// Merchant dashboard
	merchant := r.Group("/merchant", middlewares.AuthMiddleware(cfg.JWTSecret, "merchant"))
	{
		merchant.GET("/orders", merchantOrderCtrl.List)
		merchant.PATCH("/orders/:id/status", merchantOrderCtrl.UpdateStatus)

		merchant.GET("/products", productCtrl.ListAll)
		merchant.POST("/products", productCtrl.Create)
		merchant.PATCH("/products/:id", productCtrl.Update)
		merchant.DELETE("/products/:id", productCtrl.Delete)
	}
}

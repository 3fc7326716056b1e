package api

import (
	"net/http"

	"ny11/wellness-app/internal/domain"
	"ny11/wellness-app/internal/service"

	"github.com/gin-gonic/gin"
)

// Services bundles what the router needs.
type Services struct {
	Auth     service.AuthService
	Chat     service.ChatService
	Market   service.MarketService
	Plan     service.PlanService
	Admin    service.AdminService
	Media    service.MediaService
	Settings service.SettingsService
}

func SetupRoutes(router *gin.Engine, svc Services) {
	authHandler := NewAuthHandler(svc.Auth)
	chatHandler := NewChatHandler(svc.Chat)
	marketHandler := NewMarketHandler(svc.Market)
	planHandler := NewPlanHandler(svc.Plan)
	adminHandler := NewAdminHandler(svc.Admin)
	settingsHandler := NewSettingsHandler(svc.Settings, svc.Media)

	authMiddleware := AuthMiddleware(svc.Auth)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/register/coach", authHandler.RegisterCoach)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/guest", authHandler.LoginAsGuest)
		}

		// Browsing and preferences work without a session.
		apiV1.GET("/market/items", marketHandler.Items)
		apiV1.GET("/market/banners", marketHandler.Banners)
		apiV1.GET("/settings/preferences", settingsHandler.Preferences)
		apiV1.PUT("/settings/preferences", settingsHandler.UpdatePreferences)
		apiV1.GET("/settings/translations", settingsHandler.Translations)
		// Toasts stay readable after logout so the login prompt reaches the
		// client; notifications need the session.
		apiV1.GET("/notices", OptionalAuthMiddleware(svc.Auth), settingsHandler.Notices)
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.POST("/auth/logout", authHandler.Logout)
		protected.GET("/me", authHandler.Me)
		protected.PATCH("/me/profile", planHandler.UpdateProfile)
		protected.POST("/settings/test-notification", settingsHandler.TestNotification)
		protected.DELETE("/notices/toasts/:id", settingsHandler.DismissToast)
		protected.DELETE("/notices/notifications/:id", settingsHandler.DismissNotification)

		planGroup := protected.Group("/plan")
		{
			planGroup.GET("", planHandler.Plan)
			planGroup.GET("/today", planHandler.Today)
			planGroup.GET("/stats", planHandler.Stats)
			planGroup.GET("/days/:date", planHandler.Day)
			planGroup.PUT("/days/:date", planHandler.SetDay)
			planGroup.POST("/days/:date/toggle", planHandler.ToggleItem)
		}

		cartGroup := protected.Group("/cart")
		{
			cartGroup.GET("", marketHandler.Cart)
			cartGroup.POST("/items", marketHandler.AddToCart)
			cartGroup.DELETE("/items/:itemId", marketHandler.RemoveFromCart)
			cartGroup.POST("/checkout", marketHandler.Checkout)
		}

		// Guests are turned away inside the chat service so they get the
		// login prompt.
		chatGroup := protected.Group("/chat")
		{
			chatGroup.GET("/partners", chatHandler.Partners)
			chatGroup.GET("/conversations", chatHandler.Conversations)
			chatGroup.POST("/conversations", chatHandler.Open)
			chatGroup.GET("/conversations/:conversationId", chatHandler.Conversation)
			chatGroup.POST("/conversations/:conversationId/messages", chatHandler.Send)
			chatGroup.POST("/conversations/:conversationId/quotes", RoleMiddleware(domain.RoleCoach), chatHandler.OfferQuote)
			chatGroup.POST("/conversations/:conversationId/quotes/:messageId/resolve", chatHandler.ResolveQuote)
		}

		mediaGroup := protected.Group("/media")
		{
			mediaGroup.POST("/uploads", settingsHandler.CreateUpload)
			mediaGroup.GET("/url", settingsHandler.ViewURL)
			mediaGroup.DELETE("/objects", RoleMiddleware(domain.RoleAdmin), settingsHandler.DeleteObject)
		}

		adminGroup := protected.Group("/admin")
		adminGroup.Use(RoleMiddleware(domain.RoleAdmin))
		{
			adminGroup.GET("/users", adminHandler.Users)
			adminGroup.GET("/coaches", adminHandler.Coaches)

			adminGroup.POST("/market/items", adminHandler.CreateItem)
			adminGroup.PUT("/market/items/:itemId", adminHandler.UpdateItem)
			adminGroup.DELETE("/market/items/:itemId", adminHandler.DeleteItem)

			adminGroup.POST("/banners", adminHandler.CreateBanner)
			adminGroup.PUT("/banners/:bannerId", adminHandler.UpdateBanner)
			adminGroup.DELETE("/banners/:bannerId", adminHandler.DeleteBanner)

			adminGroup.GET("/translations/:lang", adminHandler.Translations)
			adminGroup.PUT("/translations/:lang", adminHandler.ReplaceTranslations)
		}
	}
}

package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/petbloom/backend/config"
	"github.com/petbloom/backend/controllers"
	"github.com/petbloom/backend/middleware"
	"github.com/petbloom/backend/pkg/logger"
	"github.com/petbloom/backend/services"
)

// Controllers bundles everything the router mounts.
type Controllers struct {
	Auth     *controllers.AuthController
	Catalog  *controllers.CatalogController
	Cart     *controllers.CartController
	Orders   *controllers.OrderController
	Address  *controllers.AddressController
	Messages *controllers.MessageController
	Reviews  *controllers.ReviewController
	Wishlist *controllers.WishlistController
}

// Register mounts all routes under /api/v1. Mutating routes sit behind the
// auth middleware; catalog reads and review listings are public.
func Register(r *gin.Engine, cfg config.Config, tokens *services.TokenService, ctl Controllers) {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendURL}
	if cfg.Environment == "development" {
		corsConfig.AllowOrigins = append(corsConfig.AllowOrigins,
			"http://localhost:5173", "http://localhost:3000")
	}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")

	r.Use(cors.New(corsConfig))
	r.Use(logger.RequestLogger())
	r.Use(middleware.RateLimit(cfg.RateLimitPerMin, cfg.RateLimitBurst))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := r.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/login", ctl.Auth.Login)
		auth.POST("/register", ctl.Auth.Register)
	}

	products := api.Group("/products")
	{
		products.GET("", ctl.Catalog.GetProducts)
		products.GET("/:id", ctl.Catalog.GetProduct)
		products.POST("", middleware.AuthMiddleware(tokens), ctl.Catalog.CreateProduct)
		products.PUT("/:id", middleware.AuthMiddleware(tokens), ctl.Catalog.UpdateProduct)
	}

	pets := api.Group("/pets")
	{
		pets.GET("", ctl.Catalog.GetPets)
		pets.GET("/:id", ctl.Catalog.GetPet)
		pets.POST("", middleware.AuthMiddleware(tokens), ctl.Catalog.CreatePet)
		pets.PUT("/:id", middleware.AuthMiddleware(tokens), ctl.Catalog.UpdatePet)
	}

	cart := api.Group("/cart")
	cart.Use(middleware.AuthMiddleware(tokens))
	{
		cart.GET("", ctl.Cart.GetCart)
		cart.POST("", ctl.Cart.AddItem)
		cart.PUT("/:id", ctl.Cart.UpdateItem)
		cart.DELETE("/:id", ctl.Cart.RemoveItem)
		cart.DELETE("", ctl.Cart.ClearCart)
	}

	orders := api.Group("/orders")
	orders.Use(middleware.AuthMiddleware(tokens))
	{
		orders.GET("", ctl.Orders.GetOrders)
		orders.GET("/:id", ctl.Orders.GetOrder)
		orders.POST("", ctl.Orders.Checkout)
		orders.PUT("/:id/status", ctl.Orders.UpdateStatus)
		orders.PUT("/:id/tracking", ctl.Orders.UpdateTracking)
	}

	addresses := api.Group("/addresses")
	addresses.Use(middleware.AuthMiddleware(tokens))
	{
		addresses.GET("", ctl.Address.GetAddresses)
		addresses.GET("/:id", ctl.Address.GetAddress)
		addresses.POST("", ctl.Address.CreateAddress)
		addresses.PUT("/:id", ctl.Address.UpdateAddress)
		addresses.DELETE("/:id", ctl.Address.DeleteAddress)
	}

	messages := api.Group("/messages")
	messages.Use(middleware.AuthMiddleware(tokens))
	{
		messages.GET("/inbox", ctl.Messages.GetInbox)
		messages.GET("/conversation/:user_id", ctl.Messages.GetConversation)
		messages.POST("", ctl.Messages.SendMessage)
		messages.GET("/:id", ctl.Messages.GetMessage)
		messages.PATCH("/:id/read", ctl.Messages.MarkRead)
	}

	reviews := api.Group("/reviews")
	{
		reviews.POST("", middleware.AuthMiddleware(tokens), ctl.Reviews.CreateReview)
		reviews.GET("/product/:product_id", ctl.Reviews.GetProductReviews)
		reviews.GET("/pet/:pet_id", ctl.Reviews.GetPetReviews)
	}

	wishlist := api.Group("/wishlist")
	wishlist.Use(middleware.AuthMiddleware(tokens))
	{
		wishlist.GET("", ctl.Wishlist.GetWishlist)
		wishlist.POST("", ctl.Wishlist.AddItem)
		wishlist.DELETE("/:id", ctl.Wishlist.RemoveItem)
	}
}

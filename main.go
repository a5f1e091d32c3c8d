package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/petbloom/backend/config"
	"github.com/petbloom/backend/controllers"
	"github.com/petbloom/backend/database"
	"github.com/petbloom/backend/kafka"
	"github.com/petbloom/backend/models"
	awspkg "github.com/petbloom/backend/pkg/aws"
	"github.com/petbloom/backend/pkg/logger"
	repositories "github.com/petbloom/backend/repository"
	"github.com/petbloom/backend/routes"
	"github.com/petbloom/backend/services"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger.Initialize(cfg.Environment)
	defer logger.Log.Sync()

	ctx := context.Background()

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Pet{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.UserAddress{},
		&models.Message{},
		&models.Review{},
		&models.WishlistItem{},
	); err != nil {
		logger.Log.Fatal("Migration failed", zap.Error(err))
	}

	redisClient, err := database.ConnectRedis(ctx, cfg.RedisURL)
	if err != nil {
		logger.Log.Warn("Redis unavailable, catalog cache disabled", zap.Error(err))
		redisClient = nil
	}

	var producer kafka.ProducerAPI
	if cfg.KafkaBrokers != "" {
		p := kafka.NewProducer(cfg.KafkaBrokers, cfg.OrderEventTopic)
		defer p.Close()
		producer = p
	}

	var snsClient awspkg.SNSPublisher
	if cfg.SNSTopicArn != "" {
		awsCfg, err := awspkg.LoadAWSConfig(ctx)
		if err != nil {
			logger.Log.Warn("AWS config unavailable, SNS publishing disabled", zap.Error(err))
		} else {
			snsClient = awspkg.NewSNSClient(awsCfg)
		}
	}

	verifier, err := services.NewFirebaseAuth(ctx, cfg.FirebaseCredentials)
	if err != nil {
		logger.Log.Fatal("Failed to initialize firebase auth", zap.Error(err))
	}

	userRepo := repositories.NewGormUserRepository(db)
	productRepo := repositories.NewGormProductRepository(db)
	petRepo := repositories.NewGormPetRepository(db)
	cartRepo := repositories.NewGormCartRepository(db)
	orderRepo := repositories.NewGormOrderRepository(db)
	addressRepo := repositories.NewGormAddressRepository(db)
	messageRepo := repositories.NewGormMessageRepository(db)
	reviewRepo := repositories.NewGormReviewRepository(db)
	wishlistRepo := repositories.NewGormWishlistRepository(db)
	checkoutStore := repositories.NewGormCheckoutStore(db)

	tokens := services.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)
	authService := services.NewAuthService(userRepo, verifier, tokens)
	catalogService := services.NewCatalogService(productRepo, petRepo, redisClient, cfg.CatalogCacheTTL)
	cartService := services.NewCartService(cartRepo, productRepo, petRepo)
	orderService := services.NewOrderService(orderRepo)
	checkoutService := services.NewCheckoutService(checkoutStore, producer, snsClient, cfg.SNSTopicArn)
	addressService := services.NewAddressService(addressRepo)
	messageService := services.NewMessageService(messageRepo)
	reviewService := services.NewReviewService(reviewRepo)
	wishlistService := services.NewWishlistService(wishlistRepo)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.Register(r, cfg, tokens, routes.Controllers{
		Auth:     controllers.NewAuthController(authService),
		Catalog:  controllers.NewCatalogController(catalogService),
		Cart:     controllers.NewCartController(cartService),
		Orders:   controllers.NewOrderController(orderService, checkoutService),
		Address:  controllers.NewAddressController(addressService),
		Messages: controllers.NewMessageController(messageService),
		Reviews:  controllers.NewReviewController(reviewService),
		Wishlist: controllers.NewWishlistController(wishlistService),
	})

	logger.Log.Info("Starting server", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatal("Error starting server", zap.Error(err))
	}
}

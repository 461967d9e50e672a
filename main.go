package main

import (
	"cafe-service/cache"
	"cafe-service/controllers"
	"cafe-service/database"
	"cafe-service/logger"
	"cafe-service/models"
	"cafe-service/repository"
	"cafe-service/routes"
	"cafe-service/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		panic(err)
	}

	log := logger.Initialize(cfg.Environment)
	defer log.Sync()

	db, err := database.Connect(cfg.Postgres, log,
		&models.MenuItem{}, &models.Order{}, &models.OrderItem{})
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	var menuCache *cache.MenuCache
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		menuCache = cache.NewMenuCache(client, log)
		log.Info("Menu cache enabled", zap.String("redis", cfg.RedisAddr))
	}

	menuRepo := repository.NewGormMenuRepository(db)
	orderRepo := repository.NewGormOrderRepository(db)

	menuService := services.NewMenuService(menuRepo, menuCache, log)
	orderService := services.NewOrderService(orderRepo, log)

	menuController := controllers.NewMenuController(menuService)
	orderController := controllers.NewOrderController(orderService)
	orderItemController := controllers.NewOrderItemController(orderService)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), logger.RequestLogger(log))

	routes.RegisterRoutes(r, menuController, orderController, orderItemController)

	log.Info("Starting cafe-service", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Error starting server", zap.Error(err))
	}
}

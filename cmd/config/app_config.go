package config

import (
	"os"
	"time"

	"tabletalk-backend/internal/api/handlers"
	"tabletalk-backend/internal/api/routes"
	"tabletalk-backend/internal/middleware"
	"tabletalk-backend/internal/utils"
	"tabletalk-backend/pkg/jwt"
	"tabletalk-backend/pkg/menu"
	"tabletalk-backend/pkg/midtrans"
	"tabletalk-backend/pkg/order"
	"tabletalk-backend/pkg/pricing"
	"tabletalk-backend/pkg/session"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	sessionRepository := session.NewSessionRepository(db)
	menuRepository := menu.NewMenuRepository(db)
	orderRepository := order.NewOrderRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	sessionService := session.NewSessionService(sessionRepository)
	menuService := menu.NewMenuService(menuRepository)
	pricingService := pricing.NewPricingService(menuRepository)
	orderService := order.NewOrderService(orderRepository, sessionRepository, pricingService)
	midtransService := midtrans.NewMidtransService(orderRepository, midtrans.NewSnapClient())

	// Handler
	sessionHandler := handlers.NewSessionHandler(sessionService, validator)
	menuHandler := handlers.NewMenuHandler(menuService)
	orderHandler := handlers.NewOrderHandler(orderService, validator)
	midtransHandler := handlers.NewMidtransHandler(midtransService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		SessionHandler:  sessionHandler,
		MenuHandler:     menuHandler,
		OrderHandler:    orderHandler,
		MidtransHandler: midtransHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

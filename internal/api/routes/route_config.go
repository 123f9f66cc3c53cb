package routes

import (
	"tabletalk-backend/internal/api/handlers"
	"tabletalk-backend/internal/middleware"
	"tabletalk-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	SessionHandler  handlers.SessionHandler
	MenuHandler     handlers.MenuHandler
	OrderHandler    handlers.OrderHandler
	MidtransHandler handlers.MidtransHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Sessions()
	c.Menu()
	c.Orders()
	c.Payments()
	c.GuestRoute()
}

func (c *Config) Sessions() {
	sessions := c.App.Group("/api/v1/sessions")
	// a session precedes login, no auth here
	{
		sessions.Post("", c.SessionHandler.CreateSession)
		sessions.Get("/:id", c.SessionHandler.GetSession)
	}
}

func (c *Config) Menu() {
	c.App.Get("/api/v1/menu-items", c.MenuHandler.GetMenuItems)
	c.App.Get("/api/v1/tables", c.SessionHandler.GetTables)
}

func (c *Config) Orders() {
	orders := c.App.Group("/api/v1/orders", c.Middleware.AuthMiddleware(c.JWTService))

	orders.Post("", c.OrderHandler.CreateOrder)
	orders.Get("", c.OrderHandler.ListOrders)
	orders.Get("/:id", c.OrderHandler.GetOrder)
	orders.Put("/:id", c.OrderHandler.UpdateOrder)
	orders.Delete("/:id", c.OrderHandler.DeleteOrder)
}

func (c *Config) Payments() {
	c.App.Post("/api/v1/payments", c.Middleware.AuthMiddleware(c.JWTService), c.MidtransHandler.CreateTransaction)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.MidtransHandler.MidtransWebhookHandler)
}

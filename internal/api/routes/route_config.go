package routes

import (
	"nutriscan-api/internal/api/handlers"
	"nutriscan-api/internal/middleware"
	"nutriscan-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	ProductHandler  handlers.ProductHandler
	JournalHandler  handlers.JournalHandler
	ScanHandler     handlers.ScanHandler
	MidtransHandler handlers.MidtransHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Products()
	c.Journal()
	c.Scan()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Post("/subscribe", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Subscribe)
	}
}

func (c *Config) Products() {
	// Product lookup needs no session; the review screen is reachable
	// before sign-in.
	c.App.Get("/api/v1/products/:barcode", c.ProductHandler.ResolveBarcode)
}

func (c *Config) Journal() {
	journal := c.App.Group("/api/v1/journal", c.Middleware.AuthMiddleware(c.JWTService))
	journal.Post("", c.JournalHandler.AddToJournal)
	journal.Get("", c.JournalHandler.GetJournalEntries)
	journal.Get("/summary", c.JournalHandler.GetDailySummary)
	journal.Delete("/:id", c.JournalHandler.DeleteEntry)
	journal.Post("/photo", c.JournalHandler.UploadEntryPhoto)
}

func (c *Config) Scan() {
	c.App.Get("/api/v1/scan/stream",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.ScanHandler.UpgradeRequired,
		c.ScanHandler.ScanStream(),
	)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.MidtransHandler.Webhook)
}

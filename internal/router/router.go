// Package router wires the authorization chain, handlers, and the single
// error-formatting stage into a Fiber app.
package router

import (
	"errors"

	"go-catalog-api/internal/apperror"
	"go-catalog-api/internal/codec"
	"go-catalog-api/internal/config"
	"go-catalog-api/internal/handler"
	"go-catalog-api/internal/middleware"
	"go-catalog-api/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// New builds the app. Read routes sit behind the API-key check; mutating
// routes require a bearer token plus a per-operation role allow-list and no
// API key, the most permissive of the source's two iterations.
func New(cfg config.Config, productHandler *handler.ProductHandler, authHandler *handler.AuthHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Product Catalog API v1.0",
		ErrorHandler: errorHandler,
	})

	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	apiKey := middleware.RequireAPIKey(cfg.APIKey)
	auth := middleware.RequireAuth(cfg.JWTSecret)

	app.Post("/auth/login", apiKey, authHandler.Login)

	app.Get("/products", apiKey, productHandler.List)
	app.Get("/productos", apiKey, productHandler.List) // legacy alias
	app.Get("/products/:id", apiKey, productHandler.Get)

	app.Post("/products", auth, middleware.RequireRole(model.RoleEditor, model.RoleAdmin), productHandler.Create)
	app.Put("/products/:id", auth, middleware.RequireRole(model.RoleEditor, model.RoleAdmin), productHandler.Update)
	app.Delete("/products/:id", auth, middleware.RequireRole(model.RoleAdmin), productHandler.Delete)

	return app
}

// errorHandler is the catch-all formatting stage: every failure, typed or
// not, leaves as a well-formed error body in the negotiated format.
func errorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "internal server error"

	var appErr *apperror.Error
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &appErr):
		status = appErr.Status
		message = appErr.Message
	case errors.As(err, &fiberErr):
		status = fiberErr.Code
		message = fiberErr.Message
	}

	format := codec.FromAccept(c.Get(fiber.HeaderAccept))
	body, encErr := codec.EncodeError(status, message, c.OriginalURL(), format)
	if encErr != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(message)
	}

	c.Set(fiber.HeaderContentType, codec.ContentType(format))
	return c.Status(status).Send(body)
}

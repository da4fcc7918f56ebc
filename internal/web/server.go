// Package web exposes the storefront views over HTTP.
package web

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	cartapp "github.com/furnistore/storefront/internal/cart/app"
	catalogapp "github.com/furnistore/storefront/internal/catalog/app"
	quoteapp "github.com/furnistore/storefront/internal/quote/app"
)

type Server struct {
	app     *fiber.App
	catalog *catalogapp.Service
	cart    *cartapp.Store
	quote   *quoteapp.Service
	images  catalogapp.ImageResolver
	log     *slog.Logger
}

func NewServer(catalog *catalogapp.Service, cart *cartapp.Store, quote *quoteapp.Service, images catalogapp.ImageResolver, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}

	s := &Server{
		app: fiber.New(fiber.Config{
			ReadTimeout:           15 * time.Second,
			WriteTimeout:          15 * time.Second,
			IdleTimeout:           60 * time.Second,
			DisableStartupMessage: true,
		}),
		catalog: catalog,
		cart:    cart,
		quote:   quote,
		images:  images,
		log:     log,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	api := s.app.Group("/api/v1")

	api.Get("/products", s.listProducts)
	api.Get("/products/:id", s.getProduct)
	api.Get("/categories", s.listCategories)

	cart := api.Group("/cart")
	cart.Get("/", s.getCart)
	cart.Delete("/", s.clearCart)
	cart.Post("/items", s.addCartItem)
	cart.Delete("/items/:productId", s.removeCartItem)
	cart.Get("/total", s.cartTotal)

	api.Get("/quote", s.getQuote)
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Start(addr string) error {
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

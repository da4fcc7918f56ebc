package web

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	cartapp "github.com/furnistore/storefront/internal/cart/app"
	cartdomain "github.com/furnistore/storefront/internal/cart/domain"
	catalogapp "github.com/furnistore/storefront/internal/catalog/app"
	catalogdomain "github.com/furnistore/storefront/internal/catalog/domain"
	quotedomain "github.com/furnistore/storefront/internal/quote/domain"
)

// listProducts handles GET /api/v1/products. Optional search and category
// query params filter the fetched set in memory; an empty result is a normal
// response, not an error.
func (s *Server) listProducts(c *fiber.Ctx) error {
	products, err := s.catalog.ListProducts(c.Context())
	if err != nil {
		return s.fail(c, err)
	}

	filtered := catalogapp.Filter(products, c.Query("search"), c.Query("category"))

	out := make([]ProductResponse, 0, len(filtered))
	for _, p := range filtered {
		out = append(out, s.toProductResponse(p, false))
	}
	return c.JSON(ProductListResponse{Products: out})
}

// getProduct handles GET /api/v1/products/:id.
func (s *Server) getProduct(c *fiber.Ctx) error {
	p, err := s.catalog.GetProduct(c.Context(), c.Params("id"))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(s.toProductResponse(p, true))
}

// listCategories handles GET /api/v1/categories: the distinct category labels
// of the current product set, for the search dropdown.
func (s *Server) listCategories(c *fiber.Ctx) error {
	products, err := s.catalog.ListProducts(c.Context())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(CategoriesResponse{Categories: catalogapp.Categories(products)})
}

func (s *Server) getCart(c *fiber.Ctx) error {
	return c.JSON(s.toCartResponse(s.cart.Cart(), false))
}

func (s *Server) clearCart(c *fiber.Ctx) error {
	cart := s.cart.Clear(c.Context())
	return c.JSON(s.toCartResponse(cart, false))
}

// addCartItem handles POST /api/v1/cart/items. The product is fetched so the
// line snapshots its current name/price/image; the response carries
// cart_open=true, the signal for the view to present the cart.
func (s *Server) addCartItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "INVALID_ARGUMENT",
			Message: "invalid request body",
		})
	}

	p, err := s.catalog.GetProduct(c.Context(), req.ProductID)
	if err != nil {
		return s.fail(c, err)
	}

	cart, err := s.cart.AddItem(c.Context(), cartapp.ProductSnapshot{
		ID:   p.ID,
		Name: p.Name,
		Price: cartdomain.Money{
			Currency: p.Price.Currency,
			Amount:   p.Price.Amount,
		},
		ImageRef: p.ImageRef,
	}, req.Quantity, req.Size, req.Color)
	if err != nil {
		return s.fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(s.toCartResponse(cart, true))
}

// removeCartItem handles DELETE /api/v1/cart/items/:productId. Every line for
// the product is removed, all size variants included.
func (s *Server) removeCartItem(c *fiber.Ctx) error {
	cart, err := s.cart.RemoveItem(c.Context(), c.Params("productId"))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(s.toCartResponse(cart, false))
}

func (s *Server) cartTotal(c *fiber.Ctx) error {
	total := s.cart.Total()
	return c.JSON(MoneyResponse{Currency: total.Currency, Amount: total.Amount})
}

func (s *Server) getQuote(c *fiber.Ctx) error {
	q, err := s.quote.Quote(c.Context())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(toQuoteResponse(q))
}

func (s *Server) fail(c *fiber.Ctx, err error) error {
	status, code, msg := httpStatusFromErr(err)
	if status >= fiber.StatusInternalServerError {
		s.log.Error("request failed", slog.String("path", c.Path()), slog.Any("err", err))
	}
	return c.Status(status).JSON(ErrorResponse{Error: code, Message: msg})
}

// resolveImage turns an opaque image ref into a URL; an unresolvable ref
// renders as no image rather than failing the view.
func (s *Server) resolveImage(ref string) string {
	if ref == "" || s.images == nil {
		return ""
	}
	url, err := s.images.Resolve(ref)
	if err != nil {
		s.log.Warn("image ref did not resolve", slog.String("ref", ref), slog.Any("err", err))
		return ""
	}
	return url
}

func (s *Server) toProductResponse(p catalogdomain.Product, detail bool) ProductResponse {
	out := ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		ShortDescription: p.ShortDescription,
		Price:            MoneyResponse{Currency: p.Price.Currency, Amount: p.Price.Amount},
		ImageURL:         s.resolveImage(p.ImageRef),
		Category:         p.Category,
	}
	if detail {
		out.Description = p.Description
		out.Sizes = p.Sizes
		out.Colors = p.Colors
	}
	return out
}

func (s *Server) toCartResponse(cart cartdomain.Cart, opened bool) CartResponse {
	items := make([]CartItemResponse, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		items = append(items, CartItemResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     MoneyResponse{Currency: l.Price.Currency, Amount: l.Price.Amount},
			ImageURL:  s.resolveImage(l.ImageRef),
			Quantity:  l.Quantity,
			Size:      l.Size,
			Color:     l.Color,
		})
	}

	total := cart.Total()
	return CartResponse{
		Items:    items,
		Total:    MoneyResponse{Currency: total.Currency, Amount: total.Amount},
		CartOpen: opened,
	}
}

func toQuoteResponse(q quotedomain.Quote) QuoteResponse {
	lines := make([]QuoteLineResponse, 0, len(q.Lines))
	for _, l := range q.Lines {
		lines = append(lines, QuoteLineResponse{
			ProductID:     l.ProductID,
			Name:          l.Name,
			Size:          l.Size,
			Quantity:      l.Quantity,
			UnitPrice:     MoneyResponse{Currency: l.UnitPrice.Currency, Amount: l.UnitPrice.Amount},
			LineTotal:     MoneyResponse{Currency: l.LineTotal.Currency, Amount: l.LineTotal.Amount},
			SnapshotPrice: MoneyResponse{Currency: l.SnapshotPrice.Currency, Amount: l.SnapshotPrice.Amount},
		})
	}
	return QuoteResponse{
		Lines: lines,
		Total: MoneyResponse{Currency: q.Total.Currency, Amount: q.Total.Amount},
	}
}

package cart

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/aurelia-jewels/jewelry-shop-backend/internal/product"
	"github.com/aurelia-jewels/jewelry-shop-backend/internal/session"
)

func makeAppWithCartHandler() (*fiber.App, *Service) {
	productService := product.NewService(product.NewInMemoryRepository(testCatalog()))
	service := NewService(NewInMemoryRepository(), productService)
	handler := NewHandler(service)

	app := fiber.New()
	app.Use(session.Middleware())
	handler.RegisterRoutes(app)
	return app, service
}

func TestCartRoutes_Registered(t *testing.T) {
	app, _ := makeAppWithCartHandler()

	routes := map[string]bool{}
	for _, grp := range app.Stack() {
		for _, r := range grp {
			routes[r.Method+" "+r.Path] = true
		}
	}
	for _, want := range []string{"GET /api/cart", "POST /api/cart", "PUT /api/cart/:productId", "DELETE /api/cart/:productId"} {
		if !routes[want] {
			t.Fatalf("expected route %q to be registered", want)
		}
	}
}

func TestCartRoutes_Flow(t *testing.T) {
	app, _ := makeAppWithCartHandler()

	// empty cart for a fresh session
	req := httptest.NewRequest("GET", "/api/cart", nil)
	req.Header.Set("Cookie", "session_id=s1")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for GET cart, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if strings.TrimSpace(string(b)) != "[]" {
		t.Fatalf("expected empty cart, got %s", string(b))
	}

	// add product 5 twice
	for i := 0; i < 2; i++ {
		req = httptest.NewRequest("POST", "/api/cart", strings.NewReader(`{"productId":5}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Cookie", "session_id=s1")
		res, _ = app.Test(req)
		if res.StatusCode != fiber.StatusOK {
			t.Fatalf("expected 200 for add, got %d", res.StatusCode)
		}
	}
	var items []LineItem
	b, _ = io.ReadAll(res.Body)
	if err := json.Unmarshal(b, &items); err != nil {
		t.Fatalf("bad cart response: %v (%s)", err, string(b))
	}
	if len(items) != 1 || items[0].Quantity != 2 || items[0].Product.Price != 200 {
		t.Fatalf("expected one line item qty 2 joined with catalog, got %+v", items)
	}

	// set quantity to 5
	req = httptest.NewRequest("PUT", "/api/cart/5", strings.NewReader(`{"quantity":5}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cookie", "session_id=s1")
	res, _ = app.Test(req)
	b, _ = io.ReadAll(res.Body)
	if err := json.Unmarshal(b, &items); err != nil {
		t.Fatalf("bad cart response: %v", err)
	}
	if len(items) != 1 || items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5 after PUT, got %+v", items)
	}

	// set quantity to 0 removes the product
	req = httptest.NewRequest("PUT", "/api/cart/5", strings.NewReader(`{"quantity":0}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cookie", "session_id=s1")
	res, _ = app.Test(req)
	b, _ = io.ReadAll(res.Body)
	if strings.Contains(string(b), `"productId":5`) {
		t.Fatalf("expected product removed at quantity 0, got %s", string(b))
	}

	// delete removes all occurrences
	req = httptest.NewRequest("POST", "/api/cart", strings.NewReader(`{"productId":7}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cookie", "session_id=s1")
	app.Test(req)
	req = httptest.NewRequest("DELETE", "/api/cart/7", nil)
	req.Header.Set("Cookie", "session_id=s1")
	res, _ = app.Test(req)
	b, _ = io.ReadAll(res.Body)
	if strings.TrimSpace(string(b)) != "[]" {
		t.Fatalf("expected empty cart after delete, got %s", string(b))
	}
}

func TestCartRoutes_UnknownIDKeptInListButNotAggregated(t *testing.T) {
	app, service := makeAppWithCartHandler()

	req := httptest.NewRequest("POST", "/api/cart", strings.NewReader(`{"productId":99}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cookie", "session_id=s1")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 adding unknown id, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if strings.Contains(string(b), "99") {
		t.Fatalf("unknown id must not surface as a line item, got %s", string(b))
	}

	// the underlying occurrence list still holds the id (non-destructive filter)
	occ := service.repo.Get("s1")
	if len(occ) != 1 || occ[0] != 99 {
		t.Fatalf("expected occurrence list to keep unknown id, got %v", occ)
	}
}

func TestCartRoutes_InvalidPayloads(t *testing.T) {
	app, _ := makeAppWithCartHandler()

	req := httptest.NewRequest("POST", "/api/cart", strings.NewReader(`{"productId":0}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cookie", "session_id=s1")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for invalid productId, got %d", res.StatusCode)
	}

	req = httptest.NewRequest("PUT", "/api/cart/abc", strings.NewReader(`{"quantity":1}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cookie", "session_id=s1")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric productId, got %d", res.StatusCode)
	}
}

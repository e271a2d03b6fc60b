package wishlist

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/aurelia-jewels/jewelry-shop-backend/internal/product"
	"github.com/aurelia-jewels/jewelry-shop-backend/internal/session"
)

func makeAppWithWishlistHandler() *fiber.App {
	catalog := []product.Product{
		{ID: 2, Name: "Aurora Pendant Necklace", Price: 649, Category: "Necklaces"},
		{ID: 4, Name: "Solitaire Halo Ring", Price: 549, Category: "Rings"},
	}
	productService := product.NewService(product.NewInMemoryRepository(catalog))
	handler := NewHandler(NewService(NewInMemoryRepository(), productService))

	app := fiber.New()
	app.Use(session.Middleware())
	handler.RegisterRoutes(app)
	return app
}

func getIDs(t *testing.T, app *fiber.App, sessionID string) []int {
	t.Helper()
	req := httptest.NewRequest("GET", "/api/wishlist", nil)
	req.Header.Set("Cookie", "session_id="+sessionID)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for GET wishlist, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	var ids []int
	if err := json.Unmarshal(b, &ids); err != nil {
		t.Fatalf("bad wishlist response: %v (%s)", err, string(b))
	}
	return ids
}

func TestWishlistRoutes_ToggleTwiceRestoresState(t *testing.T) {
	app := makeAppWithWishlistHandler()

	if ids := getIDs(t, app, "s1"); len(ids) != 0 {
		t.Fatalf("expected empty wishlist, got %v", ids)
	}

	req := httptest.NewRequest("POST", "/api/wishlist/4", nil)
	req.Header.Set("Cookie", "session_id=s1")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for toggle, got %d", res.StatusCode)
	}
	if ids := getIDs(t, app, "s1"); len(ids) != 1 || ids[0] != 4 {
		t.Fatalf("expected wishlist [4], got %v", ids)
	}

	// second toggle removes it again
	req = httptest.NewRequest("POST", "/api/wishlist/4", nil)
	req.Header.Set("Cookie", "session_id=s1")
	app.Test(req)
	if ids := getIDs(t, app, "s1"); len(ids) != 0 {
		t.Fatalf("expected empty wishlist after double toggle, got %v", ids)
	}
}

func TestWishlistRoutes_NoDuplicates(t *testing.T) {
	app := makeAppWithWishlistHandler()

	for _, id := range []string{"2", "4", "2", "2"} {
		req := httptest.NewRequest("POST", "/api/wishlist/"+id, nil)
		req.Header.Set("Cookie", "session_id=s1")
		app.Test(req)
	}
	// 2 toggled three times -> present; 4 once -> present
	ids := getIDs(t, app, "s1")
	if len(ids) != 2 {
		t.Fatalf("expected 2 distinct ids, got %v", ids)
	}
}

func TestWishlistRoutes_ItemsJoinCatalog(t *testing.T) {
	app := makeAppWithWishlistHandler()

	for _, id := range []string{"4", "99"} {
		req := httptest.NewRequest("POST", "/api/wishlist/"+id, nil)
		req.Header.Set("Cookie", "session_id=s1")
		app.Test(req)
	}

	req := httptest.NewRequest("GET", "/api/wishlist/items", nil)
	req.Header.Set("Cookie", "session_id=s1")
	res, _ := app.Test(req)
	b, _ := io.ReadAll(res.Body)
	var items []product.Product
	if err := json.Unmarshal(b, &items); err != nil {
		t.Fatalf("bad items response: %v (%s)", err, string(b))
	}
	// 99 has no catalog entry and is dropped from the joined view
	if len(items) != 1 || items[0].ID != 4 {
		t.Fatalf("expected joined view [product 4], got %+v", items)
	}
	// but the raw id list still carries it
	if ids := getIDs(t, app, "s1"); len(ids) != 2 {
		t.Fatalf("expected raw wishlist to keep unknown id, got %v", ids)
	}
}

func TestWishlistRoutes_SessionsAreIsolated(t *testing.T) {
	app := makeAppWithWishlistHandler()

	req := httptest.NewRequest("POST", "/api/wishlist/2", nil)
	req.Header.Set("Cookie", "session_id=s1")
	app.Test(req)

	if ids := getIDs(t, app, "s2"); len(ids) != 0 {
		t.Fatalf("expected s2 wishlist empty, got %v", ids)
	}
}

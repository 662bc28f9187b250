package handlers_test

import (
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"shadeworks/internal/config"
	"shadeworks/internal/domain"
	"shadeworks/internal/http/handlers"
	"shadeworks/internal/repos"
	"shadeworks/internal/store"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	schema := `
	CREATE TABLE categories(id TEXT PRIMARY KEY, name TEXT, created_at TEXT, updated_at TEXT);
	CREATE TABLE products(id TEXT PRIMARY KEY, category_id TEXT, title TEXT, description TEXT,
	  product_type TEXT, base_price NUMERIC, image TEXT, active INTEGER, created_at TEXT, updated_at TEXT);
	CREATE TABLE kv_store(key TEXT PRIMARY KEY, value TEXT NOT NULL, updated_at TEXT);

	INSERT INTO categories(id,name) VALUES ('blinds','Blinds');
	INSERT INTO products(id,category_id,title,description,product_type,base_price,image,active,created_at)
	  VALUES ('faux-wood-2in','blinds','2" Faux Wood Blinds','PVC slats','faux-wood',39.99,'img.jpg',1,'now');
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}
	return db
}

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	db := memdb(t)
	gw := store.NewGateway(repos.NewKVRepo(db))
	deps := handlers.NewDeps(db, config.Config{TaxRate: 0.07}, gw)

	app := fiber.New()
	app.Use(requestid.New())
	app.Get("/cart", deps.CartHandler.View)
	app.Post("/cart", deps.CartHandler.Add)
	app.Post("/cart/quantity", deps.CartHandler.UpdateQuantity)
	app.Post("/cart/coupon", deps.CartHandler.ApplyCoupon)
	app.Post("/api/v1/quote", deps.QuoteHandler.Quote)
	app.Get("/saved-carts", deps.SavedCartHandler.List)
	app.Post("/saved-carts", deps.SavedCartHandler.Save)
	return app
}

func form(t *testing.T, app *fiber.App, path string, vals url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(vals.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Cookie", "sid=test-sid")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test request failed: %v", err)
	}
	return resp
}

func getJSON(t *testing.T, app *fiber.App, path string, out any) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	req.Header.Set("Cookie", "sid=test-sid")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test request failed: %v", err)
	}
	if resp.StatusCode != 200 {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("GET %s: %d %s", path, resp.StatusCode, body)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatal(err)
	}
}

func TestCartFlow_AddConfiguredProduct(t *testing.T) {
	app := newApp(t)

	resp := form(t, app, "/cart", url.Values{
		"productId":       {"faux-wood-2in"},
		"qty":             {"2"},
		"width":           {"36"},
		"height":          {"60"},
		"opt.controlType": {"cordless"},
	})
	if resp.StatusCode != 200 {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("add failed: %d %s", resp.StatusCode, body)
	}

	var cart domain.Cart
	getJSON(t, app, "/cart", &cart)
	if len(cart.Items) != 1 {
		t.Fatalf("want one line, got %+v", cart.Items)
	}
	it := cart.Items[0]
	// 39.99 base + 10 size + 25 cordless, locked at add-time
	if !approx(it.Price, 74.99) || it.Quantity != 2 {
		t.Fatalf("bad line: %+v", it)
	}
	if it.ID != "faux-wood-2in-36x60-controlType:cordless" {
		t.Fatalf("bad identity: %q", it.ID)
	}
	if cart.Subtotal != 149.98 || cart.ShippingAmount != 0 {
		t.Fatalf("bad totals: %+v", cart)
	}
}

func TestCartFlow_AddSameConfigurationMerges(t *testing.T) {
	app := newApp(t)

	add := url.Values{
		"productId": {"faux-wood-2in"},
		"qty":       {"1"},
		"width":     {"36"},
		"height":    {"60"},
	}
	form(t, app, "/cart", add)
	form(t, app, "/cart", add)

	var cart domain.Cart
	getJSON(t, app, "/cart", &cart)
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
		t.Fatalf("same configuration should merge into one line: %+v", cart.Items)
	}
}

func TestCartFlow_UnknownProduct404(t *testing.T) {
	app := newApp(t)
	resp := form(t, app, "/cart", url.Values{"productId": {"ghost"}, "qty": {"1"}})
	if resp.StatusCode != 404 {
		t.Fatalf("want 404, got %d", resp.StatusCode)
	}
}

func TestCouponFlow(t *testing.T) {
	app := newApp(t)
	form(t, app, "/cart", url.Values{"productId": {"faux-wood-2in"}, "qty": {"1"}})

	resp := form(t, app, "/cart/coupon", url.Values{"code": {"SAVE10"}})
	var out struct {
		Success bool        `json:"success"`
		Message string      `json:"message"`
		Cart    domain.Cart `json:"cart"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if !out.Success || out.Cart.Discount == 0 {
		t.Fatalf("coupon not applied: %+v", out)
	}

	resp = form(t, app, "/cart/coupon", url.Values{"code": {"BOGUS"}})
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Success {
		t.Fatal("bogus code must fail")
	}
}

func TestQuoteEndpoint_ItemizesBreakdown(t *testing.T) {
	app := newApp(t)
	resp := form(t, app, "/api/v1/quote", url.Values{
		"productId":       {"faux-wood-2in"},
		"width":           {"36"},
		"height":          {"60"},
		"opt.controlType": {"motorized"},
	})
	if resp.StatusCode != 200 {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	var b struct {
		BasePrice      float64 `json:"basePrice"`
		SizeAdjustment float64 `json:"sizeAdjustment"`
		ControlPrice   float64 `json:"controlPrice"`
		Total          float64 `json:"total"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&b); err != nil {
		t.Fatal(err)
	}
	if !approx(b.BasePrice, 39.99) || b.SizeAdjustment != 10 || b.ControlPrice != 120 {
		t.Fatalf("bad breakdown: %+v", b)
	}
	if !approx(b.Total, 169.99) {
		t.Fatalf("want total 169.99, got %v", b.Total)
	}
}

func TestSaveEmptyCartRejected(t *testing.T) {
	app := newApp(t)

	resp := form(t, app, "/saved-carts", url.Values{"name": {"empty"}})
	if resp.StatusCode != 400 {
		t.Fatalf("want 400, got %d", resp.StatusCode)
	}

	var list []domain.SavedCart
	getJSON(t, app, "/saved-carts", &list)
	if len(list) != 0 {
		t.Fatalf("saved list must stay empty: %+v", list)
	}
}

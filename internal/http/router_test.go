package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/backend"
	apphttp "github.com/Ainkaran01/Thusha-Shop-sub001/internal/http"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/http/handlers"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/http/middleware"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/http/sessioncookie"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/cart"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/catalog"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/checkout"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/orders"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/sessions"
)

const (
	jwtSecret = "test-secret"
	products  = `[
		{"id":1,"name":"Aviator","price":"1500.00","category":{"id":1,"name":"Eyeglasses"},"frame_type":{"id":1,"name":"Full Rim"},"face_shapes":["oval"],"stock":5},
		{"id":2,"name":"Lens Cloth","price":"200.00","category":{"id":2,"name":"Accessories"},"frame_type":null,"stock":10},
		{"id":3,"name":"Cat Eye","price":"900.00","category":{"id":1,"name":"Eyeglasses"},"frame_type":{"id":2,"name":"Cat Eye"},"face_shapes":["round"],"stock":0}
	]`
)

// fakeBackend records order creation payloads and serves canned data.
type fakeBackend struct {
	mu      sync.Mutex
	created []map[string]any
	status  []string
}

func (f *fakeBackend) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/products/products/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, products)
	})
	mux.HandleFunc("/api/products/", func(w http.ResponseWriter, r *http.Request) {
		var all []json.RawMessage
		require.NoError(t, json.Unmarshal([]byte(products), &all))
		for i, id := range []string{"/api/products/1/", "/api/products/2/", "/api/products/3/"} {
			if r.URL.Path == id {
				_, _ = w.Write(all[i])
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"detail":"Not found."}`)
	})
	mux.HandleFunc("/api/core/profile/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = io.WriteString(w, `{"id":3,"name":"Kavya Perera","email":"kavya@example.com","phone_number":"0771234567","address_line1":"12 Lake Rd","city":"Colombo","state":"Western","zip_code":"00500","country":"Sri Lanka","face_shape":"oval"}`)
	})
	mux.HandleFunc("/api/orders/create/", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		f.mu.Lock()
		f.created = append(f.created, body)
		f.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":           11,
			"order_number": body["order_number"],
			"status":       "pending",
			"total_price":  body["total_price"],
			"created_at":   "2024-05-01T10:00:00Z",
		})
	})
	mux.HandleFunc("/api/orders/list/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[
			{"id":1,"order_number":"ORD-OLD","status":"delivered","total_price":"100.00","created_at":"2024-01-01T10:00:00Z","items":[]},
			{"id":2,"order_number":"ORD-NEW","status":"pending","total_price":"200.00","created_at":"2024-04-01T10:00:00Z","items":[]}
		]`)
	})
	mux.HandleFunc("/api/orders/ORD-NEW/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"id":2,"order_number":"ORD-NEW","status":"pending","total_price":"1900.00","created_at":"2024-04-01T10:00:00Z",
			"items":[{"product_id":2,"product_name":"Lens Cloth","quantity":2,"price":"200.00"},{"product_id":99,"product_name":"Retired","quantity":1,"price":"10.00"}]}`)
	})
	mux.HandleFunc("/api/orders/role/orders/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[{"id":2,"order_number":"ORD-NEW","status":"pending","total_price":"200.00","created_at":"2024-04-01T10:00:00Z"}]`)
	})
	mux.HandleFunc("/api/orders/role/ORD-NEW/status/", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		f.mu.Lock()
		f.status = append(f.status, body["status"])
		f.mu.Unlock()
		_, _ = io.WriteString(w, `{"message":"ok","order_number":"ORD-NEW","status":"`+body["status"]+`"}`)
	})
	return mux
}

type client struct {
	t      *testing.T
	router http.Handler
	cookie *http.Cookie
	token  string
}

func (c *client) do(method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	c.t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		if ck.Name == sessioncookie.DefaultName && ck.Value != "" {
			c.cookie = ck
		}
	}
	var out map[string]any
	if ct := w.Header().Get("Content-Type"); len(ct) >= 16 && ct[:16] == "application/json" {
		require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w, out
}

func newRouter(t *testing.T) (*client, *fakeBackend) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	fb := &fakeBackend{}
	srv := httptest.NewServer(fb.handler(t))
	t.Cleanup(srv.Close)

	api := backend.New(srv.URL, 2*time.Second, log)
	pricing := checkout.DefaultPricing()
	reg := sessions.NewRegistry(sessions.Options{
		Repo:        cart.NewMemoryRepo(),
		FlowOptions: []checkout.Option{checkout.WithOrderCreator(api), checkout.WithCalculator(pricing)},
		Staff:       api,
		Logger:      log,
	})

	r := apphttp.NewRouter(log, apphttp.Deps{
		Catalog:   catalog.NewService(api, catalog.NewMemoryCache(time.Minute), log),
		History:   orders.NewHistory(api, api, log),
		Profiles:  api,
		Sessions:  reg,
		Cookies:   sessioncookie.New([]byte("cookie-secret"), "", false, 0),
		Presenter: handlers.NewPresenter("LKR", pricing),
		Auth:      middleware.AuthCfg{Secret: []byte(jwtSecret)},
	})
	return &client{t: t, router: r}, fb
}

func token(t *testing.T, id int64, role string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": id, "role": role}).SignedString([]byte(jwtSecret))
	require.NoError(t, err)
	return s
}

func TestHealthz(t *testing.T) {
	c, _ := newRouter(t)
	w, body := c.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestStatelessProductFiltering(t *testing.T) {
	c, _ := newRouter(t)
	w, body := c.do(http.MethodGet, "/api/products?category=Eyeglasses&maxPrice=1000", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["total"])

	w, _ = c.do(http.MethodGet, "/api/products?minPrice=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body = c.do(http.MethodGet, "/api/products/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not found.", body["error"])
}

func TestCatalogSessionFilters(t *testing.T) {
	c, _ := newRouter(t)

	w, body := c.do(http.MethodGet, "/api/catalog", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, c.cookie)
	assert.EqualValues(t, 3, body["total"])
	assert.Equal(t, false, body["has_active_filters"])

	w, body = c.do(http.MethodPatch, "/api/catalog/filters", map[string]any{"facet": "faceShape", "value": "round"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["total"])
	assert.Equal(t, true, body["has_active_filters"])

	w, body = c.do(http.MethodPatch, "/api/catalog/filters", map[string]any{"facet": "faceShape", "value": "round"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 3, body["total"])

	w, _ = c.do(http.MethodPatch, "/api/catalog/filters", map[string]any{"facet": "colour", "value": "red"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body = c.do(http.MethodPatch, "/api/catalog/filters", map[string]any{"min_price": "1000", "max_price": "100"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, body["total"], "inverted bounds are swapped")

	w, body = c.do(http.MethodDelete, "/api/catalog/filters", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 3, body["total"])
}

func TestCatalogSeedsProfileFaceShape(t *testing.T) {
	c, _ := newRouter(t)
	c.token = token(t, 3, "customer")

	w, body := c.do(http.MethodGet, "/api/catalog", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["total"])
	filters := body["filters"].(map[string]any)
	assert.Equal(t, []any{"oval"}, filters["faceShape"])
}

func TestCheckoutEyeglassesFlow(t *testing.T) {
	c, fb := newRouter(t)

	w, body := c.do(http.MethodGet, "/api/checkout", nil)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "/cart", body["redirect"])

	w, _ = c.do(http.MethodPost, "/api/cart/items", map[string]any{"product_id": 3})
	assert.Equal(t, http.StatusConflict, w.Code, "out of stock")

	w, body = c.do(http.MethodPost, "/api/cart/items", map[string]any{"product_id": 1})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.EqualValues(t, 1, body["count"])
	assert.Equal(t, true, body["has_eyeglasses"])

	w, body = c.do(http.MethodGet, "/api/checkout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["step"])
	assert.Len(t, body["steps"], 5)

	w, body = c.do(http.MethodPost, "/api/checkout/next", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["fields"], "zipCode")

	w, _ = c.do(http.MethodPut, "/api/checkout/billing", map[string]any{
		"name": "Kavya", "email": "kavya@example.com", "phone": "0771234567", "address1": "12 Lake Rd",
		"city": "Colombo", "state": "Western", "zipCode": "00500", "country": "Sri Lanka",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, body = c.do(http.MethodPost, "/api/checkout/next", map[string]any{"from": 1})
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, body["step"])

	w, body = c.do(http.MethodPost, "/api/checkout/next", map[string]any{"from": 1})
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, body["step"], "stale from is ignored")

	w, _ = c.do(http.MethodPut, "/api/checkout/delivery", map[string]any{"delivery_option": "drone"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body = c.do(http.MethodPost, "/api/checkout/next", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 3, body["step"])

	w, body = c.do(http.MethodPost, "/api/checkout/next", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please select lens options", body["error"])

	w, body = c.do(http.MethodPut, "/api/cart/items/1/lens", map[string]any{"type": "standard"})
	require.Equal(t, http.StatusOK, w.Code)
	summary := body["summary"].(map[string]any)
	assert.Equal(t, "LKR 50.00", summary["lens_total"])

	w, body = c.do(http.MethodPost, "/api/checkout/next", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 4, body["step"])
	summary = body["summary"].(map[string]any)
	assert.Equal(t, "LKR 0.00", summary["shipping"])
	assert.Equal(t, "LKR 77.50", summary["tax"])
	assert.Equal(t, "LKR 1627.50", summary["total"])

	w, _ = c.do(http.MethodPost, "/api/checkout/payment-success", map[string]any{"payment_id": "pay_1"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	c.token = token(t, 3, "customer")
	w, body = c.do(http.MethodPost, "/api/checkout/payment-success", map[string]any{"payment_id": "pay_1"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	page := body["checkout"].(map[string]any)
	assert.EqualValues(t, 5, page["step"])
	assert.Equal(t, true, page["complete"])

	require.Len(t, fb.created, 1)
	sent := fb.created[0]
	assert.Equal(t, "1627.50", sent["total_price"])
	assert.EqualValues(t, 3, sent["user"])
	assert.Equal(t, page["order_number"], sent["order_number"])
	items := sent["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "Basic", items[0].(map[string]any)["lens_option"].(map[string]any)["option"])

	w, _ = c.do(http.MethodPost, "/api/checkout/payment-success", nil)
	assert.Equal(t, http.StatusConflict, w.Code, "already placed")

	w, body = c.do(http.MethodGet, "/api/notices", nil)
	require.Equal(t, http.StatusOK, w.Code)
	notices := body["notices"].([]any)
	last := notices[len(notices)-1].(map[string]any)
	assert.Equal(t, "Order Placed Successfully", last["title"])

	w, body = c.do(http.MethodPost, "/api/checkout/finish", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, page["order_number"], body["order_number"])

	w, body = c.do(http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, body["count"])
}

func TestCartEditing(t *testing.T) {
	c, _ := newRouter(t)

	w, _ := c.do(http.MethodPost, "/api/cart/items", map[string]any{"product_id": 2, "quantity": 2})
	require.Equal(t, http.StatusCreated, w.Code)

	w, body := c.do(http.MethodPatch, "/api/cart/items/2", map[string]any{"quantity": 3})
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 3, body["count"])
	summary := body["summary"].(map[string]any)
	assert.Equal(t, "LKR 500.00", summary["shipping"])

	w, body = c.do(http.MethodGet, "/api/cart?delivery=pickup", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "LKR 0.00", body["summary"].(map[string]any)["shipping"])

	w, body = c.do(http.MethodPatch, "/api/cart/items/2", map[string]any{"quantity": 0})
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 3, body["count"])

	w, _ = c.do(http.MethodPatch, "/api/cart/items/2", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = c.do(http.MethodPatch, "/api/cart/items/1", map[string]any{"quantity": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = c.do(http.MethodPut, "/api/cart/items/2/lens", map[string]any{"type": "laser"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body = c.do(http.MethodDelete, "/api/cart/items/2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, body["count"])

	w, body = c.do(http.MethodGet, "/api/lens-options", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["standard"], 3)
	assert.Len(t, body["prescription"], 3)
}

func TestOrderHistoryAndReorder(t *testing.T) {
	c, _ := newRouter(t)

	w, _ := c.do(http.MethodGet, "/api/orders", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	c.token = token(t, 3, "customer")
	w, body := c.do(http.MethodGet, "/api/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := body["orders"].([]any)
	require.Len(t, list, 2)
	assert.Equal(t, "ORD-NEW", list[0].(map[string]any)["order_number"])

	w, body = c.do(http.MethodPost, "/api/orders/ORD-NEW/reorder", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res := body["reorder"].(map[string]any)
	assert.EqualValues(t, 2, res["added"])
	assert.Len(t, res["failed"], 1)
	assert.EqualValues(t, 2, body["cart"].(map[string]any)["count"])

	w, _ = c.do(http.MethodGet, "/api/orders/ORD-NEW/invoice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ORD-NEW")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "invoice-ORD-NEW.txt")

	w, _ = c.do(http.MethodGet, "/api/admin/orders", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminStatusUpdate(t *testing.T) {
	c, fb := newRouter(t)
	c.token = token(t, 1, "admin")

	w, body := c.do(http.MethodGet, "/api/admin/orders?status=pending", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["orders"], 1)

	w, _ = c.do(http.MethodPatch, "/api/admin/orders/ORD-NEW/status", map[string]any{"status": "lost"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body = c.do(http.MethodPatch, "/api/admin/orders/ORD-NEW/status", map[string]any{"status": "processing"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "processing", body["status"])
	assert.Equal(t, []string{"processing"}, fb.status)

	w, _ = c.do(http.MethodPatch, "/api/admin/orders/ORD-GONE/status", map[string]any{"status": "processing"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

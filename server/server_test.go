package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/bellacucina/api/config"
	"github.com/bellacucina/api/models"
	"github.com/bellacucina/api/server"
	"github.com/bellacucina/api/storage"
	"github.com/bellacucina/api/utils"
)

const testAdminPassword = "admin123"

func newTestServer(t *testing.T) *server.Server {
	t.Helper()
	config.SecretKey = []byte("test-secret")
	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	require.NoError(t, err)
	config.AdminPasswordHash = hash

	// seed relative to local noon so all seed orders land on today's date
	now := time.Now()
	noon := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location())

	menu := storage.NewMenuStore(storage.SeedMenuItems())
	orders := storage.NewOrderStore(storage.SeedOrders(noon))
	return server.SetupRoutes(menu, orders)
}

func doJSON(t *testing.T, svr *server.Server, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	svr.Router.ServeHTTP(rec, req)
	return rec
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateAdminToken()
	require.NoError(t, err)
	return token
}

func TestHealth(t *testing.T) {
	svr := newTestServer(t)
	rec := doJSON(t, svr, "GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"alive": true}`, rec.Body.String())
}

func TestAdminLogin(t *testing.T) {
	svr := newTestServer(t)

	rec := doJSON(t, svr, "POST", "/admin/login", "", map[string]string{"password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, svr, "POST", "/admin/login", "", map[string]string{"password": testAdminPassword})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	decodeInto(t, rec, &resp)
	assert.NotEmpty(t, resp["token"])

	// the issued token opens the admin routes
	rec = doJSON(t, svr, "GET", "/api/admin/stats", resp["token"], nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListMenuWithFilters(t *testing.T) {
	svr := newTestServer(t)

	rec := doJSON(t, svr, "GET", "/api/menu", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var items []models.MenuItem
	decodeInto(t, rec, &items)
	assert.Len(t, items, 16)

	rec = doJSON(t, svr, "GET", "/api/menu?category=Mains", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeInto(t, rec, &items)
	require.Len(t, items, 5)
	for _, item := range items {
		assert.Equal(t, models.CategoryMains, item.Category)
	}

	// repeated call without mutation returns identical results
	rec2 := doJSON(t, svr, "GET", "/api/menu?category=Mains", "", nil)
	assert.Equal(t, rec.Body.String(), rec2.Body.String())

	rec = doJSON(t, svr, "GET", "/api/menu?available=banana", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetMenuItemNotFound(t *testing.T) {
	svr := newTestServer(t)
	rec := doJSON(t, svr, "GET", "/api/menu/menu-999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMenuMutationsRequireAuth(t *testing.T) {
	svr := newTestServer(t)

	payload := map[string]interface{}{
		"name": "Focaccia", "description": "Rosemary and sea salt",
		"price": 7.5, "category": "Appetizers", "image": "https://example.com/f.jpg",
	}
	assert.Equal(t, http.StatusUnauthorized, doJSON(t, svr, "POST", "/api/menu", "", payload).Code)
	assert.Equal(t, http.StatusUnauthorized, doJSON(t, svr, "PUT", "/api/menu/menu-1", "", payload).Code)
	assert.Equal(t, http.StatusUnauthorized, doJSON(t, svr, "DELETE", "/api/menu/menu-1", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, doJSON(t, svr, "PATCH", "/api/orders/ORD-006", "", map[string]string{"status": "Preparing"}).Code)
	assert.Equal(t, http.StatusUnauthorized, doJSON(t, svr, "GET", "/api/admin/stats", "", nil).Code)
}

func TestCreateMenuItem(t *testing.T) {
	svr := newTestServer(t)
	token := adminToken(t)

	rec := doJSON(t, svr, "POST", "/api/menu", token, map[string]interface{}{
		"name":        "Focaccia",
		"description": "Rosemary and sea salt",
		"price":       7.5,
		"category":    "Appetizers",
		"image":       "https://example.com/focaccia.jpg",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var item models.MenuItem
	decodeInto(t, rec, &item)
	assert.Equal(t, "menu-17", item.ID)
	assert.True(t, item.Available)
}

func TestCreateMenuItemValidationListsAllViolations(t *testing.T) {
	svr := newTestServer(t)

	rec := doJSON(t, svr, "POST", "/api/menu", adminToken(t), map[string]interface{}{
		"name":        "A",
		"description": "Tasty snack",
		"price":       -5,
		"category":    "Snacks",
		"image":       "https://example.com/x.jpg",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	decodeInto(t, rec, &resp)
	msg := resp["error"]
	assert.Contains(t, msg, "name is required (min 2 characters)")
	assert.Contains(t, msg, "price must be a positive number")
	assert.Contains(t, msg, "category must be one of: Appetizers, Mains, Desserts, Drinks")
	assert.Equal(t, 3, len(strings.Split(msg, "; ")))
}

func TestUpdateAndDeleteMenuItem(t *testing.T) {
	svr := newTestServer(t)
	token := adminToken(t)

	rec := doJSON(t, svr, "PUT", "/api/menu/menu-5", token, map[string]interface{}{"price": 15.49})
	require.Equal(t, http.StatusOK, rec.Code)
	var item models.MenuItem
	decodeInto(t, rec, &item)
	assert.InDelta(t, 15.49, item.Price, 1e-9)
	assert.Equal(t, "Margherita Pizza", item.Name)

	assert.Equal(t, http.StatusNotFound, doJSON(t, svr, "PUT", "/api/menu/menu-999", token, map[string]interface{}{"price": 1.0}).Code)

	rec = doJSON(t, svr, "DELETE", "/api/menu/menu-16", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success": true}`, rec.Body.String())

	assert.Equal(t, http.StatusNotFound, doJSON(t, svr, "GET", "/api/menu/menu-16", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, svr, "DELETE", "/api/menu/menu-16", token, nil).Code)
}

// The full checkout and kitchen flow from the storefront's point of view.
func TestOrderLifecycle(t *testing.T) {
	svr := newTestServer(t)
	token := adminToken(t)

	rec := doJSON(t, svr, "POST", "/api/orders", "", map[string]interface{}{
		"customerName": "Maria Rossi",
		"email":        "maria@example.com",
		"phone":        "555-0199",
		"orderType":    "Pickup",
		"items": []map[string]interface{}{
			{"menuItemId": "menu-5", "name": "Margherita Pizza", "price": 14.99, "quantity": 1},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var order models.Order
	decodeInto(t, rec, &order)
	assert.Equal(t, "ORD-009", order.ID)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.InDelta(t, 14.99, order.Subtotal, 1e-9)
	assert.InDelta(t, 1.50, order.Tax, 1e-9)
	assert.InDelta(t, 16.49, order.Total, 1e-9)

	patch := func(status string) *httptest.ResponseRecorder {
		return doJSON(t, svr, "PATCH", "/api/orders/"+order.ID, token, map[string]string{"status": status})
	}

	// Pending cannot jump straight to Ready
	rec = patch("Ready")
	assert.Equal(t, http.StatusConflict, rec.Code)
	var resp map[string]string
	decodeInto(t, rec, &resp)
	assert.Contains(t, resp["error"], `"Pending"`)
	assert.Contains(t, resp["error"], `"Ready"`)

	assert.Equal(t, http.StatusOK, patch("Preparing").Code)
	assert.Equal(t, http.StatusOK, patch("Ready").Code)

	// no backward edge
	assert.Equal(t, http.StatusConflict, patch("Preparing").Code)

	// same-status request is rejected too
	assert.Equal(t, http.StatusConflict, patch("Ready").Code)

	// unknown status is a validation failure, not a transition failure
	assert.Equal(t, http.StatusBadRequest, patch("Snoozing").Code)

	// the customer sees the final state when polling
	rec = doJSON(t, svr, "GET", "/api/orders/"+order.ID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeInto(t, rec, &order)
	assert.Equal(t, models.StatusReady, order.Status)
}

func TestCreateOrderValidationListsAllViolations(t *testing.T) {
	svr := newTestServer(t)

	rec := doJSON(t, svr, "POST", "/api/orders", "", map[string]interface{}{
		"customerName": "M",
		"orderType":    "Delivery",
		"items":        []map[string]interface{}{},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	decodeInto(t, rec, &resp)
	msg := resp["error"]
	assert.Contains(t, msg, "customerName")
	assert.Contains(t, msg, "email")
	assert.Contains(t, msg, "phone")
	assert.Contains(t, msg, "address is required for delivery orders")
	assert.Contains(t, msg, "items array is required and must not be empty")
}

func TestListOrdersByStatus(t *testing.T) {
	svr := newTestServer(t)

	rec := doJSON(t, svr, "GET", "/api/orders?status=Pending", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var orders []models.Order
	decodeInto(t, rec, &orders)
	require.Len(t, orders, 2)
	for _, o := range orders {
		assert.Equal(t, models.StatusPending, o.Status)
	}

	rec = doJSON(t, svr, "GET", "/api/orders", "", nil)
	decodeInto(t, rec, &orders)
	require.Len(t, orders, 8)
	for i := 1; i < len(orders); i++ {
		assert.False(t, orders[i-1].CreatedAt.Before(orders[i].CreatedAt), "orders not newest first at %d", i)
	}

	assert.Equal(t, http.StatusNotFound, doJSON(t, svr, "GET", "/api/orders/ORD-999", "", nil).Code)
}

func TestAdminStats(t *testing.T) {
	svr := newTestServer(t)

	rec := doJSON(t, svr, "GET", "/api/admin/stats", adminToken(t), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats struct {
		TotalOrders    int            `json:"totalOrders"`
		TodayOrders    int            `json:"todayOrders"`
		TotalRevenue   float64        `json:"totalRevenue"`
		ActiveOrders   int            `json:"activeOrders"`
		TotalMenuItems int            `json:"totalMenuItems"`
		AvailableItems int            `json:"availableItems"`
		RecentOrders   []models.Order `json:"recentOrders"`
		PopularItems   []struct {
			ItemID string `json:"itemId"`
			Count  int    `json:"count"`
		} `json:"popularItems"`
	}
	decodeInto(t, rec, &stats)

	assert.Equal(t, 8, stats.TotalOrders)
	assert.Equal(t, 8, stats.TodayOrders)
	assert.Equal(t, 4, stats.ActiveOrders) // 2 Pending + 2 Preparing
	assert.Equal(t, 16, stats.TotalMenuItems)
	assert.Equal(t, 16, stats.AvailableItems)
	// sum of the seven non-cancelled seed totals
	assert.InDelta(t, 279.73, stats.TotalRevenue, 1e-9)
	assert.Len(t, stats.RecentOrders, 8)
	require.Len(t, stats.PopularItems, 5)
	assert.Equal(t, 3, stats.PopularItems[0].Count)
}

package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createExpense(t *testing.T, r http.Handler, shopID uint, amount float64, date time.Time) uint {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/api/expenses", gin.H{
		"shop_id":      shopID,
		"amount":       amount,
		"expense_date": date.Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint(dataField(t, w)["id"].(float64))
}

func TestCreateExpense(t *testing.T) {
	r := setupRouter(t)
	shopID := createShop(t, r, "Spender")

	w := doRequest(t, r, http.MethodPost, "/api/expenses", gin.H{
		"shop_id":      shopID,
		"amount":       120.5,
		"expense_date": "2026-03-01T10:00:00Z",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := dataField(t, w)
	assert.Equal(t, float64(shopID), data["shop_id"])
	assert.Equal(t, "120.5", fmt.Sprint(data["amount"]))
}

func TestCreateExpenseRejectsNonPositiveAmount(t *testing.T) {
	r := setupRouter(t)
	shopID := createShop(t, r, "Strict")

	w := doRequest(t, r, http.MethodPost, "/api/expenses", gin.H{
		"shop_id":      shopID,
		"amount":       -5,
		"expense_date": "2026-03-01T10:00:00Z",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Amount must be greater than zero", decodeBody(t, w)["error"])
}

func TestCreateExpenseUnknownShop(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/expenses", gin.H{
		"shop_id":      31337,
		"amount":       10,
		"expense_date": "2026-03-01T10:00:00Z",
	})

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Shop not found", decodeBody(t, w)["error"])
}

func TestGetExpensesByShop(t *testing.T) {
	r := setupRouter(t)
	shopA := createShop(t, r, "A")
	shopB := createShop(t, r, "B")
	createExpense(t, r, shopA, 10, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	createExpense(t, r, shopA, 20, time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC))
	createExpense(t, r, shopB, 99, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	w := doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/expenses/shop/%d", shopA), nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, float64(2), body["count"])

	// Newest first
	rows := body["data"].([]interface{})
	first := rows[0].(map[string]interface{})
	second := rows[1].(map[string]interface{})
	assert.True(t, first["expense_date"].(string) > second["expense_date"].(string))
}

func TestUpdateExpense(t *testing.T) {
	r := setupRouter(t)
	shopID := createShop(t, r, "Edit")
	id := createExpense(t, r, shopID, 50, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	w := doRequest(t, r, http.MethodPut, fmt.Sprintf("/api/expenses/%d", id), gin.H{
		"amount": 75.25,
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "75.25", fmt.Sprint(dataField(t, w)["amount"]))
}

func TestUpdateExpenseEmptyBody(t *testing.T) {
	r := setupRouter(t)
	shopID := createShop(t, r, "Edit")
	id := createExpense(t, r, shopID, 50, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	w := doRequest(t, r, http.MethodPut, fmt.Sprintf("/api/expenses/%d", id), gin.H{})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No fields to update", decodeBody(t, w)["error"])
}

func TestDeleteExpenseIsIdempotent(t *testing.T) {
	r := setupRouter(t)
	shopID := createShop(t, r, "Cleanup")
	id := createExpense(t, r, shopID, 50, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	first := doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/expenses/%d", id), nil)
	require.Equal(t, http.StatusOK, first.Code)

	second := doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/expenses/%d", id), nil)
	require.Equal(t, http.StatusOK, second.Code)

	w := doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/expenses/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

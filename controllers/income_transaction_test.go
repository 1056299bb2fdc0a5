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

func createIncome(t *testing.T, r http.Handler, shopID uint, customer string, amount float64, date time.Time) uint {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/api/income-transactions", gin.H{
		"shop_id":          shopID,
		"customer_name":    customer,
		"amount":           amount,
		"transaction_date": date.Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint(dataField(t, w)["id"].(float64))
}

func TestCreateIncomeTransaction(t *testing.T) {
	r := setupRouter(t)
	shopID := createShop(t, r, "Earner")

	w := doRequest(t, r, http.MethodPost, "/api/income-transactions", gin.H{
		"shop_id":          shopID,
		"customer_name":    "Lena Hoffmann",
		"amount":           42.5,
		"transaction_date": "2026-03-01T14:30:00Z",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := dataField(t, w)
	assert.Equal(t, "Lena Hoffmann", data["customer_name"])
	assert.Equal(t, "42.5", fmt.Sprint(data["amount"]))
}

func TestCreateIncomeTransactionRequiresCustomerName(t *testing.T) {
	r := setupRouter(t)
	shopID := createShop(t, r, "Nameless")

	w := doRequest(t, r, http.MethodPost, "/api/income-transactions", gin.H{
		"shop_id":          shopID,
		"amount":           10,
		"transaction_date": "2026-03-01T14:30:00Z",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateIncomeTransactionUnknownShop(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/income-transactions", gin.H{
		"shop_id":          5555,
		"customer_name":    "Walk-in",
		"amount":           10,
		"transaction_date": "2026-03-01T14:30:00Z",
	})

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Shop not found", decodeBody(t, w)["error"])
}

func TestGetIncomeTransactionsByShop(t *testing.T) {
	r := setupRouter(t)
	shopA := createShop(t, r, "A")
	shopB := createShop(t, r, "B")
	createIncome(t, r, shopA, "One", 10, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	createIncome(t, r, shopB, "Two", 99, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	w := doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/income-transactions/shop/%d", shopA), nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, float64(1), body["count"])
	row := body["data"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "One", row["customer_name"])
}

func TestUpdateIncomeTransaction(t *testing.T) {
	r := setupRouter(t)
	shopID := createShop(t, r, "Edit")
	id := createIncome(t, r, shopID, "Before", 10, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	w := doRequest(t, r, http.MethodPut, fmt.Sprintf("/api/income-transactions/%d", id), gin.H{
		"customer_name": "After",
		"amount":        33.33,
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := dataField(t, w)
	assert.Equal(t, "After", data["customer_name"])
	assert.Equal(t, "33.33", fmt.Sprint(data["amount"]))
}

func TestUpdateIncomeTransactionRejectsNonPositiveAmount(t *testing.T) {
	r := setupRouter(t)
	shopID := createShop(t, r, "Strict")
	id := createIncome(t, r, shopID, "X", 10, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	w := doRequest(t, r, http.MethodPut, fmt.Sprintf("/api/income-transactions/%d", id), gin.H{
		"amount": 0,
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Amount must be greater than zero", decodeBody(t, w)["error"])
}

func TestDeleteIncomeTransactionIsIdempotent(t *testing.T) {
	r := setupRouter(t)
	shopID := createShop(t, r, "Cleanup")
	id := createIncome(t, r, shopID, "X", 10, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	first := doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/income-transactions/%d", id), nil)
	require.Equal(t, http.StatusOK, first.Code)

	second := doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/income-transactions/%d", id), nil)
	require.Equal(t, http.StatusOK, second.Code)

	w := doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/income-transactions/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateShop(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/shops", gin.H{
		"shop_name":   "Corner Fresh Market",
		"description": "Daily produce",
		"address":     "12 Elm Street",
		"phone":       "+14155550200",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := dataField(t, w)
	assert.Equal(t, "Corner Fresh Market", data["shop_name"])
	assert.Equal(t, "12 Elm Street", data["address"])
}

func TestCreateShopRequiresName(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/shops", gin.H{
		"description": "nameless",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateShopRejectsBadPhone(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/shops", gin.H{
		"shop_name": "Bad Phone Shop",
		"phone":     "not-a-phone",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid phone number format", decodeBody(t, w)["error"])
}

func TestGetShops(t *testing.T) {
	r := setupRouter(t)
	createShop(t, r, "One")
	createShop(t, r, "Two")

	w := doRequest(t, r, http.MethodGet, "/api/shops", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), decodeBody(t, w)["count"])
}

func TestGetShopNotFound(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/shops/777", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Shop not found", decodeBody(t, w)["error"])
}

func TestUpdateShop(t *testing.T) {
	r := setupRouter(t)
	id := createShop(t, r, "Before")

	w := doRequest(t, r, http.MethodPut, fmt.Sprintf("/api/shops/%d", id), gin.H{
		"shop_name": "After",
		"address":   "New Address 1",
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := dataField(t, w)
	assert.Equal(t, "After", data["shop_name"])
	assert.Equal(t, "New Address 1", data["address"])
}

func TestUpdateShopEmptyBody(t *testing.T) {
	r := setupRouter(t)
	id := createShop(t, r, "Static")

	w := doRequest(t, r, http.MethodPut, fmt.Sprintf("/api/shops/%d", id), gin.H{})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No fields to update", decodeBody(t, w)["error"])
}

func TestDeleteShopIsIdempotent(t *testing.T) {
	r := setupRouter(t)
	id := createShop(t, r, "Closing Down")

	first := doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/shops/%d", id), nil)
	require.Equal(t, http.StatusOK, first.Code)

	second := doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/shops/%d", id), nil)
	require.Equal(t, http.StatusOK, second.Code)

	w := doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/shops/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestShopManagerRoundTrip(t *testing.T) {
	r := setupRouter(t)
	shopID := createShop(t, r, "Managed Shop")
	userID := createUser(t, r, "Manager", "manager@example.com", "shop")

	w := doRequest(t, r, http.MethodPost, fmt.Sprintf("/api/shops/%d/managers", shopID), gin.H{
		"user_id": userID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := dataField(t, w)
	assert.Equal(t, float64(userID), data["user_id"])
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "manager@example.com", user["email"])

	w = doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/shops/%d/managers", shopID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decodeBody(t, w)["count"])

	w = doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/shops/%d/managers/%d", shopID, userID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/shops/%d/managers", shopID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decodeBody(t, w)["count"])
}

func TestAddShopManagerTwiceConflicts(t *testing.T) {
	r := setupRouter(t)
	shopID := createShop(t, r, "One Manager Shop")
	userID := createUser(t, r, "Only", "only@example.com", "shop")

	w := doRequest(t, r, http.MethodPost, fmt.Sprintf("/api/shops/%d/managers", shopID), gin.H{
		"user_id": userID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, r, http.MethodPost, fmt.Sprintf("/api/shops/%d/managers", shopID), gin.H{
		"user_id": userID,
	})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "User is already a manager of this shop", decodeBody(t, w)["error"])
}

func TestAddShopManagerUnknownUser(t *testing.T) {
	r := setupRouter(t)
	shopID := createShop(t, r, "Lonely Shop")

	w := doRequest(t, r, http.MethodPost, fmt.Sprintf("/api/shops/%d/managers", shopID), gin.H{
		"user_id": 98765,
	})

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decodeBody(t, w)["error"])
}

func TestRemoveShopManagerNotAssigned(t *testing.T) {
	r := setupRouter(t)
	shopID := createShop(t, r, "Empty Shop")
	userID := createUser(t, r, "Stranger", "stranger@example.com", "user")

	w := doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/shops/%d/managers/%d", shopID, userID), nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Manager not found for this shop", decodeBody(t, w)["error"])
}

func TestShopManagersOnDeletedShop(t *testing.T) {
	r := setupRouter(t)
	shopID := createShop(t, r, "Gone Shop")
	doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/shops/%d", shopID), nil)

	w := doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/shops/%d/managers", shopID), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

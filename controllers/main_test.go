package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"grocerypro-backend/config"
	"grocerypro-backend/models"
	"grocerypro-backend/routes"
)

// setupRouter wires the full HTTP stack against a fresh in-memory database.
// The shared-cache DSN is keyed by test name so parallel packages do not
// collide while connections within one test see the same data.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Shop{},
		&models.ShopManager{},
		&models.Expense{},
		&models.IncomeTransaction{},
	))

	config.DB = db
	return routes.SetupRouter(zap.NewNop())
}

func doRequest(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func dataField(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	body := decodeBody(t, w)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "expected data object in %s", w.Body.String())
	return data
}

func createUser(t *testing.T, r http.Handler, name, email, role string) uint {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/api/users", gin.H{
		"name":     name,
		"email":    email,
		"password": "password123",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint(dataField(t, w)["id"].(float64))
}

func createShop(t *testing.T, r http.Handler, name string) uint {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/api/shops", gin.H{
		"shop_name": name,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint(dataField(t, w)["id"].(float64))
}

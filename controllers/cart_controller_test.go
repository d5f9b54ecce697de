package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MK-1512/gadget-galaxy/apperrors"
	"github.com/MK-1512/gadget-galaxy/logger"
	"github.com/MK-1512/gadget-galaxy/models"
	"github.com/MK-1512/gadget-galaxy/services"
	"github.com/MK-1512/gadget-galaxy/storage"
)

func newCartRouter(t *testing.T) (*gin.Engine, *services.CartService) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()

	cart := services.NewCartService(storage.NewMemoryStore(), zap.NewNop())
	controller := NewCartController(cart)

	r := gin.New()
	r.Use(apperrors.ErrorMiddleware())
	r.GET("/cart", controller.GetCart)
	r.POST("/cart/add", controller.AddItem)
	r.DELETE("/cart/remove/:id", controller.RemoveItem)
	r.DELETE("/cart/delete/:id", controller.DeleteItem)
	r.DELETE("/cart/clear", controller.ClearCart)
	return r, cart
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
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

func TestCartEndpoints(t *testing.T) {
	r, _ := newCartRouter(t)
	product := models.Product{ID: 1, Title: "Phone", Price: 10}

	t.Run("Add Item", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/cart/add", product)

		require.Equal(t, http.StatusOK, w.Code)

		var state models.CartState
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
		assert.Equal(t, 1, state.TotalQuantity)
		assert.InDelta(t, 10, state.TotalAmount, 1e-9)
	})

	t.Run("Add Without ID Rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/cart/add", models.Product{Title: "no id"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Get Cart", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/cart", nil)

		require.Equal(t, http.StatusOK, w.Code)

		var state models.CartState
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
		assert.Len(t, state.Items, 1)
	})

	t.Run("Remove Unknown Line Is 404", func(t *testing.T) {
		w := doJSON(t, r, http.MethodDelete, "/cart/remove/42", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"code":404,"message":"item not in cart"}`, w.Body.String())
	})

	t.Run("Remove Item", func(t *testing.T) {
		w := doJSON(t, r, http.MethodDelete, "/cart/remove/1", nil)

		require.Equal(t, http.StatusOK, w.Code)

		var state models.CartState
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
		assert.Empty(t, state.Items)
	})

	t.Run("Clear Cart", func(t *testing.T) {
		doJSON(t, r, http.MethodPost, "/cart/add", product)
		w := doJSON(t, r, http.MethodDelete, "/cart/clear", nil)

		require.Equal(t, http.StatusOK, w.Code)

		var state models.CartState
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
		assert.Empty(t, state.Items)
		assert.Equal(t, 0, state.TotalQuantity)
	})

	t.Run("Invalid ID Param", func(t *testing.T) {
		w := doJSON(t, r, http.MethodDelete, "/cart/delete/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderCreate(t *testing.T) {
	ts := newTestServer(t)
	seedShop(t, ts, 5)

	w := ts.do(t, http.MethodPost, "/customers/1/cart/items", map[string]any{"book_id": 1, "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodPost, "/customers/1/orders", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	data := body["data"].(map[string]any)
	assert.EqualValues(t, 1, data["id"])
	assert.EqualValues(t, 2, data["items"].(map[string]any)["1"])

	// Stock was already deducted by the reservation; the order leaves it alone.
	book, err := ts.books.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 3, book.Stock)

	// The cart is empty again, so a second order is rejected.
	w = ts.do(t, http.MethodPost, "/customers/1/orders", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, "INVALID_INPUT", body["error"].(map[string]any)["code"])
}

func TestOrderCreateBookGone(t *testing.T) {
	ts := newTestServer(t)
	seedShop(t, ts, 5)

	w := ts.do(t, http.MethodPost, "/customers/1/cart/items", map[string]any{"book_id": 1, "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodDelete, "/books/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodPost, "/customers/1/orders", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "BOOK_NOT_FOUND", body["error"].(map[string]any)["code"])
}

func TestOrderGetAndList(t *testing.T) {
	ts := newTestServer(t)
	seedShop(t, ts, 5)

	w := ts.do(t, http.MethodPost, "/customers/1/cart/items", map[string]any{"book_id": 1, "quantity": 1})
	require.Equal(t, http.StatusOK, w.Code)
	w = ts.do(t, http.MethodPost, "/customers/1/orders", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = ts.do(t, http.MethodGet, "/customers/1/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Len(t, body["data"], 1)

	w = ts.do(t, http.MethodGet, "/customers/1/orders/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Another customer must not see the order.
	w = ts.do(t, http.MethodPost, "/customers", map[string]any{
		"first_name": "Grace", "last_name": "Hopper",
		"email": "grace@example.com", "password": "s3cret",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = ts.do(t, http.MethodGet, "/customers/2/orders/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, "ORDER_NOT_FOUND", body["error"].(map[string]any)["code"])
}

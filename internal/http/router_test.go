package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookstore/internal/cart"
	"bookstore/internal/catalog"
	"bookstore/internal/customer"
	"bookstore/internal/order"
	"bookstore/internal/store"
)

// testServer wires the real services and stores behind the same routes the
// binary registers, so handler tests exercise the full request path.
type testServer struct {
	router    *http.ServeMux
	books     *store.BookStore
	carts     *store.CartStore
	customers *store.CustomerStore
	authors   *store.AuthorStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	authors := store.NewAuthorStore()
	books := store.NewBookStore()
	customers := store.NewCustomerStore()
	carts := store.NewCartStore()
	orders := store.NewOrderStore()
	inv := store.NewInventory()

	catalogService := catalog.NewService(authors, books)
	customerService := customer.NewService(customers, carts, books, inv)
	cartService := cart.NewService(books, carts, customers, inv)
	orderService := order.NewService(books, carts, customers, orders, inv)

	authorHandler := NewAuthorHandler(catalogService)
	bookHandler := NewBookHandler(catalogService)
	customerHandler := NewCustomerHandler(customerService)
	cartHandler := NewCartHandler(cartService)
	orderHandler := NewOrderHandler(orderService)

	router := http.NewServeMux()
	router.HandleFunc("POST /authors", authorHandler.Create)
	router.HandleFunc("GET /authors", authorHandler.List)
	router.HandleFunc("GET /authors/{id}", authorHandler.Get)
	router.HandleFunc("PUT /authors/{id}", authorHandler.Update)
	router.HandleFunc("DELETE /authors/{id}", authorHandler.Delete)
	router.HandleFunc("GET /authors/{id}/books", authorHandler.Books)
	router.HandleFunc("POST /books", bookHandler.Create)
	router.HandleFunc("GET /books", bookHandler.List)
	router.HandleFunc("GET /books/{id}", bookHandler.Get)
	router.HandleFunc("PUT /books/{id}", bookHandler.Update)
	router.HandleFunc("DELETE /books/{id}", bookHandler.Delete)
	router.HandleFunc("POST /customers", customerHandler.Create)
	router.HandleFunc("GET /customers", customerHandler.List)
	router.HandleFunc("GET /customers/{id}", customerHandler.Get)
	router.HandleFunc("PUT /customers/{id}", customerHandler.Update)
	router.HandleFunc("DELETE /customers/{id}", customerHandler.Delete)
	router.HandleFunc("GET /customers/{customerID}/cart", cartHandler.Get)
	router.HandleFunc("POST /customers/{customerID}/cart/items", cartHandler.AddItem)
	router.HandleFunc("PUT /customers/{customerID}/cart/items/{bookID}", cartHandler.UpdateItem)
	router.HandleFunc("DELETE /customers/{customerID}/cart/items/{bookID}", cartHandler.RemoveItem)
	router.HandleFunc("POST /customers/{customerID}/orders", orderHandler.Create)
	router.HandleFunc("GET /customers/{customerID}/orders", orderHandler.List)
	router.HandleFunc("GET /customers/{customerID}/orders/{orderID}", orderHandler.Get)

	return &testServer{
		router:    router,
		books:     books,
		carts:     carts,
		customers: customers,
		authors:   authors,
	}
}

func (ts *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	r := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, r)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"bookstore/internal/entity"
)

func validBookBody() map[string]any {
	return map[string]any{
		"title":            "The Left Hand of Darkness",
		"author_id":        1,
		"isbn":             "978-0441478125",
		"publication_year": 1969,
		"price":            8.99,
		"stock":            5,
	}
}

func TestBookCreate(t *testing.T) {
	tests := []struct {
		name           string
		mutate         func(map[string]any)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "created",
			mutate:         func(m map[string]any) {},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "bad isbn",
			mutate:         func(m map[string]any) { m["isbn"] = "9780441478125" },
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "negative price",
			mutate:         func(m map[string]any) { m["price"] = -1 },
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "unknown author",
			mutate:         func(m map[string]any) { m["author_id"] = 9 },
			expectedStatus: http.StatusNotFound,
			expectedCode:   "AUTHOR_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.authors.Create(entity.Author{FirstName: "Ursula", LastName: "Le Guin"})

			body := validBookBody()
			tt.mutate(body)
			w := ts.do(t, http.MethodPost, "/books", body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				resp := decodeBody(t, w)
				assert.Equal(t, tt.expectedCode, resp["error"].(map[string]any)["code"])
			}
		})
	}
}

func TestBookGetAndList(t *testing.T) {
	ts := newTestServer(t)
	ts.authors.Create(entity.Author{FirstName: "Ursula", LastName: "Le Guin"})
	ts.books.Create(entity.Book{
		Title: "The Left Hand of Darkness", AuthorID: 1, ISBN: "978-0441478125",
		PublicationYear: 1969, Price: 8.99, Stock: 5,
	})

	w := ts.do(t, http.MethodGet, "/books", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Len(t, body["data"], 1)

	w = ts.do(t, http.MethodGet, "/books/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodGet, "/books/2", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, "BOOK_NOT_FOUND", body["error"].(map[string]any)["code"])
}

func TestBookUpdateStockCorrection(t *testing.T) {
	ts := newTestServer(t)
	ts.authors.Create(entity.Author{FirstName: "Ursula", LastName: "Le Guin"})
	ts.books.Create(entity.Book{
		Title: "The Left Hand of Darkness", AuthorID: 1, ISBN: "978-0441478125",
		PublicationYear: 1969, Price: 8.99, Stock: 5,
	})

	body := validBookBody()
	body["stock"] = 0
	w := ts.do(t, http.MethodPut, "/books/1", body)
	assert.Equal(t, http.StatusOK, w.Code)

	got, err := ts.books.Get(1)
	assert.NoError(t, err)
	assert.Equal(t, 0, got.Stock)
}

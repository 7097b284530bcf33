package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"bookstore/internal/catalog"
	"bookstore/internal/entity"
)

type BookHandler struct {
	catalog *catalog.Service
}

func NewBookHandler(c *catalog.Service) *BookHandler {
	return &BookHandler{catalog: c}
}

type bookReq struct {
	Title           string  `json:"title" validate:"required"`
	AuthorID        int64   `json:"author_id" validate:"required,gt=0"`
	ISBN            string  `json:"isbn" validate:"required,isbn"`
	PublicationYear int     `json:"publication_year" validate:"required"`
	Price           float64 `json:"price" validate:"required,gt=0"`
	Stock           int     `json:"stock" validate:"gte=0"`
}

func (req bookReq) toEntity(id int64) entity.Book {
	return entity.Book{
		ID:              id,
		Title:           req.Title,
		AuthorID:        req.AuthorID,
		ISBN:            req.ISBN,
		PublicationYear: req.PublicationYear,
		Price:           req.Price,
		Stock:           req.Stock,
	}
}

// Create handles POST /books.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req bookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	book, err := h.catalog.CreateBook(r.Context(), req.toEntity(0))
	if err != nil {
		RespondError(w, err)
		return
	}
	JSONSuccessCreated(w, book)
}

// List handles GET /books.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	JSONSuccess(w, h.catalog.ListBooks(r.Context()))
}

// Get handles GET /books/{id}.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		RespondError(w, err)
		return
	}
	book, err := h.catalog.GetBook(r.Context(), id)
	if err != nil {
		RespondError(w, err)
		return
	}
	JSONSuccess(w, book)
}

// Update handles PUT /books/{id}.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		RespondError(w, err)
		return
	}
	var req bookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	book, err := h.catalog.UpdateBook(r.Context(), req.toEntity(id))
	if err != nil {
		RespondError(w, err)
		return
	}
	JSONSuccess(w, book)
}

// Delete handles DELETE /books/{id}.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		RespondError(w, err)
		return
	}
	if err := h.catalog.DeleteBook(r.Context(), id); err != nil {
		RespondError(w, err)
		return
	}
	JSONSuccess(w, map[string]any{"message": fmt.Sprintf("book id %d successfully deleted", id)})
}

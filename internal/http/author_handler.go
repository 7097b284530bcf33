package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"bookstore/internal/catalog"
	"bookstore/internal/entity"
)

type AuthorHandler struct {
	catalog *catalog.Service
}

func NewAuthorHandler(c *catalog.Service) *AuthorHandler {
	return &AuthorHandler{catalog: c}
}

type authorReq struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Biography string `json:"biography"`
}

// Create handles POST /authors.
func (h *AuthorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req authorReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	author, err := h.catalog.CreateAuthor(r.Context(), entity.Author{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Biography: req.Biography,
	})
	if err != nil {
		RespondError(w, err)
		return
	}
	JSONSuccessCreated(w, author)
}

// List handles GET /authors.
func (h *AuthorHandler) List(w http.ResponseWriter, r *http.Request) {
	JSONSuccess(w, h.catalog.ListAuthors(r.Context()))
}

// Get handles GET /authors/{id}.
func (h *AuthorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		RespondError(w, err)
		return
	}
	author, err := h.catalog.GetAuthor(r.Context(), id)
	if err != nil {
		RespondError(w, err)
		return
	}
	JSONSuccess(w, author)
}

// Update handles PUT /authors/{id}.
func (h *AuthorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		RespondError(w, err)
		return
	}
	var req authorReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	author, err := h.catalog.UpdateAuthor(r.Context(), entity.Author{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Biography: req.Biography,
	})
	if err != nil {
		RespondError(w, err)
		return
	}
	JSONSuccess(w, author)
}

// Delete handles DELETE /authors/{id}.
func (h *AuthorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		RespondError(w, err)
		return
	}
	if err := h.catalog.DeleteAuthor(r.Context(), id); err != nil {
		RespondError(w, err)
		return
	}
	JSONSuccess(w, map[string]any{"message": fmt.Sprintf("author id %d successfully deleted", id)})
}

// Books handles GET /authors/{id}/books.
func (h *AuthorHandler) Books(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		RespondError(w, err)
		return
	}
	books, err := h.catalog.BooksByAuthor(r.Context(), id)
	if err != nil {
		RespondError(w, err)
		return
	}
	JSONSuccess(w, books)
}

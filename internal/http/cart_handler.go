package http

import (
	"encoding/json"
	"net/http"

	"bookstore/internal/cart"
)

type CartHandler struct {
	carts *cart.Service
}

func NewCartHandler(c *cart.Service) *CartHandler {
	return &CartHandler{carts: c}
}

type addItemReq struct {
	BookID   int64 `json:"book_id" validate:"required,gt=0"`
	Quantity int   `json:"quantity" validate:"required,gt=0"`
}

type updateItemReq struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// AddItem handles POST /customers/{customerID}/cart/items.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "customerID")
	if err != nil {
		RespondError(w, err)
		return
	}
	var req addItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	if err := h.carts.AddItem(r.Context(), customerID, req.BookID, req.Quantity); err != nil {
		RespondError(w, err)
		return
	}
	JSONSuccess(w, map[string]any{
		"message":  "item successfully added to cart",
		"book_id":  req.BookID,
		"quantity": req.Quantity,
	})
}

// Get handles GET /customers/{customerID}/cart.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "customerID")
	if err != nil {
		RespondError(w, err)
		return
	}
	c, err := h.carts.Get(r.Context(), customerID)
	if err != nil {
		RespondError(w, err)
		return
	}
	JSONSuccess(w, c)
}

// UpdateItem handles PUT /customers/{customerID}/cart/items/{bookID}.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "customerID")
	if err != nil {
		RespondError(w, err)
		return
	}
	bookID, err := pathID(r, "bookID")
	if err != nil {
		RespondError(w, err)
		return
	}
	var req updateItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	if err := h.carts.UpdateItem(r.Context(), customerID, bookID, req.Quantity); err != nil {
		RespondError(w, err)
		return
	}
	JSONSuccess(w, map[string]any{
		"message":      "cart item updated successfully",
		"book_id":      bookID,
		"new_quantity": req.Quantity,
	})
}

// RemoveItem handles DELETE /customers/{customerID}/cart/items/{bookID}.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "customerID")
	if err != nil {
		RespondError(w, err)
		return
	}
	bookID, err := pathID(r, "bookID")
	if err != nil {
		RespondError(w, err)
		return
	}

	removed, err := h.carts.RemoveItem(r.Context(), customerID, bookID)
	if err != nil {
		RespondError(w, err)
		return
	}
	JSONSuccess(w, map[string]any{
		"message":          "item removed from cart",
		"book_id":          bookID,
		"removed_quantity": removed,
	})
}

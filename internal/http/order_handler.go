package http

import (
	"net/http"

	"bookstore/internal/order"
)

type OrderHandler struct {
	orders *order.Service
}

func NewOrderHandler(o *order.Service) *OrderHandler {
	return &OrderHandler{orders: o}
}

// Create handles POST /customers/{customerID}/orders.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "customerID")
	if err != nil {
		RespondError(w, err)
		return
	}
	created, err := h.orders.Create(r.Context(), customerID)
	if err != nil {
		RespondError(w, err)
		return
	}
	JSONSuccessCreated(w, created)
}

// List handles GET /customers/{customerID}/orders.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "customerID")
	if err != nil {
		RespondError(w, err)
		return
	}
	JSONSuccess(w, h.orders.ListByCustomer(r.Context(), customerID))
}

// Get handles GET /customers/{customerID}/orders/{orderID}.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "customerID")
	if err != nil {
		RespondError(w, err)
		return
	}
	orderID, err := pathID(r, "orderID")
	if err != nil {
		RespondError(w, err)
		return
	}
	o, err := h.orders.Get(r.Context(), customerID, orderID)
	if err != nil {
		RespondError(w, err)
		return
	}
	JSONSuccess(w, o)
}

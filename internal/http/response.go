package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookstore/internal/entity"
)

type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   ErrorResponseBody `json:"error"`
}

type ErrorResponseBody struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func JSONSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(SuccessResponse{Success: true, Data: data})
}

func JSONSuccessCreated(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(SuccessResponse{Success: true, Data: data})
}

func JSONError(w http.ResponseWriter, statusCode int, code string, message string, details []ErrorDetail) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Success: false,
		Error: ErrorResponseBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// RespondError translates a service error into the status code and error code
// of the taxonomy: invalid input 400, out of stock 409, not-found kinds 404.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrInvalidInput):
		JSONError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error(), nil)
	case errors.Is(err, entity.ErrOutOfStock):
		JSONError(w, http.StatusConflict, "OUT_OF_STOCK", err.Error(), nil)
	case errors.Is(err, entity.ErrAuthorNotFound):
		JSONError(w, http.StatusNotFound, "AUTHOR_NOT_FOUND", err.Error(), nil)
	case errors.Is(err, entity.ErrBookNotFound):
		JSONError(w, http.StatusNotFound, "BOOK_NOT_FOUND", err.Error(), nil)
	case errors.Is(err, entity.ErrCustomerNotFound):
		JSONError(w, http.StatusNotFound, "CUSTOMER_NOT_FOUND", err.Error(), nil)
	case errors.Is(err, entity.ErrOrderNotFound):
		JSONError(w, http.StatusNotFound, "ORDER_NOT_FOUND", err.Error(), nil)
	case errors.Is(err, entity.ErrCartItemNotFound):
		JSONError(w, http.StatusNotFound, "CART_ITEM_NOT_FOUND", err.Error(), nil)
	default:
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}

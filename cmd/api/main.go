package main

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"bookstore/internal/cart"
	"bookstore/internal/catalog"
	"bookstore/internal/customer"
	apphttp "bookstore/internal/http"
	"bookstore/internal/httpx"
	"bookstore/internal/order"
	"bookstore/internal/store"
)

func main() {
	_ = godotenv.Load(".env.local")

	zerolog.TimeFieldFormat = time.RFC3339
	if os.Getenv("LOG_PRETTY") == "true" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	serverAddress := getEnv("APP_ADDR", ":8080")
	rateLimitRPS := getEnvFloat("RATE_LIMIT_RPS", 50)
	rateLimitBurst := getEnvInt("RATE_LIMIT_BURST", 100)

	authors := store.NewAuthorStore()
	books := store.NewBookStore()
	customers := store.NewCustomerStore()
	carts := store.NewCartStore()
	orders := store.NewOrderStore()
	inventory := store.NewInventory()

	catalogService := catalog.NewService(authors, books)
	customerService := customer.NewService(customers, carts, books, inventory)
	cartService := cart.NewService(books, carts, customers, inventory)
	orderService := order.NewService(books, carts, customers, orders, inventory)

	authorHandler := apphttp.NewAuthorHandler(catalogService)
	bookHandler := apphttp.NewBookHandler(catalogService)
	customerHandler := apphttp.NewCustomerHandler(customerService)
	cartHandler := apphttp.NewCartHandler(cartService)
	orderHandler := apphttp.NewOrderHandler(orderService)

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

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

	rateLimit := httpx.NewRateLimitMiddleware(rateLimitRPS, rateLimitBurst)
	handler := httpx.RequestIDMiddleware(
		httpx.AccessLogMiddleware(
			httpx.RecoveryMiddleware(
				rateLimit.Middleware(router))))

	httpServer := &http.Server{
		Addr:         serverAddress,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info().Str("addr", serverAddress).Msg("starting bookstore server")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server error")
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

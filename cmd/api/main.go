package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel/trace"

	_ "cartflow/docs"
	"cartflow/pkg/cart"
	"cartflow/pkg/cart/memory"
	"cartflow/pkg/logger"
	"cartflow/pkg/otel"
	"cartflow/pkg/ratelimit"
)

var (
	repo   cart.Repository
	log    *logger.Logger
	tracer trace.Tracer
)

// @title CartFlow API
// @version 1.0
// @description API for managing shopping carts
// @host localhost:8080
// @BasePath /
func main() {
	log = logger.New(os.Stdout, logger.LevelInfo, "cartflow", otel.GetTraceID)
	defer log.Sync()

	tp, shutdown, err := otel.InitTracing(log, otel.Config{
		ServiceName: "cartflow",
		Host:        os.Getenv("OTEL_HOST"),
		Probability: 1.0,
	})
	if err != nil {
		log.Error(context.Background(), "init tracing", "error", err)
		os.Exit(1)
	}
	defer shutdown(context.Background())
	tracer = tp.Tracer("cartflow")

	repo = memory.New()

	limiter := ratelimit.NewStore(50, 100)
	limiter.StartJanitor(context.Background())
	var stats ratelimit.StatsStore = ratelimit.NewMemoryStats()
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		stats = ratelimit.NewRedisStats(redis.NewClient(&redis.Options{Addr: addr}))
	}

	r := mux.NewRouter()
	r.Use(traceMiddleware)
	r.Use(requestIDMiddleware)

	shop := r.PathPrefix("/shop").Subrouter()
	shop.Use(ratelimit.Middleware(ratelimit.Options{Store: limiter, Stats: stats}))
	shop.HandleFunc("/addItem", addItemHandler).Methods(http.MethodPost)
	shop.HandleFunc("/getTotal", getTotalHandler).Methods(http.MethodGet)
	shop.HandleFunc("/items", listItemsHandler).Methods(http.MethodGet)

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Info(context.Background(), "listening", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Error(context.Background(), "server closed", "error", err)
	}
}

// totalResponse reports a cart's running total. The total is rendered as a
// JSON string, shopspring decimal's default wire form.
type totalResponse struct {
	CartID string          `json:"cart_id"`
	Total  decimal.Decimal `json:"total" swaggertype:"string"`
}

// itemsResponse reports a cart's contents.
type itemsResponse struct {
	CartID string      `json:"cart_id"`
	Items  []cart.Item `json:"items"`
}

// addItemHandler adds a quantity of an item to a cart, creating the cart
// and the item as needed.
// @Summary Add item to cart
// @Produce json
// @Param cartId query string true "Cart ID"
// @Param itemName query string true "Item name"
// @Param price query number true "Unit price"
// @Param quantity query int true "Quantity to add"
// @Success 200 {object} totalResponse
// @Router /shop/addItem [post]
func addItemHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "addItemHandler")
	defer span.End()

	cartID := r.FormValue("cartId")
	itemName := r.FormValue("itemName")
	if cartID == "" || itemName == "" {
		http.Error(w, "cartId and itemName are required", http.StatusBadRequest)
		return
	}
	price, err := decimal.NewFromString(r.FormValue("price"))
	if err != nil {
		http.Error(w, "invalid price", http.StatusBadRequest)
		return
	}
	quantity, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil {
		http.Error(w, "invalid quantity", http.StatusBadRequest)
		return
	}

	total, err := repo.AddItem(ctx, cartID, itemName, price, quantity)
	if err != nil {
		if errors.Is(err, cart.ErrInvalidArgument) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Error(ctx, "add item", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, totalResponse{CartID: cartID, Total: total})
}

// getTotalHandler reports the running total of a cart.
// @Summary Get cart total
// @Produce json
// @Param cartId query string true "Cart ID"
// @Success 200 {object} totalResponse
// @Router /shop/getTotal [get]
func getTotalHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getTotalHandler")
	defer span.End()

	cartID := r.FormValue("cartId")
	total, err := repo.GetTotal(ctx, cartID)
	if err != nil {
		if errors.Is(err, cart.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Error(ctx, "get total", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, totalResponse{CartID: cartID, Total: total})
}

// listItemsHandler lists the items in a cart.
// @Summary List cart items
// @Produce json
// @Param cartId query string true "Cart ID"
// @Success 200 {object} itemsResponse
// @Router /shop/items [get]
func listItemsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listItemsHandler")
	defer span.End()

	cartID := r.FormValue("cartId")
	items, err := repo.Items(ctx, cartID)
	if err != nil {
		if errors.Is(err, cart.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Error(ctx, "list items", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, itemsResponse{CartID: cartID, Items: items})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.InjectTracing(r.Context(), tracer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get("X-Request-Id")
		if rid == "" {
			rid = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", rid)
		log.Info(r.Context(), "request", "id", rid, "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

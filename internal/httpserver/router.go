package httpserver

import (
	"net/http"

	"cryptofx/internal/admin"
	"cryptofx/internal/auth"
	"cryptofx/internal/health"
	"cryptofx/internal/invoice"
	"cryptofx/internal/market"
	"cryptofx/internal/orders"
	"cryptofx/internal/position"
	"cryptofx/internal/wallet"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type RouterDeps struct {
	AuthHandler     *auth.Handler
	OrdersHandler   *orders.Handler
	PositionHandler *position.Handler
	MarketHandler   *market.Handler
	WalletHandler   *wallet.Handler
	InvoiceHandler  *invoice.Handler
	AdminHandler    *admin.Handler
	HealthHandler   *health.Handler
	AuthService     *auth.Service
	JWTSecret       string
	WSHandler       http.Handler
	Log             *logrus.Logger
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	// CORS middleware for development
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				origin = "*"
			}
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	r.Use(SecurityHeaders)
	r.Use(RateLimit)
	if d.Log != nil {
		r.Use(RequestLogger(d.Log))
	}

	r.Get("/health", d.HealthHandler.Health)
	r.Route("/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", d.AuthHandler.Register)
			r.Post("/login", d.AuthHandler.Login)
		})

		r.Get("/market/instruments", d.MarketHandler.Instruments)
		r.Get("/market/forex", d.MarketHandler.ForexPairs)
		r.Get("/market/ws", d.WSHandler.ServeHTTP)
		r.Get("/invoices/current", d.InvoiceHandler.Current)

		r.Group(func(r chi.Router) {
			r.Use(WithAuth(d.AuthService))
			r.Get("/me", requireUser(d.AuthHandler.Me))
			r.Put("/me", requireUser(d.AuthHandler.UpdateMe))

			r.Post("/orders/preview", requireUser(d.OrdersHandler.Preview))
			r.Post("/orders", requireUser(d.OrdersHandler.Submit))

			r.Get("/positions", requireUser(d.PositionHandler.Spot))
			r.Get("/positions/summary", requireUser(d.PositionHandler.Summary))
			r.Get("/forex/positions", requireUser(d.PositionHandler.Forex))
			r.Post("/positions/{id}/close", requireUser(func(w http.ResponseWriter, r *http.Request, userID string) {
				d.PositionHandler.Close(w, r, userID, chi.URLParam(r, "id"))
			}))

			r.Get("/wallet/transactions", requireUser(d.WalletHandler.Transactions))
			r.Get("/wallet/methods", d.WalletHandler.Methods)
			r.Post("/wallet/deposits", requireUser(d.WalletHandler.Deposit))
			r.Post("/wallet/withdrawals", requireUser(d.WalletHandler.Withdraw))
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", d.AdminHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(admin.AuthMiddleware(d.JWTSecret))
				r.Get("/me", d.AdminHandler.Me)
				r.Get("/stats", d.AdminHandler.Stats)
				r.Get("/users", d.AdminHandler.Users)
				r.Get("/transactions/pending", d.AdminHandler.PendingTransactions)
				r.Post("/transactions/{id}/approve", d.AdminHandler.Approve)
				r.Post("/transactions/{id}/reject", d.AdminHandler.Reject)
				r.Post("/instruments", d.AdminHandler.AddInstrument)
			})
		})
	})
	return r
}

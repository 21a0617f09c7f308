package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cryptofx/internal/admin"
	"cryptofx/internal/auth"
	"cryptofx/internal/broker"
	"cryptofx/internal/config"
	"cryptofx/internal/health"
	"cryptofx/internal/httpserver"
	"cryptofx/internal/invoice"
	"cryptofx/internal/market"
	"cryptofx/internal/orders"
	"cryptofx/internal/position"
	"cryptofx/internal/user"
	"cryptofx/internal/wallet"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	startedAt := time.Now().UTC()

	bus := market.NewBus()
	marketStore := market.NewStore(bus)
	positionStore := position.NewStore()
	walletStore := wallet.NewStore()
	userStore := user.NewStore()

	adapter := broker.NewSimulatedAdapter(log)
	walletSvc := wallet.NewService(walletStore, userStore, bus, log)
	authSvc := auth.NewService(userStore, cfg.JWTIssuer, []byte(cfg.JWTSecret), cfg.JWTTTL)

	router := httpserver.NewRouter(httpserver.RouterDeps{
		AuthHandler:     auth.NewHandler(authSvc, userStore),
		OrdersHandler:   orders.NewHandler(marketStore, userStore, adapter, log),
		PositionHandler: position.NewHandler(positionStore, marketStore, adapter, log),
		MarketHandler:   market.NewHandler(marketStore),
		WalletHandler:   wallet.NewHandler(walletSvc),
		InvoiceHandler:  invoice.NewHandler(),
		AdminHandler:    admin.NewHandler(walletSvc, marketStore, cfg.JWTSecret, cfg.AdminPasswordHash, log),
		HealthHandler:   health.NewHandler(startedAt, cfg.HTTPAddr),
		AuthService:     authSvc,
		JWTSecret:       cfg.JWTSecret,
		WSHandler:       market.NewWSHandler(bus, cfg.WebSocketOrigin, log),
		Log:             log,
	})
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	log.WithFields(logrus.Fields{"addr": cfg.HTTPAddr}).Info("server listening")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-stop
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"piggybank/internal/allocation"
	"piggybank/internal/config"
	"piggybank/internal/database"
	"piggybank/internal/family"
	familyStore "piggybank/internal/family/store"
	piggyHttp "piggybank/internal/http"
	"piggybank/internal/http/auth"
	familyHandler "piggybank/internal/http/family"
	ledgerHandler "piggybank/internal/http/ledger"
	payoutHandler "piggybank/internal/http/payout"
	saverHandler "piggybank/internal/http/saver"
	"piggybank/internal/ledger"
	ledgerStore "piggybank/internal/ledger/store"
	"piggybank/internal/payout"
	"piggybank/internal/saver"
	saverStore "piggybank/internal/saver/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	var (
		ledgerService = ledger.NewService(ledgerStore.New(db))
		saverService  = saver.NewService(saverStore.New(db))
		familyService = family.NewService(familyStore.New(db))
		engine        = allocation.NewEngine(saverService, ledgerService)
		payoutService = payout.NewService(familyService, ledgerService, engine)
	)

	var (
		ledgerH = ledgerHandler.NewHandler(ledgerService)
		saverH  = saverHandler.NewHandler(saverService)
		payoutH = payoutHandler.NewHandler(payoutService)
		familyH = familyHandler.NewHandler(familyService)
	)

	router := piggyHttp.New(auth.Middleware(cfg.Auth.JWTSecret), ledgerH, saverH, payoutH, familyH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/jkweon/txscreen/internal/config"
	"github.com/jkweon/txscreen/internal/database"
	txHttp "github.com/jkweon/txscreen/internal/http"
	rulesHandler "github.com/jkweon/txscreen/internal/http/rules"
	screenHandler "github.com/jkweon/txscreen/internal/http/screen"
	"github.com/jkweon/txscreen/internal/importer"
	lookupStore "github.com/jkweon/txscreen/internal/lookup/store"
	"github.com/jkweon/txscreen/internal/pipeline"
	"github.com/jkweon/txscreen/internal/rule"
	ruleStore "github.com/jkweon/txscreen/internal/rule/store"
	"github.com/jkweon/txscreen/internal/screening"
	screeningStore "github.com/jkweon/txscreen/internal/screening/store"
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

	var (
		rules            = ruleStore.New(db)
		lookups          = lookupStore.New(db)
		ruleService      = rule.NewService(rules)
		importService    = importer.NewService()
		pipe             = pipeline.New(rules, lookups)
		screeningService = screening.NewService(screeningStore.New(db))
	)

	var (
		rulesH  = rulesHandler.NewHandler(ruleService)
		screenH = screenHandler.NewHandler(importService, pipe, screeningService)
	)

	router := txHttp.New(rulesH, screenH, cfg.Auth.JWTSecret)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

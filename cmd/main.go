package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/playops/orderdesk/internal/apiclient"
	"github.com/playops/orderdesk/internal/config"
	"github.com/playops/orderdesk/internal/logger"
	"github.com/playops/orderdesk/internal/presentation"
)

func main() {
	_ = godotenv.Load()
	logger.Init()
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warn("config load failed", "err", err)
		os.Exit(1)
	}

	// Backend REST client
	api := apiclient.New(cfg.API_BASE_URL)
	logger.Info("backend configured", "base", cfg.API_BASE_URL)

	// Per-browser console sessions
	sessions := presentation.NewSessions(api, cfg.SESSION_TTL)
	sessions.StartSweeper(context.Background())

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Screen action endpoints
	h := presentation.NewConsoleHandler(sessions)
	h.Register(r)

	// Console shell (web/index.html + css/js)
	presentation.MountStatic(r)

	addr := ":" + cfg.HTTP_PORT
	logger.Info("starting http", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Warn("http server crashed", "err", err)
		os.Exit(1)
	}
}

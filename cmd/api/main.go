package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"kabirclub/internal/config"
	"kabirclub/internal/db"
	"kabirclub/internal/httpserver"
	"kabirclub/internal/logging"
	cartitemrepo "kabirclub/internal/repository/cartitem"
	categoryrepo "kabirclub/internal/repository/category"
	engagementrepo "kabirclub/internal/repository/engagement"
	productrepo "kabirclub/internal/repository/product"
	sessionrepo "kabirclub/internal/repository/session"
	userrepo "kabirclub/internal/repository/user"
	authsvc "kabirclub/internal/service/auth"
	cartsvc "kabirclub/internal/service/cart"
	catalogsvc "kabirclub/internal/service/catalog"
	checkoutsvc "kabirclub/internal/service/checkout"
	engagementsvc "kabirclub/internal/service/engagement"
)

func main() {
	logger := logging.New("api")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect to db")
	}
	defer dbpool.Close()

	productRepo := productrepo.NewPostgres(dbpool, logger)
	categoryRepo := categoryrepo.NewPostgres(dbpool)
	userRepo := userrepo.NewPostgres(dbpool)
	sessionRepo := sessionrepo.NewPostgres(dbpool)
	cartItemRepo := cartitemrepo.NewPostgres(dbpool, logger)
	engagementRepo := engagementrepo.NewPostgres(dbpool)

	authService := authsvc.New(userRepo, sessionRepo, cfg.SessionTTL)
	catalogService := catalogsvc.New(categoryRepo, productRepo)
	cartService := cartsvc.New(cartItemRepo, productRepo, logger)
	checkoutService := checkoutsvc.New(cfg.WhatsAppNumber)
	engagementService := engagementsvc.New(engagementRepo)

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Auth:          authService,
		Catalog:       catalogService,
		Cart:          cartService,
		Checkout:      checkoutService,
		Engagement:    engagementService,
		SessionCookie: cfg.SessionCookie,
		CORSOrigins:   cfg.CORSOrigins,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		logger.Error().Err(err).Msg("server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	} else {
		logger.Info().Msg("server stopped")
	}
}

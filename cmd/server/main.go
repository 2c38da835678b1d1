package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/naturespantry/shop/internal/cart"
	"github.com/naturespantry/shop/internal/catalog"
	"github.com/naturespantry/shop/internal/config"
	"github.com/naturespantry/shop/internal/es"
	"github.com/naturespantry/shop/internal/handlers"
	"github.com/naturespantry/shop/internal/logging"
	"github.com/naturespantry/shop/internal/middleware"
	"github.com/naturespantry/shop/internal/mykafka"
	"github.com/naturespantry/shop/internal/repository"
	"github.com/naturespantry/shop/internal/service"
	httpserver "github.com/naturespantry/shop/internal/transport/http"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	config.MustNonEmpty(configuration.JWT_SECRET, "JWT_SECRET")
	config.MustNonEmpty(configuration.REFRESH_SECRET, "REFRESH_SECRET")

	logger := logging.New(configuration.LOG_LEVEL)

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}

	jwtSecret := []byte(configuration.JWT_SECRET)
	refreshSecret := []byte(configuration.REFRESH_SECRET)

	var producer *mykafka.Producer
	if len(configuration.KAFKA_BROKERS) > 0 {
		producer = mykafka.NewProducer(configuration.KAFKA_BROKERS)
	} else {
		logger.Warn("KAFKA_BROKERS not set, event publishing disabled")
	}

	shopCatalog := catalog.Default()
	cartStore := cart.NewStore()

	productRepo := &repository.GormProducts{DB: db}
	orderRepo := &repository.GormOrders{DB: db}
	userRepo := &repository.GormUsers{DB: db}

	esConn, err := es.NewClient(configuration)
	if err != nil {
		logger.Warn("elasticsearch unavailable, search disabled", "error", err)
		esConn = nil
	}

	var pub mykafka.Publisher
	if producer != nil {
		pub = producer
	}

	e := echo.New()
	e.HideBanner = true
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover(), echomw.RequestID())
	e.Use(logging.RequestLogger(logger))

	deps := httpserver.Deps{
		StorefrontHandler: &handlers.StorefrontHandler{Catalog: shopCatalog},
		CartHandler:       &handlers.CartHandler{Catalog: shopCatalog, Store: cartStore, Producer: pub},
		ContactHandler:    &handlers.ContactHandler{Producer: pub},
		AuthHandler:       &handlers.AuthHandler{DB: db, JWTSecret: jwtSecret, RefreshSecret: refreshSecret, Producer: pub},
		SearchHandler:     &handlers.SearchHandler{ES: esConn},
		ProductHandler:    &handlers.AdminProductHandler{Products: productRepo, Producer: pub, ES: esConn},
		OrderHandler:      &handlers.AdminOrderHandler{Orders: orderRepo, Producer: pub},
		UserHandler:       &handlers.AdminUserHandler{Users: userRepo, Producer: pub},
		StatsHandler:      &handlers.AdminStatsHandler{Products: productRepo, Orders: orderRepo, Users: userRepo},
		TokenService:      &service.TokenService{DB: db, JWTSecret: jwtSecret, RefreshSecret: refreshSecret},
		ContactLimiter:    middleware.NewRateLimiter(rate.Limit(2), 5),
		LoginLimiter:      middleware.NewRateLimiter(rate.Limit(2), 5),
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", configuration.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()
	logger.Info("server started", "addr", srv.Addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	}

	if producer != nil {
		if err := producer.Close(); err != nil {
			logger.Error("kafka close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}

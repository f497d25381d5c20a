// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"taxigo/internal/config"
	transport "taxigo/internal/http"
	"taxigo/internal/infra"
	"taxigo/internal/modules/booking"
	"taxigo/internal/modules/geocode"
	"taxigo/internal/modules/pricing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := newLogger(cfg)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.FirebaseProjectID == "" {
		logger.Fatal("FIREBASE_PROJECT_ID is required")
	}
	app, err := infra.NewFirebaseApp(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentials)
	if err != nil {
		logger.Fatal("firebase init", zap.Error(err))
	}
	verifier, err := infra.NewTokenVerifier(ctx, app)
	if err != nil {
		logger.Fatal("firebase auth init", zap.Error(err))
	}
	fsClient, err := infra.NewFirestore(ctx, app)
	if err != nil {
		logger.Fatal("firestore init", zap.Error(err))
	}
	defer fsClient.Close()

	// Tariffs come from Postgres when configured; otherwise the built-in
	// default tariff applies.
	var pricingStore *pricing.Store
	if cfg.DatabaseURL != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("postgres init", zap.Error(err))
		}
		defer dbPool.Close()
		pricingStore = pricing.NewStore(dbPool)
	}
	pricingSvc := pricing.NewService(pricingStore)

	bookingStore := booking.NewFirestoreStore(fsClient, cfg.BookingsCollection)
	bookingSvc := booking.NewService(bookingStore, pricingSvc)

	if cfg.MapsAPIKey == "" {
		logger.Fatal("GOOGLE_MAPS_API_KEY is required")
	}
	geocoder, err := geocode.NewGoogleGeocoder(cfg.MapsAPIKey)
	if err != nil {
		logger.Fatal("maps client init", zap.Error(err))
	}
	redisClient := infra.NewRedis(cfg.RedisAddr)
	defer redisClient.Close()
	geocodeSvc := geocode.NewService(geocoder, redisClient, geocode.Config{
		Region:        cfg.GeocodeRegion,
		MinQueryChars: cfg.SearchMinChars,
		MaxResults:    cfg.SearchMaxResults,
		DebounceDelay: time.Duration(cfg.SearchDebounceMs) * time.Millisecond,
	})

	router := transport.NewRouter(transport.ServerDeps{
		Booking:  bookingSvc,
		Pricing:  pricingSvc,
		Geocode:  geocodeSvc,
		Verifier: verifier,
		Logger:   logger,
	})

	server := &http.Server{Addr: ":" + cfg.AppPort, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", zap.String("addr", server.Addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("serve", zap.Error(err))
	}
}

func newLogger(cfg config.Config) *zap.Logger {
	var zc zap.Config
	if cfg.IsProduction() {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	if lvl, err := zap.ParseAtomicLevel(cfg.LogLevel); err == nil {
		zc.Level = lvl
	}
	logger, err := zc.Build()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	return logger
}

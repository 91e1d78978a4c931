package main

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"crave/config"
	httpapi "crave/internal/api/http"
	"crave/internal/payments"
	"crave/internal/service"
	"crave/internal/storage"
)

const (
	readTimeout       = 30 * time.Second
	readHeaderTimeout = 10 * time.Second
	writeTimeout      = 30 * time.Second
)

func main() {
	cfg := config.Load()

	log := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	store := storage.NewMemStore()
	if cfg.SeedSampleData {
		if err := storage.Seed(store); err != nil {
			log.WithError(err).Fatal("failed to seed sample data")
		}
		log.Info("sample data loaded")
	}

	var provider service.PaymentProvider
	if cfg.StripeSecretKey != "" {
		provider = payments.NewStripeProvider(cfg.StripeSecretKey)
	} else {
		log.Warn("STRIPE_SECRET_KEY not set, payment endpoints disabled")
	}

	handler := httpapi.NewHandler(
		store,
		service.NewAuthService(store),
		provider,
		service.DefaultQRGenerator{},
		cfg.BaseURL,
		log,
	)

	router := mux.NewRouter()
	handler.RegisterRoutes(router)

	var c *cors.Cors
	if len(cfg.AllowedOrigins) > 0 {
		c = cors.New(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
		})
	} else {
		c = cors.Default()
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           c.Handler(router),
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}

	log.WithField("port", cfg.Port).Info("crave api listening")
	log.Fatal(srv.ListenAndServe())
}

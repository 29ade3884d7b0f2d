package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/httprate"

	configs "github.com/kyotto/catalog-services/configs"
	"github.com/kyotto/catalog-services/internal/catalogsvc/config"
	"github.com/kyotto/catalog-services/internal/catalogsvc/handlers"
	"github.com/kyotto/catalog-services/internal/catalogsvc/service"
	"github.com/kyotto/catalog-services/internal/catalogsvc/store"
	"github.com/kyotto/catalog-services/internal/db"
	log "github.com/sirupsen/logrus"
)

const SERVICE_NAME = "catalog"

var instanceId string

func init() {
	instanceId = "001"
	configs.Logging(SERVICE_NAME + "_service_" + instanceId)
	configs.LoadEnv(SERVICE_NAME)
}

func main() {

	configs.CreateUniqueInstance(SERVICE_NAME)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// mongo connection
	database, disconnect, err := db.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer disconnect()
	log.Printf("mongo connection established successfully")

	if err := db.EnsureTitleIndex(database, store.GamesCollection); err != nil {
		log.Fatalf("Failed to create title index: %v", err)
	}

	gameStore := store.NewGameStore(database)
	gameService := service.NewGameService(gameStore)

	// Setup router
	r := chi.NewRouter()
	c := configs.CORS()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(configs.CustomLoggerMiddleware())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(c.Handler)

	// to protect the service api from any over requests
	r.Use(httprate.LimitByIP(cfg.RateLimit, 1*time.Minute))

	// Init handlers and routes
	h := handlers.NewHandler(gameService, cfg.AdminSecret)
	h.SetRoutes(r)

	// Create server with timeout settings
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()
	log.Infof("%s service running at port %s", SERVICE_NAME, server.Addr)

	// Wait for interrupt signal to gracefully shutdown the server
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("%s service shutdown Failed:%+v", SERVICE_NAME, err)
	}
	log.Infof("%s service gracefully stopped", SERVICE_NAME)
}

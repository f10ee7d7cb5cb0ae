package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-exercisetracker/config"
	controller "golang-exercisetracker/controllers"
	"golang-exercisetracker/database"
	"golang-exercisetracker/routes"
	"golang-exercisetracker/services"
	"golang-exercisetracker/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	if cfg.IsProduction() {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, _ := logrus.ParseLevel(cfg.LogLevel)
	log.SetLevel(level)
	log.SetOutput(os.Stdout)
	return log
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	log := newLogger(cfg)

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 30*time.Second)
	client, err := database.DBInstance(connectCtx, cfg.MongoURI)
	if err != nil {
		cancelConnect()
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	if err := database.EnsureIndexes(connectCtx, client, cfg.MongoDatabase); err != nil {
		log.WithError(err).Warn("Could not create indexes")
	}
	cancelConnect()
	log.Info("MongoDB connected")

	users := store.NewMongoUserStore(database.OpenCollection(client, cfg.MongoDatabase, database.UserCollection))
	exercises := store.NewMongoExerciseStore(database.OpenCollection(client, cfg.MongoDatabase, database.ExerciseCollection))

	filter, err := services.NewLogFilter(cfg.LogFilterStrategy)
	if err != nil {
		log.Fatalf("Invalid log filter: %v", err)
	}
	log.Infof("Filtering exercise logs with the %s strategy", filter.Name())

	handlers := controller.NewHandlers(
		services.NewUserService(users),
		services.NewExerciseService(users, exercises, time.Now),
		services.NewLogService(users, exercises, filter),
		database.Pinger(client),
		cfg.RequestTimeout,
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.NewRouter(handlers, log, routes.RouterConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		StaticDir:      cfg.StaticDir,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Your app is listening on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("HTTP server shutdown failed")
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.WithError(err).Error("MongoDB disconnect failed")
	}
	log.Info("Server stopped")
}

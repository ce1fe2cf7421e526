// The stub server implements the FoodBridge HTTP contract on top of the
// simulated corpus so the remote client variant (and the browser frontend)
// can be driven end-to-end without the real backend.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/foodbridge/foodbridge/internal/datasource"
	"github.com/foodbridge/foodbridge/internal/handlers"
	"github.com/foodbridge/foodbridge/internal/logger"
	"github.com/foodbridge/foodbridge/internal/middleware"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	port := flag.String("port", "8083", "Port to listen on")
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	zapLogger, err := logger.NewProductionLogger(*debugFlag)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() {
		_ = logger.Sync(zapLogger)
	}()

	ds := datasource.NewSimulated()
	handler := handlers.New(ds, zapLogger)

	r := mux.NewRouter()
	// Same prefix the real backend exposes, so clients need no
	// reconfiguration beyond the host.
	api := r.PathPrefix("/api/api/v1").Subrouter()
	handler.Register(api)
	r.Use(middleware.Logging(zapLogger))

	// The original frontend is a browser app on another origin.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(r)

	srv := &http.Server{
		Addr:           ":" + *port,
		Handler:        corsHandler,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		zapLogger.Info("stub_server_starting", zap.String("port", *port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("stub_server_failed_to_start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("stub_server_shutting_down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("stub_server_forced_to_shutdown", zap.Error(err))
	}

	zapLogger.Info("stub_server_exited")
}

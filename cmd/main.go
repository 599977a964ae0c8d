package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"talenthub-api/pkg/config"
	"talenthub-api/pkg/mongo"
	"talenthub-api/pkg/redis"
	"talenthub-api/router"
)

func main() {
	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	setupGracefulShutdown(cancel)

	// Load configuration
	log.Println("Loading configuration...")
	appConfig := config.LoadConfig()

	// Initialize MongoDB
	log.Println("Initializing MongoDB connection...")
	if err := mongo.Initialize(appConfig.Mongo); err != nil {
		log.Fatalf("Failed to initialize MongoDB: %v", err)
	}

	// Initialize Redis connection
	log.Println("Initializing Redis connection...")
	redis.InitDefault(appConfig.Redis)
	redisClient := redis.GetDefault()

	// Verify both backends before accepting traffic
	pingCtx, pingCancel := context.WithTimeout(ctx, 10*time.Second)
	defer pingCancel()

	g, gCtx := errgroup.WithContext(pingCtx)
	g.Go(func() error { return mongo.Ping(gCtx) })
	g.Go(func() error { return redisClient.Ping(gCtx) })
	if err := g.Wait(); err != nil {
		log.Fatalf("Failed to connect to backends: %v", err)
	}
	log.Println("Connected to MongoDB and Redis successfully")

	// Ensure the unique email index exists before serving signups
	if err := mongo.EnsureIndexes(pingCtx, mongo.GetDB()); err != nil {
		log.Fatalf("Failed to ensure MongoDB indexes: %v", err)
	}

	// Setup the Gin router
	log.Println("Setting up router...")
	ginEngine, err := router.SetupRouter(mongo.GetDB())
	if err != nil {
		log.Fatalf("Failed to setup router: %v", err)
	}

	// Create server with Gin handler
	srv := &http.Server{
		Addr:    appConfig.Host + ":" + appConfig.Port,
		Handler: ginEngine,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server started on %s:%s", appConfig.Host, appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	<-ctx.Done()
	log.Println("Shutting down server...")

	// Create shutdown context with timeout
	shutdownTimeout := time.Duration(appConfig.ShutdownTimeout) * time.Second
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	// Shutdown the server
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	// Perform other cleanup
	gracefulShutdown(shutdownTimeout)
}

// setupGracefulShutdown sets up signal handling for graceful shutdown
func setupGracefulShutdown(cancel context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.Println("Received shutdown signal")
		cancel()
	}()
}

// gracefulShutdown performs cleanup before exiting
func gracefulShutdown(timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Close database connections
	log.Println("Closing MongoDB connections...")
	if err := mongo.Close(); err != nil {
		log.Printf("Error closing MongoDB connection: %v", err)
	}

	// Close Redis connections
	log.Println("Closing Redis connections...")
	redis.CloseAll()

	// Wait for context or proceed if timeout
	select {
	case <-ctx.Done():
		if ctx.Err() == context.DeadlineExceeded {
			log.Println("Shutdown timed out, forcing exit")
		}
	case <-time.After(100 * time.Millisecond):
		// Small buffer to allow logging before exit
	}

	log.Println("Shutdown complete")
}

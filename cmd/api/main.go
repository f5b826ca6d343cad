// main.go - The entry point and router setup.

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/taxmitra/tax-doc-recon/configs"
	"github.com/taxmitra/tax-doc-recon/internal/ai"
	"github.com/taxmitra/tax-doc-recon/internal/api"
	"github.com/taxmitra/tax-doc-recon/internal/ratelimit"
	"github.com/taxmitra/tax-doc-recon/internal/recon"
)

func main() {
	configs.LoadConfig()

	if ginMode := os.Getenv("GIN_MODE"); ginMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	provider, err := ai.CreateProvider()
	if err != nil {
		log.Fatalf("Failed to create AI provider: %v", err)
	}

	orchestrator := recon.NewOrchestrator(ai.NewAdapter(provider))
	limiter := ratelimit.NewClientLimiter(
		configs.RATE_LIMIT_REQUESTS,
		time.Duration(configs.RATE_LIMIT_WINDOW_SEC)*time.Second,
	)
	defer limiter.Close()

	handler := api.NewHandler(orchestrator, limiter)

	router := gin.Default()

	// CORS middleware - configure allowed origins for production
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", configs.ALLOWED_ORIGINS)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	router.GET("/health", handler.Health)
	router.POST("/extract", handler.Extract)

	srv := &http.Server{
		Addr:           ":" + configs.PORT,
		Handler:        router,
		ReadTimeout:    30 * time.Second, // uploads up to 3 x 15 MB
		WriteTimeout:   3 * time.Minute,  // allow for slow extraction calls
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Printf("Starting server on :%s", configs.PORT)
		log.Println("API Endpoints:")
		log.Println("  POST /extract")
		log.Println("  GET  /health")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

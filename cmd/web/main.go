package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/sbilibin2017/gw-notes-ai/internal/frontend"
	"github.com/sbilibin2017/gw-notes-ai/internal/logger"
	"github.com/sbilibin2017/gw-notes-ai/internal/middlewares"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

func main() {
	printBuildInfo()
	configPath := parseFlags()

	webHost, webPort, logLevel, backendURL, sessionSecret, sessionExpSecond, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), webHost, webPort, logLevel, backendURL, sessionSecret, sessionExpSecond); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting web frontend version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the frontend server configuration.
func parseConfig(path string) (
	webHost, webPort, logLevel, backendURL, sessionSecret string,
	sessionExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	webHost = getEnv("WEB_HOST", "localhost")
	webPort = getEnv("WEB_PORT", "8081")
	logLevel = getEnv("WEB_LOG_LEVEL", "info")
	backendURL = getEnv("BACKEND_URL", "http://localhost:8080")
	sessionSecret = getEnv("WEB_SESSION_SECRET", "my_super_secret_key")
	if sessionExpSecond, err = strconv.Atoi(getEnv("WEB_SESSION_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, the backend API client, and the page
// handlers, sets up routes, and handles graceful shutdown.
func run(ctx context.Context, webHost, webPort, logLevel, backendURL, sessionSecret string, sessionExpSecond int) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	apiClient := frontend.NewAPIClient(backendURL)
	sessionCookie := frontend.NewSessionCookie(sessionSecret, time.Duration(sessionExpSecond)*time.Second)

	h, err := frontend.NewHandlers(apiClient, sessionCookie, sessionExpSecond)
	if err != nil {
		logger.Log.Fatal("failed to initialize page handlers:", err)
	}

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Get("/", h.HomePage)
	r.Get("/login", h.LoginPage)
	r.Post("/login", h.LoginSubmit)
	r.Get("/register", h.RegisterPage)
	r.Post("/register", h.RegisterSubmit)
	r.Get("/logout", h.Logout)
	r.NotFound(h.NotFound)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", webHost, webPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("Web frontend listening on %s:%s, backend %s", webHost, webPort, backendURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping web frontend...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("Web frontend stopped gracefully")
	return nil
}

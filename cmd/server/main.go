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

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/zap"

	"github.com/bybysker/goal-tracker/internal/config"
	"github.com/bybysker/goal-tracker/internal/handlers"
	"github.com/bybysker/goal-tracker/internal/logger"
	"github.com/bybysker/goal-tracker/internal/middleware"
	"github.com/bybysker/goal-tracker/internal/services/goal"
	"github.com/bybysker/goal-tracker/internal/services/llm"
	"github.com/bybysker/goal-tracker/internal/services/profile"
	"github.com/bybysker/goal-tracker/internal/services/transcribe"
	"github.com/bybysker/goal-tracker/internal/store/firestore"
	"github.com/bybysker/goal-tracker/internal/telemetry"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	// Parse command-line flags
	debugFlag := flag.Bool("debug", false, "Enable debug mode for LLM API logging")
	flag.Parse()

	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Override debug mode if flag is set
	debugMode := cfg.ServerDebugMode || *debugFlag

	// Initialize logger
	zapLogger, err := logger.NewProductionLogger(debugMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() {
		if syncErr := zapLogger.Sync(); syncErr != nil {
			// Ignore sync errors in production
			_ = syncErr
		}
	}()

	zapLogger.Info("starting_server",
		zap.String("version", version),
		zap.Bool("debug_mode", debugMode),
		zap.String("server_port", cfg.ServerPort),
		zap.String("frontend_url", cfg.FrontendURL),
		zap.String("text_model", cfg.TextModel),
		zap.String("structured_model", cfg.StructuredModel),
		zap.Bool("otel_enabled", cfg.OTELEnabled),
	)

	// Initialize OpenTelemetry if enabled
	var tracerProvider interface{ Shutdown(context.Context) error }
	if cfg.OTELEnabled {
		if cfg.OTELEndpoint == "" {
			zapLogger.Warn("otel_enabled_but_endpoint_not_configured")
		} else {
			tp, err := telemetry.InitTracer(context.Background(), "goal-tracker-api", version, cfg.OTELEndpoint)
			if err != nil {
				zapLogger.Warn("failed_to_initialize_otel_tracer", zap.Error(err))
			} else {
				tracerProvider = tp
				zapLogger.Info("otel_tracer_initialized",
					zap.String("endpoint", cfg.OTELEndpoint),
				)
				defer func() {
					shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer shutdownCancel()
					if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
						zapLogger.Error("failed_to_shutdown_otel_tracer", zap.Error(err))
					}
				}()
			}
		}
	}

	// Connect to Firestore
	docStore, err := firestore.NewStore(context.Background(), cfg.FirestoreProjectID)
	if err != nil {
		zapLogger.Fatal("failed_to_connect_to_firestore", zap.Error(err))
	}
	defer func() {
		if err := docStore.Close(); err != nil {
			zapLogger.Warn("failed_to_close_firestore_connection", zap.Error(err))
		}
	}()
	zapLogger.Info("connected_to_firestore", zap.String("project_id", cfg.FirestoreProjectID))

	// Initialize services
	completer := llm.NewClientWithLogger(cfg.OpenAIKey, cfg.TextModel, cfg.StructuredModel, zapLogger, debugMode)
	profileService := profile.New(completer, docStore, zapLogger)
	goalService := goal.New(completer, docStore, docStore, zapLogger)
	transcribeService := transcribe.New(cfg.OpenAIKey, zapLogger)

	// Rate limit middleware (applied to the LLM-backed routes, not globally)
	rateLimitMW, err := middleware.RateLimit(cfg.RateLimit)
	if err != nil {
		zapLogger.Fatal("failed_to_create_rate_limiter", zap.Error(err))
	}

	// Setup router
	r := mux.NewRouter()

	// Note: In gorilla/mux, middleware executes in registration order, so
	// the middleware registered first wraps everything after it.
	if cfg.OTELEnabled && tracerProvider != nil {
		r.Use(otelmux.Middleware("goal-tracker-api"))
		zapLogger.Info("otel_middleware_enabled")
	}
	r.Use(middleware.SecurityHeaders(cfg.EnableHSTS))
	r.Use(middleware.MaxRequestSize(middleware.MaxAudioRequestSize))
	r.Use(middleware.ContentType)
	r.Use(middleware.Timeout(2 * time.Minute))
	r.Use(middleware.ErrorHandler(zapLogger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(zapLogger))

	handlers.RegisterRoutes(r, handlers.Handlers{
		Profile:    handlers.NewProfileHandler(profileService, zapLogger),
		Goal:       handlers.NewGoalHandler(goalService, zapLogger),
		Transcribe: handlers.NewTranscribeHandler(transcribeService, zapLogger),
		Health:     handlers.NewHealthChecker(docStore),
		Version:    version,
	}, rateLimitMW)

	// CORS wraps the router so preflight requests are answered before
	// content-type validation runs
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}).Handler(r)

	// Setup server
	srv := &http.Server{
		Addr:           ":" + cfg.ServerPort,
		Handler:        corsHandler,
		ReadTimeout:    2 * time.Minute,
		WriteTimeout:   2 * time.Minute,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1MB max header size
	}

	// Start server in a goroutine
	go func() {
		zapLogger.Info("server_starting",
			zap.String("port", cfg.ServerPort),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("server_failed_to_start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("server_shutting_down")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server_forced_to_shutdown", zap.Error(err))
	}

	zapLogger.Info("server_exited")
}

// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"go_5_vocab_path/internal/catalog"
	"go_5_vocab_path/internal/config"
	"go_5_vocab_path/internal/handlers"
	"go_5_vocab_path/internal/middleware"
	"go_5_vocab_path/internal/repository"
	"go_5_vocab_path/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	// Configを読み込み
	if err := config.LoadConfig("configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		// 開発時は色付きの読みやすいログ
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...")

	// 2. カタログ読み込み。
	// カタログが読めない場合は空のパスで起動せず、ここで止める
	cat, err := catalog.Load(config.Cfg.App.CatalogPath, config.Cfg.App.ItemsPerLevel)
	if err != nil {
		slog.Error("Error loading item catalog", slog.String("path", config.Cfg.App.CatalogPath), slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("Item catalog loaded",
		slog.Int("items", cat.Len()),
		slog.Int("levels", cat.MaxLevel()),
		slog.Int("items_per_level", cat.ItemsPerLevel()),
	)

	// 3. Initialize Database Connection (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// 4. Dependency Injection
	stateRepo := repository.NewGormStateRepository()

	progressService := service.NewProgressService(db, stateRepo, cat)
	levelService := service.NewLevelService(cat)
	srsService := service.NewSrsService(db, stateRepo, cat)
	speaker := service.NewSpeaker(&config.Cfg)

	// 公開状態トラッカーはレベル画面とSRS画面で共有する (キーで区別される)
	tracker := handlers.NewRevealTracker()

	levelHandler := handlers.NewLevelHandler(progressService, levelService, tracker)
	progressHandler := handlers.NewProgressHandler(progressService)
	srsHandler := handlers.NewSrsHandler(srsService, progressService, tracker)
	speechHandler := handlers.NewSpeechHandler(speaker)

	// 5. Setup Router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/path", levelHandler.GetPath)

		r.Route("/levels/{level}", func(r chi.Router) {
			r.Get("/", levelHandler.GetLevel)
			r.Post("/complete", levelHandler.CompleteLevel)
			r.Route("/items/{index}", func(r chi.Router) {
				r.Get("/", levelHandler.GetLevelItem)
				r.Post("/reveal", levelHandler.RevealLevelItem)
			})
		})

		r.Route("/progress", func(r chi.Router) {
			r.Post("/restore", progressHandler.Restore)
			r.Post("/ignore-until", progressHandler.IgnoreUntil)
			r.Post("/reset-ignored", progressHandler.ResetIgnored)
		})

		r.Route("/settings/srs-limit", func(r chi.Router) {
			r.Get("/", progressHandler.GetSrsLimit)
			r.Put("/", progressHandler.SetSrsLimit)
		})

		r.Route("/srs", func(r chi.Router) {
			r.Route("/session", func(r chi.Router) {
				r.Post("/", srsHandler.StartSession)
				r.Get("/", srsHandler.GetSession)
				r.Delete("/", srsHandler.AbandonSession)
				r.Post("/advance", srsHandler.Advance)
				r.Post("/ignore", srsHandler.IgnoreCurrent)
				r.Post("/reveal", srsHandler.Reveal)
			})
			r.Get("/calendar", srsHandler.Calendar)
		})

		r.Post("/speak", speechHandler.Speak)
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 6. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}

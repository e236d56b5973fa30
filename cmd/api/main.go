package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/kwen1510/Realtime-clustering/db"
	"github.com/kwen1510/Realtime-clustering/internal/config"
	"github.com/kwen1510/Realtime-clustering/internal/handler"
	"github.com/kwen1510/Realtime-clustering/internal/repository"
	"github.com/kwen1510/Realtime-clustering/internal/service"
)

func main() {
	cfg := config.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	if key := cfg.MissingKey(); key != "" {
		slog.Warn("API key is not set, model calls will fail", "provider", cfg.Provider, "key", key)
	}

	completer, err := cfg.Completer()
	if err != nil {
		log.Fatalf("error configuring model client: %v", err)
	}

	var (
		cache  service.Cache
		pinger handler.Pinger
	)
	if cfg.RedisURL != "" {
		err = db.ConnectRedis(cfg.RedisURL)
		if err != nil {
			slog.Warn("error connecting to Redis, cluster cache disabled", "error", err)
		} else {
			defer db.CloseRedis()
			clusterCache := repository.NewClusterCache(db.Redis, cfg.CacheTTL)
			cache, pinger = clusterCache, clusterCache
		}
	}

	clusterService := service.NewClusterService(completer, cache, service.ClusterOptions{
		Model:           cfg.ClusterModel,
		MaxTokens:       cfg.MaxTokens,
		ReasoningEffort: cfg.ReasoningEffort,
	})

	var allowedOrigins []string
	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, "http://localhost:"+cfg.Port, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r := handler.NewRouter(handler.RouterConfig{
		AllowedOrigins:    allowedOrigins,
		PublicDir:         cfg.PublicDir,
		ClusterHandler:    handler.NewClusterHandler(clusterService),
		TranscribeHandler: handler.NewTranscribeHandler(cfg.Transcriber(), cfg.TranscribeModel, cfg.TranscribeLanguage),
		PageHandler: handler.NewPageHandler(cfg.PublicDir, handler.PublicConfig{
			SupabaseURL:         cfg.SupabaseURL,
			SupabaseAnonKey:     cfg.SupabaseAnonKey,
			ClusterModelID:      cfg.ClusterModel,
			ClusterModelLabel:   cfg.ClusterModelLabel,
			MinClusterResponses: cfg.MinClusterResponses,
		}),
		HealthHandler: handler.NewHealthHandler(pinger),
	})

	slog.Info("server listening", "url", "http://localhost:"+cfg.Port, "provider", cfg.Provider, "model", cfg.ClusterModel)

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

package handler

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	AllowedOrigins    []string
	PublicDir         string
	ClusterHandler    *ClusterHandler
	TranscribeHandler *TranscribeHandler
	PageHandler       *PageHandler
	HealthHandler     *HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger())

	corsConfig := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", headerRequestID},
	}
	if len(cfg.AllowedOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsConfig))

	r.GET("/", cfg.PageHandler.GetStudent)
	r.GET("/console", cfg.PageHandler.GetConsole)
	r.GET("/favicon.ico", cfg.PageHandler.GetFavicon)
	r.GET("/.well-known/appspecific/com.chrome.devtools.json", cfg.PageHandler.GetDevtoolsConfig)
	r.GET("/config", cfg.PageHandler.GetConfig)
	r.GET("/health", cfg.HealthHandler.GetHealth)

	api := r.Group("/api")
	api.POST("/cluster", cfg.ClusterHandler.PostCluster)
	api.POST("/transcribe", cfg.TranscribeHandler.PostTranscribe)

	// Everything else is a static asset from the public directory.
	r.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.PublicDir))))

	return r
}

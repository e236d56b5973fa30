package handler

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

const devtoolsCSP = "default-src 'self'; connect-src 'self'"

type PageHandler struct {
	publicDir string
	public    PublicConfig
}

func NewPageHandler(publicDir string, public PublicConfig) *PageHandler {
	return &PageHandler{publicDir: publicDir, public: public}
}

func (h *PageHandler) GetStudent(c *gin.Context) {
	c.File(filepath.Join(h.publicDir, "student.html"))
}

func (h *PageHandler) GetConsole(c *gin.Context) {
	c.File(filepath.Join(h.publicDir, "teacher.html"))
}

func (h *PageHandler) GetFavicon(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// GetDevtoolsConfig answers Chrome's automatic workspace probe so it does not
// show up as a 404 in the logs.
func (h *PageHandler) GetDevtoolsConfig(c *gin.Context) {
	c.Header("Content-Security-Policy", devtoolsCSP)
	c.Data(http.StatusOK, "application/json", []byte("{}\n"))
}

func (h *PageHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.public)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	cache Pinger
}

// NewHealthHandler takes the cache backend, or nil when caching is off.
func NewHealthHandler(cache Pinger) *HealthHandler {
	return &HealthHandler{cache: cache}
}

func (h *HealthHandler) GetHealth(c *gin.Context) {
	if h.cache == nil {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"cache":  "disabled",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.cache.Ping(ctx); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"status": "degraded",
			"cache":  "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"cache":  "connected",
	})
}

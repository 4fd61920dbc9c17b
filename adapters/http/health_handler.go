package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type BackendReporter interface {
	Backend() string
}

type HealthHandler struct {
	store BackendReporter
	now   func() time.Time
}

func NewHealthHandler(store BackendReporter) *HealthHandler {
	return &HealthHandler{store: store, now: time.Now}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: h.now().UTC().Format(time.RFC3339),
		Store:     h.store.Backend(),
	})
}

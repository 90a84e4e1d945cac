package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bhslighting/backend/internal/infrastructure/persistence"
)

// SystemHandler exposes operational endpoints.
type SystemHandler struct {
	BaseHandler
	db *persistence.Database
}

func NewSystemHandler(db *persistence.Database) *SystemHandler {
	return &SystemHandler{db: db}
}

func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}

func (h *SystemHandler) Health(c *gin.Context) {
	status := map[string]string{"status": "ok", "database": "ok"}
	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			status["status"] = "degraded"
			status["database"] = "unreachable"
		}
	}
	h.Success(c, status)
}

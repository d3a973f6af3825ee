package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	*BaseHandler
}

func NewHealthHandler(base *BaseHandler) *HealthHandler {
	return &HealthHandler{BaseHandler: base}
}

// Check - GET /api/health
func (h *HealthHandler) Check(c *gin.Context) {
	db := h.GetDB(c)

	status := "ok"
	httpCode := http.StatusOK

	sqlDB, err := db.DB()
	if err != nil || sqlDB.Ping() != nil {
		status = "degraded"
		httpCode = http.StatusServiceUnavailable
	}

	c.JSON(httpCode, gin.H{"status": status})
}

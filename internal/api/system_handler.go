package api

import (
	"net/http"

	"fishmarket-be/internal/metrics"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	Checkout *metrics.Checkout
}

func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *SystemHandler) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"checkout": h.Checkout.Snapshot()})
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	httpapi "github.com/kolatrade/trade-core-service/internal/delivery/http"
	"github.com/kolatrade/trade-core-service/internal/domain"
)

type AuditHandler struct {
	sink domain.AuditSink
}

func NewAuditHandler(sink domain.AuditSink) *AuditHandler {
	return &AuditHandler{sink: sink}
}

func (h *AuditHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/audit", h.List)
}

func (h *AuditHandler) List(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)

	entries, total, err := h.sink.GetEntries(c.Query("target_type"), c.Query("target_id"), page, limit)
	if err != nil {
		httpapi.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "total": total})
}

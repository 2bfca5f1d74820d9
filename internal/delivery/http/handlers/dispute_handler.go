package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	httpapi "github.com/kolatrade/trade-core-service/internal/delivery/http"
	"github.com/kolatrade/trade-core-service/internal/delivery/http/middleware"
	disputedto "github.com/kolatrade/trade-core-service/internal/usecase/dto/dispute"
	disputeusecase "github.com/kolatrade/trade-core-service/internal/usecase/dispute"
)

type DisputeHandler struct {
	uc disputeusecase.DisputeUsecase
}

func NewDisputeHandler(uc disputeusecase.DisputeUsecase) *DisputeHandler {
	return &DisputeHandler{uc: uc}
}

func (h *DisputeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	disputes := rg.Group("/disputes")
	disputes.POST("", h.Open)
	disputes.GET("", h.List)
	disputes.GET("/:id", h.Get)
	disputes.POST("/:id/investigate", h.Investigate)
	disputes.POST("/:id/resolve", h.Resolve)
	disputes.POST("/:id/close", h.Close)
}

type openDisputeRequest struct {
	OrderID     string          `json:"order_id" binding:"required"`
	Type        string          `json:"type"`
	Description string          `json:"description" binding:"required"`
	Evidence    json.RawMessage `json:"evidence"`
}

func (h *DisputeHandler) Open(c *gin.Context) {
	var req openDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dispute, err := h.uc.OpenDispute(&disputedto.OpenDisputeInput{
		ActorID:     middleware.ActorID(c),
		OrderID:     req.OrderID,
		Type:        req.Type,
		Description: req.Description,
		Evidence:    req.Evidence,
	})
	if err != nil {
		httpapi.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dispute)
}

func (h *DisputeHandler) Get(c *gin.Context) {
	dispute, err := h.uc.GetDisputeByID(c.Param("id"))
	if err != nil {
		httpapi.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dispute)
}

func (h *DisputeHandler) List(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)

	disputes, total, err := h.uc.GetDisputes(page, limit, c.Query("status"))
	if err != nil {
		httpapi.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"disputes": disputes, "total": total})
}

type investigateRequest struct {
	InternalNotes string `json:"internal_notes"`
}

func (h *DisputeHandler) Investigate(c *gin.Context) {
	var req investigateRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dispute, err := h.uc.InvestigateDispute(&disputedto.InvestigateDisputeInput{
		ActorID:       middleware.ActorID(c),
		DisputeID:     c.Param("id"),
		InternalNotes: req.InternalNotes,
	})
	if err != nil {
		httpapi.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dispute)
}

type resolveRequest struct {
	ResolutionType  string `json:"resolution_type" binding:"required"`
	RefundAmount    int64  `json:"refund_amount"`
	SupplierPenalty int64  `json:"supplier_penalty"`
	BuyerCredit     int64  `json:"buyer_credit"`
	Notes           string `json:"notes"`
}

func (h *DisputeHandler) Resolve(c *gin.Context) {
	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dispute, err := h.uc.ResolveDispute(&disputedto.ResolveDisputeInput{
		ActorID:         middleware.ActorID(c),
		DisputeID:       c.Param("id"),
		ResolutionType:  req.ResolutionType,
		RefundAmount:    req.RefundAmount,
		SupplierPenalty: req.SupplierPenalty,
		BuyerCredit:     req.BuyerCredit,
		Notes:           req.Notes,
	})
	if err != nil {
		httpapi.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dispute)
}

type closeRequest struct {
	Notes string `json:"notes" binding:"required"`
}

func (h *DisputeHandler) Close(c *gin.Context) {
	var req closeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dispute, err := h.uc.CloseDispute(&disputedto.CloseDisputeInput{
		ActorID:   middleware.ActorID(c),
		DisputeID: c.Param("id"),
		Notes:     req.Notes,
	})
	if err != nil {
		httpapi.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dispute)
}

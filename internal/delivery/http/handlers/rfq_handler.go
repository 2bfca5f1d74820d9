package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	httpapi "github.com/kolatrade/trade-core-service/internal/delivery/http"
	"github.com/kolatrade/trade-core-service/internal/delivery/http/middleware"
	rfqdto "github.com/kolatrade/trade-core-service/internal/usecase/dto/rfq"
	rfqusecase "github.com/kolatrade/trade-core-service/internal/usecase/rfq"
)

type RFQHandler struct {
	uc rfqusecase.RFQUsecase
}

func NewRFQHandler(uc rfqusecase.RFQUsecase) *RFQHandler {
	return &RFQHandler{uc: uc}
}

func (h *RFQHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rfqs := rg.Group("/rfqs")
	rfqs.POST("", h.Create)
	rfqs.GET("/:id", h.Get)
	rfqs.POST("/:id/assign", h.Assign)
	rfqs.POST("/:id/quote", h.Quote)
	rfqs.POST("/:id/confirm", h.Confirm)
	rfqs.POST("/:id/cancel", h.Cancel)
}

type createRFQRequest struct {
	Category    string `json:"category" binding:"required"`
	Quantity    int64  `json:"quantity" binding:"required"`
	Region      string `json:"region"`
	CountryCode string `json:"country_code" binding:"required"`
	ServicePlan string `json:"service_plan"`
	Currency    string `json:"currency" binding:"required"`
}

func (h *RFQHandler) Create(c *gin.Context) {
	var req createRFQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rfq, err := h.uc.CreateRFQ(&rfqdto.CreateRFQInput{
		ActorID:     middleware.ActorID(c),
		Category:    req.Category,
		Quantity:    req.Quantity,
		Region:      req.Region,
		CountryCode: req.CountryCode,
		ServicePlan: req.ServicePlan,
		Currency:    req.Currency,
	})
	if err != nil {
		httpapi.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rfq)
}

func (h *RFQHandler) Get(c *gin.Context) {
	rfq, err := h.uc.GetRFQByID(c.Param("id"))
	if err != nil {
		httpapi.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, rfq)
}

type assignSupplierRequest struct {
	SupplierID string `json:"supplier_id" binding:"required"`
}

func (h *RFQHandler) Assign(c *gin.Context) {
	var req assignSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.uc.AssignSupplier(&rfqdto.AssignSupplierInput{
		ActorID:    middleware.ActorID(c),
		RFQID:      c.Param("id"),
		SupplierID: req.SupplierID,
	}); err != nil {
		httpapi.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type generateQuoteRequest struct {
	UnitPrice        int64  `json:"unit_price" binding:"required"`
	ShippingEstimate int64  `json:"shipping_estimate"`
	DutyCategory     string `json:"duty_category"`
	Notes            string `json:"notes"`
}

func (h *RFQHandler) Quote(c *gin.Context) {
	var req generateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rfq, err := h.uc.GenerateQuote(&rfqdto.GenerateQuoteInput{
		ActorID:          middleware.ActorID(c),
		RFQID:            c.Param("id"),
		UnitPrice:        req.UnitPrice,
		ShippingEstimate: req.ShippingEstimate,
		DutyCategory:     req.DutyCategory,
		Notes:            req.Notes,
	})
	if err != nil {
		httpapi.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, rfq)
}

func (h *RFQHandler) Confirm(c *gin.Context) {
	order, err := h.uc.ConfirmRFQ(&rfqdto.ConfirmRFQInput{
		ActorID: middleware.ActorID(c),
		RFQID:   c.Param("id"),
	})
	if err != nil {
		httpapi.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

type cancelRFQRequest struct {
	Reason string `json:"reason"`
}

func (h *RFQHandler) Cancel(c *gin.Context) {
	var req cancelRFQRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.uc.CancelRFQ(&rfqdto.CancelRFQInput{
		ActorID: middleware.ActorID(c),
		RFQID:   c.Param("id"),
		Reason:  req.Reason,
	}); err != nil {
		httpapi.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

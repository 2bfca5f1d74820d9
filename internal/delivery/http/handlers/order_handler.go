package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	httpapi "github.com/kolatrade/trade-core-service/internal/delivery/http"
	"github.com/kolatrade/trade-core-service/internal/delivery/http/middleware"
	orderdto "github.com/kolatrade/trade-core-service/internal/usecase/dto/order"
	orderusecase "github.com/kolatrade/trade-core-service/internal/usecase/order"
)

type OrderHandler struct {
	uc orderusecase.OrderUsecase
}

func NewOrderHandler(uc orderusecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	orders.GET("", h.List)
	orders.GET("/:id", h.Get)
	orders.POST("/:id/advance", h.Advance)
	orders.POST("/:id/confirm-delivery", h.ConfirmDelivery)
}

func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.uc.GetOrderByID(c.Param("id"))
	if err != nil {
		httpapi.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) List(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)

	orders, total, err := h.uc.GetOrdersByBuyerID(middleware.ActorID(c), page, limit)
	if err != nil {
		httpapi.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders, "total": total})
}

type advanceOrderRequest struct {
	TargetStatus string `json:"target_status" binding:"required"`
	Notes        string `json:"notes"`
}

func (h *OrderHandler) Advance(c *gin.Context) {
	var req advanceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.uc.AdvanceOrder(&orderdto.AdvanceOrderInput{
		ActorID:      middleware.ActorID(c),
		OrderID:      c.Param("id"),
		TargetStatus: req.TargetStatus,
		Notes:        req.Notes,
	})
	if err != nil {
		httpapi.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) ConfirmDelivery(c *gin.Context) {
	if err := h.uc.ConfirmDelivery(&orderdto.ConfirmDeliveryInput{
		ActorID: middleware.ActorID(c),
		OrderID: c.Param("id"),
	}); err != nil {
		httpapi.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

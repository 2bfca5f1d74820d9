package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	httpapi "github.com/kolatrade/trade-core-service/internal/delivery/http"
	"github.com/kolatrade/trade-core-service/internal/delivery/http/middleware"
	escrowdto "github.com/kolatrade/trade-core-service/internal/usecase/dto/escrow"
	escrowusecase "github.com/kolatrade/trade-core-service/internal/usecase/escrow"
)

type EscrowHandler struct {
	uc escrowusecase.EscrowUsecase
}

func NewEscrowHandler(uc escrowusecase.EscrowUsecase) *EscrowHandler {
	return &EscrowHandler{uc: uc}
}

func (h *EscrowHandler) RegisterRoutes(rg *gin.RouterGroup) {
	escrow := rg.Group("/escrow")
	escrow.GET("/:orderId", h.Get)
	escrow.POST("/:orderId/lock", h.Lock)
	escrow.POST("/:orderId/release", h.Release)
	escrow.POST("/:orderId/refund", h.Refund)
}

func (h *EscrowHandler) Get(c *gin.Context) {
	escrow, err := h.uc.GetEscrowByOrderID(c.Param("orderId"))
	if err != nil {
		httpapi.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, escrow)
}

type lockEscrowRequest struct {
	Amount  int64 `json:"amount"`
	Version int64 `json:"version"`
}

func (h *EscrowHandler) Lock(c *gin.Context) {
	var req lockEscrowRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	escrow, err := h.uc.LockEscrow(&escrowdto.LockEscrowInput{
		ActorID: middleware.ActorID(c),
		OrderID: c.Param("orderId"),
		Amount:  req.Amount,
		Version: req.Version,
	})
	if err != nil {
		httpapi.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, escrow)
}

type moveEscrowRequest struct {
	Amount  int64  `json:"amount"`
	Reason  string `json:"reason"`
	Version int64  `json:"version"`
}

func (h *EscrowHandler) Release(c *gin.Context) {
	var req moveEscrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	escrow, err := h.uc.ReleaseEscrow(&escrowdto.ReleaseEscrowInput{
		ActorID: middleware.ActorID(c),
		OrderID: c.Param("orderId"),
		Amount:  req.Amount,
		Reason:  req.Reason,
		Version: req.Version,
	})
	if err != nil {
		httpapi.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, escrow)
}

func (h *EscrowHandler) Refund(c *gin.Context) {
	var req moveEscrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	escrow, err := h.uc.RefundEscrow(&escrowdto.RefundEscrowInput{
		ActorID: middleware.ActorID(c),
		OrderID: c.Param("orderId"),
		Amount:  req.Amount,
		Reason:  req.Reason,
		Version: req.Version,
	})
	if err != nil {
		httpapi.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, escrow)
}

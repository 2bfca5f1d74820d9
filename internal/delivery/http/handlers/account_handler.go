package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	httpapi "github.com/kolatrade/trade-core-service/internal/delivery/http"
	"github.com/kolatrade/trade-core-service/internal/delivery/http/middleware"
	accountusecase "github.com/kolatrade/trade-core-service/internal/usecase/account"
	accountdto "github.com/kolatrade/trade-core-service/internal/usecase/dto/account"
)

type AccountHandler struct {
	uc accountusecase.AccountUsecase
}

func NewAccountHandler(uc accountusecase.AccountUsecase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

func (h *AccountHandler) RegisterRoutes(rg *gin.RouterGroup) {
	accounts := rg.Group("/accounts")
	accounts.POST("/:id/controls", h.UpdateControls)
}

type updateControlsRequest struct {
	Action          string     `json:"action" binding:"required"`
	Reason          string     `json:"reason"`
	CanCreateOrders *bool      `json:"can_create_orders"`
	CanRespondToRfq *bool      `json:"can_respond_to_rfq"`
	CanWithdraw     *bool      `json:"can_withdraw"`
	CanListProducts *bool      `json:"can_list_products"`
	LimitNotes      string     `json:"limit_notes"`
	LimitExpiresAt  *time.Time `json:"limit_expires_at"`
}

func (h *AccountHandler) UpdateControls(c *gin.Context) {
	var req updateControlsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.uc.UpdateControls(&accountdto.UpdateControlsInput{
		ActorID:         middleware.ActorID(c),
		AccountID:       c.Param("id"),
		Action:          req.Action,
		Reason:          req.Reason,
		CanCreateOrders: req.CanCreateOrders,
		CanRespondToRfq: req.CanRespondToRfq,
		CanWithdraw:     req.CanWithdraw,
		CanListProducts: req.CanListProducts,
		LimitNotes:      req.LimitNotes,
		LimitExpiresAt:  req.LimitExpiresAt,
	})
	if err != nil {
		httpapi.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

package handlers

import (
	"errors"
	"net/http"

	"laundr/models"
	"laundr/services/fees"
	"laundr/services/loads"
	"laundr/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoadHandler exposes the money-movement endpoints.
type LoadHandler struct {
	Service loads.LoadService
	Log     *loads.TransactionLog
	Logger  *zap.Logger
}

// NewLoadHandler returns a handler bound to the given service and audit log.
func NewLoadHandler(service loads.LoadService, log *loads.TransactionLog, logger *zap.Logger) *LoadHandler {
	return &LoadHandler{Service: service, Log: log, Logger: logger}
}

// SendLoad handles POST /transactions/send.
func (h *LoadHandler) SendLoad(c *gin.Context) {
	var req models.LoadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Service.Send(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RequestLoad handles POST /transactions/request.
func (h *LoadHandler) RequestLoad(c *gin.Context) {
	var req models.LoadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Service.Request(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SwapFunds handles POST /transactions/swap.
func (h *LoadHandler) SwapFunds(c *gin.Context) {
	var req models.SwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Service.Swap(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ClaimInvite handles POST /transactions/claim: an off-platform recipient
// presents their invite token to prove who the load was addressed to.
func (h *LoadHandler) ClaimInvite(c *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	recipientID, err := h.Service.VerifyInvite(req.Token)
	switch {
	case errors.Is(err, utils.ErrInviteTokenExpired):
		c.JSON(http.StatusGone, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.ErrInviteTokenInvalid.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"recipient_id": recipientID})
	}
}

// ListTransactions handles GET /transactions: the audit trail of every
// transaction intent.
func (h *LoadHandler) ListTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, h.Log.All())
}

// respondError maps the transaction error taxonomy onto HTTP status codes.
func (h *LoadHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, fees.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case loads.IsCounterpartyNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, loads.ErrProviderUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "payment provider unavailable, retry later"})
	default:
		h.Logger.Error("load request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

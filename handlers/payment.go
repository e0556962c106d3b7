package handlers

import (
	"errors"
	"net/http"

	"freelanceai/models"
	"freelanceai/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes card payments, escrow and the crypto endpoints.
type PaymentHandler struct {
	Svc    payment.Service
	Logger *zap.Logger
}

func NewPaymentHandler(svc payment.Service, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Svc: svc, Logger: logger}
}

// CreateIntent handles POST /api/payments/intent.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount, currency and projectId are required", "message": err.Error()})
		return
	}

	res, err := h.Svc.CreatePaymentIntent(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("payment intent creation failed",
			zap.String("projectId", req.ProjectID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create payment intent"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// ReleaseEscrow handles POST /api/payments/escrow/release.
func (h *PaymentHandler) ReleaseEscrow(c *gin.Context) {
	var req models.EscrowReleaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "paymentIntentId is required", "message": err.Error()})
		return
	}

	res, err := h.Svc.ReleaseEscrow(c.Request.Context(), req)
	if errors.Is(err, payment.ErrNotEscrow) {
		c.JSON(http.StatusConflict, gin.H{"error": "payment is not held in escrow"})
		return
	}
	if err != nil {
		h.Logger.Error("escrow release failed",
			zap.String("paymentIntentId", req.PaymentIntentID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to release escrow"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// CheckCrypto handles POST /api/payments/crypto/check.
func (h *PaymentHandler) CheckCrypto(c *gin.Context) {
	var req models.CryptoCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	res, err := h.Svc.CheckCryptoPayment(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("crypto payment check failed", zap.String("txHash", req.TxHash), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to verify transaction"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// WalletBalance handles POST /api/payments/wallet/balance.
func (h *PaymentHandler) WalletBalance(c *gin.Context) {
	var req models.WalletBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "address and network are required", "message": err.Error()})
		return
	}

	res, err := h.Svc.WalletBalance(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("wallet balance lookup failed", zap.String("address", req.Address), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch balance"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// ContractTemplate handles POST /api/payments/contracts/template.
func (h *PaymentHandler) ContractTemplate(c *gin.Context) {
	var req models.ContractTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "contractType is required", "message": err.Error()})
		return
	}

	res, err := h.Svc.ContractTemplate(req)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

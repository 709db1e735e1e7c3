package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cafepos/cafepos-api/internal/application/service"
	"github.com/cafepos/cafepos-api/internal/presentation/http/dto/request"
	"github.com/cafepos/cafepos-api/internal/presentation/http/dto/response"
)

// PaymentHandler drives the payment screen: one live session per user,
// mutated key press by key press
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Start opens a payment session from the user's handoff slot
func (h *PaymentHandler) Start(c *gin.Context) {
	ctx, userID, cafeID, ok := scoped(c)
	if !ok {
		return
	}

	view, err := h.paymentService.StartSession(ctx, userID, cafeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment session started", view)
}

// Get returns the current session state
func (h *PaymentHandler) Get(c *gin.Context) {
	_, userID, _, ok := scoped(c)
	if !ok {
		return
	}

	view, err := h.paymentService.GetSession(userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment session", view)
}

// Keypad feeds one key into the buffer
func (h *PaymentHandler) Keypad(c *gin.Context) {
	_, userID, _, ok := scoped(c)
	if !ok {
		return
	}

	var req request.KeypadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.paymentService.PressKey(userID, req.Key)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Keypad updated", view)
}

// Preset replaces the buffer with a quick amount
func (h *PaymentHandler) Preset(c *gin.Context) {
	_, userID, _, ok := scoped(c)
	if !ok {
		return
	}

	var req request.PresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.paymentService.PressPreset(userID, req.Value)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Keypad updated", view)
}

// Select registers the pending tender or discount choice
func (h *PaymentHandler) Select(c *gin.Context) {
	_, userID, _, ok := scoped(c)
	if !ok {
		return
	}

	var req request.SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.paymentService.Select(userID, &service.SelectInput{
		Tender:   req.Tender,
		Discount: req.Discount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Selection updated", view)
}

// AddTender commits the keypad buffer against the current selection
func (h *PaymentHandler) AddTender(c *gin.Context) {
	_, userID, _, ok := scoped(c)
	if !ok {
		return
	}

	view, err := h.paymentService.AddTender(userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tender added", view)
}

// RemoveTender deletes one ledger row by position
func (h *PaymentHandler) RemoveTender(c *gin.Context) {
	_, userID, _, ok := scoped(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "Invalid index")
		return
	}

	view, err := h.paymentService.RemoveTender(userID, index)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tender removed", view)
}

// Undo removes the most recent ledger row once confirmed
func (h *PaymentHandler) Undo(c *gin.Context) {
	_, userID, _, ok := scoped(c)
	if !ok {
		return
	}

	var req request.UndoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.paymentService.UndoLast(userID, req.Confirmed)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Undo applied", view)
}

// ClickLine adds one unit of an order line into the keypad buffer
func (h *PaymentHandler) ClickLine(c *gin.Context) {
	_, userID, _, ok := scoped(c)
	if !ok {
		return
	}

	lineID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid line id")
		return
	}

	view, err := h.paymentService.ClickLine(userID, lineID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Line counted", view)
}

// Complete settles the session into a persisted order
func (h *PaymentHandler) Complete(c *gin.Context) {
	ctx, userID, _, ok := scoped(c)
	if !ok {
		return
	}

	order, err := h.paymentService.Complete(ctx, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment completed", order)
}

// Abandon drops the session without clearing the handoff slot
func (h *PaymentHandler) Abandon(c *gin.Context) {
	_, userID, _, ok := scoped(c)
	if !ok {
		return
	}

	h.paymentService.Abandon(userID)
	response.NoContent(c)
}

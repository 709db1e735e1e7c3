package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cafepos/cafepos-api/internal/application/service"
	"github.com/cafepos/cafepos-api/internal/presentation/http/dto/request"
	"github.com/cafepos/cafepos-api/internal/presentation/http/dto/response"
)

// CafeHandler handles venue settings HTTP requests
type CafeHandler struct {
	cafeService *service.CafeService
}

// NewCafeHandler creates a new cafe handler
func NewCafeHandler(cafeService *service.CafeService) *CafeHandler {
	return &CafeHandler{cafeService: cafeService}
}

// Get returns the authenticated user's cafe
func (h *CafeHandler) Get(c *gin.Context) {
	ctx, _, cafeID, ok := scoped(c)
	if !ok {
		return
	}

	cafe, err := h.cafeService.Get(ctx, cafeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cafe retrieved", cafe)
}

// UpdateSettings patches the venue settings
func (h *CafeHandler) UpdateSettings(c *gin.Context) {
	ctx, _, cafeID, ok := scoped(c)
	if !ok {
		return
	}

	var req request.UpdateCafeSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cafe, err := h.cafeService.UpdateSettings(ctx, cafeID, &service.UpdateSettingsInput{
		Name:             req.Name,
		Currency:         req.Currency,
		CurrencySymbol:   req.CurrencySymbol,
		DecimalSeparator: req.DecimalSeparator,
		ReceiptHeader:    req.ReceiptHeader,
		ReceiptFooter:    req.ReceiptFooter,
		InvoicePrefix:    req.InvoicePrefix,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated", cafe)
}

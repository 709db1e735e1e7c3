package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cafepos/cafepos-api/internal/application/service"
	"github.com/cafepos/cafepos-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles receipt printer HTTP requests
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// Status returns printer connection status
func (h *PrinterHandler) Status(c *gin.Context) {
	response.OK(c, "Printer status", h.printerService.GetStatus())
}

// TestPrint sends a test page to the printer
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	receipt, err := h.printerService.TestPrint()
	if err != nil {
		// return the rendered receipt anyway so the client can show it
		response.OK(c, "Printer unavailable, receipt rendered only", receipt)
		return
	}

	response.OK(c, "Test page printed", receipt)
}

// PrintOrder reprints the receipt for a settled order
func (h *PrinterHandler) PrintOrder(c *gin.Context) {
	ctx, _, cafeID, ok := scoped(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	receipt, err := h.printerService.PrintOrderReceipt(ctx, cafeID, id)
	if err != nil {
		if receipt != nil {
			response.OK(c, "Printer unavailable, receipt rendered only", receipt)
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt printed", receipt)
}

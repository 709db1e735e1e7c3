package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cafepos/cafepos-api/internal/application/service"
	"github.com/cafepos/cafepos-api/internal/domain/enum"
	"github.com/cafepos/cafepos-api/internal/presentation/http/dto/request"
	"github.com/cafepos/cafepos-api/internal/presentation/http/dto/response"
)

// TableHandler handles floor table HTTP requests
type TableHandler struct {
	tableService *service.TableService
}

// NewTableHandler creates a new table handler
func NewTableHandler(tableService *service.TableService) *TableHandler {
	return &TableHandler{tableService: tableService}
}

// List handles listing the cafe's tables, optionally by area
func (h *TableHandler) List(c *gin.Context) {
	ctx, _, cafeID, ok := scoped(c)
	if !ok {
		return
	}

	tables, err := h.tableService.List(ctx, cafeID, c.Query("area"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tables retrieved", tables)
}

// Get handles retrieving a single table
func (h *TableHandler) Get(c *gin.Context) {
	ctx, _, cafeID, ok := scoped(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	table, err := h.tableService.Get(ctx, cafeID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Table retrieved", table)
}

// Create handles adding a table to the floor plan
func (h *TableHandler) Create(c *gin.Context) {
	ctx, _, cafeID, ok := scoped(c)
	if !ok {
		return
	}

	var req request.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	table, err := h.tableService.Create(ctx, cafeID, &service.CreateTableInput{
		TableNumber: req.TableNumber,
		Capacity:    req.Capacity,
		Area:        req.Area,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Table created", table)
}

// Update handles modifying a table
func (h *TableHandler) Update(c *gin.Context) {
	ctx, _, cafeID, ok := scoped(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.UpdateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	table, err := h.tableService.Update(ctx, cafeID, id, &service.UpdateTableInput{
		TableNumber: req.TableNumber,
		Capacity:    req.Capacity,
		Area:        req.Area,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Table updated", table)
}

// SetStatus handles moving a table between available, occupied and reserved
func (h *TableHandler) SetStatus(c *gin.Context) {
	ctx, _, cafeID, ok := scoped(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.TableStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	status, err := enum.ParseTableStatus(req.Status)
	if err != nil {
		response.BadRequest(c, "Unknown table status: "+req.Status)
		return
	}

	table, err := h.tableService.SetStatus(ctx, cafeID, id, status, req.Guests)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Table status updated", table)
}

// Delete handles removing a table from the floor plan
func (h *TableHandler) Delete(c *gin.Context) {
	ctx, _, cafeID, ok := scoped(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.tableService.Delete(ctx, cafeID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

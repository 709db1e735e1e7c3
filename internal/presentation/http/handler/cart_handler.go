package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cafepos/cafepos-api/internal/application/service"
	"github.com/cafepos/cafepos-api/internal/presentation/http/dto/request"
	"github.com/cafepos/cafepos-api/internal/presentation/http/dto/response"
)

// CartHandler handles server-side cart HTTP requests, including the
// cart-to-payment handoff
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

func toLineInputs(lines []request.CartLineRequest) []service.CartLineInput {
	items := make([]service.CartLineInput, 0, len(lines))
	for _, l := range lines {
		items = append(items, service.CartLineInput{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
		})
	}
	return items
}

// List handles listing the cafe's open carts
func (h *CartHandler) List(c *gin.Context) {
	ctx, _, cafeID, ok := scoped(c)
	if !ok {
		return
	}

	carts, err := h.cartService.List(ctx, cafeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Carts retrieved", carts)
}

// Get handles retrieving a single cart
func (h *CartHandler) Get(c *gin.Context) {
	ctx, _, cafeID, ok := scoped(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	cart, err := h.cartService.Get(ctx, cafeID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart retrieved", cart)
}

// Create handles opening a cart for a table or a named customer
func (h *CartHandler) Create(c *gin.Context) {
	ctx, userID, cafeID, ok := scoped(c)
	if !ok {
		return
	}

	var req request.CreateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cart, err := h.cartService.Create(ctx, cafeID, userID, &service.CreateCartInput{
		TableID:      req.TableID,
		CustomerName: req.CustomerName,
		Items:        toLineInputs(req.Items),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Cart created", cart)
}

// UpdateItems handles replacing a cart's lines wholesale
func (h *CartHandler) UpdateItems(c *gin.Context) {
	ctx, _, cafeID, ok := scoped(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.UpdateCartItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cart, err := h.cartService.UpdateItems(ctx, cafeID, id, toLineInputs(req.Items))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart updated", cart)
}

// Delete handles discarding a cart
func (h *CartHandler) Delete(c *gin.Context) {
	ctx, _, cafeID, ok := scoped(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.cartService.Delete(ctx, cafeID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Commit hands an ad-hoc (quick sale) cart off to payment. An empty cart is
// a silent no-op; committed tells the client whether to navigate.
func (h *CartHandler) Commit(c *gin.Context) {
	ctx, userID, cafeID, ok := scoped(c)
	if !ok {
		return
	}

	var req request.CommitCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	committed, err := h.cartService.CommitForPayment(ctx, cafeID, userID, &service.CommitInput{
		Label: req.Label,
		Items: toLineInputs(req.Items),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart committed", gin.H{"committed": committed})
}

// CommitByID hands a persisted table cart off to payment
func (h *CartHandler) CommitByID(c *gin.Context) {
	ctx, userID, cafeID, ok := scoped(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	committed, err := h.cartService.CommitCart(ctx, cafeID, userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart committed", gin.H{"committed": committed})
}

package request

import "github.com/google/uuid"

// CartLineRequest is one requested cart line; name and price are resolved
// server-side from the catalog
type CartLineRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// CreateCartRequest represents a cart creation request
type CreateCartRequest struct {
	TableID      *uuid.UUID        `json:"table_id"`
	CustomerName *string           `json:"customer_name" binding:"omitempty,max=255"`
	Items        []CartLineRequest `json:"items"`
}

// UpdateCartItemsRequest replaces a cart's lines wholesale
type UpdateCartItemsRequest struct {
	Items []CartLineRequest `json:"items" binding:"required"`
}

// CommitCartRequest hands an ad-hoc (quick sale) cart off to payment
type CommitCartRequest struct {
	Label string            `json:"label" binding:"omitempty,max=100"`
	Items []CartLineRequest `json:"items"`
}

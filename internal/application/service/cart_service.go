package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/cafepos/cafepos-api/internal/domain/cart"
	"github.com/cafepos/cafepos-api/internal/domain/entity"
	"github.com/cafepos/cafepos-api/internal/domain/payment"
	"github.com/cafepos/cafepos-api/internal/domain/repository"
	"github.com/cafepos/cafepos-api/pkg/apperror"
)

// CartService handles server-side carts and the cart-to-payment handoff
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	tableRepo   repository.TableRepository
	snapshots   repository.SnapshotStore
}

// NewCartService creates a new cart service
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	tableRepo repository.TableRepository,
	snapshots repository.SnapshotStore,
) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		tableRepo:   tableRepo,
		snapshots:   snapshots,
	}
}

// CartLineInput is one requested cart line
type CartLineInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateCartInput represents the input for creating a cart
type CreateCartInput struct {
	TableID      *uuid.UUID
	CustomerName *string
	Items        []CartLineInput
}

// buildLines resolves the requested lines against the catalog, snapshotting
// name and unit price at add-time. Unavailable products are rejected.
func (s *CartService) buildLines(ctx context.Context, cafeID uuid.UUID, inputs []CartLineInput) (*cart.Cart, error) {
	c := cart.New()
	for _, in := range inputs {
		if in.Quantity <= 0 {
			continue
		}
		product, err := s.productRepo.GetByID(ctx, in.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || product.CafeID != cafeID {
			return nil, apperror.NewNotFoundError("Product")
		}
		if !product.Available {
			return nil, apperror.NewUnprocessableError("Product is not available: " + product.Name)
		}
		snap := cart.ProductSnapshot{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
		}
		for i := 0; i < in.Quantity; i++ {
			c.AddOrIncrement(snap)
		}
	}
	return c, nil
}

func cartToEntityItems(c *cart.Cart) []entity.CartItem {
	lines := c.Items()
	items := make([]entity.CartItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, entity.CartItem{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			LineTotal:   l.LineTotal,
		})
	}
	return items
}

// Create opens a cart for a table or a named customer
func (s *CartService) Create(ctx context.Context, cafeID, userID uuid.UUID, input *CreateCartInput) (*entity.Cart, error) {
	if input.TableID != nil {
		table, err := s.tableRepo.GetByID(ctx, *input.TableID)
		if err != nil {
			return nil, err
		}
		if table == nil || table.CafeID != cafeID {
			return nil, apperror.NewNotFoundError("Table")
		}
		if existing, err := s.cartRepo.GetByTable(ctx, *input.TableID); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, apperror.NewConflictError("Table already has an open cart")
		}
	}

	c, err := s.buildLines(ctx, cafeID, input.Items)
	if err != nil {
		return nil, err
	}

	ent := &entity.Cart{
		CafeID:       cafeID,
		UserID:       userID,
		TableID:      input.TableID,
		CustomerName: input.CustomerName,
		TotalAmount:  c.Total(),
		Items:        cartToEntityItems(c),
	}

	if err := s.cartRepo.Create(ctx, ent); err != nil {
		return nil, err
	}
	return ent, nil
}

// Get retrieves a cart within the caller's cafe
func (s *CartService) Get(ctx context.Context, cafeID, cartID uuid.UUID) (*entity.Cart, error) {
	ent, err := s.cartRepo.GetByID(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if ent == nil || ent.CafeID != cafeID {
		return nil, apperror.NewNotFoundError("Cart")
	}
	return ent, nil
}

// List returns the cafe's open carts
func (s *CartService) List(ctx context.Context, cafeID uuid.UUID) ([]entity.Cart, error) {
	return s.cartRepo.List(ctx, cafeID)
}

// UpdateItems replaces a cart's lines wholesale
func (s *CartService) UpdateItems(ctx context.Context, cafeID, cartID uuid.UUID, items []CartLineInput) (*entity.Cart, error) {
	ent, err := s.Get(ctx, cafeID, cartID)
	if err != nil {
		return nil, err
	}

	c, err := s.buildLines(ctx, cafeID, items)
	if err != nil {
		return nil, err
	}

	newItems := cartToEntityItems(c)
	if err := s.cartRepo.ReplaceItems(ctx, ent, newItems); err != nil {
		return nil, err
	}

	ent.Items = newItems
	ent.TotalAmount = c.Total()
	return ent, nil
}

// Delete discards a cart
func (s *CartService) Delete(ctx context.Context, cafeID, cartID uuid.UUID) error {
	if _, err := s.Get(ctx, cafeID, cartID); err != nil {
		return err
	}
	return s.cartRepo.Delete(ctx, cartID)
}

// CommitInput represents the input for the payment handoff
type CommitInput struct {
	Label string
	Items []CartLineInput
}

// CommitForPayment writes the built cart into the user's single handoff
// slot, overwriting whatever was there. An empty cart is a silent no-op:
// nothing is written and committed comes back false.
func (s *CartService) CommitForPayment(ctx context.Context, cafeID, userID uuid.UUID, input *CommitInput) (committed bool, err error) {
	c, err := s.buildLines(ctx, cafeID, input.Items)
	if err != nil {
		return false, err
	}
	if len(c.Items()) == 0 {
		return false, nil
	}

	source := sourceFromCart(input.Label, c)
	if err := s.snapshots.Save(ctx, userID, &source); err != nil {
		return false, err
	}
	return true, nil
}

// CommitCart hands a persisted table cart off to payment
func (s *CartService) CommitCart(ctx context.Context, cafeID, userID, cartID uuid.UUID) (bool, error) {
	ent, err := s.Get(ctx, cafeID, cartID)
	if err != nil {
		return false, err
	}
	if len(ent.Items) == 0 {
		return false, nil
	}

	label := ""
	if ent.Table != nil {
		label = "MASA " + ent.Table.TableNumber
	} else if ent.CustomerName != nil {
		label = *ent.CustomerName
	}

	source := payment.Source{Label: label, Total: ent.TotalAmount}
	for i, item := range ent.Items {
		source.Items = append(source.Items, payment.SourceLine{
			ID:          int64(i + 1),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal,
		})
	}

	if err := s.snapshots.Save(ctx, userID, &source); err != nil {
		return false, err
	}
	return true, nil
}

func sourceFromCart(label string, c *cart.Cart) payment.Source {
	source := payment.Source{Label: label, Total: c.Total()}
	for _, l := range c.Items() {
		source.Items = append(source.Items, payment.SourceLine{
			ID:          l.ID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			LineTotal:   l.LineTotal,
		})
	}
	return source
}

package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/cafepos/cafepos-api/internal/domain/entity"
	"github.com/cafepos/cafepos-api/internal/domain/repository"
	"github.com/cafepos/cafepos-api/pkg/apperror"
)

// CafeService handles venue settings
type CafeService struct {
	cafeRepo repository.CafeRepository
}

// NewCafeService creates a new cafe service
func NewCafeService(cafeRepo repository.CafeRepository) *CafeService {
	return &CafeService{cafeRepo: cafeRepo}
}

// Get retrieves the cafe
func (s *CafeService) Get(ctx context.Context, cafeID uuid.UUID) (*entity.Cafe, error) {
	cafe, err := s.cafeRepo.GetByID(ctx, cafeID)
	if err != nil {
		return nil, err
	}
	if cafe == nil {
		return nil, apperror.NewNotFoundError("Cafe")
	}
	return cafe, nil
}

// UpdateSettingsInput represents the editable venue settings
type UpdateSettingsInput struct {
	Name             *string
	Currency         *string
	CurrencySymbol   *string
	DecimalSeparator *string
	ReceiptHeader    *string
	ReceiptFooter    *string
	InvoicePrefix    *string
}

// UpdateSettings patches the cafe's settings;
// the decimal separator feeds every payment keypad the cafe opens
func (s *CafeService) UpdateSettings(ctx context.Context, cafeID uuid.UUID, input *UpdateSettingsInput) (*entity.Cafe, error) {
	cafe, err := s.Get(ctx, cafeID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		cafe.Name = *input.Name
	}
	if input.Currency != nil {
		cafe.Settings.Currency = *input.Currency
	}
	if input.CurrencySymbol != nil {
		cafe.Settings.CurrencySymbol = *input.CurrencySymbol
	}
	if input.DecimalSeparator != nil {
		if *input.DecimalSeparator != "." && *input.DecimalSeparator != "," {
			return nil, apperror.NewBadRequestError("Decimal separator must be '.' or ','")
		}
		cafe.Settings.DecimalSeparator = *input.DecimalSeparator
	}
	if input.ReceiptHeader != nil {
		cafe.Settings.ReceiptHeader = *input.ReceiptHeader
	}
	if input.ReceiptFooter != nil {
		cafe.Settings.ReceiptFooter = *input.ReceiptFooter
	}
	if input.InvoicePrefix != nil {
		cafe.Settings.InvoicePrefix = *input.InvoicePrefix
	}

	if err := s.cafeRepo.Update(ctx, cafe); err != nil {
		return nil, err
	}
	return cafe, nil
}

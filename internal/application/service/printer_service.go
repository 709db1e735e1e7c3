package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/cafepos/cafepos-api/internal/domain/entity"
	"github.com/cafepos/cafepos-api/internal/domain/repository"
	"github.com/cafepos/cafepos-api/pkg/apperror"
	"github.com/cafepos/cafepos-api/pkg/money"
	"github.com/cafepos/cafepos-api/pkg/printer"
)

// PrinterService handles receipt formatting and thermal printing.
type PrinterService struct {
	printer     printer.Printer
	orderRepo   repository.OrderRepository
	cafeRepo    repository.CafeRepository
	printerType string
}

// NewPrinterService creates a new printer service
func NewPrinterService(
	p printer.Printer,
	orderRepo repository.OrderRepository,
	cafeRepo repository.CafeRepository,
	printerType string,
) *PrinterService {
	return &PrinterService{
		printer:     p,
		orderRepo:   orderRepo,
		cafeRepo:    cafeRepo,
		printerType: printerType,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test page to the printer.
// Returns the receipt data so the handler can return it as JSON when printer is disabled.
func (s *PrinterService) TestPrint() (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			CafeName: "PRINTER TEST",
		},
		OrderNo: "TEST-001",
		Date:    "Test Date",
		Cashier: "System",
		Items: []entity.ReceiptItem{
			{Name: "Test Item 1", Quantity: 1, UnitPrice: "10", Total: "10"},
			{Name: "Test Item 2", Quantity: 2, UnitPrice: "5", Total: "10"},
		},
		Tenders: []entity.ReceiptLine{
			{Label: "Nakit", Amount: "20"},
		},
		Total: "20",
	}

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}

	return receipt, nil
}

// PrintOrderReceipt fetches a settled order and prints its receipt.
func (s *PrinterService) PrintOrderReceipt(ctx context.Context, cafeID, orderID uuid.UUID) (*entity.Receipt, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil || order == nil || order.CafeID != cafeID {
		return nil, apperror.NewNotFoundError("Order")
	}

	cafe, err := s.cafeRepo.GetByID(ctx, cafeID)
	if err != nil || cafe == nil {
		return nil, apperror.NewNotFoundError("Cafe")
	}

	receipt := s.BuildReceipt(cafe, order)

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (order %s): %v", orderID, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

// BuildReceipt renders an order into a printable receipt
func (s *PrinterService) BuildReceipt(cafe *entity.Cafe, order *entity.Order) *entity.Receipt {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			CafeName: cafe.Name,
		},
		OrderNo: order.InvoiceNo,
		Date:    order.CreatedAt.Format("2006-01-02 15:04"),
		Label:   order.SourceLabel,
		Total:   money.Format(order.Total),
		Footer:  cafe.Settings.ReceiptFooter,
	}
	if cafe.Settings.ReceiptHeader != "" {
		receipt.Header.Address = cafe.Settings.ReceiptHeader
	}
	if order.User.Name != "" {
		receipt.Cashier = order.User.Name
	}

	for _, item := range order.Items {
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      item.ProductName,
			Quantity:  item.Quantity,
			UnitPrice: money.Format(item.UnitPrice),
			Total:     money.Format(item.LineTotal),
		})
	}

	for _, tender := range order.Tenders {
		receipt.Tenders = append(receipt.Tenders, entity.ReceiptLine{
			Label:  tender.Label,
			Amount: money.Format(tender.Amount),
		})
	}

	return receipt
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(32) // 58mm paper = 32 chars

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.CafeName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	// Order info
	doc.KeyValue("Fis No:", r.OrderNo).
		KeyValue("Tarih:", r.Date)

	if r.Cashier != "" {
		doc.KeyValue("Kasiyer:", r.Cashier)
	}
	if r.Label != "" {
		doc.KeyValue("Masa:", r.Label)
	}

	doc.Separator('-')

	// Items
	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, item.Total)
		if item.Quantity > 1 {
			doc.TextF("  @ %s", item.UnitPrice)
		}
	}

	doc.Separator('-')

	// Total and tender breakdown
	doc.SetBold(true).
		KeyValue("TOPLAM:", r.Total).
		SetBold(false)

	for _, tender := range r.Tenders {
		doc.KeyValue(tender.Label+":", tender.Amount)
	}

	doc.Separator('-')

	// Footer
	doc.SetAlign(printer.AlignCenter).
		LineFeed()
	if r.Footer != "" {
		doc.Text(r.Footer)
	} else {
		doc.Text("Tesekkur ederiz!")
	}
	doc.LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}

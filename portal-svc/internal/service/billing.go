package service

import (
	"context"
	"log"
	"time"

	"hotel-portal/portal-svc/internal/domain"

	"github.com/shopspring/decimal"
)

type BillView struct {
	domain.Bill
	Overdue    bool            `json:"overdue"`
	Actionable bool            `json:"actionable"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

type BillingService struct {
	api      BillingAPI
	catalog  *Catalog
	renderer *InvoiceRenderer
	activity *Activity
	hotel    string
	now      func() time.Time
}

func NewBillingService(api BillingAPI, catalog *Catalog, renderer *InvoiceRenderer, activity *Activity, hotel string) *BillingService {
	return &BillingService{
		api:      api,
		catalog:  catalog,
		renderer: renderer,
		activity: activity,
		hotel:    hotel,
		now:      time.Now,
	}
}

func (s *BillingService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *BillingService) ListBills(ctx context.Context) ([]BillView, error) {
	bills, err := s.api.ListBills(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.catalog.EnsureLoaded(ctx); err != nil {
		log.Printf("[portal-svc] list bills: load catalog: %v", err)
	}
	now := s.now()

	views := make([]BillView, 0, len(bills))
	for _, bill := range bills {
		invoice := BuildInvoice(bill, nil, domain.HotelProfile{}, s.catalog)
		views = append(views, BillView{
			Bill:       bill,
			Overdue:    IsOverdue(bill, now),
			Actionable: bill.Actionable(),
			Subtotal:   invoice.Subtotal,
			Tax:        invoice.Tax,
			GrandTotal: invoice.GrandTotal,
		})
	}
	return views, nil
}

// Invoice builds and renders the printable invoice for a finalized bill.
func (s *BillingService) Invoice(ctx context.Context, billID domain.ID) ([]byte, *Invoice, error) {
	bills, err := s.api.ListBills(ctx)
	if err != nil {
		return nil, nil, err
	}

	var bill *domain.Bill
	for i := range bills {
		if bills[i].Matches(billID) {
			bill = &bills[i]
			break
		}
	}
	if bill == nil {
		return nil, nil, ErrBillNotFound
	}
	if !bill.Actionable() {
		return nil, nil, ErrBillNotFinalized
	}

	var order *domain.Order
	if len(bill.Items) == 0 && bill.OrderID != "" {
		order, err = s.api.GetOrder(ctx, bill.OrderID)
		if err != nil {
			log.Printf("[portal-svc] invoice %s: fetch order %s: %v", billID, bill.OrderID, err)
			order = nil
		}
	}

	profile := domain.HotelProfile{HotelName: s.hotel}
	if p, err := s.api.GetProfile(ctx); err != nil {
		log.Printf("[portal-svc] invoice %s: fetch profile: %v", billID, err)
	} else if p != nil {
		profile = *p
	}

	if err := s.catalog.EnsureLoaded(ctx); err != nil {
		log.Printf("[portal-svc] invoice %s: load catalog: %v", billID, err)
	}

	invoice := BuildInvoice(*bill, order, profile, s.catalog)
	doc, err := s.renderer.Render(invoice)
	if err != nil {
		return nil, nil, err
	}

	s.activity.Record(ctx, domain.ActivityInvoicePrinted, "invoice printed", invoice.Number, invoice.GrandTotal)
	return doc, invoice, nil
}

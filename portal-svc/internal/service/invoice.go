package service

import (
	"bytes"
	_ "embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"log"
	"strings"
	"time"

	"hotel-portal/portal-svc/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
)

var (
	taxRate       = decimal.RequireFromString("0.05")
	taxMultiplier = decimal.NewFromInt(1).Add(taxRate)
)

//go:embed templates/invoice.html.tmpl
var invoiceTemplateSource string

var invoiceTemplate = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
	"date": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("02 Jan 2006")
	},
}).Parse(invoiceTemplateSource))

// ResolvePrice is the only place a line price is chosen. The locked price wins over
// everything else; a zero or missing value falls through to the next source.
func ResolvePrice(item domain.OrderItem, catalog PriceLookup) decimal.Decimal {
	if item.PriceAtOrder.Valid && !item.PriceAtOrder.Decimal.IsZero() {
		return item.PriceAtOrder.Decimal
	}
	if item.PricePerUnit.Valid && !item.PricePerUnit.Decimal.IsZero() {
		return item.PricePerUnit.Decimal
	}
	if catalog != nil {
		if price, ok := catalog.Price(item.ProductID); ok && !price.IsZero() {
			return price
		}
	}
	return decimal.Zero
}

type InvoiceLine struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

type Invoice struct {
	Number     string              `json:"number"`
	OrderID    domain.ID           `json:"order_id"`
	BillDate   time.Time           `json:"bill_date"`
	DueDate    *time.Time          `json:"due_date,omitempty"`
	Hotel      domain.HotelProfile `json:"hotel"`
	Lines      []InvoiceLine       `json:"lines"`
	Subtotal   decimal.Decimal     `json:"subtotal"`
	Tax        decimal.Decimal     `json:"tax"`
	GrandTotal decimal.Decimal     `json:"grand_total"`
	Paid       bool                `json:"paid"`
}

// BuildInvoice prices a bill. Lines come from the bill, then from the linked order, and
// when neither has items a single line for the bill total is used.
func BuildInvoice(bill domain.Bill, order *domain.Order, profile domain.HotelProfile, catalog PriceLookup) *Invoice {
	items := bill.Items
	if len(items) == 0 && order != nil {
		items = order.Items
	}

	lines := make([]InvoiceLine, 0, len(items))
	for _, item := range items {
		price := ResolvePrice(item, catalog)
		name := item.ProductName
		if name == "" {
			name = UnknownProductName
		}
		unit := item.UnitType
		if unit == "" {
			unit = UnknownProductUnit
		}
		lines = append(lines, InvoiceLine{
			Description: name,
			Quantity:    item.Quantity,
			Unit:        unit,
			UnitPrice:   price,
			Amount:      item.Quantity.Mul(price),
		})
	}

	orderID := bill.OrderID
	if orderID == "" && order != nil {
		orderID = order.ID
	}

	if len(lines) == 0 {
		total := bill.Total()
		lines = append(lines, InvoiceLine{
			Description: fmt.Sprintf("Order #%s - Vegetables Supply", orderID),
			Quantity:    decimal.NewFromInt(1),
			Unit:        UnknownProductUnit,
			UnitPrice:   total,
			Amount:      total,
		})
	}

	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Amount)
	}
	tax, grand := InvoiceTotals(subtotal)

	return &Invoice{
		Number:     bill.Key().String(),
		OrderID:    orderID,
		BillDate:   bill.BillDate.Time,
		DueDate:    bill.DueDate.Ptr(),
		Hotel:      profile,
		Lines:      lines,
		Subtotal:   subtotal.Round(2),
		Tax:        tax,
		GrandTotal: grand,
		Paid:       bill.IsPaid(),
	}
}

// InvoiceTotals applies the fixed 5% addition. Both results are rounded to cents.
func InvoiceTotals(subtotal decimal.Decimal) (tax, grandTotal decimal.Decimal) {
	grandTotal = subtotal.Mul(taxMultiplier).Round(2)
	tax = grandTotal.Sub(subtotal.Round(2))
	return tax, grandTotal
}

type DefaultQRGenerator struct{}

func (DefaultQRGenerator) Generate(content string) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, 256)
}

// InvoiceRenderer turns an invoice into a standalone HTML page with inline styles and an
// embedded QR code pointing back at the bill.
type InvoiceRenderer struct {
	qr      QRGenerator
	baseURL string
}

func NewInvoiceRenderer(qr QRGenerator, baseURL string) *InvoiceRenderer {
	return &InvoiceRenderer{qr: qr, baseURL: strings.TrimRight(baseURL, "/")}
}

func (r *InvoiceRenderer) BillLink(billID domain.ID) string {
	return fmt.Sprintf("%s/bills/%s", r.baseURL, billID)
}

func (r *InvoiceRenderer) Render(invoice *Invoice) ([]byte, error) {
	view := struct {
		*Invoice
		QRCode template.URL
		Link   string
	}{Invoice: invoice, Link: r.BillLink(domain.ID(invoice.Number))}

	if r.qr != nil {
		png, err := r.qr.Generate(view.Link)
		if err != nil {
			log.Printf("[portal-svc] invoice %s: qr code: %v", invoice.Number, err)
		} else {
			view.QRCode = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
		}
	}

	var buf bytes.Buffer
	if err := invoiceTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("render invoice %s: %w", invoice.Number, err)
	}
	return buf.Bytes(), nil
}

package services

import (
	"bytes"
	"fmt"
	"html/template"

	"sales_demarcation_go/models"

	"gorm.io/gorm"
)

// GetInvoices returns all invoices, newest first
func GetInvoices(db *gorm.DB) ([]models.Invoice, error) {
	var rows []models.Invoice
	err := db.Preload("Agency").Preload("Distributor").
		Order("invoice_date DESC").
		Find(&rows).Error
	return rows, err
}

// GetInvoiceByID returns a single invoice with its lines
func GetInvoiceByID(db *gorm.DB, id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	err := db.Preload("Agency").Preload("Distributor").Preload("Lines").
		First(&invoice, id).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// GetInvoicesByAgency returns all invoices of an agency, newest first
func GetInvoicesByAgency(db *gorm.DB, agencyID uint) ([]models.Invoice, error) {
	var rows []models.Invoice
	err := db.Preload("Distributor").
		Where("agency_id = ?", agencyID).
		Order("invoice_date DESC").
		Find(&rows).Error
	return rows, err
}

var invoiceTemplate = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
body { font-family: Helvetica, Arial, sans-serif; font-size: 12px; color: #222; }
h1 { font-size: 20px; margin-bottom: 0; }
.meta { margin: 12px 0 24px 0; }
.meta td { padding: 2px 16px 2px 0; }
table.lines { width: 100%; border-collapse: collapse; }
table.lines th, table.lines td { border: 1px solid #999; padding: 6px 8px; text-align: left; }
table.lines th { background: #eee; }
.amount { text-align: right; }
.total { font-weight: bold; }
</style>
</head>
<body>
<h1>Invoice {{.Invoice.InvoiceNo}}</h1>
<table class="meta">
<tr><td>Date</td><td>{{.Invoice.InvoiceDate.Format "2006-01-02"}}</td></tr>
{{if .Invoice.Agency}}<tr><td>Agency</td><td>{{.Invoice.Agency.AgencyName}} ({{.Invoice.Agency.AgencyCode}})</td></tr>{{end}}
{{if .Invoice.Distributor}}<tr><td>Distributor</td><td>{{.Invoice.Distributor.DistributorName}}</td></tr>{{end}}
<tr><td>Status</td><td>{{.Invoice.Status}}</td></tr>
</table>
<table class="lines">
<tr><th>Product</th><th class="amount">Qty</th><th class="amount">Unit Price</th><th class="amount">Amount</th></tr>
{{range .Invoice.Lines}}
<tr><td>{{.ProductName}}</td><td class="amount">{{printf "%.2f" .Quantity}}</td><td class="amount">{{printf "%.2f" .UnitPrice}}</td><td class="amount">{{printf "%.2f" .Amount}}</td></tr>
{{end}}
<tr class="total"><td colspan="3">Total</td><td class="amount">{{printf "%.2f" .Invoice.TotalAmount}}</td></tr>
</table>
</body>
</html>`))

// RenderInvoiceHTML builds the printable HTML view of an invoice
func RenderInvoiceHTML(invoice *models.Invoice) (string, error) {
	var buf bytes.Buffer
	if err := invoiceTemplate.Execute(&buf, map[string]interface{}{"Invoice": invoice}); err != nil {
		return "", fmt.Errorf("failed to render invoice HTML: %w", err)
	}
	return buf.String(), nil
}

// GenerateInvoicePDF renders an invoice to a PDF document
func GenerateInvoicePDF(invoice *models.Invoice) ([]byte, error) {
	html, err := RenderInvoiceHTML(invoice)
	if err != nil {
		return nil, err
	}
	return GeneratePDF(html, DefaultPDFOptions())
}

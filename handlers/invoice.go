package handlers

import (
	"fmt"
	"io"
	"net/http"

	"sales_demarcation_go/db"
	"sales_demarcation_go/services"

	"github.com/labstack/echo/v4"
)

// GetInvoicesHandler lists all invoices
// GET /api/v1/sales/invoice
func GetInvoicesHandler(c echo.Context) error {
	rows, err := services.GetInvoices(db.DB)
	if err != nil {
		return respondMessage(c, http.StatusInternalServerError, "Could not load invoices.")
	}
	return respondPayload(c, http.StatusOK, rows)
}

// GetInvoiceByIDHandler returns one invoice with its lines
// GET /api/v1/sales/invoice/findById/:id
func GetInvoiceByIDHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondMessage(c, http.StatusBadRequest, "Invalid invoice id.")
	}

	invoice, err := services.GetInvoiceByID(db.DB, id)
	if err != nil {
		return respondMessage(c, http.StatusNotFound, "Invoice not found.")
	}
	return respondPayload(c, http.StatusOK, invoice)
}

// GetInvoicesByAgencyHandler lists invoices for one agency
// GET /api/v1/sales/invoice/byAgencyId/:parentId
func GetInvoicesByAgencyHandler(c echo.Context) error {
	agencyID, err := parseParentID(c)
	if err != nil {
		return respondMessage(c, http.StatusBadRequest, "Invalid agency id.")
	}

	rows, err := services.GetInvoicesByAgency(db.DB, agencyID)
	if err != nil {
		return respondMessage(c, http.StatusInternalServerError, "Could not load invoices.")
	}
	return respondPayload(c, http.StatusOK, rows)
}

// DownloadInvoiceDocumentHandler streams the stored source document
// GET /api/v1/sales/invoice/:id/document
func DownloadInvoiceDocumentHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondMessage(c, http.StatusBadRequest, "Invalid invoice id.")
	}

	invoice, err := services.GetInvoiceByID(db.DB, id)
	if err != nil {
		return respondMessage(c, http.StatusNotFound, "Invoice not found.")
	}
	if invoice.DocumentKey == "" {
		return respondMessage(c, http.StatusNotFound, "No document attached to this invoice.")
	}
	if services.Storage == nil {
		return respondMessage(c, http.StatusServiceUnavailable, "Document storage is not available.")
	}

	body, contentType, err := services.Storage.Get(c.Request().Context(), invoice.DocumentKey)
	if err != nil {
		return respondMessage(c, http.StatusNotFound, "Document could not be retrieved.")
	}
	defer body.Close()

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Response().Header().Set(echo.HeaderContentType, contentType)
	c.Response().WriteHeader(http.StatusOK)
	_, err = io.Copy(c.Response(), body)
	return err
}

// DownloadInvoicePDFHandler renders the invoice to PDF
// GET /api/v1/sales/invoice/:id/pdf
func DownloadInvoicePDFHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondMessage(c, http.StatusBadRequest, "Invalid invoice id.")
	}

	invoice, err := services.GetInvoiceByID(db.DB, id)
	if err != nil {
		return respondMessage(c, http.StatusNotFound, "Invoice not found.")
	}

	pdf, err := services.GenerateInvoicePDF(invoice)
	if err != nil {
		return respondMessage(c, http.StatusInternalServerError, "Could not generate invoice PDF.")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s.pdf"`, invoice.InvoiceNo))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

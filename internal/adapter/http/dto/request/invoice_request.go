package request

import (
	"taller_xpto/internal/domain/classification"
	"taller_xpto/internal/usecase"

	"github.com/shopspring/decimal"
)

type InvoiceLineRequest struct {
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	IsNew       bool            `json:"is_new"`
}

// InvoiceRequest is one invoice as returned by the external invoice parser.
type InvoiceRequest struct {
	Folio        string               `json:"folio" binding:"required"`
	SupplierName string               `json:"supplier_name"`
	SupplierRFC  string               `json:"supplier_rfc" binding:"required"`
	Lines        []InvoiceLineRequest `json:"lines"`
}

type IngestInvoicesRequest struct {
	Invoices       []InvoiceRequest `json:"invoices"`
	ConfirmDiscard bool             `json:"confirm_discard"`
}

type ClassificationRequest struct {
	Division      string          `json:"division"`
	Line          string          `json:"line"`
	Class         string          `json:"class"`
	Subclass      string          `json:"subclass"`
	MarginPercent decimal.Decimal `json:"margin_percent"`
}

func (r IngestInvoicesRequest) ToCommand() usecase.IngestCommand {
	cmd := usecase.IngestCommand{
		Invoices:       make([]usecase.InvoiceInput, 0, len(r.Invoices)),
		ConfirmDiscard: r.ConfirmDiscard,
	}
	for _, inv := range r.Invoices {
		lines := make([]usecase.InvoiceLineInput, 0, len(inv.Lines))
		for _, l := range inv.Lines {
			lines = append(lines, usecase.InvoiceLineInput{
				Description: l.Description,
				Quantity:    l.Quantity,
				UnitPrice:   l.UnitPrice,
				IsNew:       l.IsNew,
			})
		}
		cmd.Invoices = append(cmd.Invoices, usecase.InvoiceInput{
			Folio:        inv.Folio,
			SupplierName: inv.SupplierName,
			SupplierRFC:  inv.SupplierRFC,
			Lines:        lines,
		})
	}
	return cmd
}

func (r ClassificationRequest) ToManualInput() classification.ManualInput {
	return classification.ManualInput{
		Division:      r.Division,
		Line:          r.Line,
		Class:         r.Class,
		Subclass:      r.Subclass,
		MarginPercent: r.MarginPercent,
	}
}

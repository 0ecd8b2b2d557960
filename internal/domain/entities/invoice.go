package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClassificationStatus tracks an invoice line item through the classification pipeline.
//
//	pending -> found (catalog match) | not_found (manual/auto classification) -> processed
type ClassificationStatus string

const (
	ClassificationPending   ClassificationStatus = "pending"
	ClassificationFound     ClassificationStatus = "found"
	ClassificationNotFound  ClassificationStatus = "not_found"
	ClassificationProcessed ClassificationStatus = "processed"
)

// Invoice is a supplier invoice attached to an order.
type Invoice struct {
	ID           string          `json:"id"`
	OrderID      string          `json:"order_id"`
	Folio        string          `json:"folio"`
	SupplierName string          `json:"supplier_name"`
	SupplierRFC  string          `json:"supplier_rfc"`
	Total        decimal.Decimal `json:"total"`
	UploadedAt   time.Time       `json:"uploaded_at"`
}

// SKUPair is the internal SKU generated for a processed line item.
type SKUPair struct {
	Original string `json:"original"`
	Final    string `json:"final"`
}

// InvoiceLineItem is one product line of a supplier invoice.
//
// Storage model (DynamoDB):
//   - PK: order_id
//   - SK: id
type InvoiceLineItem struct {
	ID           string               `json:"id"`
	OrderID      string               `json:"order_id"`
	InvoiceID    string               `json:"invoice_id"`
	Description  string               `json:"description"`
	Quantity     decimal.Decimal      `json:"quantity"`
	UnitPrice    decimal.Decimal      `json:"unit_price"`
	SupplierName string               `json:"supplier_name"`
	Status       ClassificationStatus `json:"status"`
	// IsNew marks products the supplier declared as new; they skip the catalog lookup and
	// wait in the manual classification queue.
	IsNew bool `json:"is_new"`
	// LineNumber is the ingestion order of the line within the order; storage returns lines sorted by it.
	LineNumber int `json:"line_number"`

	Division      string          `json:"division,omitempty"`
	Line          string          `json:"line,omitempty"`
	Class         string          `json:"class,omitempty"`
	Subclass      string          `json:"subclass,omitempty"`
	MarginPercent decimal.Decimal `json:"margin_percent"`
	Price         decimal.Decimal `json:"price"`
	CatalogSKU    string          `json:"catalog_sku,omitempty"`
	SKU           *SKUPair        `json:"sku,omitempty"`

	// Sequence is assigned when the item is classified (found or not_found) and drives SKU numbering.
	Sequence     int        `json:"sequence"`
	ClassifiedAt *time.Time `json:"classified_at,omitempty"`
	ProcessedAt  *time.Time `json:"processed_at,omitempty"`
}

// CatalogEntry is a known product of the shop catalog.
type CatalogEntry struct {
	Description   string          `json:"description"`
	SKU           string          `json:"sku"`
	Division      string          `json:"division"`
	Line          string          `json:"line"`
	Class         string          `json:"class"`
	Subclass      string          `json:"subclass"`
	MarginPercent decimal.Decimal `json:"margin_percent"`
}

// Supplier is an entry of the supplier registry, keyed by RFC.
type Supplier struct {
	RFC    string `json:"rfc"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// SupplierGroup is derived on demand and never stored.
type SupplierGroup struct {
	SupplierName string            `json:"supplier_name"`
	Items        []InvoiceLineItem `json:"items"`
	Total        decimal.Decimal   `json:"total"`
}

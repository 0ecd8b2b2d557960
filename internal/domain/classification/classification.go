// Package classification turns supplier invoice lines into catalog-classified, priced products.
package classification

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"taller_xpto/internal/domain/entities"
	"taller_xpto/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

// Default taxonomy assigned to lines with no catalog match.
const (
	DefaultDivision = "0134"
	DefaultLine     = "260"
	DefaultClass    = "271"
)

var ErrAlreadyProcessed = errors.New("line item already processed")

// ClassificationIncompleteError lists the manual classification fields that are missing or invalid.
type ClassificationIncompleteError struct {
	FieldsMissing []string
}

func (e *ClassificationIncompleteError) Error() string {
	return fmt.Sprintf("classification incomplete: %s", strings.Join(e.FieldsMissing, ", "))
}

// ManualInput is the taxonomy and margin typed by the classifier.
type ManualInput struct {
	Division      string
	Line          string
	Class         string
	Subclass      string
	MarginPercent decimal.Decimal
}

// Validate reports every missing taxonomy field and a non-positive margin at once.
func (in ManualInput) Validate() error {
	var missing []string
	if strings.TrimSpace(in.Division) == "" {
		missing = append(missing, "division")
	}
	if strings.TrimSpace(in.Line) == "" {
		missing = append(missing, "line")
	}
	if strings.TrimSpace(in.Class) == "" {
		missing = append(missing, "class")
	}
	if strings.TrimSpace(in.Subclass) == "" {
		missing = append(missing, "subclass")
	}
	if !in.MarginPercent.IsPositive() {
		missing = append(missing, "margin_percent")
	}
	if len(missing) > 0 {
		return &ClassificationIncompleteError{FieldsMissing: missing}
	}
	return nil
}

// SequenceName is the store counter that numbers the classified lines of an order.
func SequenceName(orderID string) string {
	return "line_item_sku:" + orderID
}

func stamp(item *entities.InvoiceLineItem, seq int, at time.Time) {
	if item.Sequence == 0 {
		item.Sequence = seq
	}
	item.ClassifiedAt = &at
}

// ApplyCatalogMatch marks item as found, copying the catalog taxonomy, SKU and margin.
func ApplyCatalogMatch(item entities.InvoiceLineItem, entry entities.CatalogEntry, seq int, at time.Time) entities.InvoiceLineItem {
	item.Status = entities.ClassificationFound
	item.Division = entry.Division
	item.Line = entry.Line
	item.Class = entry.Class
	item.Subclass = entry.Subclass
	item.CatalogSKU = entry.SKU
	item.MarginPercent = entry.MarginPercent
	item.Price = pricing.MarkupPrice(item.UnitPrice, entry.MarginPercent)
	stamp(&item, seq, at)
	return item
}

// AutoClassify parks an unmatched line as not_found with the default taxonomy and no margin.
// The line stays unpriced until someone corrects it manually.
func AutoClassify(item entities.InvoiceLineItem, seq int, at time.Time) entities.InvoiceLineItem {
	item.Status = entities.ClassificationNotFound
	item.Division = DefaultDivision
	item.Line = DefaultLine
	item.Class = DefaultClass
	item.Subclass = ""
	item.CatalogSKU = ""
	item.MarginPercent = decimal.Zero
	item.Price = decimal.Zero
	stamp(&item, seq, at)
	return item
}

// Classify applies a manual classification: price = cost * (1 + margin/100).
func Classify(item entities.InvoiceLineItem, in ManualInput, seq int, at time.Time) (entities.InvoiceLineItem, error) {
	if item.Status == entities.ClassificationProcessed {
		return item, ErrAlreadyProcessed
	}
	if err := in.Validate(); err != nil {
		return item, err
	}
	item.Status = entities.ClassificationNotFound
	item.Division = strings.TrimSpace(in.Division)
	item.Line = strings.TrimSpace(in.Line)
	item.Class = strings.TrimSpace(in.Class)
	item.Subclass = strings.TrimSpace(in.Subclass)
	item.MarginPercent = in.MarginPercent
	item.Price = pricing.MarkupPrice(item.UnitPrice, in.MarginPercent)
	stamp(&item, seq, at)
	return item, nil
}

// GenerateSKU derives the internal SKU pair from the class and sequence number.
func GenerateSKU(class string, index, year int) entities.SKUPair {
	prefix := []rune(strings.ToUpper(strings.TrimSpace(class)))
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	cls := string(prefix)
	seq := strconv.Itoa(index)
	return entities.SKUPair{
		Original: cls + seq,
		Final:    cls + "-" + seq + "-" + strconv.Itoa(year),
	}
}

// Process assigns the internal SKU to a classified line. Already processed lines are returned
// unchanged with changed=false; pending lines cannot be processed.
func Process(item entities.InvoiceLineItem, at time.Time) (entities.InvoiceLineItem, bool) {
	switch item.Status {
	case entities.ClassificationFound, entities.ClassificationNotFound:
	default:
		return item, false
	}
	sku := GenerateSKU(item.Class, item.Sequence, at.Year())
	item.SKU = &sku
	item.Status = entities.ClassificationProcessed
	item.ProcessedAt = &at
	return item, true
}

// GroupBySupplier totals processed and not_found lines per supplier. Pending and found lines
// are left out. Groups are ordered by supplier name; lines keep their input order.
func GroupBySupplier(items []entities.InvoiceLineItem, invoices []entities.Invoice) []entities.SupplierGroup {
	supplierByInvoice := make(map[string]string, len(invoices))
	for _, inv := range invoices {
		supplierByInvoice[inv.ID] = inv.SupplierName
	}

	index := map[string]int{}
	var groups []entities.SupplierGroup
	for _, it := range items {
		if it.Status != entities.ClassificationProcessed && it.Status != entities.ClassificationNotFound {
			continue
		}
		name := it.SupplierName
		if n, ok := supplierByInvoice[it.InvoiceID]; ok && n != "" {
			name = n
		}
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, entities.SupplierGroup{SupplierName: name, Total: decimal.Zero})
		}
		groups[i].Items = append(groups[i].Items, it)
		groups[i].Total = groups[i].Total.Add(it.Price.Mul(it.Quantity))
	}

	sort.SliceStable(groups, func(i, j int) bool { return groups[i].SupplierName < groups[j].SupplierName })
	return groups
}

// GrandTotal sums the totals of every group.
func GrandTotal(groups []entities.SupplierGroup) decimal.Decimal {
	total := decimal.Zero
	for _, g := range groups {
		total = total.Add(g.Total)
	}
	return total
}

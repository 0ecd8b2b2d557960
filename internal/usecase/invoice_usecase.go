package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taller_xpto/internal/domain/classification"
	"taller_xpto/internal/domain/entities"
	"taller_xpto/internal/domain/lifecycle"
	"taller_xpto/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrNoInvoices         = errors.New("no invoices submitted")
	ErrInvalidInvoice     = errors.New("invalid invoice")
	ErrInvalidLineItemID  = errors.New("invalid line item id")
	ErrLineItemNotFound   = errors.New("line item not found")
	ErrNoLineItems        = errors.New("order has no invoice line items")
	ErrInvalidQueueCursor = errors.New("invalid classification queue cursor")
)

// SupplierNotRegisteredError lists the invoices whose supplier is unknown or inactive.
// It is returned as-is when no invoice of the submission can be accepted.
type SupplierNotRegisteredError struct {
	Invoices []DiscardedInvoice
}

func (e *SupplierNotRegisteredError) Error() string {
	return fmt.Sprintf("supplier not registered for invoices: %s", strings.Join(folios(e.Invoices), ", "))
}

// DiscardConfirmationRequiredError is returned when some invoices would be discarded and the
// caller did not confirm it.
type DiscardConfirmationRequiredError struct {
	Invoices []DiscardedInvoice
}

func (e *DiscardConfirmationRequiredError) Error() string {
	return fmt.Sprintf("confirm discarding invoices with unregistered suppliers: %s", strings.Join(folios(e.Invoices), ", "))
}

// PendingClassificationError blocks processing while lines still wait for classification.
type PendingClassificationError struct {
	LineItemIDs []string
}

func (e *PendingClassificationError) Error() string {
	return fmt.Sprintf("%d line items are still pending classification", len(e.LineItemIDs))
}

func folios(in []DiscardedInvoice) []string {
	out := make([]string, 0, len(in))
	for _, d := range in {
		out = append(out, d.Folio)
	}
	return out
}

// InvoiceLineInput is one parsed product line of a supplier invoice.
type InvoiceLineInput struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	IsNew       bool
}

// InvoiceInput is one supplier invoice as produced by the external parser.
type InvoiceInput struct {
	Folio        string
	SupplierName string
	SupplierRFC  string
	Lines        []InvoiceLineInput
}

type IngestCommand struct {
	Invoices       []InvoiceInput
	ConfirmDiscard bool
}

// DiscardedInvoice identifies an invoice excluded from persistence.
type DiscardedInvoice struct {
	Folio       string `json:"folio"`
	SupplierRFC string `json:"supplier_rfc"`
	Reason      string `json:"reason"`
}

type IngestResult struct {
	Order     entities.Order             `json:"order"`
	Accepted  []entities.Invoice         `json:"accepted"`
	Discarded []DiscardedInvoice         `json:"discarded"`
	LineItems []entities.InvoiceLineItem `json:"line_items"`
}

type ValidateResult struct {
	Found     int                        `json:"found"`
	NotFound  int                        `json:"not_found"`
	Pending   int                        `json:"pending"`
	LineItems []entities.InvoiceLineItem `json:"line_items"`
}

type ProcessResult struct {
	Order     entities.Order             `json:"order"`
	Processed int                        `json:"processed"`
	LineItems []entities.InvoiceLineItem `json:"line_items"`
}

// IInvoiceUseCase drives the invoice ingestion and classification pipeline.
type IInvoiceUseCase interface {
	Ingest(ctx context.Context, id string, role entities.Role, cmd IngestCommand) (IngestResult, error)
	Validate(ctx context.Context, id string, role entities.Role) (ValidateResult, error)
	Classify(ctx context.Context, id string, role entities.Role, lineItemID string, in classification.ManualInput) (entities.InvoiceLineItem, error)
	GetClassificationQueue(ctx context.Context, id string, role entities.Role, cursor int) (classification.QueuePage, error)
	Process(ctx context.Context, id string, role entities.Role) (ProcessResult, error)
	ListLineItems(ctx context.Context, id string, role entities.Role) ([]entities.InvoiceLineItem, error)
}

type InvoiceUseCase struct {
	orderGuard
	lineItems interfaces.IInvoiceLineItemRepository
	catalog   interfaces.ICatalogRepository
	suppliers interfaces.ISupplierRepository
	sequences interfaces.ISequenceRepository
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(
	orders interfaces.IOrderRepository,
	lineItems interfaces.IInvoiceLineItemRepository,
	catalog interfaces.ICatalogRepository,
	suppliers interfaces.ISupplierRepository,
	sequences interfaces.ISequenceRepository,
	machine *lifecycle.Machine,
	logger *zap.Logger,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		orderGuard: newOrderGuard(orders, machine, logger),
		lineItems:  lineItems,
		catalog:    catalog,
		suppliers:  suppliers,
		sequences:  sequences,
	}
}

// sequenceFor keeps an already numbered line and draws a fresh number from the order's
// store counter otherwise.
func (u *InvoiceUseCase) sequenceFor(ctx context.Context, orderID string, item entities.InvoiceLineItem) (int, error) {
	if item.Sequence > 0 {
		return item.Sequence, nil
	}
	n, err := u.sequences.Next(ctx, classification.SequenceName(orderID))
	if err != nil {
		u.logger.Error("[invoice][usecase] sequence failed",
			zap.String("order_id", orderID),
			zap.String("line_item_id", item.ID),
			zap.Error(err),
		)
		return 0, err
	}
	return int(n), nil
}

func (u *InvoiceUseCase) Ingest(ctx context.Context, id string, role entities.Role, cmd IngestCommand) (IngestResult, error) {
	order, err := u.require(ctx, id, role, entities.PhaseInvoiceUpload, lifecycle.ActionEdit)
	if err != nil {
		return IngestResult{}, err
	}
	if len(cmd.Invoices) == 0 {
		return IngestResult{}, ErrNoInvoices
	}
	for i, inv := range cmd.Invoices {
		if err := validateInvoiceInput(inv); err != nil {
			return IngestResult{}, fmt.Errorf("%w: invoice %d: %v", ErrInvalidInvoice, i, err)
		}
	}

	var accepted []InvoiceInput
	var discarded []DiscardedInvoice
	for _, inv := range cmd.Invoices {
		rfc := strings.ToUpper(strings.TrimSpace(inv.SupplierRFC))
		active, err := u.suppliers.IsActive(ctx, rfc)
		if err != nil {
			u.logger.Error("[invoice][usecase] supplier lookup failed", zap.String("order_id", order.ID), zap.String("rfc", rfc), zap.Error(err))
			return IngestResult{}, err
		}
		if !active {
			discarded = append(discarded, DiscardedInvoice{
				Folio:       strings.TrimSpace(inv.Folio),
				SupplierRFC: rfc,
				Reason:      "supplier not registered or inactive",
			})
			continue
		}
		accepted = append(accepted, inv)
	}

	if len(accepted) == 0 {
		return IngestResult{}, &SupplierNotRegisteredError{Invoices: discarded}
	}
	if len(discarded) > 0 && !cmd.ConfirmDiscard {
		return IngestResult{}, &DiscardConfirmationRequiredError{Invoices: discarded}
	}

	existing, err := u.lineItems.ListByOrderID(ctx, order.ID)
	if err != nil {
		return IngestResult{}, err
	}
	lineNumber := len(existing)

	now := u.now()
	invoices := make([]entities.Invoice, 0, len(accepted))
	var items []entities.InvoiceLineItem
	for _, in := range accepted {
		inv := entities.Invoice{
			ID:           u.newID(),
			OrderID:      order.ID,
			Folio:        strings.TrimSpace(in.Folio),
			SupplierName: strings.TrimSpace(in.SupplierName),
			SupplierRFC:  strings.ToUpper(strings.TrimSpace(in.SupplierRFC)),
			Total:        decimal.Zero,
			UploadedAt:   now,
		}
		for _, l := range in.Lines {
			lineNumber++
			items = append(items, entities.InvoiceLineItem{
				ID:           u.newID(),
				OrderID:      order.ID,
				InvoiceID:    inv.ID,
				Description:  strings.TrimSpace(l.Description),
				Quantity:     l.Quantity,
				UnitPrice:    l.UnitPrice,
				SupplierName: inv.SupplierName,
				Status:       entities.ClassificationPending,
				IsNew:        l.IsNew,
				LineNumber:   lineNumber,
			})
			inv.Total = inv.Total.Add(l.Quantity.Mul(l.UnitPrice))
		}
		invoices = append(invoices, inv)
	}

	if err := u.lineItems.SaveAll(ctx, items); err != nil {
		u.logger.Error("[invoice][usecase] saving line items failed", zap.String("order_id", order.ID), zap.Error(err))
		return IngestResult{}, err
	}

	order.Invoices = append(order.Invoices, invoices...)
	order.Status = lifecycle.StatusForPhase(entities.PhaseProductClassification)
	order.UpdatedAt = now
	updated, err := u.orders.Update(ctx, order)
	if err != nil {
		return IngestResult{}, err
	}
	if updated.ID == "" {
		return IngestResult{}, ErrOrderNotFound
	}

	u.logger.Info("[invoice][usecase] invoices ingested",
		zap.String("order_id", order.ID),
		zap.String("role", string(role)),
		zap.Int("accepted", len(invoices)),
		zap.Int("discarded", len(discarded)),
		zap.Int("line_items", len(items)),
	)
	return IngestResult{Order: updated, Accepted: invoices, Discarded: discarded, LineItems: items}, nil
}

func validateInvoiceInput(inv InvoiceInput) error {
	if strings.TrimSpace(inv.Folio) == "" {
		return errors.New("folio is required")
	}
	if strings.TrimSpace(inv.SupplierRFC) == "" {
		return errors.New("supplier_rfc is required")
	}
	if len(inv.Lines) == 0 {
		return errors.New("at least one line is required")
	}
	for i, l := range inv.Lines {
		if strings.TrimSpace(l.Description) == "" {
			return fmt.Errorf("line %d: description is required", i)
		}
		if !l.Quantity.IsPositive() {
			return fmt.Errorf("line %d: quantity must be greater than zero", i)
		}
		if !l.UnitPrice.IsPositive() {
			return fmt.Errorf("line %d: unit_price must be greater than zero", i)
		}
	}
	return nil
}

// Validate looks every pending line up in the catalog. Matches become found; misses are
// auto-classified as not_found. Lines flagged as new skip the lookup and stay queued.
func (u *InvoiceUseCase) Validate(ctx context.Context, id string, role entities.Role) (ValidateResult, error) {
	order, err := u.require(ctx, id, role, entities.PhaseProductClassification, lifecycle.ActionEdit)
	if err != nil {
		return ValidateResult{}, err
	}
	items, err := u.lineItems.ListByOrderID(ctx, order.ID)
	if err != nil {
		return ValidateResult{}, err
	}
	if len(items) == 0 {
		return ValidateResult{}, ErrNoLineItems
	}

	now := u.now()
	var changed []entities.InvoiceLineItem
	for i, it := range items {
		if it.IsNew || (it.Status != entities.ClassificationPending && it.Status != "") {
			continue
		}
		entry, err := u.catalog.FindByDescription(ctx, it.Description)
		if err != nil {
			u.logger.Error("[invoice][usecase] catalog lookup failed", zap.String("order_id", order.ID), zap.String("line_item_id", it.ID), zap.Error(err))
			return ValidateResult{}, err
		}
		seq, err := u.sequenceFor(ctx, order.ID, it)
		if err != nil {
			return ValidateResult{}, err
		}
		if entry.SKU != "" {
			items[i] = classification.ApplyCatalogMatch(it, entry, seq, now)
		} else {
			items[i] = classification.AutoClassify(it, seq, now)
		}
		changed = append(changed, items[i])
	}

	if len(changed) > 0 {
		if err := u.lineItems.SaveAll(ctx, changed); err != nil {
			return ValidateResult{}, err
		}
	}

	res := ValidateResult{LineItems: items}
	for _, it := range items {
		switch it.Status {
		case entities.ClassificationFound:
			res.Found++
		case entities.ClassificationNotFound:
			res.NotFound++
		case entities.ClassificationPending, "":
			res.Pending++
		}
	}
	u.logger.Info("[invoice][usecase] line items validated",
		zap.String("order_id", order.ID),
		zap.Int("found", res.Found),
		zap.Int("not_found", res.NotFound),
		zap.Int("pending", res.Pending),
	)
	return res, nil
}

func (u *InvoiceUseCase) Classify(ctx context.Context, id string, role entities.Role, lineItemID string, in classification.ManualInput) (entities.InvoiceLineItem, error) {
	lineItemID = strings.TrimSpace(lineItemID)
	if lineItemID == "" {
		return entities.InvoiceLineItem{}, ErrInvalidLineItemID
	}
	order, err := u.require(ctx, id, role, entities.PhaseProductClassification, lifecycle.ActionEdit)
	if err != nil {
		return entities.InvoiceLineItem{}, err
	}
	items, err := u.lineItems.ListByOrderID(ctx, order.ID)
	if err != nil {
		return entities.InvoiceLineItem{}, err
	}

	idx := -1
	for i, it := range items {
		if it.ID == lineItemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entities.InvoiceLineItem{}, ErrLineItemNotFound
	}

	if items[idx].Status == entities.ClassificationProcessed {
		return entities.InvoiceLineItem{}, classification.ErrAlreadyProcessed
	}
	if err := in.Validate(); err != nil {
		return entities.InvoiceLineItem{}, err
	}
	seq, err := u.sequenceFor(ctx, order.ID, items[idx])
	if err != nil {
		return entities.InvoiceLineItem{}, err
	}
	classified, err := classification.Classify(items[idx], in, seq, u.now())
	if err != nil {
		return entities.InvoiceLineItem{}, err
	}
	if err := u.lineItems.SaveAll(ctx, []entities.InvoiceLineItem{classified}); err != nil {
		return entities.InvoiceLineItem{}, err
	}
	u.logger.Info("[invoice][usecase] line item classified",
		zap.String("order_id", order.ID),
		zap.String("line_item_id", classified.ID),
		zap.Int("sequence", classified.Sequence),
		zap.String("price", classified.Price.StringFixed(2)),
	)
	return classified, nil
}

func (u *InvoiceUseCase) GetClassificationQueue(ctx context.Context, id string, role entities.Role, cursor int) (classification.QueuePage, error) {
	if cursor < 0 {
		return classification.QueuePage{}, ErrInvalidQueueCursor
	}
	order, _, err := u.view(ctx, id, role)
	if err != nil {
		return classification.QueuePage{}, err
	}
	items, err := u.lineItems.ListByOrderID(ctx, order.ID)
	if err != nil {
		return classification.QueuePage{}, err
	}
	return classification.At(classification.PendingQueue(items), cursor), nil
}

// Process generates internal SKUs for every classified line and moves the order to the
// pre-purchase-order validation. Lines already processed are left untouched.
func (u *InvoiceUseCase) Process(ctx context.Context, id string, role entities.Role) (ProcessResult, error) {
	order, err := u.require(ctx, id, role, entities.PhaseProductProcessing, lifecycle.ActionEdit)
	if err != nil {
		return ProcessResult{}, err
	}
	items, err := u.lineItems.ListByOrderID(ctx, order.ID)
	if err != nil {
		return ProcessResult{}, err
	}
	if len(items) == 0 {
		return ProcessResult{}, ErrNoLineItems
	}
	if pending := classification.PendingQueue(items); len(pending) > 0 {
		ids := make([]string, 0, len(pending))
		for _, it := range pending {
			ids = append(ids, it.ID)
		}
		return ProcessResult{}, &PendingClassificationError{LineItemIDs: ids}
	}

	now := u.now()
	var changed []entities.InvoiceLineItem
	for i, it := range items {
		processed, ok := classification.Process(it, now)
		if !ok {
			continue
		}
		items[i] = processed
		changed = append(changed, processed)
	}
	if len(changed) > 0 {
		if err := u.lineItems.SaveAll(ctx, changed); err != nil {
			return ProcessResult{}, err
		}
	}

	updated, err := u.orders.UpdateStatus(ctx, order.ID, lifecycle.StatusForPhase(entities.PhasePrePurchaseOrderValidation))
	if err != nil {
		return ProcessResult{}, err
	}
	if updated.ID == "" {
		return ProcessResult{}, ErrOrderNotFound
	}
	u.logger.Info("[invoice][usecase] line items processed",
		zap.String("order_id", order.ID),
		zap.String("role", string(role)),
		zap.Int("processed", len(changed)),
	)
	return ProcessResult{Order: updated, Processed: len(changed), LineItems: items}, nil
}

func (u *InvoiceUseCase) ListLineItems(ctx context.Context, id string, role entities.Role) ([]entities.InvoiceLineItem, error) {
	order, _, err := u.view(ctx, id, role)
	if err != nil {
		return nil, err
	}
	return u.lineItems.ListByOrderID(ctx, order.ID)
}

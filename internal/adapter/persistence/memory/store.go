// Package memory keeps every repository in process memory. It backs STORE_DRIVER=memory for
// local runs and the end-to-end tests of the order workflow.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"taller_xpto/internal/domain/entities"
	"taller_xpto/internal/usecase/interfaces"
)

// Store holds all tables behind one lock.
type Store struct {
	mu sync.RWMutex

	orders    map[string]entities.Order
	catalog   map[string]entities.CatalogEntry
	suppliers map[string]entities.Supplier
	sequences map[string]int64
	lostSales []entities.LostSaleRecord
	audits    []entities.AuthorizationAudit
	lineItems map[string]entities.InvoiceLineItem
	payments  []entities.DeliveryPayment
}

func NewStore() *Store {
	return &Store{
		orders:    map[string]entities.Order{},
		catalog:   map[string]entities.CatalogEntry{},
		suppliers: map[string]entities.Supplier{},
		sequences: map[string]int64{},
		lineItems: map[string]entities.InvoiceLineItem{},
	}
}

// SeedCatalog registers catalog products keyed by normalized description.
func (s *Store) SeedCatalog(entries ...entities.CatalogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range entries {
		s.catalog[catalogKey(e.Description)] = e
	}
}

func (s *Store) SeedSuppliers(suppliers ...entities.Supplier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sup := range suppliers {
		sup.RFC = strings.ToUpper(strings.TrimSpace(sup.RFC))
		s.suppliers[sup.RFC] = sup
	}
}

func (s *Store) Orders() *OrderRepository { return &OrderRepository{s} }
func (s *Store) Catalog() *CatalogRepository { return &CatalogRepository{s} }
func (s *Store) Suppliers() *SupplierRepository { return &SupplierRepository{s} }
func (s *Store) Sequences() *SequenceRepository { return &SequenceRepository{s} }
func (s *Store) LostSales() *LostSaleRepository { return &LostSaleRepository{s} }
func (s *Store) Audits() *AuthorizationAuditRepository { return &AuthorizationAuditRepository{s} }
func (s *Store) LineItems() *InvoiceLineItemRepository { return &InvoiceLineItemRepository{s} }
func (s *Store) DeliveryPayments() *DeliveryPaymentRepository { return &DeliveryPaymentRepository{s} }

var timeNow = time.Now

func catalogKey(description string) string {
	return strings.ToLower(strings.Join(strings.Fields(description), " "))
}

// OrderRepository stores deep copies so callers never share slices with the store.
type OrderRepository struct{ s *Store }

var _ interfaces.IOrderRepository = (*OrderRepository)(nil)

func (r *OrderRepository) Create(_ context.Context, o entities.Order) (entities.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.orders[o.ID]; ok {
		return entities.Order{}, fmt.Errorf("order %q already exists", o.ID)
	}
	r.s.orders[o.ID] = copyOrder(o)
	return copyOrder(o), nil
}

func (r *OrderRepository) GetByID(_ context.Context, id string) (entities.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	o, ok := r.s.orders[id]
	if !ok {
		return entities.Order{}, nil
	}
	return copyOrder(o), nil
}

func (r *OrderRepository) Update(_ context.Context, o entities.Order) (entities.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.orders[o.ID]
	if !ok {
		return entities.Order{}, nil
	}
	if cur.PurchaseOrderNumber != "" && cur.PurchaseOrderNumber != o.PurchaseOrderNumber {
		return entities.Order{}, interfaces.ErrPurchaseOrderNumberTaken
	}
	r.s.orders[o.ID] = copyOrder(o)
	return copyOrder(o), nil
}

func (r *OrderRepository) UpdateStatus(_ context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok {
		return entities.Order{}, nil
	}
	o.Status = status
	o.UpdatedAt = timeNow()
	r.s.orders[id] = o
	return copyOrder(o), nil
}

func (r *OrderRepository) SetPurchaseOrderNumber(_ context.Context, id, number string, status entities.OrderStatus) (entities.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok {
		return entities.Order{}, nil
	}
	if o.PurchaseOrderNumber != "" {
		return entities.Order{}, interfaces.ErrPurchaseOrderNumberTaken
	}
	o.PurchaseOrderNumber = number
	o.Status = status
	o.UpdatedAt = timeNow()
	r.s.orders[id] = o
	return copyOrder(o), nil
}

func copyOrder(o entities.Order) entities.Order {
	o.Parts = append([]entities.Part(nil), o.Parts...)
	o.Services = append([]entities.Service(nil), o.Services...)
	o.Findings = append([]entities.DiagnosticFinding(nil), o.Findings...)
	o.Invoices = append([]entities.Invoice(nil), o.Invoices...)
	if o.AuthorizedAt != nil {
		at := *o.AuthorizedAt
		o.AuthorizedAt = &at
	}
	return o
}

type CatalogRepository struct{ s *Store }

var _ interfaces.ICatalogRepository = (*CatalogRepository)(nil)

func (r *CatalogRepository) FindByDescription(_ context.Context, description string) (entities.CatalogEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.catalog[catalogKey(description)], nil
}

type SupplierRepository struct{ s *Store }

var _ interfaces.ISupplierRepository = (*SupplierRepository)(nil)

func (r *SupplierRepository) IsActive(_ context.Context, rfc string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sup, ok := r.s.suppliers[strings.ToUpper(strings.TrimSpace(rfc))]
	return ok && sup.Active, nil
}

type SequenceRepository struct{ s *Store }

var _ interfaces.ISequenceRepository = (*SequenceRepository)(nil)

func (r *SequenceRepository) Next(_ context.Context, name string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.sequences[name]++
	return r.s.sequences[name], nil
}

type LostSaleRepository struct{ s *Store }

var _ interfaces.ILostSaleRepository = (*LostSaleRepository)(nil)

func (r *LostSaleRepository) Append(_ context.Context, rec entities.LostSaleRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.lostSales = append(r.s.lostSales, rec)
	return nil
}

func (r *LostSaleRepository) ListByOrderID(_ context.Context, orderID string) ([]entities.LostSaleRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entities.LostSaleRecord{}
	for _, rec := range r.s.lostSales {
		if rec.OrderID == orderID {
			out = append(out, rec)
		}
	}
	return out, nil
}

type AuthorizationAuditRepository struct{ s *Store }

var _ interfaces.IAuthorizationAuditRepository = (*AuthorizationAuditRepository)(nil)

func (r *AuthorizationAuditRepository) Append(_ context.Context, a entities.AuthorizationAudit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.audits = append(r.s.audits, a)
	return nil
}

func (r *AuthorizationAuditRepository) ListByOrderID(_ context.Context, orderID string) ([]entities.AuthorizationAudit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entities.AuthorizationAudit{}
	for _, a := range r.s.audits {
		if a.OrderID == orderID {
			out = append(out, a)
		}
	}
	return out, nil
}

type InvoiceLineItemRepository struct{ s *Store }

var _ interfaces.IInvoiceLineItemRepository = (*InvoiceLineItemRepository)(nil)

func (r *InvoiceLineItemRepository) ListByOrderID(_ context.Context, orderID string) ([]entities.InvoiceLineItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entities.InvoiceLineItem{}
	for _, li := range r.s.lineItems {
		if li.OrderID == orderID {
			out = append(out, copyLineItem(li))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].LineNumber < out[j].LineNumber })
	return out, nil
}

func (r *InvoiceLineItemRepository) SaveAll(_ context.Context, items []entities.InvoiceLineItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, li := range items {
		r.s.lineItems[li.ID] = copyLineItem(li)
	}
	return nil
}

func copyLineItem(li entities.InvoiceLineItem) entities.InvoiceLineItem {
	if li.SKU != nil {
		sku := *li.SKU
		li.SKU = &sku
	}
	return li
}

type DeliveryPaymentRepository struct{ s *Store }

var _ interfaces.IDeliveryPaymentRepository = (*DeliveryPaymentRepository)(nil)

func (r *DeliveryPaymentRepository) Create(_ context.Context, p entities.DeliveryPayment) (entities.DeliveryPayment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.payments = append(r.s.payments, p)
	return p, nil
}

func (r *DeliveryPaymentRepository) ListByOrderID(_ context.Context, orderID string) ([]entities.DeliveryPayment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entities.DeliveryPayment{}
	for _, p := range r.s.payments {
		if p.OrderID == orderID {
			out = append(out, p)
		}
	}
	return out, nil
}

package routes

import (
	"context"
	"fmt"

	"taller_xpto/internal/adapter/http/handlers"
	"taller_xpto/internal/adapter/persistence/memory"
	"taller_xpto/internal/adapter/persistence/repository"
	"taller_xpto/internal/config"
	"taller_xpto/internal/domain/lifecycle"
	"taller_xpto/internal/infrastructure/database"
	"taller_xpto/internal/infrastructure/payments"
	"taller_xpto/internal/usecase"
	"taller_xpto/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Repositories is the storage backing every use case.
type Repositories struct {
	Orders           interfaces.IOrderRepository
	Catalog          interfaces.ICatalogRepository
	Suppliers        interfaces.ISupplierRepository
	Sequences        interfaces.ISequenceRepository
	LostSales        interfaces.ILostSaleRepository
	Audits           interfaces.IAuthorizationAuditRepository
	LineItems        interfaces.IInvoiceLineItemRepository
	DeliveryPayments interfaces.IDeliveryPaymentRepository
}

// NewRepositories selects the storage driver configured in STORE_DRIVER.
func NewRepositories(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Repositories, error) {
	switch cfg.StoreDriver {
	case config.StoreMemory:
		logger.Warn("[bootstrap] using in-memory store; data is lost on restart")
		return MemoryRepositories(memory.NewStore()), nil
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS, logger)
		if err != nil {
			return Repositories{}, fmt.Errorf("connect dynamodb: %w", err)
		}
		t := cfg.Tables
		return Repositories{
			Orders:           repository.NewOrderDynamoRepository(ddb, t.Orders, logger),
			Catalog:          repository.NewCatalogDynamoRepository(ddb, t.Catalog),
			Suppliers:        repository.NewSupplierDynamoRepository(ddb, t.Suppliers),
			Sequences:        repository.NewSequenceDynamoRepository(ddb, t.Sequences),
			LostSales:        repository.NewLostSaleDynamoRepository(ddb, t.LostSales),
			Audits:           repository.NewAuthorizationAuditDynamoRepository(ddb, t.AuthorizationAudits),
			LineItems:        repository.NewInvoiceLineItemDynamoRepository(ddb, t.InvoiceLineItems, logger),
			DeliveryPayments: repository.NewDeliveryPaymentDynamoRepository(ddb, t.DeliveryPayments),
		}, nil
	default:
		return Repositories{}, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func MemoryRepositories(s *memory.Store) Repositories {
	return Repositories{
		Orders:           s.Orders(),
		Catalog:          s.Catalog(),
		Suppliers:        s.Suppliers(),
		Sequences:        s.Sequences(),
		LostSales:        s.LostSales(),
		Audits:           s.Audits(),
		LineItems:        s.LineItems(),
		DeliveryPayments: s.DeliveryPayments(),
	}
}

// NewHandlers builds the use cases over repos and wraps them in HTTP handlers.
// A payment gateway that fails to configure leaves delivery returning 503 instead of
// stopping the service.
func NewHandlers(cfg *config.Config, repos Repositories, logger *zap.Logger) Handlers {
	machine := lifecycle.NewMachine(cfg.PhaseRoles)

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments, logger)
	if err != nil {
		logger.Warn("[bootstrap] Mercado Pago gateway not configured", zap.Error(err))
	} else {
		gateway = mpGateway
	}

	settings := usecase.PaymentSettings{
		Mock:            cfg.Payments.Mock,
		AccessToken:     cfg.Payments.AccessToken,
		TestPayerEmail:  cfg.Payments.TestPayerEmail,
		TestPayerUserID: cfg.Payments.TestPayerUserID,
	}

	orderUC := usecase.NewOrderUseCase(repos.Orders, machine, logger)
	authUC := usecase.NewAuthorizationUseCase(repos.Orders, repos.LostSales, repos.Audits, machine, logger)
	invoiceUC := usecase.NewInvoiceUseCase(repos.Orders, repos.LineItems, repos.Catalog, repos.Suppliers, repos.Sequences, machine, logger)
	poUC := usecase.NewPurchaseOrderUseCase(repos.Orders, repos.LineItems, repos.Sequences, machine, logger)
	deliveryUC := usecase.NewDeliveryPaymentUseCase(repos.DeliveryPayments, repos.Orders, gateway, settings, machine, logger)

	return Handlers{
		Pricing:         handlers.NewPricingHandler(),
		Orders:          handlers.NewOrderHandler(orderUC, logger),
		Authorization:   handlers.NewAuthorizationHandler(authUC, logger),
		Invoices:        handlers.NewInvoiceHandler(invoiceUC, logger),
		PurchaseOrders:  handlers.NewPurchaseOrderHandler(poUC, logger),
		DeliveryPayment: handlers.NewDeliveryPaymentHandler(deliveryUC, cfg.Payments.Mock, logger),
	}
}

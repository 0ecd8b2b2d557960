package entities

// Phase is one discrete stage of an order's lifecycle.
type Phase string

const (
	PhaseDiagnosis                  Phase = "Diagnosis"
	PhaseCustomerAuthorization      Phase = "CustomerAuthorization"
	PhaseInvoiceUpload              Phase = "InvoiceUpload"
	PhaseProductClassification      Phase = "ProductClassification"
	PhaseProductValidation          Phase = "ProductValidation"
	PhaseAdminValidation            Phase = "AdminValidation"
	PhaseProductProcessing          Phase = "ProductProcessing"
	PhasePrePurchaseOrderValidation Phase = "PrePurchaseOrderValidation"
	PhasePurchaseOrderGeneration    Phase = "PurchaseOrderGeneration"
	PhaseDelivery                   Phase = "Delivery"
)

// Role is the caller's role in the shop.
type Role string

const (
	RoleTechnician     Role = "technician"
	RoleAdvisor        Role = "advisor"
	RoleAdmin          Role = "admin"
	RoleManager        Role = "manager"
	RoleCorporateAdmin Role = "corporate_admin"
	RoleSuperAdmin     Role = "super_admin"
	RolePurchasing     Role = "purchasing"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleTechnician, RoleAdvisor, RoleAdmin, RoleManager, RoleCorporateAdmin, RoleSuperAdmin, RolePurchasing:
		return true
	}
	return false
}

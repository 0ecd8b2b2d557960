package lifecycle

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"taller_xpto/internal/domain/entities"
)

var (
	ErrTerminalPhase              = errors.New("order is in the terminal phase")
	ErrAdminValidationNotApproved = errors.New("admin validation not approved")
	ErrPreOCNotApproved           = errors.New("pre purchase order validation not approved")
)

// Action is what a caller wants to do on the current phase.
type Action string

const (
	ActionView    Action = "view"
	ActionEdit    Action = "edit"
	ActionAdvance Action = "advance"
)

// Policy declares who may act on a phase. AllowedRoles may edit and advance; ViewRoles may only look.
type Policy struct {
	Description  string
	AllowedRoles []entities.Role
	ViewRoles    []entities.Role
}

// Permissions is a policy resolved against one role.
type Permissions struct {
	Phase        entities.Phase  `json:"phase"`
	Role         entities.Role   `json:"role"`
	Description  string          `json:"description"`
	CanView      bool            `json:"can_view"`
	CanEdit      bool            `json:"can_edit"`
	CanAdvance   bool            `json:"can_advance"`
	AllowedRoles []entities.Role `json:"allowed_roles"`
}

// PermissionDeniedError is returned (never panicked) when a role may not perform an action.
type PermissionDeniedError struct {
	Phase        entities.Phase
	Role         entities.Role
	Action       Action
	AllowedRoles []entities.Role
}

func (e *PermissionDeniedError) Error() string {
	roles := make([]string, 0, len(e.AllowedRoles))
	for _, r := range e.AllowedRoles {
		roles = append(roles, string(r))
	}
	return fmt.Sprintf("role %q may not %s phase %s (allowed: %s)", e.Role, e.Action, e.Phase, strings.Join(roles, ", "))
}

var allRoles = []entities.Role{
	entities.RoleTechnician,
	entities.RoleAdvisor,
	entities.RoleAdmin,
	entities.RoleManager,
	entities.RoleCorporateAdmin,
	entities.RoleSuperAdmin,
	entities.RolePurchasing,
}

// DefaultPolicies is the built-in phase table.
func DefaultPolicies() map[entities.Phase]Policy {
	return map[entities.Phase]Policy{
		entities.PhaseDiagnosis: {
			Description:  "Technician inspects the vehicle and records findings",
			AllowedRoles: []entities.Role{entities.RoleTechnician, entities.RoleAdvisor, entities.RoleManager, entities.RoleSuperAdmin},
			ViewRoles:    allRoles,
		},
		entities.PhaseCustomerAuthorization: {
			Description:  "Customer accepts or rejects the quoted items",
			AllowedRoles: []entities.Role{entities.RoleAdvisor, entities.RoleManager, entities.RoleSuperAdmin},
			ViewRoles:    allRoles,
		},
		entities.PhaseInvoiceUpload: {
			Description:  "Supplier invoices are uploaded",
			AllowedRoles: []entities.Role{entities.RoleAdmin, entities.RolePurchasing, entities.RoleManager, entities.RoleSuperAdmin},
			ViewRoles:    allRoles,
		},
		entities.PhaseProductClassification: {
			Description:  "Invoice products are matched against the catalog or classified",
			AllowedRoles: []entities.Role{entities.RoleAdmin, entities.RolePurchasing, entities.RoleManager, entities.RoleSuperAdmin},
			ViewRoles:    allRoles,
		},
		entities.PhaseProductValidation: {
			Description:  "Administrator validates the classified products",
			AllowedRoles: []entities.Role{entities.RoleAdmin, entities.RoleManager, entities.RoleSuperAdmin},
			ViewRoles:    allRoles,
		},
		entities.PhaseAdminValidation: {
			Description:  "Corporate double-check of the administrative validation",
			AllowedRoles: []entities.Role{entities.RoleCorporateAdmin, entities.RoleManager, entities.RoleSuperAdmin},
			ViewRoles:    allRoles,
		},
		entities.PhaseProductProcessing: {
			Description:  "Internal SKUs are generated for the classified products",
			AllowedRoles: []entities.Role{entities.RoleAdmin, entities.RolePurchasing, entities.RoleManager, entities.RoleSuperAdmin},
			ViewRoles:    allRoles,
		},
		entities.PhasePrePurchaseOrderValidation: {
			Description:  "Grouped supplier summary is approved before purchasing",
			AllowedRoles: []entities.Role{entities.RoleManager, entities.RoleCorporateAdmin, entities.RoleSuperAdmin},
			ViewRoles:    allRoles,
		},
		entities.PhasePurchaseOrderGeneration: {
			Description:  "Purchase-order number is issued",
			AllowedRoles: []entities.Role{entities.RolePurchasing, entities.RoleManager, entities.RoleCorporateAdmin, entities.RoleSuperAdmin},
			ViewRoles:    allRoles,
		},
		entities.PhaseDelivery: {
			Description:  "Vehicle is delivered and paid",
			AllowedRoles: []entities.Role{entities.RoleAdvisor, entities.RoleManager, entities.RoleSuperAdmin},
			ViewRoles:    allRoles,
		},
	}
}

type roleSet map[entities.Role]struct{}

func newRoleSet(roles []entities.Role) roleSet {
	s := make(roleSet, len(roles))
	for _, r := range roles {
		s[r] = struct{}{}
	}
	return s
}

func (s roleSet) has(r entities.Role) bool {
	_, ok := s[r]
	return ok
}

func (s roleSet) sorted() []entities.Role {
	out := make([]entities.Role, 0, len(s))
	for r := range s {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

type compiledPolicy struct {
	description string
	allowed     roleSet
	viewers     roleSet
}

// Machine resolves permissions and guards against a policy table built at startup.
type Machine struct {
	policies map[entities.Phase]compiledPolicy
}

// NewMachine compiles the default table, replacing AllowedRoles for every phase present in overrides.
func NewMachine(overrides map[entities.Phase][]entities.Role) *Machine {
	defaults := DefaultPolicies()
	m := &Machine{policies: make(map[entities.Phase]compiledPolicy, len(defaults))}
	for phase, p := range defaults {
		allowed := p.AllowedRoles
		if roles, ok := overrides[phase]; ok && len(roles) > 0 {
			allowed = roles
		}
		m.policies[phase] = compiledPolicy{
			description: p.Description,
			allowed:     newRoleSet(allowed),
			viewers:     newRoleSet(p.ViewRoles),
		}
	}
	return m
}

// Permissions resolves the capabilities of role on phase.
func (m *Machine) Permissions(phase entities.Phase, role entities.Role) Permissions {
	p, ok := m.policies[phase]
	if !ok {
		return Permissions{Phase: phase, Role: role}
	}
	canEdit := p.allowed.has(role)
	return Permissions{
		Phase:        phase,
		Role:         role,
		Description:  p.description,
		CanView:      canEdit || p.viewers.has(role),
		CanEdit:      canEdit,
		CanAdvance:   canEdit && phase != TerminalPhase,
		AllowedRoles: p.allowed.sorted(),
	}
}

// Authorize returns nil when role may perform action on phase, or a *PermissionDeniedError.
func (m *Machine) Authorize(phase entities.Phase, role entities.Role, action Action) error {
	perms := m.Permissions(phase, role)
	var ok bool
	switch action {
	case ActionView:
		ok = perms.CanView
	case ActionEdit:
		ok = perms.CanEdit
	case ActionAdvance:
		ok = perms.CanAdvance
	}
	if ok {
		return nil
	}
	return &PermissionDeniedError{Phase: phase, Role: role, Action: action, AllowedRoles: perms.AllowedRoles}
}

// CanAdvanceToNextPhase applies the phase-specific guards to the order's current phase and
// returns the phase the order would enter.
func (m *Machine) CanAdvanceToNextPhase(phase entities.Phase, adminValidation, preOCValidation entities.ValidationStatus) (entities.Phase, error) {
	next, ok := Next(phase)
	if !ok {
		return "", ErrTerminalPhase
	}
	if phase == entities.PhaseProductValidation && adminValidation != entities.ValidationApproved {
		return "", ErrAdminValidationNotApproved
	}
	if next == entities.PhasePurchaseOrderGeneration && preOCValidation != entities.ValidationApproved {
		return "", ErrPreOCNotApproved
	}
	return next, nil
}

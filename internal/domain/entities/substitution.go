package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type SubstitutionInitiator string

const (
	InitiatedByProjectManager         SubstitutionInitiator = "PROJECT_MANAGER"
	InitiatedBySupplierRepresentative SubstitutionInitiator = "SUPPLIER_REPRESENTATIVE"
)

func (i SubstitutionInitiator) IsValid() bool {
	return i == InitiatedByProjectManager || i == InitiatedBySupplierRepresentative
}

// InitialStatus routes the substitution to the other party.
func (i SubstitutionInitiator) InitialStatus() ApprovalStatus {
	if i == InitiatedBySupplierRepresentative {
		return ApprovalStatusPendingClient
	}
	return ApprovalStatusPendingSupplier
}

type SubstitutionReason string

const (
	SubstitutionReasonLowPerformance  SubstitutionReason = "LOW_PERFORMANCE"
	SubstitutionReasonJobChange       SubstitutionReason = "JOB_CHANGE"
	SubstitutionReasonHealthIssues    SubstitutionReason = "HEALTH_ISSUES"
	SubstitutionReasonPersonalReasons SubstitutionReason = "PERSONAL_REASONS"
	SubstitutionReasonSkillMismatch   SubstitutionReason = "SKILL_MISMATCH"
	SubstitutionReasonClientRequest   SubstitutionReason = "CLIENT_REQUEST"
	SubstitutionReasonOther           SubstitutionReason = "OTHER"
)

func (r SubstitutionReason) IsValid() bool {
	switch r {
	case SubstitutionReasonLowPerformance, SubstitutionReasonJobChange, SubstitutionReasonHealthIssues,
		SubstitutionReasonPersonalReasons, SubstitutionReasonSkillMismatch, SubstitutionReasonClientRequest,
		SubstitutionReasonOther:
		return true
	}
	return false
}

// ServiceOrderSubstitution replaces the specialist assigned to an order.
type ServiceOrderSubstitution struct {
	ID                          string                `json:"id"`
	ServiceOrderID              string                `json:"service_order_id"`
	InitiatedBy                 SubstitutionInitiator `json:"initiated_by"`
	Status                      ApprovalStatus        `json:"status"`
	OutgoingSpecialistID        string                `json:"outgoing_specialist_id"`
	OutgoingSpecialistName      string                `json:"outgoing_specialist_name"`
	IncomingSpecialistID        string                `json:"incoming_specialist_id"`
	IncomingSpecialistName      string                `json:"incoming_specialist_name"`
	IncomingSpecialistDailyRate decimal.Decimal       `json:"incoming_specialist_daily_rate"`
	Reason                      SubstitutionReason    `json:"reason"`
	ReasonDetails               string                `json:"reason_details,omitempty"`
	RejectionReason             string                `json:"rejection_reason,omitempty"`
	CreatedAt                   time.Time             `json:"created_at"`
	UpdatedAt                   time.Time             `json:"updated_at"`
	Version                     int64                 `json:"version"`
}

type NewSubstitutionInput struct {
	InitiatedBy                 SubstitutionInitiator
	OutgoingSpecialistID        string
	IncomingSpecialistID        string
	IncomingSpecialistName      string
	IncomingSpecialistDailyRate decimal.Decimal
	Reason                      SubstitutionReason
	ReasonDetails               string
}

// NewServiceOrderSubstitution validates the request against the order and
// returns the pending substitution with the order moved to
// PENDING_SUBSTITUTION.
func NewServiceOrderSubstitution(id string, order ServiceOrder, in NewSubstitutionInput, now time.Time) (ServiceOrderSubstitution, ServiceOrder, error) {
	if !order.CanRequestSubstitution() {
		return ServiceOrderSubstitution{}, order, NewInvalidStateError("substitutions cannot be requested for service orders in status %s", order.Status)
	}
	if !in.InitiatedBy.IsValid() {
		return ServiceOrderSubstitution{}, order, NewValidationError("invalid initiator %q", in.InitiatedBy)
	}
	if !in.Reason.IsValid() {
		return ServiceOrderSubstitution{}, order, NewValidationError("invalid substitution reason %q", in.Reason)
	}
	outgoing := strings.TrimSpace(in.OutgoingSpecialistID)
	if outgoing != order.CurrentSpecialistID {
		return ServiceOrderSubstitution{}, order, NewValidationError("outgoing specialist %q is not the current specialist of the order", outgoing)
	}
	incoming := strings.TrimSpace(in.IncomingSpecialistID)
	if incoming == "" || strings.TrimSpace(in.IncomingSpecialistName) == "" {
		return ServiceOrderSubstitution{}, order, NewValidationError("incoming specialist id and name are required")
	}
	if incoming == outgoing {
		return ServiceOrderSubstitution{}, order, NewValidationError("incoming specialist must differ from the outgoing one")
	}
	if in.IncomingSpecialistDailyRate.IsNegative() {
		return ServiceOrderSubstitution{}, order, NewValidationError("incoming daily rate must not be negative")
	}

	pendingOrder := order
	if order.Status != ServiceOrderStatusPendingSubstitution {
		var err error
		if pendingOrder, err = order.transition(ServiceOrderStatusPendingSubstitution, now); err != nil {
			return ServiceOrderSubstitution{}, order, err
		}
	}

	sub := ServiceOrderSubstitution{
		ID:                          id,
		ServiceOrderID:              order.ID,
		InitiatedBy:                 in.InitiatedBy,
		Status:                      in.InitiatedBy.InitialStatus(),
		OutgoingSpecialistID:        order.CurrentSpecialistID,
		OutgoingSpecialistName:      order.CurrentSpecialistName,
		IncomingSpecialistID:        incoming,
		IncomingSpecialistName:      strings.TrimSpace(in.IncomingSpecialistName),
		IncomingSpecialistDailyRate: in.IncomingSpecialistDailyRate,
		Reason:                      in.Reason,
		ReasonDetails:               strings.TrimSpace(in.ReasonDetails),
		CreatedAt:                   now,
		UpdatedAt:                   now,
	}
	return sub, pendingOrder, nil
}

// Approve swaps the specialist on the order. Rates and contract value are
// left as they are.
func (s ServiceOrderSubstitution) Approve(order ServiceOrder, actor Actor, now time.Time) (ServiceOrderSubstitution, ServiceOrder, error) {
	if !actor.hasRole(RoleSupplierRep, RoleProjectManager) {
		return s, order, NewAuthorizationError("role %q cannot approve a substitution", actor.Role)
	}
	if !s.Status.IsPending() {
		return s, order, NewInvalidStateError("substitution cannot be approved from status %s", s.Status)
	}
	if order.ID != s.ServiceOrderID {
		return s, order, NewValidationError("substitution %s does not belong to service order %s", s.ID, order.ID)
	}
	if order.Status != ServiceOrderStatusPendingSubstitution {
		return s, order, NewInvalidStateError("service order is not awaiting a substitution (current: %s)", order.Status)
	}
	if order.CurrentSpecialistID != s.OutgoingSpecialistID {
		return s, order, NewInvalidStateError("outgoing specialist is no longer assigned to the service order")
	}

	s.Status = ApprovalStatusApproved
	s.UpdatedAt = now

	order.CurrentSpecialistID = s.IncomingSpecialistID
	order.CurrentSpecialistName = s.IncomingSpecialistName
	order = order.withStatus(ServiceOrderStatusActive, now)
	return s, order, nil
}

// Reject keeps the current specialist and puts the order back to ACTIVE.
func (s ServiceOrderSubstitution) Reject(order ServiceOrder, actor Actor, reason string, now time.Time) (ServiceOrderSubstitution, ServiceOrder, error) {
	if !actor.hasRole(RoleSupplierRep, RoleProjectManager) {
		return s, order, NewAuthorizationError("role %q cannot reject a substitution", actor.Role)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return s, order, NewValidationError("rejection reason is required")
	}
	if !s.Status.IsPending() {
		return s, order, NewInvalidStateError("substitution cannot be rejected from status %s", s.Status)
	}
	if order.ID != s.ServiceOrderID {
		return s, order, NewValidationError("substitution %s does not belong to service order %s", s.ID, order.ID)
	}

	s.Status = ApprovalStatusRejected
	s.RejectionReason = reason
	s.UpdatedAt = now

	if order.Status == ServiceOrderStatusPendingSubstitution {
		order = order.withStatus(ServiceOrderStatusActive, now)
	}
	return s, order, nil
}

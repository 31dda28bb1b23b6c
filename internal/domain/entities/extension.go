package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CostTolerance is the accepted difference between the declared additional
// cost and man-days * daily rate.
var CostTolerance = decimal.NewFromFloat(0.01)

// ServiceOrderExtension asks for more man-days and a later end date on an
// order. Extensions always start at PENDING_SUPPLIER and only the supplier
// representative can settle them.
type ServiceOrderExtension struct {
	ID                string          `json:"id"`
	ServiceOrderID    string          `json:"service_order_id"`
	Status            ApprovalStatus  `json:"status"`
	AdditionalManDays int             `json:"additional_man_days"`
	NewEndDate        time.Time       `json:"new_end_date"`
	AdditionalCost    decimal.Decimal `json:"additional_cost"`
	Reason            string          `json:"reason"`
	RejectionReason   string          `json:"rejection_reason,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	Version           int64           `json:"version"`
}

type NewExtensionInput struct {
	AdditionalManDays int
	NewEndDate        time.Time
	AdditionalCost    decimal.Decimal
	Reason            string
}

// NewServiceOrderExtension validates the request against the order and
// returns the pending extension together with the order moved to
// PENDING_EXTENSION. Nothing is returned changed on error.
func NewServiceOrderExtension(id string, order ServiceOrder, in NewExtensionInput, now time.Time) (ServiceOrderExtension, ServiceOrder, error) {
	if !order.CanRequestExtension() {
		return ServiceOrderExtension{}, order, NewInvalidStateError("extensions can only be requested for ACTIVE service orders (current: %s)", order.Status)
	}
	if in.AdditionalManDays < 1 {
		return ServiceOrderExtension{}, order, NewValidationError("additional man days must be at least 1")
	}
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return ServiceOrderExtension{}, order, NewValidationError("reason is required")
	}
	newEnd := DateOf(in.NewEndDate)
	if newEnd.IsZero() || !newEnd.After(DateOf(order.CurrentEndDate)) {
		return ServiceOrderExtension{}, order, NewValidationError("new end date must be after the current end date")
	}
	expected := order.DailyRate.Mul(decimal.NewFromInt(int64(in.AdditionalManDays)))
	if in.AdditionalCost.Sub(expected).Abs().GreaterThan(CostTolerance) {
		return ServiceOrderExtension{}, order, NewValidationError(
			"additional cost %s does not match %d man days at daily rate %s (expected %s)",
			in.AdditionalCost.StringFixed(2), in.AdditionalManDays, order.DailyRate.StringFixed(2), expected.StringFixed(2),
		)
	}

	pendingOrder, err := order.transition(ServiceOrderStatusPendingExtension, now)
	if err != nil {
		return ServiceOrderExtension{}, order, err
	}

	ext := ServiceOrderExtension{
		ID:                id,
		ServiceOrderID:    order.ID,
		Status:            ApprovalStatusPendingSupplier,
		AdditionalManDays: in.AdditionalManDays,
		NewEndDate:        newEnd,
		AdditionalCost:    in.AdditionalCost,
		Reason:            reason,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	return ext, pendingOrder, nil
}

// Approve applies the extension to the order. The returned pair must be
// committed together.
func (e ServiceOrderExtension) Approve(order ServiceOrder, actor Actor, now time.Time) (ServiceOrderExtension, ServiceOrder, error) {
	if !actor.hasRole(RoleSupplierRep) {
		return e, order, NewAuthorizationError("only the supplier representative can approve an extension")
	}
	if e.Status != ApprovalStatusPendingSupplier {
		return e, order, NewInvalidStateError("extension cannot be approved from status %s", e.Status)
	}
	if err := e.checkOrder(order); err != nil {
		return e, order, err
	}
	if order.Status != ServiceOrderStatusPendingExtension {
		return e, order, NewInvalidStateError("service order is not awaiting an extension (current: %s)", order.Status)
	}

	e.Status = ApprovalStatusApproved
	e.UpdatedAt = now

	order.CurrentEndDate = e.NewEndDate
	order.CurrentManDays += e.AdditionalManDays
	order.CurrentContractValue = order.CurrentContractValue.Add(e.AdditionalCost)
	order = order.withStatus(ServiceOrderStatusActive, now)
	return e, order, nil
}

// Reject closes the extension and puts the order back to ACTIVE without
// touching its terms.
func (e ServiceOrderExtension) Reject(order ServiceOrder, actor Actor, reason string, now time.Time) (ServiceOrderExtension, ServiceOrder, error) {
	if !actor.hasRole(RoleSupplierRep) {
		return e, order, NewAuthorizationError("only the supplier representative can reject an extension")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return e, order, NewValidationError("rejection reason is required")
	}
	if !e.Status.IsPending() {
		return e, order, NewInvalidStateError("extension cannot be rejected from status %s", e.Status)
	}
	if err := e.checkOrder(order); err != nil {
		return e, order, err
	}

	e.Status = ApprovalStatusRejected
	e.RejectionReason = reason
	e.UpdatedAt = now

	if order.Status == ServiceOrderStatusPendingExtension {
		order = order.withStatus(ServiceOrderStatusActive, now)
	}
	return e, order, nil
}

func (e ServiceOrderExtension) checkOrder(order ServiceOrder) error {
	if order.ID != e.ServiceOrderID {
		return NewValidationError("extension %s does not belong to service order %s", e.ID, order.ID)
	}
	return nil
}

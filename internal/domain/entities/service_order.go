package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type ServiceOrderStatus string

const (
	ServiceOrderStatusActive              ServiceOrderStatus = "ACTIVE"
	ServiceOrderStatusCompleted           ServiceOrderStatus = "COMPLETED"
	ServiceOrderStatusCancelled           ServiceOrderStatus = "CANCELLED"
	ServiceOrderStatusSuspended           ServiceOrderStatus = "SUSPENDED"
	ServiceOrderStatusPendingExtension    ServiceOrderStatus = "PENDING_EXTENSION"
	ServiceOrderStatusPendingSubstitution ServiceOrderStatus = "PENDING_SUBSTITUTION"
)

var serviceOrderTransitions = map[ServiceOrderStatus][]ServiceOrderStatus{
	ServiceOrderStatusActive: {
		ServiceOrderStatusCompleted,
		ServiceOrderStatusCancelled,
		ServiceOrderStatusSuspended,
		ServiceOrderStatusPendingExtension,
		ServiceOrderStatusPendingSubstitution,
	},
	ServiceOrderStatusSuspended:           {ServiceOrderStatusActive, ServiceOrderStatusCancelled},
	ServiceOrderStatusPendingExtension:    {ServiceOrderStatusActive},
	ServiceOrderStatusPendingSubstitution: {ServiceOrderStatusActive},
}

func (s ServiceOrderStatus) IsValid() bool {
	switch s {
	case ServiceOrderStatusActive, ServiceOrderStatusCompleted, ServiceOrderStatusCancelled,
		ServiceOrderStatusSuspended, ServiceOrderStatusPendingExtension, ServiceOrderStatusPendingSubstitution:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s ServiceOrderStatus) IsTerminal() bool {
	return s == ServiceOrderStatusCompleted || s == ServiceOrderStatusCancelled
}

func (s ServiceOrderStatus) CanTransitionTo(next ServiceOrderStatus) bool {
	for _, allowed := range serviceOrderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ServiceOrder is an active engagement created from an accepted offer.
//
// The Original* fields are a snapshot of the terms at creation and never
// change afterwards. Current* fields move with approved extensions and
// substitutions. Orders are never deleted.
//
// Storage model (DynamoDB):
//   - PK: id
//   - version guards every conditional write
type ServiceOrder struct {
	ID               string `json:"id"`
	ServiceRequestID string `json:"service_request_id"`
	WinningOfferID   string `json:"winning_offer_id"`
	SupplierID       string `json:"supplier_id"`
	SupplierName     string `json:"supplier_name"`
	Title            string `json:"title"`
	Role             string `json:"role"`
	Domain           string `json:"domain"`

	Status ServiceOrderStatus `json:"status"`

	StartDate       time.Time  `json:"start_date"`
	OriginalEndDate time.Time  `json:"original_end_date"`
	CurrentEndDate  time.Time  `json:"current_end_date"`
	ActualEndDate   *time.Time `json:"actual_end_date,omitempty"`

	OriginalSpecialistID   string `json:"original_specialist_id"`
	OriginalSpecialistName string `json:"original_specialist_name"`
	CurrentSpecialistID    string `json:"current_specialist_id"`
	CurrentSpecialistName  string `json:"current_specialist_name"`

	OriginalManDays int `json:"original_man_days"`
	CurrentManDays  int `json:"current_man_days"`

	DailyRate             decimal.Decimal `json:"daily_rate"`
	OriginalContractValue decimal.Decimal `json:"original_contract_value"`
	CurrentContractValue  decimal.Decimal `json:"current_contract_value"`

	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int64     `json:"version"`
}

// NewServiceOrderInput holds the agreed terms of a new engagement.
type NewServiceOrderInput struct {
	ServiceRequestID string
	WinningOfferID   string
	SupplierID       string
	SupplierName     string
	Title            string
	Role             string
	Domain           string
	SpecialistID     string
	SpecialistName   string
	StartDate        time.Time
	EndDate          time.Time
	ManDays          int
	DailyRate        decimal.Decimal
	// ContractValue defaults to ManDays * DailyRate when zero.
	ContractValue decimal.Decimal
	Notes         string
}

// NewServiceOrder builds an ACTIVE order and snapshots the original terms.
// The ID is assigned by the caller.
func NewServiceOrder(id string, in NewServiceOrderInput, now time.Time) (ServiceOrder, error) {
	if strings.TrimSpace(in.Title) == "" {
		return ServiceOrder{}, NewValidationError("title is required")
	}
	if strings.TrimSpace(in.SpecialistID) == "" {
		return ServiceOrder{}, NewValidationError("specialist is required")
	}
	if in.StartDate.IsZero() || in.EndDate.IsZero() {
		return ServiceOrder{}, NewValidationError("start and end dates are required")
	}
	start, end := DateOf(in.StartDate), DateOf(in.EndDate)
	if !start.Before(end) {
		return ServiceOrder{}, NewValidationError("start date must be before end date")
	}
	if in.ManDays < 1 {
		return ServiceOrder{}, NewValidationError("man days must be at least 1")
	}
	if !in.DailyRate.IsPositive() {
		return ServiceOrder{}, NewValidationError("daily rate must be positive")
	}
	if in.ContractValue.IsNegative() {
		return ServiceOrder{}, NewValidationError("contract value must not be negative")
	}

	value := in.ContractValue
	if value.IsZero() {
		value = in.DailyRate.Mul(decimal.NewFromInt(int64(in.ManDays)))
	}

	return ServiceOrder{
		ID:                     id,
		ServiceRequestID:       in.ServiceRequestID,
		WinningOfferID:         in.WinningOfferID,
		SupplierID:             in.SupplierID,
		SupplierName:           in.SupplierName,
		Title:                  strings.TrimSpace(in.Title),
		Role:                   in.Role,
		Domain:                 in.Domain,
		Status:                 ServiceOrderStatusActive,
		StartDate:              start,
		OriginalEndDate:        end,
		CurrentEndDate:         end,
		OriginalSpecialistID:   in.SpecialistID,
		OriginalSpecialistName: in.SpecialistName,
		CurrentSpecialistID:    in.SpecialistID,
		CurrentSpecialistName:  in.SpecialistName,
		OriginalManDays:        in.ManDays,
		CurrentManDays:         in.ManDays,
		DailyRate:              in.DailyRate,
		OriginalContractValue:  value,
		CurrentContractValue:   value,
		Notes:                  in.Notes,
		CreatedAt:              now,
		UpdatedAt:              now,
	}, nil
}

func (o ServiceOrder) IsActive() bool {
	return o.Status == ServiceOrderStatusActive
}

// CanRequestExtension reports whether a new extension may be opened.
func (o ServiceOrder) CanRequestExtension() bool {
	return o.Status == ServiceOrderStatusActive
}

// CanRequestSubstitution reports whether a new substitution may be opened.
func (o ServiceOrder) CanRequestSubstitution() bool {
	return o.Status == ServiceOrderStatusActive || o.Status == ServiceOrderStatusPendingSubstitution
}

// HasBeenExtended reports whether the end date moved past the original one.
func (o ServiceOrder) HasBeenExtended() bool {
	return o.CurrentEndDate.After(o.OriginalEndDate)
}

func (o ServiceOrder) HasBeenSubstituted() bool {
	return o.CurrentSpecialistID != o.OriginalSpecialistID
}

// ConsumedManDays prorates CurrentManDays linearly over the calendar days
// between StartDate and CurrentEndDate, rounding down.
func (o ServiceOrder) ConsumedManDays(today time.Time) int {
	if o.StartDate.IsZero() || o.CurrentEndDate.IsZero() || o.CurrentManDays <= 0 {
		return 0
	}
	day := DateOf(today)
	start, end := DateOf(o.StartDate), DateOf(o.CurrentEndDate)
	if day.Before(start) {
		return 0
	}
	if !day.Before(end) {
		return o.CurrentManDays
	}
	total := daysBetween(start, end)
	if total <= 0 {
		return 0
	}
	elapsed := daysBetween(start, day)
	return elapsed * o.CurrentManDays / total
}

func (o ServiceOrder) RemainingManDays(today time.Time) int {
	remaining := o.CurrentManDays - o.ConsumedManDays(today)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Complete closes an ACTIVE order and records today as the actual end date.
func (o ServiceOrder) Complete(now time.Time) (ServiceOrder, error) {
	if o.Status != ServiceOrderStatusActive {
		return o, NewInvalidStateError("service order can only be completed when ACTIVE (current: %s)", o.Status)
	}
	next := o.withStatus(ServiceOrderStatusCompleted, now)
	actual := DateOf(now)
	next.ActualEndDate = &actual
	return next, nil
}

// Cancel is allowed from ACTIVE or SUSPENDED.
func (o ServiceOrder) Cancel(now time.Time) (ServiceOrder, error) {
	return o.transition(ServiceOrderStatusCancelled, now)
}

func (o ServiceOrder) Suspend(now time.Time) (ServiceOrder, error) {
	return o.transition(ServiceOrderStatusSuspended, now)
}

// Resume moves a SUSPENDED order back to ACTIVE.
func (o ServiceOrder) Resume(now time.Time) (ServiceOrder, error) {
	if o.Status != ServiceOrderStatusSuspended {
		return o, NewInvalidStateError("only SUSPENDED service orders can be resumed (current: %s)", o.Status)
	}
	return o.withStatus(ServiceOrderStatusActive, now), nil
}

func (o ServiceOrder) transition(next ServiceOrderStatus, now time.Time) (ServiceOrder, error) {
	if !o.Status.CanTransitionTo(next) {
		return o, NewInvalidStateError("service order cannot move from %s to %s", o.Status, next)
	}
	return o.withStatus(next, now), nil
}

func (o ServiceOrder) withStatus(next ServiceOrderStatus, now time.Time) ServiceOrder {
	o.Status = next
	o.UpdatedAt = now
	return o
}

// DateOf truncates t to a UTC calendar day.
func DateOf(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

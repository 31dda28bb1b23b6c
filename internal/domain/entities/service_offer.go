package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type ServiceOfferStatus string

const (
	ServiceOfferStatusSubmitted   ServiceOfferStatus = "SUBMITTED"
	ServiceOfferStatusUnderReview ServiceOfferStatus = "UNDER_REVIEW"
	ServiceOfferStatusAccepted    ServiceOfferStatus = "ACCEPTED"
	ServiceOfferStatusRejected    ServiceOfferStatus = "REJECTED"
)

// Decisions sent by reviewers when completing an offer task.
const (
	OfferDecisionFinalApproval  = "final_approval"
	OfferDecisionFinalRejection = "final_rejection"
)

// OfferStatusForDecision maps a reviewer decision to the offer status.
// Anything other than a final decision keeps the offer under review.
func OfferStatusForDecision(decision string) ServiceOfferStatus {
	switch decision {
	case OfferDecisionFinalApproval:
		return ServiceOfferStatusAccepted
	case OfferDecisionFinalRejection:
		return ServiceOfferStatusRejected
	default:
		return ServiceOfferStatusUnderReview
	}
}

// ServiceOffer is a provider's answer to a service request.
type ServiceOffer struct {
	ID               string             `json:"id"`
	ExternalID       string             `json:"external_id"`
	ServiceRequestID string             `json:"service_request_id"`
	ProviderID       string             `json:"provider_id"`
	ProviderName     string             `json:"provider_name"`
	SpecialistID     string             `json:"specialist_id"`
	SpecialistName   string             `json:"specialist_name"`
	Status           ServiceOfferStatus `json:"status"`
	DailyRate        decimal.Decimal    `json:"daily_rate"`
	TravelCost       decimal.Decimal    `json:"travel_cost"`
	TotalCost        decimal.Decimal    `json:"total_cost"`
	Notes            string             `json:"notes"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
	Version          int64              `json:"version"`
}

type NewServiceOfferInput struct {
	ExternalID       string
	ServiceRequestID string
	ProviderID       string
	ProviderName     string
	SpecialistID     string
	SpecialistName   string
	DailyRate        decimal.Decimal
	TravelCost       decimal.Decimal
	TotalCost        decimal.Decimal
	Notes            string
}

func NewServiceOffer(id string, in NewServiceOfferInput, now time.Time) (ServiceOffer, error) {
	if strings.TrimSpace(in.ServiceRequestID) == "" {
		return ServiceOffer{}, NewValidationError("service request is required")
	}
	if !in.DailyRate.IsPositive() {
		return ServiceOffer{}, NewValidationError("daily rate must be positive")
	}
	if in.TravelCost.IsNegative() {
		return ServiceOffer{}, NewValidationError("travel cost must not be negative")
	}
	if !in.TotalCost.IsPositive() {
		return ServiceOffer{}, NewValidationError("total cost must be positive")
	}
	return ServiceOffer{
		ID:               id,
		ExternalID:       strings.TrimSpace(in.ExternalID),
		ServiceRequestID: strings.TrimSpace(in.ServiceRequestID),
		ProviderID:       in.ProviderID,
		ProviderName:     in.ProviderName,
		SpecialistID:     in.SpecialistID,
		SpecialistName:   in.SpecialistName,
		Status:           ServiceOfferStatusSubmitted,
		DailyRate:        in.DailyRate,
		TravelCost:       in.TravelCost,
		TotalCost:        in.TotalCost,
		Notes:            in.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// Decide applies a reviewer decision. Settled offers cannot be decided again.
func (o ServiceOffer) Decide(decision string, now time.Time) (ServiceOffer, error) {
	if strings.TrimSpace(decision) == "" {
		return o, NewValidationError("decision is required")
	}
	if o.Status == ServiceOfferStatusAccepted || o.Status == ServiceOfferStatusRejected {
		return o, NewInvalidStateError("offer already settled with status %s", o.Status)
	}
	o.Status = OfferStatusForDecision(decision)
	o.UpdatedAt = now
	return o, nil
}

// ToServiceOrderInput builds the order terms from an accepted offer and the
// request it answers.
func (o ServiceOffer) ToServiceOrderInput(req ServiceRequest) NewServiceOrderInput {
	return NewServiceOrderInput{
		ServiceRequestID: req.ID,
		WinningOfferID:   o.ID,
		SupplierID:       o.ProviderID,
		SupplierName:     o.ProviderName,
		Title:            req.Title,
		Role:             req.RoleName,
		Domain:           req.Technology,
		SpecialistID:     o.SpecialistID,
		SpecialistName:   o.SpecialistName,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		ManDays:          req.ExpectedManDays,
		DailyRate:        o.DailyRate,
		ContractValue:    o.TotalCost,
	}
}

package request

import (
	"strings"

	"staffing_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type CreateExtensionRequest struct {
	AdditionalManDays int             `json:"additional_man_days" binding:"required,min=1"`
	NewEndDate        string          `json:"new_end_date" binding:"required,iso_date"`
	AdditionalCost    decimal.Decimal `json:"additional_cost"`
	Reason            string          `json:"reason" binding:"required"`
}

func (r CreateExtensionRequest) ToInput() (entities.NewExtensionInput, error) {
	end, err := parseDate("new_end_date", r.NewEndDate)
	if err != nil {
		return entities.NewExtensionInput{}, err
	}
	return entities.NewExtensionInput{
		AdditionalManDays: r.AdditionalManDays,
		NewEndDate:        end,
		AdditionalCost:    r.AdditionalCost,
		Reason:            r.Reason,
	}, nil
}

type CreateSubstitutionRequest struct {
	InitiatedBy                 string          `json:"initiated_by" binding:"required,substitution_initiator"`
	OutgoingSpecialistID        string          `json:"outgoing_specialist_id" binding:"required"`
	IncomingSpecialistID        string          `json:"incoming_specialist_id" binding:"required"`
	IncomingSpecialistName      string          `json:"incoming_specialist_name"`
	IncomingSpecialistDailyRate decimal.Decimal `json:"incoming_specialist_daily_rate"`
	Reason                      string          `json:"reason" binding:"required,substitution_reason"`
	ReasonDetails               string          `json:"reason_details"`
}

func (r CreateSubstitutionRequest) ToInput() entities.NewSubstitutionInput {
	return entities.NewSubstitutionInput{
		InitiatedBy:                 entities.SubstitutionInitiator(r.InitiatedBy),
		OutgoingSpecialistID:        strings.TrimSpace(r.OutgoingSpecialistID),
		IncomingSpecialistID:        strings.TrimSpace(r.IncomingSpecialistID),
		IncomingSpecialistName:      strings.TrimSpace(r.IncomingSpecialistName),
		IncomingSpecialistDailyRate: r.IncomingSpecialistDailyRate,
		Reason:                      entities.SubstitutionReason(r.Reason),
		ReasonDetails:               r.ReasonDetails,
	}
}

// ApprovalRequest carries the caller role of an approve call.
type ApprovalRequest struct {
	UserRole string `json:"user_role"`
}

func (r ApprovalRequest) Actor() entities.Actor {
	return entities.Actor{Role: entities.Role(r.UserRole)}
}

// RejectionRequest leaves the reason unchecked here; an empty reason is a
// domain validation error.
type RejectionRequest struct {
	UserRole string `json:"user_role"`
	Reason   string `json:"reason"`
}

func (r RejectionRequest) Actor() entities.Actor {
	return entities.Actor{Role: entities.Role(r.UserRole)}
}

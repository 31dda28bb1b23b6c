package response

import (
	"time"

	"staffing_service/internal/domain/entities"
)

type ExtensionResponse struct {
	ID                string    `json:"id"`
	ServiceOrderID    string    `json:"service_order_id"`
	Status            string    `json:"status"`
	AdditionalManDays int       `json:"additional_man_days"`
	NewEndDate        string    `json:"new_end_date"`
	AdditionalCost    string    `json:"additional_cost"`
	Reason            string    `json:"reason"`
	RejectionReason   string    `json:"rejection_reason,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromExtension(e entities.ServiceOrderExtension) ExtensionResponse {
	return ExtensionResponse{
		ID:                e.ID,
		ServiceOrderID:    e.ServiceOrderID,
		Status:            string(e.Status),
		AdditionalManDays: e.AdditionalManDays,
		NewEndDate:        date(e.NewEndDate),
		AdditionalCost:    money(e.AdditionalCost),
		Reason:            e.Reason,
		RejectionReason:   e.RejectionReason,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func FromExtensions(list []entities.ServiceOrderExtension) []ExtensionResponse {
	out := make([]ExtensionResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromExtension(e))
	}
	return out
}

type SubstitutionResponse struct {
	ID                          string    `json:"id"`
	ServiceOrderID              string    `json:"service_order_id"`
	InitiatedBy                 string    `json:"initiated_by"`
	Status                      string    `json:"status"`
	OutgoingSpecialistID        string    `json:"outgoing_specialist_id"`
	OutgoingSpecialistName      string    `json:"outgoing_specialist_name"`
	IncomingSpecialistID        string    `json:"incoming_specialist_id"`
	IncomingSpecialistName      string    `json:"incoming_specialist_name"`
	IncomingSpecialistDailyRate string    `json:"incoming_specialist_daily_rate"`
	Reason                      string    `json:"reason"`
	ReasonDetails               string    `json:"reason_details,omitempty"`
	RejectionReason             string    `json:"rejection_reason,omitempty"`
	CreatedAt                   time.Time `json:"created_at"`
	UpdatedAt                   time.Time `json:"updated_at"`
}

func FromSubstitution(s entities.ServiceOrderSubstitution) SubstitutionResponse {
	return SubstitutionResponse{
		ID:                          s.ID,
		ServiceOrderID:              s.ServiceOrderID,
		InitiatedBy:                 string(s.InitiatedBy),
		Status:                      string(s.Status),
		OutgoingSpecialistID:        s.OutgoingSpecialistID,
		OutgoingSpecialistName:      s.OutgoingSpecialistName,
		IncomingSpecialistID:        s.IncomingSpecialistID,
		IncomingSpecialistName:      s.IncomingSpecialistName,
		IncomingSpecialistDailyRate: money(s.IncomingSpecialistDailyRate),
		Reason:                      string(s.Reason),
		ReasonDetails:               s.ReasonDetails,
		RejectionReason:             s.RejectionReason,
		CreatedAt:                   s.CreatedAt,
		UpdatedAt:                   s.UpdatedAt,
	}
}

func FromSubstitutions(list []entities.ServiceOrderSubstitution) []SubstitutionResponse {
	out := make([]SubstitutionResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromSubstitution(s))
	}
	return out
}

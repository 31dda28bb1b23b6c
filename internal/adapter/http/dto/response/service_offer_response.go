package response

import (
	"time"

	"staffing_service/internal/domain/entities"
	"staffing_service/internal/usecase"
)

type ServiceOfferResponse struct {
	ID               string    `json:"id"`
	ExternalID       string    `json:"external_id"`
	ServiceRequestID string    `json:"service_request_id"`
	ProviderID       string    `json:"provider_id"`
	ProviderName     string    `json:"provider_name"`
	SpecialistID     string    `json:"specialist_id"`
	SpecialistName   string    `json:"specialist_name"`
	Status           string    `json:"status"`
	DailyRate        string    `json:"daily_rate"`
	TravelCost       string    `json:"travel_cost"`
	TotalCost        string    `json:"total_cost"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromServiceOffer(o entities.ServiceOffer) ServiceOfferResponse {
	return ServiceOfferResponse{
		ID:               o.ID,
		ExternalID:       o.ExternalID,
		ServiceRequestID: o.ServiceRequestID,
		ProviderID:       o.ProviderID,
		ProviderName:     o.ProviderName,
		SpecialistID:     o.SpecialistID,
		SpecialistName:   o.SpecialistName,
		Status:           string(o.Status),
		DailyRate:        money(o.DailyRate),
		TravelCost:       money(o.TravelCost),
		TotalCost:        money(o.TotalCost),
		Notes:            o.Notes,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func FromServiceOffers(list []entities.ServiceOffer) []ServiceOfferResponse {
	out := make([]ServiceOfferResponse, 0, len(list))
	for _, o := range list {
		out = append(out, FromServiceOffer(o))
	}
	return out
}

type SubmittedOfferResponse struct {
	ServiceOfferResponse
	ProcessInstanceID string `json:"process_instance_id"`
	ExecutionID       string `json:"execution_id"`
}

func FromSubmittedOffer(s usecase.SubmittedOffer) SubmittedOfferResponse {
	return SubmittedOfferResponse{
		ServiceOfferResponse: FromServiceOffer(s.Offer),
		ProcessInstanceID:    s.ProcessInstanceID,
		ExecutionID:          s.ExecutionID,
	}
}

type OfferTaskResponse struct {
	TaskResponse
	ServiceOffer ServiceOfferResponse `json:"service_offer"`
}

func FromOfferTasks(tasks []usecase.OfferTask) []OfferTaskResponse {
	out := make([]OfferTaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, OfferTaskResponse{
			TaskResponse: fromTask(t.Task),
			ServiceOffer: FromServiceOffer(t.Offer),
		})
	}
	return out
}

type OfferDecisionResponse struct {
	ServiceOffer ServiceOfferResponse  `json:"service_offer"`
	ServiceOrder *ServiceOrderResponse `json:"service_order,omitempty"`
}

func FromOfferDecision(r usecase.OfferDecisionResult, today time.Time) OfferDecisionResponse {
	out := OfferDecisionResponse{ServiceOffer: FromServiceOffer(r.Offer)}
	if r.ServiceOrder != nil {
		order := FromServiceOrder(*r.ServiceOrder, today)
		out.ServiceOrder = &order
	}
	return out
}

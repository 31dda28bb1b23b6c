package request

import (
	"strings"

	"staffing_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type SubmitServiceOfferRequest struct {
	ExternalID       string          `json:"external_id"`
	ServiceRequestID string          `json:"service_request_id" binding:"required"`
	ProviderID       string          `json:"provider_id" binding:"required"`
	ProviderName     string          `json:"provider_name"`
	SpecialistID     string          `json:"specialist_id" binding:"required"`
	SpecialistName   string          `json:"specialist_name"`
	DailyRate        decimal.Decimal `json:"daily_rate"`
	TravelCost       decimal.Decimal `json:"travel_cost"`
	TotalCost        decimal.Decimal `json:"total_cost"`
	Notes            string          `json:"notes"`
}

func (r SubmitServiceOfferRequest) ToInput() entities.NewServiceOfferInput {
	return entities.NewServiceOfferInput{
		ExternalID:       strings.TrimSpace(r.ExternalID),
		ServiceRequestID: strings.TrimSpace(r.ServiceRequestID),
		ProviderID:       strings.TrimSpace(r.ProviderID),
		ProviderName:     strings.TrimSpace(r.ProviderName),
		SpecialistID:     strings.TrimSpace(r.SpecialistID),
		SpecialistName:   strings.TrimSpace(r.SpecialistName),
		DailyRate:        r.DailyRate,
		TravelCost:       r.TravelCost,
		TotalCost:        r.TotalCost,
		Notes:            r.Notes,
	}
}

type ServiceOfferListQuery struct {
	ServiceRequestID string `form:"service_request_id"`
	Status           string `form:"status"`
}

func (q ServiceOfferListQuery) ToFilter() entities.ServiceOfferFilter {
	return entities.ServiceOfferFilter{
		ServiceRequestID: strings.TrimSpace(q.ServiceRequestID),
		Status:           entities.ServiceOfferStatus(strings.ToUpper(strings.TrimSpace(q.Status))),
	}
}

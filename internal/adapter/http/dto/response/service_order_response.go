package response

import (
	"time"

	"staffing_service/internal/domain/entities"
)

type ServiceOrderResponse struct {
	ID                     string    `json:"id"`
	ServiceRequestID       string    `json:"service_request_id"`
	WinningOfferID         string    `json:"winning_offer_id"`
	SupplierID             string    `json:"supplier_id"`
	SupplierName           string    `json:"supplier_name"`
	Title                  string    `json:"title"`
	Role                   string    `json:"role"`
	Domain                 string    `json:"domain"`
	Status                 string    `json:"status"`
	StartDate              string    `json:"start_date"`
	OriginalEndDate        string    `json:"original_end_date"`
	CurrentEndDate         string    `json:"current_end_date"`
	ActualEndDate          *string   `json:"actual_end_date"`
	OriginalSpecialistID   string    `json:"original_specialist_id"`
	OriginalSpecialistName string    `json:"original_specialist_name"`
	CurrentSpecialistID    string    `json:"current_specialist_id"`
	CurrentSpecialistName  string    `json:"current_specialist_name"`
	OriginalManDays        int       `json:"original_man_days"`
	CurrentManDays         int       `json:"current_man_days"`
	ConsumedManDays        int       `json:"consumed_man_days"`
	RemainingManDays       int       `json:"remaining_man_days"`
	DailyRate              string    `json:"daily_rate"`
	OriginalContractValue  string    `json:"original_contract_value"`
	CurrentContractValue   string    `json:"current_contract_value"`
	HasBeenExtended        bool      `json:"has_been_extended"`
	HasBeenSubstituted     bool      `json:"has_been_substituted"`
	Notes                  string    `json:"notes"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
	Version                int64     `json:"version"`
}

// FromServiceOrder renders o with its man-day metrics evaluated at today.
func FromServiceOrder(o entities.ServiceOrder, today time.Time) ServiceOrderResponse {
	return ServiceOrderResponse{
		ID:                     o.ID,
		ServiceRequestID:       o.ServiceRequestID,
		WinningOfferID:         o.WinningOfferID,
		SupplierID:             o.SupplierID,
		SupplierName:           o.SupplierName,
		Title:                  o.Title,
		Role:                   o.Role,
		Domain:                 o.Domain,
		Status:                 string(o.Status),
		StartDate:              date(o.StartDate),
		OriginalEndDate:        date(o.OriginalEndDate),
		CurrentEndDate:         date(o.CurrentEndDate),
		ActualEndDate:          datePtr(o.ActualEndDate),
		OriginalSpecialistID:   o.OriginalSpecialistID,
		OriginalSpecialistName: o.OriginalSpecialistName,
		CurrentSpecialistID:    o.CurrentSpecialistID,
		CurrentSpecialistName:  o.CurrentSpecialistName,
		OriginalManDays:        o.OriginalManDays,
		CurrentManDays:         o.CurrentManDays,
		ConsumedManDays:        o.ConsumedManDays(today),
		RemainingManDays:       o.RemainingManDays(today),
		DailyRate:              money(o.DailyRate),
		OriginalContractValue:  money(o.OriginalContractValue),
		CurrentContractValue:   money(o.CurrentContractValue),
		HasBeenExtended:        o.HasBeenExtended(),
		HasBeenSubstituted:     o.HasBeenSubstituted(),
		Notes:                  o.Notes,
		CreatedAt:              o.CreatedAt,
		UpdatedAt:              o.UpdatedAt,
		Version:                o.Version,
	}
}

func FromServiceOrders(orders []entities.ServiceOrder, today time.Time) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o, today))
	}
	return out
}

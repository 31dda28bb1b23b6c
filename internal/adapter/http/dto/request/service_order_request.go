package request

import (
	"strings"

	"staffing_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// CreateServiceOrderRequest opens an order directly, without going through
// offer acceptance.
type CreateServiceOrderRequest struct {
	ServiceRequestID string          `json:"service_request_id"`
	WinningOfferID   string          `json:"winning_offer_id"`
	SupplierID       string          `json:"supplier_id"`
	SupplierName     string          `json:"supplier_name"`
	Title            string          `json:"title" binding:"required"`
	Role             string          `json:"role"`
	Domain           string          `json:"domain"`
	SpecialistID     string          `json:"specialist_id" binding:"required"`
	SpecialistName   string          `json:"specialist_name"`
	StartDate        string          `json:"start_date" binding:"required,iso_date"`
	EndDate          string          `json:"end_date" binding:"required,iso_date"`
	ManDays          int             `json:"man_days" binding:"required,min=1"`
	DailyRate        decimal.Decimal `json:"daily_rate"`
	ContractValue    decimal.Decimal `json:"contract_value"`
	Notes            string          `json:"notes"`
}

func (r CreateServiceOrderRequest) ToInput() (entities.NewServiceOrderInput, error) {
	start, err := parseDate("start_date", r.StartDate)
	if err != nil {
		return entities.NewServiceOrderInput{}, err
	}
	end, err := parseDate("end_date", r.EndDate)
	if err != nil {
		return entities.NewServiceOrderInput{}, err
	}
	return entities.NewServiceOrderInput{
		ServiceRequestID: strings.TrimSpace(r.ServiceRequestID),
		WinningOfferID:   strings.TrimSpace(r.WinningOfferID),
		SupplierID:       strings.TrimSpace(r.SupplierID),
		SupplierName:     strings.TrimSpace(r.SupplierName),
		Title:            r.Title,
		Role:             r.Role,
		Domain:           r.Domain,
		SpecialistID:     strings.TrimSpace(r.SpecialistID),
		SpecialistName:   strings.TrimSpace(r.SpecialistName),
		StartDate:        start,
		EndDate:          end,
		ManDays:          r.ManDays,
		DailyRate:        r.DailyRate,
		ContractValue:    r.ContractValue,
		Notes:            r.Notes,
	}, nil
}

// ServiceOrderListQuery is bound from the query string of the list and
// export endpoints.
type ServiceOrderListQuery struct {
	Status         string `form:"status"`
	SupplierID     string `form:"supplier_id"`
	SupplierName   string `form:"supplier_name"`
	SpecialistName string `form:"specialist_name"`
	Role           string `form:"role"`
	Domain         string `form:"domain"`
	Search         string `form:"search"`
}

func (q ServiceOrderListQuery) ToFilter() entities.ServiceOrderFilter {
	return entities.ServiceOrderFilter{
		Status:                entities.ServiceOrderStatus(strings.ToUpper(strings.TrimSpace(q.Status))),
		SupplierID:            strings.TrimSpace(q.SupplierID),
		SupplierName:          strings.TrimSpace(q.SupplierName),
		CurrentSpecialistName: strings.TrimSpace(q.SpecialistName),
		Role:                  strings.TrimSpace(q.Role),
		Domain:                strings.TrimSpace(q.Domain),
		Search:                strings.TrimSpace(q.Search),
	}
}

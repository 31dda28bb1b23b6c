package usecase

import (
	"time"

	"staffing_service/internal/domain/entities"
	"staffing_service/internal/infrastructure/logger"

	"github.com/shopspring/decimal"
)

func init() {
	logger.Silence()
}

var fixedNow = time.Date(2025, time.January, 10, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func activeOrder() entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:                     "so-1",
		ServiceRequestID:       "sr-1",
		WinningOfferID:         "of-1",
		SupplierID:             "sup-1",
		SupplierName:           "Acme",
		Title:                  "Backend engineer",
		Status:                 entities.ServiceOrderStatusActive,
		StartDate:              time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		OriginalEndDate:        time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC),
		CurrentEndDate:         time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC),
		OriginalSpecialistID:   "spec-a",
		OriginalSpecialistName: "Alice",
		CurrentSpecialistID:    "spec-a",
		CurrentSpecialistName:  "Alice",
		OriginalManDays:        20,
		CurrentManDays:         20,
		DailyRate:              decimal.NewFromInt(500),
		OriginalContractValue:  decimal.NewFromInt(10000),
		CurrentContractValue:   decimal.NewFromInt(10000),
		Version:                3,
	}
}

func pendingExtension() entities.ServiceOrderExtension {
	return entities.ServiceOrderExtension{
		ID:                "ext-1",
		ServiceOrderID:    "so-1",
		Status:            entities.ApprovalStatusPendingSupplier,
		AdditionalManDays: 5,
		NewEndDate:        time.Date(2025, time.February, 7, 0, 0, 0, 0, time.UTC),
		AdditionalCost:    decimal.NewFromInt(2500),
		Reason:            "scope grew",
		Version:           1,
	}
}

func pendingSubstitution() entities.ServiceOrderSubstitution {
	return entities.ServiceOrderSubstitution{
		ID:                     "sub-1",
		ServiceOrderID:         "so-1",
		InitiatedBy:            entities.InitiatedByProjectManager,
		Status:                 entities.ApprovalStatusPendingSupplier,
		OutgoingSpecialistID:   "spec-a",
		OutgoingSpecialistName: "Alice",
		IncomingSpecialistID:   "spec-b",
		IncomingSpecialistName: "Bob",
		Reason:                 entities.SubstitutionReasonJobChange,
		Version:                1,
	}
}

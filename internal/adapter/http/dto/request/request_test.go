package request

import (
	"errors"
	"testing"
	"time"

	"staffing_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestCreateServiceOrderRequest_ToInput(t *testing.T) {
	r := CreateServiceOrderRequest{
		Title:        "Backend engineer",
		SpecialistID: " spec-a ",
		StartDate:    "2025-01-01",
		EndDate:      "2025-01-31",
		ManDays:      20,
		DailyRate:    decimal.NewFromInt(500),
	}
	in, err := r.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.SpecialistID != "spec-a" {
		t.Fatalf("expected trimmed specialist id, got %q", in.SpecialistID)
	}
	if !in.EndDate.Equal(time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected end date: %v", in.EndDate)
	}

	r.EndDate = "31/01/2025"
	if _, err := r.ToInput(); !errors.Is(err, entities.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestServiceOrderListQuery_ToFilter(t *testing.T) {
	f := ServiceOrderListQuery{Status: "active", SpecialistName: " Ali ", Search: "so-"}.ToFilter()
	if f.Status != entities.ServiceOrderStatusActive || f.CurrentSpecialistName != "Ali" || f.Search != "so-" {
		t.Fatalf("unexpected filter: %+v", f)
	}
}

func TestCreateServiceRequestRequest_Criteria(t *testing.T) {
	t.Run("empty criteria allowed", func(t *testing.T) {
		in, err := CreateServiceRequestRequest{Title: "t", RoleName: "dev"}.ToInput()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.Criteria.Skills != nil || in.OfferDeadline != nil {
			t.Fatalf("unexpected input: %+v", in)
		}
	})

	t.Run("exact keys", func(t *testing.T) {
		in, err := CreateServiceRequestRequest{
			Title:    "t",
			RoleName: "dev",
			Criteria: map[string][]string{
				"skills":         {"go"},
				"certifications": {},
				"languages":      {"en"},
			},
			OfferDeadline: "2025-02-01",
		}.ToInput()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(in.Criteria.Skills) != 1 || in.OfferDeadline == nil {
			t.Fatalf("unexpected input: %+v", in)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := CreateServiceRequestRequest{
			Title:    "t",
			RoleName: "dev",
			Criteria: map[string][]string{"skills": {"go"}},
		}.ToInput()
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestOrderChangeRequests(t *testing.T) {
	ext, err := CreateExtensionRequest{AdditionalManDays: 5, NewEndDate: "2025-02-07", AdditionalCost: decimal.NewFromInt(2500), Reason: "scope"}.ToInput()
	if err != nil || ext.NewEndDate.Day() != 7 {
		t.Fatalf("unexpected extension input: %+v %v", ext, err)
	}

	sub := CreateSubstitutionRequest{InitiatedBy: "PROJECT_MANAGER", OutgoingSpecialistID: "a", IncomingSpecialistID: " b ", Reason: "OTHER"}.ToInput()
	if sub.InitiatedBy != entities.InitiatedByProjectManager || sub.IncomingSpecialistID != "b" {
		t.Fatalf("unexpected substitution input: %+v", sub)
	}

	if (RejectionRequest{UserRole: "SUPPLIER_REP"}).Actor().Role != entities.RoleSupplierRep {
		t.Fatalf("unexpected actor")
	}
}

package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"staffing_service/internal/adapter/http/handlers/mocks"
	"staffing_service/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newExtensionRouter(t *testing.T) (*gin.Engine, *mocks.MockIExtensionUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIExtensionUseCase(ctrl)
	h := NewExtensionHandler(uc)

	r := gin.New()
	r.POST("/v1/service-orders/:id/extensions", h.Create)
	r.GET("/v1/extensions/:id", h.GetByID)
	r.POST("/v1/extensions/:id/approve", h.Approve)
	r.POST("/v1/extensions/:id/reject", h.Reject)
	return r, uc
}

func newSubstitutionRouter(t *testing.T) (*gin.Engine, *mocks.MockISubstitutionUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockISubstitutionUseCase(ctrl)
	h := NewSubstitutionHandler(uc)

	r := gin.New()
	r.POST("/v1/service-orders/:id/substitutions", h.Create)
	r.POST("/v1/substitutions/:id/approve", h.Approve)
	r.POST("/v1/substitutions/:id/reject", h.Reject)
	return r, uc
}

func TestExtensionHandler_Create(t *testing.T) {
	t.Run("cost mismatch", func(t *testing.T) {
		r, uc := newExtensionRouter(t)
		uc.EXPECT().Create(gomock.Any(), "so-1", gomock.Any()).Return(entities.ServiceOrderExtension{}, entities.NewValidationError("additional cost does not match"))

		body := `{"additional_man_days":5,"new_end_date":"2025-02-07","additional_cost":"1000","reason":"scope"}`
		w := performRequest(r, http.MethodPost, "/v1/service-orders/so-1/extensions", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newExtensionRouter(t)
		uc.EXPECT().Create(gomock.Any(), "so-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, in entities.NewExtensionInput) (entities.ServiceOrderExtension, error) {
				if in.AdditionalManDays != 5 || !in.AdditionalCost.Equal(decimal.NewFromInt(2500)) {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.ServiceOrderExtension{
					ID:             "ext-1",
					ServiceOrderID: "so-1",
					Status:         entities.ApprovalStatusPendingSupplier,
					NewEndDate:     time.Date(2025, time.February, 7, 0, 0, 0, 0, time.UTC),
					AdditionalCost: in.AdditionalCost,
				}, nil
			},
		)

		body := `{"additional_man_days":5,"new_end_date":"2025-02-07","additional_cost":2500,"reason":"scope"}`
		w := performRequest(r, http.MethodPost, "/v1/service-orders/so-1/extensions", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestExtensionHandler_ApproveReject(t *testing.T) {
	t.Run("missing role", func(t *testing.T) {
		r, uc := newExtensionRouter(t)
		uc.EXPECT().Approve(gomock.Any(), "ext-1", entities.Actor{}).
			Return(entities.ServiceOrderExtension{}, entities.NewAuthorizationError("only the supplier representative can approve extensions"))

		w := performRequest(r, http.MethodPost, "/v1/extensions/ext-1/approve", `{}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		r, uc := newExtensionRouter(t)
		uc.EXPECT().Approve(gomock.Any(), "ext-1", entities.Actor{Role: "GUEST"}).
			Return(entities.ServiceOrderExtension{}, entities.NewAuthorizationError("only the supplier representative can approve extensions"))

		w := performRequest(r, http.MethodPost, "/v1/extensions/ext-1/approve", `{"user_role":"GUEST"}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("forbidden", func(t *testing.T) {
		r, uc := newExtensionRouter(t)
		uc.EXPECT().Approve(gomock.Any(), "ext-1", entities.Actor{Role: entities.RoleSupplierRep}).
			Return(entities.ServiceOrderExtension{}, entities.NewAuthorizationError("role not allowed"))

		w := performRequest(r, http.MethodPost, "/v1/extensions/ext-1/approve", `{"user_role":"SUPPLIER_REP"}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("reject passes reason", func(t *testing.T) {
		r, uc := newExtensionRouter(t)
		uc.EXPECT().Reject(gomock.Any(), "ext-1", entities.Actor{Role: entities.RoleProjectManager}, "too expensive").
			Return(entities.ServiceOrderExtension{ID: "ext-1", Status: entities.ApprovalStatusRejected}, nil)

		w := performRequest(r, http.MethodPost, "/v1/extensions/ext-1/reject", `{"user_role":"PROJECT_MANAGER","reason":"too expensive"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("second approval", func(t *testing.T) {
		r, uc := newExtensionRouter(t)
		uc.EXPECT().Approve(gomock.Any(), "ext-1", gomock.Any()).
			Return(entities.ServiceOrderExtension{}, entities.NewInvalidStateError("extension is already APPROVED"))

		w := performRequest(r, http.MethodPost, "/v1/extensions/ext-1/approve", `{"user_role":"PROJECT_MANAGER"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestSubstitutionHandler(t *testing.T) {
	t.Run("invalid reason never reaches the use case", func(t *testing.T) {
		r, _ := newSubstitutionRouter(t)
		body := `{"initiated_by":"PROJECT_MANAGER","outgoing_specialist_id":"a","incoming_specialist_id":"b","reason":"BORED"}`
		w := performRequest(r, http.MethodPost, "/v1/service-orders/so-1/substitutions", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create", func(t *testing.T) {
		r, uc := newSubstitutionRouter(t)
		want := entities.NewSubstitutionInput{
			InitiatedBy:            entities.InitiatedBySupplierRepresentative,
			OutgoingSpecialistID:   "spec-a",
			IncomingSpecialistID:   "spec-b",
			IncomingSpecialistName: "Bob",
			Reason:                 entities.SubstitutionReasonHealthIssues,
		}
		uc.EXPECT().Create(gomock.Any(), "so-1", want).Return(entities.ServiceOrderSubstitution{
			ID:     "sub-1",
			Status: entities.ApprovalStatusPendingClient,
		}, nil)

		body := `{"initiated_by":"SUPPLIER_REPRESENTATIVE","outgoing_specialist_id":"spec-a","incoming_specialist_id":"spec-b","incoming_specialist_name":"Bob","reason":"HEALTH_ISSUES"}`
		w := performRequest(r, http.MethodPost, "/v1/service-orders/so-1/substitutions", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("approve", func(t *testing.T) {
		r, uc := newSubstitutionRouter(t)
		uc.EXPECT().Approve(gomock.Any(), "sub-1", entities.Actor{Role: entities.RoleSupplierRep}).
			Return(entities.ServiceOrderSubstitution{ID: "sub-1", Status: entities.ApprovalStatusApproved}, nil)

		w := performRequest(r, http.MethodPost, "/v1/substitutions/sub-1/approve", `{"user_role":"SUPPLIER_REP"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("empty rejection reason", func(t *testing.T) {
		r, uc := newSubstitutionRouter(t)
		uc.EXPECT().Reject(gomock.Any(), "sub-1", gomock.Any(), "").
			Return(entities.ServiceOrderSubstitution{}, entities.NewValidationError("rejection reason is required"))

		w := performRequest(r, http.MethodPost, "/v1/substitutions/sub-1/reject", `{"user_role":"SUPPLIER_REP"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

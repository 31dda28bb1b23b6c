package entities

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfferStatusForDecision(t *testing.T) {
	assert.Equal(t, ServiceOfferStatusAccepted, OfferStatusForDecision("final_approval"))
	assert.Equal(t, ServiceOfferStatusRejected, OfferStatusForDecision("final_rejection"))
	assert.Equal(t, ServiceOfferStatusUnderReview, OfferStatusForDecision("counter_offer"))
}

func TestServiceOffer_DecideAndConvert(t *testing.T) {
	now := day(2025, time.January, 2)
	offer, err := NewServiceOffer("of-1", NewServiceOfferInput{
		ExternalID:       "ext-99",
		ServiceRequestID: "sr-1",
		ProviderID:       "sup-1",
		ProviderName:     "Acme",
		SpecialistID:     "spec-a",
		SpecialistName:   "Alice",
		DailyRate:        decimal.NewFromInt(500),
		TotalCost:        decimal.NewFromInt(10200),
		TravelCost:       decimal.NewFromInt(200),
	}, now)
	require.NoError(t, err)
	assert.Equal(t, ServiceOfferStatusSubmitted, offer.Status)

	accepted, err := offer.Decide(OfferDecisionFinalApproval, now)
	require.NoError(t, err)
	assert.Equal(t, ServiceOfferStatusAccepted, accepted.Status)

	_, err = accepted.Decide(OfferDecisionFinalRejection, now)
	assert.True(t, errors.Is(err, ErrInvalidState))

	req := ServiceRequest{
		ID:              "sr-1",
		Title:           "Backend engineer",
		RoleName:        "Developer",
		Technology:      "Go",
		StartDate:       day(2025, time.January, 1),
		EndDate:         day(2025, time.January, 31),
		ExpectedManDays: 20,
	}
	order, err := NewServiceOrder("so-1", accepted.ToServiceOrderInput(req), now)
	require.NoError(t, err)
	assert.Equal(t, "of-1", order.WinningOfferID)
	assert.Equal(t, "sup-1", order.SupplierID)
	assert.Equal(t, "Go", order.Domain)
	assert.True(t, order.OriginalContractValue.Equal(decimal.NewFromInt(10200)))
}

func TestNewServiceRequest(t *testing.T) {
	now := day(2025, time.January, 2)

	req, err := NewServiceRequest("sr-1", NewServiceRequestInput{
		Title:     "Backend engineer",
		RoleName:  "Developer",
		StartDate: day(2025, time.January, 1),
		EndDate:   day(2025, time.January, 31),
	}, now)
	require.NoError(t, err)
	assert.Equal(t, ServiceRequestStatusOpen, req.Status)
	assert.Equal(t, ExperienceLevelJunior, req.ExperienceLevel)

	_, err = NewServiceRequest("sr-2", NewServiceRequestInput{
		Title:     "Backend engineer",
		RoleName:  "Developer",
		StartDate: day(2025, time.February, 1),
		EndDate:   day(2025, time.January, 31),
	}, now)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestDomainError_Is(t *testing.T) {
	assert.True(t, errors.Is(ErrConcurrentModification, ErrInvalidState))
	assert.False(t, errors.Is(ErrConcurrentModification, ErrValidation))
	assert.True(t, errors.Is(NewNotFoundError("x"), ErrNotFound))
	assert.Equal(t, KindRemoteCollaborator, KindOf(NewRemoteCollaboratorError("workflow engine", errors.New("boom"))))
	assert.Equal(t, ErrorKind(""), KindOf(errors.New("plain")))
}

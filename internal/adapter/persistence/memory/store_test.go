package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"staffing_service/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedOrder(t *testing.T, s *Store, id string, created time.Time) entities.ServiceOrder {
	t.Helper()
	o, err := entities.NewServiceOrder(id, entities.NewServiceOrderInput{
		Title:          "Backend engineer " + id,
		SupplierID:     "sup-1",
		SupplierName:   "Acme",
		SpecialistID:   "spec-a",
		SpecialistName: "Alice",
		StartDate:      time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC),
		ManDays:        20,
		DailyRate:      decimal.NewFromInt(500),
	}, created)
	require.NoError(t, err)
	stored, err := s.ServiceOrders().Create(context.Background(), o)
	require.NoError(t, err)
	return stored
}

func TestServiceOrderRepository_CreateListUpdate(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	base := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	first := seedOrder(t, s, "so-1", base)
	seedOrder(t, s, "so-2", base.Add(time.Hour))

	assert.Equal(t, int64(1), first.Version)

	_, err := s.ServiceOrders().Create(ctx, first)
	assert.ErrorIs(t, err, entities.ErrInvalidState)

	all, err := s.ServiceOrders().List(ctx, entities.ServiceOrderFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "so-2", all[0].ID)

	found, err := s.ServiceOrders().List(ctx, entities.ServiceOrderFilter{Search: "SO-1"})
	require.NoError(t, err)
	require.Len(t, found, 1)

	missing, err := s.ServiceOrders().GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	suspended, err := first.Suspend(base)
	require.NoError(t, err)
	updated, err := s.ServiceOrders().Update(ctx, suspended)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.Version)

	_, err = s.ServiceOrders().Update(ctx, suspended)
	assert.ErrorIs(t, err, entities.ErrConcurrentModification)
}

func TestStore_CommitExtension(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	now := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	order := seedOrder(t, s, "so-1", now)

	ext, pending, err := entities.NewServiceOrderExtension("ext-1", order, entities.NewExtensionInput{
		AdditionalManDays: 2,
		NewEndDate:        time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC),
		AdditionalCost:    decimal.NewFromInt(1000),
		Reason:            "scope grew",
	}, now)
	require.NoError(t, err)

	savedOrder, savedExt, err := s.CommitExtension(ctx, pending, ext)
	require.NoError(t, err)
	assert.Equal(t, int64(2), savedOrder.Version)
	assert.Equal(t, int64(1), savedExt.Version)

	// the same insert again loses: the order version moved on
	_, _, err = s.CommitExtension(ctx, pending, ext)
	assert.ErrorIs(t, err, entities.ErrConcurrentModification)

	list, err := s.Extensions().ListByServiceOrderID(ctx, "so-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestStore_CommitSubstitution_SingleWinner(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	now := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	order := seedOrder(t, s, "so-1", now)

	sub, pending, err := entities.NewServiceOrderSubstitution("sub-1", order, entities.NewSubstitutionInput{
		InitiatedBy:            entities.InitiatedByProjectManager,
		OutgoingSpecialistID:   "spec-a",
		IncomingSpecialistID:   "spec-b",
		IncomingSpecialistName: "Bob",
		Reason:                 entities.SubstitutionReasonJobChange,
	}, now)
	require.NoError(t, err)
	_, sub, err = s.CommitSubstitution(ctx, pending, sub)
	require.NoError(t, err)

	current, err := s.ServiceOrders().GetByID(ctx, "so-1")
	require.NoError(t, err)
	approvedSub, approvedOrder, err := sub.Approve(current, entities.Actor{Role: entities.RoleSupplierRep}, now)
	require.NoError(t, err)
	rejectedSub, rejectedOrder, err := sub.Reject(current, entities.Actor{Role: entities.RoleProjectManager}, "no", now)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _, errs[0] = s.CommitSubstitution(ctx, approvedOrder, approvedSub)
	}()
	go func() {
		defer wg.Done()
		_, _, errs[1] = s.CommitSubstitution(ctx, rejectedOrder, rejectedSub)
	}()
	wg.Wait()

	failures := 0
	for _, err := range errs {
		if err != nil {
			assert.ErrorIs(t, err, entities.ErrConcurrentModification)
			failures++
		}
	}
	assert.Equal(t, 1, failures)

	final, err := s.Substitutions().GetByID(ctx, "sub-1")
	require.NoError(t, err)
	assert.True(t, final.Status.IsTerminal())
	assert.Equal(t, int64(2), final.Version)
}

func TestServiceOfferRepository_ListFilter(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repo := s.ServiceOffers()
	for _, o := range []entities.ServiceOffer{
		{ID: "of-1", ServiceRequestID: "sr-1", Status: entities.ServiceOfferStatusSubmitted},
		{ID: "of-2", ServiceRequestID: "sr-2", Status: entities.ServiceOfferStatusSubmitted},
	} {
		_, err := repo.Create(ctx, o)
		require.NoError(t, err)
	}

	got, err := repo.List(ctx, entities.ServiceOfferFilter{ServiceRequestID: "sr-2"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "of-2", got[0].ID)

	stale := got[0]
	stale.Version = 7
	_, err = repo.Update(ctx, stale)
	assert.ErrorIs(t, err, entities.ErrConcurrentModification)
}

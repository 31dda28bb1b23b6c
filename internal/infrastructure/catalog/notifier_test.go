package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"staffing_service/internal/domain/entities"
	"staffing_service/internal/infrastructure/config"
	"staffing_service/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.Silence()
}

func TestNotifier_NotifyStatusChange(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/requests/service-offers/update-status/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	n := NewNotifier(srv.URL, time.Second)
	require.NoError(t, n.NotifyStatusChange(context.Background(), "service-offers", "ext-1", "ACCEPTED"))
	assert.Equal(t, map[string]string{"id": "ext-1", "status": "ACCEPTED"}, got)
}

func TestNotifier_PublishServiceRequest(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/requests/service-requests/generate/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	deadline := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	n := NewNotifier(srv.URL, time.Second)
	err := n.PublishServiceRequest(context.Background(), entities.ServiceRequest{
		ID:              "sr-1",
		Title:           "Backend engineer",
		ExperienceLevel: entities.ExperienceLevelSenior,
		StartDate:       time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		Criteria:        entities.RequestCriteria{Skills: []string{"go"}},
		Status:          entities.ServiceRequestStatusOpen,
		OfferDeadline:   &deadline,
	})
	require.NoError(t, err)

	assert.Equal(t, "sr-1", got["external_id"])
	assert.Equal(t, "2025-03-01", got["start_date"])
	assert.Equal(t, "2025-02-01", got["offer_deadline"])
	assert.Equal(t, "Remote", got["word_mode"])
	criteria := got["criteria_json"].(map[string]any)
	assert.Equal(t, []any{"go"}, criteria["skills"])
	assert.Equal(t, []any{}, criteria["languages"])
}

func TestNotifier_Failures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	err := NewNotifier(srv.URL, time.Second).NotifyStatusChange(context.Background(), "service-orders", "so-1", "COMPLETED")
	assert.Error(t, err)
}

func TestNew_MockWithoutBaseURL(t *testing.T) {
	n := New(config.Config{})
	require.True(t, n.mockMode)
	assert.NoError(t, n.NotifyStatusChange(context.Background(), "service-orders", "so-1", "COMPLETED"))
}

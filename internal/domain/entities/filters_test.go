package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceOrderFilter_Matches(t *testing.T) {
	o := newTestOrder(t)

	tests := []struct {
		name   string
		filter ServiceOrderFilter
		want   bool
	}{
		{"empty", ServiceOrderFilter{}, true},
		{"status", ServiceOrderFilter{Status: ServiceOrderStatusActive}, true},
		{"other status", ServiceOrderFilter{Status: ServiceOrderStatusCompleted}, false},
		{"supplier name is partial and case-insensitive", ServiceOrderFilter{SupplierName: "acm"}, true},
		{"winning offer", ServiceOrderFilter{WinningOfferID: "of-2"}, false},
		{"search by title", ServiceOrderFilter{Search: "BACKEND"}, true},
		{"search by specialist", ServiceOrderFilter{Search: "alice"}, true},
		{"search miss", ServiceOrderFilter{Search: "frontend"}, false},
		{"combined", ServiceOrderFilter{Domain: "go", Role: "dev", Search: "so-1"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(o))
		})
	}
}

func TestServiceOfferFilter_Matches(t *testing.T) {
	o := ServiceOffer{ServiceRequestID: "sr-1", Status: ServiceOfferStatusSubmitted}

	assert.True(t, ServiceOfferFilter{}.Matches(o))
	assert.True(t, ServiceOfferFilter{ServiceRequestID: "sr-1", Status: ServiceOfferStatusSubmitted}.Matches(o))
	assert.False(t, ServiceOfferFilter{ServiceRequestID: "sr-2"}.Matches(o))
	assert.False(t, ServiceOfferFilter{Status: ServiceOfferStatusAccepted}.Matches(o))
}

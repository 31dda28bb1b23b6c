package entities

import "strings"

// ServiceOrderFilter narrows order listings. Empty fields are ignored.
type ServiceOrderFilter struct {
	Status                ServiceOrderStatus
	SupplierID            string
	SupplierName          string
	CurrentSpecialistName string
	Role                  string
	Domain                string
	WinningOfferID        string
	// Search matches id, title, specialist or supplier name (case-insensitive).
	Search string
}

// ServiceOfferFilter narrows offer listings.
type ServiceOfferFilter struct {
	ServiceRequestID string
	Status           ServiceOfferStatus
}

// Matches reports whether o satisfies every set field of the filter.
func (f ServiceOrderFilter) Matches(o ServiceOrder) bool {
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	if f.SupplierID != "" && o.SupplierID != f.SupplierID {
		return false
	}
	if f.WinningOfferID != "" && o.WinningOfferID != f.WinningOfferID {
		return false
	}
	if !containsFold(o.SupplierName, f.SupplierName) ||
		!containsFold(o.CurrentSpecialistName, f.CurrentSpecialistName) ||
		!containsFold(o.Role, f.Role) ||
		!containsFold(o.Domain, f.Domain) {
		return false
	}
	if f.Search == "" {
		return true
	}
	for _, field := range []string{o.ID, o.Title, o.CurrentSpecialistName, o.SupplierName} {
		if containsFold(field, f.Search) {
			return true
		}
	}
	return false
}

func (f ServiceOfferFilter) Matches(o ServiceOffer) bool {
	if f.ServiceRequestID != "" && o.ServiceRequestID != f.ServiceRequestID {
		return false
	}
	return f.Status == "" || o.Status == f.Status
}

func containsFold(s, substr string) bool {
	return substr == "" || strings.Contains(strings.ToLower(s), strings.ToLower(strings.TrimSpace(substr)))
}

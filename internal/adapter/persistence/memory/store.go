// Package memory keeps every aggregate in process. It backs local runs and
// tests and honours the same version checks as the database backends.
package memory

import (
	"context"
	"sort"
	"sync"

	"staffing_service/internal/domain/entities"
	"staffing_service/internal/usecase/interfaces"
)

type Store struct {
	mu            sync.RWMutex
	orders        map[string]entities.ServiceOrder
	extensions    map[string]entities.ServiceOrderExtension
	substitutions map[string]entities.ServiceOrderSubstitution
	requests      map[string]entities.ServiceRequest
	offers        map[string]entities.ServiceOffer
}

func NewStore() *Store {
	return &Store{
		orders:        map[string]entities.ServiceOrder{},
		extensions:    map[string]entities.ServiceOrderExtension{},
		substitutions: map[string]entities.ServiceOrderSubstitution{},
		requests:      map[string]entities.ServiceRequest{},
		offers:        map[string]entities.ServiceOffer{},
	}
}

func (s *Store) ServiceOrders() *ServiceOrderRepository { return &ServiceOrderRepository{s: s} }
func (s *Store) Extensions() *ExtensionRepository { return &ExtensionRepository{s: s} }
func (s *Store) Substitutions() *SubstitutionRepository { return &SubstitutionRepository{s: s} }
func (s *Store) ServiceRequests() *ServiceRequestRepository { return &ServiceRequestRepository{s: s} }
func (s *Store) ServiceOffers() *ServiceOfferRepository { return &ServiceOfferRepository{s: s} }

var _ interfaces.IOrderChangeCommitter = (*Store)(nil)

func (s *Store) CommitExtension(_ context.Context, order entities.ServiceOrder, ext entities.ServiceOrderExtension) (entities.ServiceOrder, entities.ServiceOrderExtension, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkOrderVersion(order); err != nil {
		return entities.ServiceOrder{}, entities.ServiceOrderExtension{}, err
	}
	current, exists := s.extensions[ext.ID]
	if exists != (ext.Version > 0) || (exists && current.Version != ext.Version) {
		return entities.ServiceOrder{}, entities.ServiceOrderExtension{}, entities.ErrConcurrentModification
	}

	order.Version++
	ext.Version++
	s.orders[order.ID] = order
	s.extensions[ext.ID] = ext
	return order, ext, nil
}

func (s *Store) CommitSubstitution(_ context.Context, order entities.ServiceOrder, sub entities.ServiceOrderSubstitution) (entities.ServiceOrder, entities.ServiceOrderSubstitution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkOrderVersion(order); err != nil {
		return entities.ServiceOrder{}, entities.ServiceOrderSubstitution{}, err
	}
	current, exists := s.substitutions[sub.ID]
	if exists != (sub.Version > 0) || (exists && current.Version != sub.Version) {
		return entities.ServiceOrder{}, entities.ServiceOrderSubstitution{}, entities.ErrConcurrentModification
	}

	order.Version++
	sub.Version++
	s.orders[order.ID] = order
	s.substitutions[sub.ID] = sub
	return order, sub, nil
}

// checkOrderVersion must be called with the write lock held.
func (s *Store) checkOrderVersion(order entities.ServiceOrder) error {
	current, ok := s.orders[order.ID]
	if !ok || current.Version != order.Version {
		return entities.ErrConcurrentModification
	}
	return nil
}

type ServiceOrderRepository struct{ s *Store }

var _ interfaces.IServiceOrderRepository = (*ServiceOrderRepository)(nil)

func (r *ServiceOrderRepository) Create(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.orders[o.ID]; ok {
		return entities.ServiceOrder{}, entities.NewInvalidStateError("service order %s already exists", o.ID)
	}
	o.Version = 1
	r.s.orders[o.ID] = o
	return o, nil
}

func (r *ServiceOrderRepository) GetByID(_ context.Context, id string) (entities.ServiceOrder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.orders[id], nil
}

func (r *ServiceOrderRepository) List(_ context.Context, filter entities.ServiceOrderFilter) ([]entities.ServiceOrder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.ServiceOrder, 0, len(r.s.orders))
	for _, o := range r.s.orders {
		if filter.Matches(o) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *ServiceOrderRepository) Update(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.checkOrderVersion(o); err != nil {
		return entities.ServiceOrder{}, err
	}
	o.Version++
	r.s.orders[o.ID] = o
	return o, nil
}

type ExtensionRepository struct{ s *Store }

var _ interfaces.IExtensionRepository = (*ExtensionRepository)(nil)

func (r *ExtensionRepository) GetByID(_ context.Context, id string) (entities.ServiceOrderExtension, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.extensions[id], nil
}

func (r *ExtensionRepository) ListByServiceOrderID(_ context.Context, serviceOrderID string) ([]entities.ServiceOrderExtension, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entities.ServiceOrderExtension{}
	for _, e := range r.s.extensions {
		if e.ServiceOrderID == serviceOrderID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type SubstitutionRepository struct{ s *Store }

var _ interfaces.ISubstitutionRepository = (*SubstitutionRepository)(nil)

func (r *SubstitutionRepository) GetByID(_ context.Context, id string) (entities.ServiceOrderSubstitution, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.substitutions[id], nil
}

func (r *SubstitutionRepository) ListByServiceOrderID(_ context.Context, serviceOrderID string) ([]entities.ServiceOrderSubstitution, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entities.ServiceOrderSubstitution{}
	for _, sub := range r.s.substitutions {
		if sub.ServiceOrderID == serviceOrderID {
			out = append(out, sub)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type ServiceRequestRepository struct{ s *Store }

var _ interfaces.IServiceRequestRepository = (*ServiceRequestRepository)(nil)

func (r *ServiceRequestRepository) Create(_ context.Context, req entities.ServiceRequest) (entities.ServiceRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.requests[req.ID]; ok {
		return entities.ServiceRequest{}, entities.NewInvalidStateError("service request %s already exists", req.ID)
	}
	req.Version = 1
	r.s.requests[req.ID] = req
	return req, nil
}

func (r *ServiceRequestRepository) GetByID(_ context.Context, id string) (entities.ServiceRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.requests[id], nil
}

func (r *ServiceRequestRepository) List(_ context.Context, status entities.ServiceRequestStatus) ([]entities.ServiceRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entities.ServiceRequest{}
	for _, req := range r.s.requests {
		if status == "" || req.Status == status {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *ServiceRequestRepository) Update(_ context.Context, req entities.ServiceRequest) (entities.ServiceRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.requests[req.ID]
	if !ok || current.Version != req.Version {
		return entities.ServiceRequest{}, entities.ErrConcurrentModification
	}
	req.Version++
	r.s.requests[req.ID] = req
	return req, nil
}

type ServiceOfferRepository struct{ s *Store }

var _ interfaces.IServiceOfferRepository = (*ServiceOfferRepository)(nil)

func (r *ServiceOfferRepository) Create(_ context.Context, o entities.ServiceOffer) (entities.ServiceOffer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.offers[o.ID]; ok {
		return entities.ServiceOffer{}, entities.NewInvalidStateError("service offer %s already exists", o.ID)
	}
	o.Version = 1
	r.s.offers[o.ID] = o
	return o, nil
}

func (r *ServiceOfferRepository) GetByID(_ context.Context, id string) (entities.ServiceOffer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.offers[id], nil
}

func (r *ServiceOfferRepository) List(_ context.Context, filter entities.ServiceOfferFilter) ([]entities.ServiceOffer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entities.ServiceOffer{}
	for _, o := range r.s.offers {
		if filter.Matches(o) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *ServiceOfferRepository) Update(_ context.Context, o entities.ServiceOffer) (entities.ServiceOffer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.offers[o.ID]
	if !ok || current.Version != o.Version {
		return entities.ServiceOffer{}, entities.ErrConcurrentModification
	}
	o.Version++
	r.s.offers[o.ID] = o
	return o, nil
}

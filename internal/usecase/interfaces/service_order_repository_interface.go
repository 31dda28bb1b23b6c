package interfaces

import (
	"context"

	"staffing_service/internal/domain/entities"
)

// IServiceOrderRepository persists service orders.
//
// GetByID returns a zero-value order when nothing is found. Update is
// conditional on the version that was read and returns the stored order with
// its new version, or entities.ErrConcurrentModification.
type IServiceOrderRepository interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	List(ctx context.Context, filter entities.ServiceOrderFilter) ([]entities.ServiceOrder, error)
	Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
}

package interfaces

import (
	"context"

	"staffing_service/internal/domain/entities"
)

// IExtensionRepository reads extensions. Writes go through
// IOrderChangeCommitter so the order is always updated in the same commit.
type IExtensionRepository interface {
	GetByID(ctx context.Context, id string) (entities.ServiceOrderExtension, error)
	// ListByServiceOrderID returns newest first.
	ListByServiceOrderID(ctx context.Context, serviceOrderID string) ([]entities.ServiceOrderExtension, error)
}

type ISubstitutionRepository interface {
	GetByID(ctx context.Context, id string) (entities.ServiceOrderSubstitution, error)
	ListByServiceOrderID(ctx context.Context, serviceOrderID string) ([]entities.ServiceOrderSubstitution, error)
}

// IOrderChangeCommitter writes an order together with one of its change
// records in a single atomic unit.
//
// Every write is conditional on the version carried by the entity. A child
// with version 0 is inserted and must not exist yet. On success both entities
// come back with their versions bumped; a lost race yields
// entities.ErrConcurrentModification and nothing is written.
type IOrderChangeCommitter interface {
	CommitExtension(ctx context.Context, order entities.ServiceOrder, ext entities.ServiceOrderExtension) (entities.ServiceOrder, entities.ServiceOrderExtension, error)
	CommitSubstitution(ctx context.Context, order entities.ServiceOrder, sub entities.ServiceOrderSubstitution) (entities.ServiceOrder, entities.ServiceOrderSubstitution, error)
}

package routes

import (
	"context"
	"fmt"

	"staffing_service/internal/adapter/persistence/memory"
	"staffing_service/internal/adapter/persistence/postgres"
	"staffing_service/internal/adapter/persistence/repository"
	"staffing_service/internal/infrastructure/config"
	"staffing_service/internal/infrastructure/database"
	"staffing_service/internal/infrastructure/logger"
	"staffing_service/internal/usecase/interfaces"
)

// storage groups the repositories of one driver.
type storage struct {
	orders        interfaces.IServiceOrderRepository
	extensions    interfaces.IExtensionRepository
	substitutions interfaces.ISubstitutionRepository
	committer     interfaces.IOrderChangeCommitter
	requests      interfaces.IServiceRequestRepository
	offers        interfaces.IServiceOfferRepository
	close         func()
}

func newStorage(ctx context.Context, cfg config.Config) (storage, error) {
	logger.Log.WithField("driver", cfg.StorageDriver).Info("[storage][routes] initialising")

	switch cfg.StorageDriver {
	case config.StorageMemory:
		return memoryStorage(memory.NewStore()), nil

	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return storage{}, err
		}
		changes := repository.NewOrderChangeDynamoRepository(ddb)
		return storage{
			orders:        repository.NewServiceOrderDynamoRepository(ddb),
			extensions:    changes.Extensions(),
			substitutions: changes.Substitutions(),
			committer:     changes,
			requests:      repository.NewServiceRequestDynamoRepository(ddb),
			offers:        repository.NewServiceOfferDynamoRepository(ddb),
			close:         func() {},
		}, nil

	case config.StoragePostgres:
		pool, err := database.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return storage{}, err
		}
		changes := postgres.NewOrderChangeRepository(pool)
		return storage{
			orders:        postgres.NewServiceOrderRepository(pool),
			extensions:    changes.Extensions(),
			substitutions: changes.Substitutions(),
			committer:     changes,
			requests:      postgres.NewServiceRequestRepository(pool),
			offers:        postgres.NewServiceOfferRepository(pool),
			close:         pool.Close,
		}, nil
	}
	return storage{}, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
}

func memoryStorage(store *memory.Store) storage {
	return storage{
		orders:        store.ServiceOrders(),
		extensions:    store.Extensions(),
		substitutions: store.Substitutions(),
		committer:     store,
		requests:      store.ServiceRequests(),
		offers:        store.ServiceOffers(),
		close:         func() {},
	}
}

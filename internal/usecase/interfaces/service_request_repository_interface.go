package interfaces

import (
	"context"

	"staffing_service/internal/domain/entities"
)

type IServiceRequestRepository interface {
	Create(ctx context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error)
	GetByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	List(ctx context.Context, status entities.ServiceRequestStatus) ([]entities.ServiceRequest, error)
	Update(ctx context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error)
}

type IServiceOfferRepository interface {
	Create(ctx context.Context, o entities.ServiceOffer) (entities.ServiceOffer, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOffer, error)
	List(ctx context.Context, filter entities.ServiceOfferFilter) ([]entities.ServiceOffer, error)
	Update(ctx context.Context, o entities.ServiceOffer) (entities.ServiceOffer, error)
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"staffing_service/internal/domain/entities"
	"staffing_service/internal/usecase/interfaces"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	serviceRequestsTable = "service_requests"
	serviceOffersTable   = "service_offers"
)

var serviceRequestColumns = []string{
	"id", "title", "role_name", "technology", "specialization", "experience_level",
	"start_date", "end_date", "expected_man_days", "criteria", "status",
	"task_description", "offer_deadline", "process_id", "created_at", "updated_at", "version",
}

var serviceOfferColumns = []string{
	"id", "external_id", "service_request_id", "provider_id", "provider_name",
	"specialist_id", "specialist_name", "status", "daily_rate", "travel_cost", "total_cost",
	"notes", "created_at", "updated_at", "version",
}

type ServiceRequestRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IServiceRequestRepository = (*ServiceRequestRepository)(nil)

func NewServiceRequestRepository(pool *pgxpool.Pool) *ServiceRequestRepository {
	return &ServiceRequestRepository{pool: pool}
}

func (r *ServiceRequestRepository) Create(ctx context.Context, req entities.ServiceRequest) (entities.ServiceRequest, error) {
	req.Version = 1
	_, err := exec(ctx, r.pool, psql.Insert(serviceRequestsTable).Columns(serviceRequestColumns...).Values(
		req.ID, req.Title, req.RoleName, req.Technology, req.Specialization, string(req.ExperienceLevel),
		nullDate(req.StartDate), nullDate(req.EndDate), req.ExpectedManDays, req.Criteria, string(req.Status),
		req.TaskDescription, req.OfferDeadline, req.ProcessID, req.CreatedAt, req.UpdatedAt, req.Version,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return entities.ServiceRequest{}, entities.NewInvalidStateError("service request %s already exists", req.ID)
		}
		return entities.ServiceRequest{}, err
	}
	return req, nil
}

func (r *ServiceRequestRepository) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	list, err := r.list(ctx, sq.Eq{"id": id})
	if err != nil || len(list) == 0 {
		return entities.ServiceRequest{}, err
	}
	return list[0], nil
}

func (r *ServiceRequestRepository) List(ctx context.Context, status entities.ServiceRequestStatus) ([]entities.ServiceRequest, error) {
	where := sq.Eq{}
	if status != "" {
		where["status"] = string(status)
	}
	return r.list(ctx, where)
}

func (r *ServiceRequestRepository) Update(ctx context.Context, req entities.ServiceRequest) (entities.ServiceRequest, error) {
	err := writeVersioned(ctx, r.pool, psql.Update(serviceRequestsTable).
		Set("status", string(req.Status)).
		Set("process_id", req.ProcessID).
		Set("updated_at", req.UpdatedAt).
		Set("version", req.Version+1).
		Where(sq.Eq{"id": req.ID, "version": req.Version}))
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	req.Version++
	return req, nil
}

func (r *ServiceRequestRepository) list(ctx context.Context, where sq.Eq) ([]entities.ServiceRequest, error) {
	b := psql.Select(serviceRequestColumns...).From(serviceRequestsTable).OrderBy("created_at DESC")
	if len(where) > 0 {
		b = b.Where(where)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build service request query: %w", err)
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entities.ServiceRequest{}
	for rows.Next() {
		req, err := scanServiceRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func scanServiceRequest(row pgx.Row) (entities.ServiceRequest, error) {
	var (
		req                entities.ServiceRequest
		level, status      string
		startDate, endDate *time.Time
	)
	err := row.Scan(
		&req.ID, &req.Title, &req.RoleName, &req.Technology, &req.Specialization, &level,
		&startDate, &endDate, &req.ExpectedManDays, &req.Criteria, &status,
		&req.TaskDescription, &req.OfferDeadline, &req.ProcessID, &req.CreatedAt, &req.UpdatedAt, &req.Version,
	)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	req.ExperienceLevel = entities.ExperienceLevel(level)
	req.Status = entities.ServiceRequestStatus(status)
	if startDate != nil {
		req.StartDate = *startDate
	}
	if endDate != nil {
		req.EndDate = *endDate
	}
	req.CreatedAt, req.UpdatedAt = req.CreatedAt.UTC(), req.UpdatedAt.UTC()
	return req, nil
}

type ServiceOfferRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IServiceOfferRepository = (*ServiceOfferRepository)(nil)

func NewServiceOfferRepository(pool *pgxpool.Pool) *ServiceOfferRepository {
	return &ServiceOfferRepository{pool: pool}
}

func (r *ServiceOfferRepository) Create(ctx context.Context, o entities.ServiceOffer) (entities.ServiceOffer, error) {
	o.Version = 1
	_, err := exec(ctx, r.pool, psql.Insert(serviceOffersTable).Columns(serviceOfferColumns...).Values(
		o.ID, o.ExternalID, o.ServiceRequestID, o.ProviderID, o.ProviderName,
		o.SpecialistID, o.SpecialistName, string(o.Status), o.DailyRate, o.TravelCost, o.TotalCost,
		o.Notes, o.CreatedAt, o.UpdatedAt, o.Version,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return entities.ServiceOffer{}, entities.NewInvalidStateError("service offer %s already exists", o.ID)
		}
		return entities.ServiceOffer{}, err
	}
	return o, nil
}

func (r *ServiceOfferRepository) GetByID(ctx context.Context, id string) (entities.ServiceOffer, error) {
	list, err := r.list(ctx, sq.Eq{"id": id})
	if err != nil || len(list) == 0 {
		return entities.ServiceOffer{}, err
	}
	return list[0], nil
}

func (r *ServiceOfferRepository) List(ctx context.Context, filter entities.ServiceOfferFilter) ([]entities.ServiceOffer, error) {
	where := sq.Eq{}
	if filter.ServiceRequestID != "" {
		where["service_request_id"] = filter.ServiceRequestID
	}
	if filter.Status != "" {
		where["status"] = string(filter.Status)
	}
	return r.list(ctx, where)
}

func (r *ServiceOfferRepository) Update(ctx context.Context, o entities.ServiceOffer) (entities.ServiceOffer, error) {
	err := writeVersioned(ctx, r.pool, psql.Update(serviceOffersTable).
		Set("status", string(o.Status)).
		Set("notes", o.Notes).
		Set("updated_at", o.UpdatedAt).
		Set("version", o.Version+1).
		Where(sq.Eq{"id": o.ID, "version": o.Version}))
	if err != nil {
		return entities.ServiceOffer{}, err
	}
	o.Version++
	return o, nil
}

func (r *ServiceOfferRepository) list(ctx context.Context, where sq.Eq) ([]entities.ServiceOffer, error) {
	b := psql.Select(serviceOfferColumns...).From(serviceOffersTable).OrderBy("created_at DESC")
	if len(where) > 0 {
		b = b.Where(where)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build service offer query: %w", err)
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entities.ServiceOffer{}
	for rows.Next() {
		var (
			o      entities.ServiceOffer
			status string
		)
		if err := rows.Scan(&o.ID, &o.ExternalID, &o.ServiceRequestID, &o.ProviderID, &o.ProviderName,
			&o.SpecialistID, &o.SpecialistName, &status, &o.DailyRate, &o.TravelCost, &o.TotalCost,
			&o.Notes, &o.CreatedAt, &o.UpdatedAt, &o.Version); err != nil {
			return nil, err
		}
		o.Status = entities.ServiceOfferStatus(status)
		o.CreatedAt, o.UpdatedAt = o.CreatedAt.UTC(), o.UpdatedAt.UTC()
		out = append(out, o)
	}
	return out, rows.Err()
}

func nullDate(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"staffing_service/internal/domain/entities"
	"staffing_service/internal/usecase/interfaces"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const serviceOrdersTable = "service_orders"

var serviceOrderColumns = []string{
	"id", "service_request_id", "winning_offer_id", "supplier_id", "supplier_name",
	"title", "role", "domain", "status",
	"start_date", "original_end_date", "current_end_date", "actual_end_date",
	"original_specialist_id", "original_specialist_name", "current_specialist_id", "current_specialist_name",
	"original_man_days", "current_man_days",
	"daily_rate", "original_contract_value", "current_contract_value",
	"notes", "created_at", "updated_at", "version",
}

type ServiceOrderRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderRepository)(nil)

func NewServiceOrderRepository(pool *pgxpool.Pool) *ServiceOrderRepository {
	return &ServiceOrderRepository{pool: pool}
}

func (r *ServiceOrderRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	o.Version = 1
	if err := insertServiceOrder(ctx, r.pool, o); err != nil {
		if isUniqueViolation(err) {
			return entities.ServiceOrder{}, entities.NewInvalidStateError("service order %s already exists", o.ID)
		}
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	query, args, err := psql.Select(serviceOrderColumns...).From(serviceOrdersTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return entities.ServiceOrder{}, fmt.Errorf("build service order query: %w", err)
	}
	o, err := scanServiceOrder(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.ServiceOrder{}, nil
	}
	return o, err
}

func (r *ServiceOrderRepository) List(ctx context.Context, filter entities.ServiceOrderFilter) ([]entities.ServiceOrder, error) {
	query, args, err := serviceOrderListQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build service order list: %w", err)
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entities.ServiceOrder{}
	for rows.Next() {
		o, err := scanServiceOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *ServiceOrderRepository) Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	return updateServiceOrder(ctx, r.pool, o)
}

func serviceOrderListQuery(filter entities.ServiceOrderFilter) sq.SelectBuilder {
	b := psql.Select(serviceOrderColumns...).From(serviceOrdersTable).OrderBy("created_at DESC")
	eq := sq.Eq{}
	if filter.Status != "" {
		eq["status"] = string(filter.Status)
	}
	if filter.SupplierID != "" {
		eq["supplier_id"] = filter.SupplierID
	}
	if filter.WinningOfferID != "" {
		eq["winning_offer_id"] = filter.WinningOfferID
	}
	if len(eq) > 0 {
		b = b.Where(eq)
	}
	for _, f := range [][2]string{
		{"supplier_name", filter.SupplierName},
		{"current_specialist_name", filter.CurrentSpecialistName},
		{"role", filter.Role},
		{"domain", filter.Domain},
	} {
		if f[1] != "" {
			b = b.Where(sq.ILike{f[0]: "%" + f[1] + "%"})
		}
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		b = b.Where(sq.Or{
			sq.ILike{"id": like},
			sq.ILike{"title": like},
			sq.ILike{"current_specialist_name": like},
			sq.ILike{"supplier_name": like},
		})
	}
	return b
}

func insertServiceOrder(ctx context.Context, q querier, o entities.ServiceOrder) error {
	_, err := exec(ctx, q, psql.Insert(serviceOrdersTable).
		Columns(serviceOrderColumns...).
		Values(
			o.ID, o.ServiceRequestID, o.WinningOfferID, o.SupplierID, o.SupplierName,
			o.Title, o.Role, o.Domain, string(o.Status),
			o.StartDate, o.OriginalEndDate, o.CurrentEndDate, o.ActualEndDate,
			o.OriginalSpecialistID, o.OriginalSpecialistName, o.CurrentSpecialistID, o.CurrentSpecialistName,
			o.OriginalManDays, o.CurrentManDays,
			o.DailyRate, o.OriginalContractValue, o.CurrentContractValue,
			o.Notes, o.CreatedAt, o.UpdatedAt, o.Version,
		))
	return err
}

// updateServiceOrder writes the mutable columns when the stored version still
// matches and returns the order with its version bumped.
func updateServiceOrder(ctx context.Context, q querier, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	n, err := exec(ctx, q, psql.Update(serviceOrdersTable).
		Set("status", string(o.Status)).
		Set("current_end_date", o.CurrentEndDate).
		Set("actual_end_date", o.ActualEndDate).
		Set("current_specialist_id", o.CurrentSpecialistID).
		Set("current_specialist_name", o.CurrentSpecialistName).
		Set("current_man_days", o.CurrentManDays).
		Set("current_contract_value", o.CurrentContractValue).
		Set("notes", o.Notes).
		Set("updated_at", o.UpdatedAt).
		Set("version", o.Version+1).
		Where(sq.Eq{"id": o.ID, "version": o.Version}))
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if n == 0 {
		return entities.ServiceOrder{}, entities.ErrConcurrentModification
	}
	o.Version++
	return o, nil
}

func scanServiceOrder(row pgx.Row) (entities.ServiceOrder, error) {
	var (
		o             entities.ServiceOrder
		status        string
		actualEndDate *time.Time
	)
	err := row.Scan(
		&o.ID, &o.ServiceRequestID, &o.WinningOfferID, &o.SupplierID, &o.SupplierName,
		&o.Title, &o.Role, &o.Domain, &status,
		&o.StartDate, &o.OriginalEndDate, &o.CurrentEndDate, &actualEndDate,
		&o.OriginalSpecialistID, &o.OriginalSpecialistName, &o.CurrentSpecialistID, &o.CurrentSpecialistName,
		&o.OriginalManDays, &o.CurrentManDays,
		&o.DailyRate, &o.OriginalContractValue, &o.CurrentContractValue,
		&o.Notes, &o.CreatedAt, &o.UpdatedAt, &o.Version,
	)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	o.Status = entities.ServiceOrderStatus(status)
	o.ActualEndDate = actualEndDate
	o.CreatedAt = o.CreatedAt.UTC()
	o.UpdatedAt = o.UpdatedAt.UTC()
	return o, nil
}

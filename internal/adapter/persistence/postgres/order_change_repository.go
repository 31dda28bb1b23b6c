package postgres

import (
	"context"
	"fmt"

	"staffing_service/internal/domain/entities"
	"staffing_service/internal/usecase/interfaces"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	extensionsTable    = "service_order_extensions"
	substitutionsTable = "service_order_substitutions"
)

var extensionColumns = []string{
	"id", "service_order_id", "status", "additional_man_days", "new_end_date",
	"additional_cost", "reason", "rejection_reason", "created_at", "updated_at", "version",
}

var substitutionColumns = []string{
	"id", "service_order_id", "initiated_by", "status",
	"outgoing_specialist_id", "outgoing_specialist_name",
	"incoming_specialist_id", "incoming_specialist_name", "incoming_specialist_daily_rate",
	"reason", "reason_details", "rejection_reason", "created_at", "updated_at", "version",
}

// OrderChangeRepository reads extensions and substitutions and commits them
// with their order in one transaction.
type OrderChangeRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IOrderChangeCommitter = (*OrderChangeRepository)(nil)

func NewOrderChangeRepository(pool *pgxpool.Pool) *OrderChangeRepository {
	return &OrderChangeRepository{pool: pool}
}

func (r *OrderChangeRepository) Extensions() *ExtensionRepository {
	return &ExtensionRepository{pool: r.pool}
}

func (r *OrderChangeRepository) Substitutions() *SubstitutionRepository {
	return &SubstitutionRepository{pool: r.pool}
}

func (r *OrderChangeRepository) CommitExtension(ctx context.Context, order entities.ServiceOrder, ext entities.ServiceOrderExtension) (entities.ServiceOrder, entities.ServiceOrderExtension, error) {
	var savedOrder entities.ServiceOrder
	err := WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		var err error
		if savedOrder, err = updateServiceOrder(ctx, tx, order); err != nil {
			return err
		}
		if ext.Version == 0 {
			return writeNew(ctx, tx, psql.Insert(extensionsTable).Columns(extensionColumns...).Values(
				ext.ID, ext.ServiceOrderID, string(ext.Status), ext.AdditionalManDays, ext.NewEndDate,
				ext.AdditionalCost, ext.Reason, ext.RejectionReason, ext.CreatedAt, ext.UpdatedAt, int64(1),
			))
		}
		return writeVersioned(ctx, tx, psql.Update(extensionsTable).
			Set("status", string(ext.Status)).
			Set("rejection_reason", ext.RejectionReason).
			Set("updated_at", ext.UpdatedAt).
			Set("version", ext.Version+1).
			Where(sq.Eq{"id": ext.ID, "version": ext.Version}))
	})
	if err != nil {
		return entities.ServiceOrder{}, entities.ServiceOrderExtension{}, err
	}
	ext.Version++
	return savedOrder, ext, nil
}

func (r *OrderChangeRepository) CommitSubstitution(ctx context.Context, order entities.ServiceOrder, sub entities.ServiceOrderSubstitution) (entities.ServiceOrder, entities.ServiceOrderSubstitution, error) {
	var savedOrder entities.ServiceOrder
	err := WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		var err error
		if savedOrder, err = updateServiceOrder(ctx, tx, order); err != nil {
			return err
		}
		if sub.Version == 0 {
			return writeNew(ctx, tx, psql.Insert(substitutionsTable).Columns(substitutionColumns...).Values(
				sub.ID, sub.ServiceOrderID, string(sub.InitiatedBy), string(sub.Status),
				sub.OutgoingSpecialistID, sub.OutgoingSpecialistName,
				sub.IncomingSpecialistID, sub.IncomingSpecialistName, sub.IncomingSpecialistDailyRate,
				string(sub.Reason), sub.ReasonDetails, sub.RejectionReason, sub.CreatedAt, sub.UpdatedAt, int64(1),
			))
		}
		return writeVersioned(ctx, tx, psql.Update(substitutionsTable).
			Set("status", string(sub.Status)).
			Set("rejection_reason", sub.RejectionReason).
			Set("updated_at", sub.UpdatedAt).
			Set("version", sub.Version+1).
			Where(sq.Eq{"id": sub.ID, "version": sub.Version}))
	})
	if err != nil {
		return entities.ServiceOrder{}, entities.ServiceOrderSubstitution{}, err
	}
	sub.Version++
	return savedOrder, sub, nil
}

func writeNew(ctx context.Context, q querier, b sq.Sqlizer) error {
	if _, err := exec(ctx, q, b); err != nil {
		if isUniqueViolation(err) {
			return entities.ErrConcurrentModification
		}
		return err
	}
	return nil
}

func writeVersioned(ctx context.Context, q querier, b sq.Sqlizer) error {
	n, err := exec(ctx, q, b)
	if err != nil {
		return err
	}
	if n == 0 {
		return entities.ErrConcurrentModification
	}
	return nil
}

type ExtensionRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IExtensionRepository = (*ExtensionRepository)(nil)

func (r *ExtensionRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrderExtension, error) {
	list, err := r.list(ctx, sq.Eq{"id": id})
	if err != nil || len(list) == 0 {
		return entities.ServiceOrderExtension{}, err
	}
	return list[0], nil
}

func (r *ExtensionRepository) ListByServiceOrderID(ctx context.Context, serviceOrderID string) ([]entities.ServiceOrderExtension, error) {
	return r.list(ctx, sq.Eq{"service_order_id": serviceOrderID})
}

func (r *ExtensionRepository) list(ctx context.Context, where sq.Eq) ([]entities.ServiceOrderExtension, error) {
	query, args, err := psql.Select(extensionColumns...).From(extensionsTable).Where(where).OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build extension query: %w", err)
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entities.ServiceOrderExtension{}
	for rows.Next() {
		var (
			e      entities.ServiceOrderExtension
			status string
		)
		if err := rows.Scan(&e.ID, &e.ServiceOrderID, &status, &e.AdditionalManDays, &e.NewEndDate,
			&e.AdditionalCost, &e.Reason, &e.RejectionReason, &e.CreatedAt, &e.UpdatedAt, &e.Version); err != nil {
			return nil, err
		}
		e.Status = entities.ApprovalStatus(status)
		e.CreatedAt, e.UpdatedAt = e.CreatedAt.UTC(), e.UpdatedAt.UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}

type SubstitutionRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.ISubstitutionRepository = (*SubstitutionRepository)(nil)

func (r *SubstitutionRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrderSubstitution, error) {
	list, err := r.list(ctx, sq.Eq{"id": id})
	if err != nil || len(list) == 0 {
		return entities.ServiceOrderSubstitution{}, err
	}
	return list[0], nil
}

func (r *SubstitutionRepository) ListByServiceOrderID(ctx context.Context, serviceOrderID string) ([]entities.ServiceOrderSubstitution, error) {
	return r.list(ctx, sq.Eq{"service_order_id": serviceOrderID})
}

func (r *SubstitutionRepository) list(ctx context.Context, where sq.Eq) ([]entities.ServiceOrderSubstitution, error) {
	query, args, err := psql.Select(substitutionColumns...).From(substitutionsTable).Where(where).OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build substitution query: %w", err)
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entities.ServiceOrderSubstitution{}
	for rows.Next() {
		var (
			s                         entities.ServiceOrderSubstitution
			initiator, status, reason string
		)
		if err := rows.Scan(&s.ID, &s.ServiceOrderID, &initiator, &status,
			&s.OutgoingSpecialistID, &s.OutgoingSpecialistName,
			&s.IncomingSpecialistID, &s.IncomingSpecialistName, &s.IncomingSpecialistDailyRate,
			&reason, &s.ReasonDetails, &s.RejectionReason, &s.CreatedAt, &s.UpdatedAt, &s.Version); err != nil {
			return nil, err
		}
		s.InitiatedBy = entities.SubstitutionInitiator(initiator)
		s.Status = entities.ApprovalStatus(status)
		s.Reason = entities.SubstitutionReason(reason)
		s.CreatedAt, s.UpdatedAt = s.CreatedAt.UTC(), s.UpdatedAt.UTC()
		out = append(out, s)
	}
	return out, rows.Err()
}


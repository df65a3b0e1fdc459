package status_history

import (
	"context"
	"fmt"

	"envios/internal/entities"
	"envios/internal/repository"
	"envios/internal/service/history"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, change entities.StatusChange) error {
	changeDB := FromDomain(&change)
	query := `INSERT INTO shipment_status_history (event_id, shipment_id, from_status, to_status, changed_by, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.querier.Exec(
		ctx,
		query,
		changeDB.EventID,
		changeDB.ShipmentID,
		changeDB.FromStatus,
		changeDB.ToStatus,
		changeDB.ChangedBy,
		changeDB.OccurredAt,
	)
	if err != nil {
		if repository.IsUniqueViolation(err, repository.ConstraintStatusHistoryPK) {
			return history.ErrDuplicateEvent
		}
		return fmt.Errorf("unexpected status history repository create error: %w", err)
	}

	return nil
}

func (r *Repository) ExistsByEventID(ctx context.Context, eventID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM shipment_status_history WHERE event_id = $1)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, eventID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected status history repository exists error: %w", err)
	}

	return exists, nil
}

func (r *Repository) List(ctx context.Context, filter entities.StatusChangeFilter) ([]entities.StatusChange, error) {
	builder := qb.
		Select("event_id", "shipment_id", "from_status", "to_status", "changed_by", "occurred_at").
		From("shipment_status_history").
		Where(sq.Eq{"shipment_id": filter.ShipmentID})

	if filter.Since != nil {
		builder = builder.Where(sq.GtOrEq{"occurred_at": *filter.Since})
	}

	builder = builder.OrderBy("occurred_at ASC", "recorded_at ASC")

	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected status history repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected status history repository list error: %w", err)
	}
	defer rows.Close()

	var changesDB []StatusChangeDB
	for rows.Next() {
		var changeDB StatusChangeDB
		if err := rows.Scan(
			&changeDB.EventID,
			&changeDB.ShipmentID,
			&changeDB.FromStatus,
			&changeDB.ToStatus,
			&changeDB.ChangedBy,
			&changeDB.OccurredAt,
		); err != nil {
			return nil, fmt.Errorf("unexpected status history repository scan error: %w", err)
		}
		changesDB = append(changesDB, changeDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected status history repository rows error: %w", err)
	}

	return ToDomainList(changesDB), nil
}

package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"envios/internal/entities"
	"envios/internal/repository"
	"envios/internal/service/auth"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
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

func (r *Repository) Create(ctx context.Context, session entities.Session) error {
	sessionDB := FromDomain(&session)
	query := `INSERT INTO sessions (token, username, role, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.querier.Exec(
		ctx,
		query,
		sessionDB.Token,
		sessionDB.Username,
		sessionDB.Role,
		sessionDB.CreatedAt,
		sessionDB.ExpiresAt,
	)
	if err != nil {
		if repository.IsUniqueViolation(err, repository.ConstraintSessionsPK) {
			return auth.ErrSessionConflict
		}
		if repository.IsCheckViolation(err) {
			return fmt.Errorf("session role %q rejected by store: %w", sessionDB.Role, err)
		}
		return fmt.Errorf("unexpected session repository create error: %w", err)
	}

	return nil
}

func (r *Repository) GetByToken(ctx context.Context, token string) (*entities.Session, error) {
	query := `SELECT token, username, role, created_at, expires_at
		FROM sessions
		WHERE token = $1`

	var sessionDB SessionDB
	err := r.querier.QueryRow(ctx, query, token).
		Scan(
			&sessionDB.Token,
			&sessionDB.Username,
			&sessionDB.Role,
			&sessionDB.CreatedAt,
			&sessionDB.ExpiresAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrSessionNotFound
		}
		return nil, fmt.Errorf("unexpected session repository getbytoken error: %w", err)
	}

	return ToDomain(&sessionDB), nil
}

func (r *Repository) DeleteByToken(ctx context.Context, token string) (int64, error) {
	return r.delete(ctx, sq.Eq{"token": token})
}

func (r *Repository) DeleteByUsername(ctx context.Context, username string) (int64, error) {
	return r.delete(ctx, sq.Eq{"username": username})
}

func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return r.delete(ctx, sq.LtOrEq{"expires_at": now})
}

func (r *Repository) delete(ctx context.Context, where sq.Sqlizer) (int64, error) {
	query, args, err := qb.
		Delete("sessions").
		Where(where).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected session repository delete error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected session repository delete error: %w", err)
	}

	return result.RowsAffected(), nil
}

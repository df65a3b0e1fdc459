//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"
	"time"

	"envios/internal/entities"
)

type Gateway interface {
	Login(ctx context.Context, credentials entities.Credentials) (*entities.AuthToken, error)
	Register(ctx context.Context, credentials entities.Credentials) error
}

type Repository interface {
	Create(ctx context.Context, session entities.Session) error
	GetByToken(ctx context.Context, token string) (*entities.Session, error)
	DeleteByToken(ctx context.Context, token string) (int64, error)
	DeleteByUsername(ctx context.Context, username string) (int64, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type ExpiryFactory interface {
	CalculateExpiry(role entities.Role, base time.Time) time.Time
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"envios/internal/entities"
	"envios/pkg/inflight"
)

type Auth struct {
	gateway       Gateway
	repository    Repository
	txManager     TxManager
	expiryFactory ExpiryFactory
	guard         *inflight.Guard
	now           func() time.Time
}

func New(
	gateway Gateway,
	repository Repository,
	txManager TxManager,
	expiryFactory ExpiryFactory,
	guard *inflight.Guard,
) *Auth {
	return &Auth{
		gateway:       gateway,
		repository:    repository,
		txManager:     txManager,
		expiryFactory: expiryFactory,
		guard:         guard,
		now:           time.Now,
	}
}

// Login exchanges credentials for a token and stores the resulting session.
// A user holds at most one session: logging in again replaces the old one.
func (s *Auth) Login(ctx context.Context, credentials entities.Credentials) (*entities.Session, error) {
	if err := validateCredentials(credentials); err != nil {
		return nil, err
	}
	username := strings.TrimSpace(credentials.Username)

	var session *entities.Session
	err := s.guarded("login:"+username, func() error {
		authToken, err := s.gateway.Login(ctx, credentials)
		if err != nil {
			return fmt.Errorf("login: %w", loginError(err))
		}

		now := s.now().UTC()
		role := normaliseRole(authToken.Role)
		session = &entities.Session{
			Token:     authToken.Token,
			Username:  username,
			Role:      role,
			CreatedAt: now,
			ExpiresAt: s.expiryFactory.CalculateExpiry(role, now),
		}

		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if _, err := s.repository.DeleteByUsername(ctx, username); err != nil {
				return fmt.Errorf("drop previous sessions: %w", err)
			}
			if err := s.repository.Create(ctx, *session); err != nil {
				return fmt.Errorf("store session: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return session, nil
}

func (s *Auth) Register(ctx context.Context, credentials entities.Credentials) error {
	if err := validateCredentials(credentials); err != nil {
		return err
	}
	username := strings.TrimSpace(credentials.Username)

	return s.guarded("register:"+username, func() error {
		if err := s.gateway.Register(ctx, credentials); err != nil {
			return fmt.Errorf("register: %w", registerError(err))
		}
		return nil
	})
}

func (s *Auth) Logout(ctx context.Context, token string) error {
	if token == "" {
		return ErrUnauthenticated
	}

	deleted, err := s.repository.DeleteByToken(ctx, token)
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	if deleted == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// Session resolves an active session by token. Expired sessions are removed
// on sight.
func (s *Auth) Session(ctx context.Context, token string) (*entities.Session, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	session, err := s.repository.GetByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if session.Expired(s.now()) {
		if _, err := s.repository.DeleteByToken(ctx, token); err != nil {
			return nil, fmt.Errorf("drop expired session: %w", err)
		}
		return nil, fmt.Errorf("%w: expired at %s", ErrSessionNotFound, session.ExpiresAt.Format(time.RFC3339))
	}

	return session, nil
}

func (s *Auth) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	deleted, err := s.repository.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("cleanup expired sessions: %w", err)
	}
	return deleted, nil
}

func (s *Auth) guarded(key string, fn func() error) error {
	err := s.guard.Do(key, fn)
	if errors.Is(err, inflight.ErrInFlight) {
		return fmt.Errorf("%w: %s", ErrInFlight, key)
	}
	return err
}

package session_cleanup

import (
	"context"
	"time"

	"envios/pkg/logger"
)

type Service interface {
	CleanupExpiredSessions(ctx context.Context) (int64, error)
}

type SessionCleanup struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewSessionCleanup(log logger.Logger, service Service, interval time.Duration) *SessionCleanup {
	return &SessionCleanup{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *SessionCleanup) TTL() time.Duration {
	return s.interval
}

func (s *SessionCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	rowsAffected, err := s.service.CleanupExpiredSessions(ctxWithTimeout)

	if rowsAffected > 0 {
		s.log.With(
			logger.NewField("expired_sessions", rowsAffected),
		).Info("session cleanup")
	}

	return err
}

func (s *SessionCleanup) Info() string {
	return "session cleanup"
}

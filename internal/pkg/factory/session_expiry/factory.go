package session_expiry

import (
	"time"

	"envios/internal/entities"
)

const defaultTTL = 24 * time.Hour

type SessionExpiryFactory struct {
	userTTL  time.Duration
	adminTTL time.Duration
}

func New(userTTL, adminTTL time.Duration) *SessionExpiryFactory {
	return &SessionExpiryFactory{
		userTTL:  userTTL,
		adminTTL: adminTTL,
	}
}

func (f *SessionExpiryFactory) CalculateExpiry(role entities.Role, baseTime time.Time) time.Time {
	ttl := defaultTTL
	switch role {
	case entities.RoleAdmin:
		ttl = f.adminTTL
	case entities.RoleUser:
		ttl = f.userTTL
	}

	if ttl <= 0 {
		ttl = defaultTTL
	}

	return baseTime.Add(ttl)
}

package session

import (
	"envios/internal/entities"
)

func ToDomain(s *SessionDB) *entities.Session {
	if s == nil {
		return nil
	}

	return &entities.Session{
		Token:     s.Token,
		Username:  s.Username,
		Role:      entities.Role(s.Role),
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
	}
}

func FromDomain(s *entities.Session) *SessionDB {
	if s == nil {
		return nil
	}

	return &SessionDB{
		Token:     s.Token,
		Username:  s.Username,
		Role:      s.Role.String(),
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
	}
}

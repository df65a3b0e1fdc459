package authentication

import (
	"context"
	"net/http"
	"strings"

	"envios/internal/entities"
)

// TokenHeader carries the session token, the same header the envios API uses.
const TokenHeader = "x-auth-token"

type sessionKey struct{}

func ContextWithSession(ctx context.Context, session *entities.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFromContext returns nil when the request went through no
// authentication middleware.
func SessionFromContext(ctx context.Context) *entities.Session {
	session, _ := ctx.Value(sessionKey{}).(*entities.Session)
	return session
}

func Token(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(TokenHeader))
}

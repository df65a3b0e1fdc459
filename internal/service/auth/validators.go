package auth

import (
	"fmt"
	"strings"

	"envios/internal/entities"
	"envios/pkg/form"
)

func validateCredentials(credentials entities.Credentials) error {
	if missing := form.Missing(credentials); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingRequiredFields, strings.Join(missing, ", "))
	}
	return nil
}

func normaliseRole(role entities.Role) entities.Role {
	if role == entities.RoleAdmin {
		return entities.RoleAdmin
	}
	return entities.RoleUser
}

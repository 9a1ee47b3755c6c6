package repository

import (
	"context"
)

// RoleRepository answers role membership questions against the
// platform's user_roles table.
type RoleRepository interface {
	HasRole(ctx context.Context, userID, role string) (bool, error)
	// FirstUserIDWithRole returns any one holder of the role. Used only
	// by the development token surface.
	FirstUserIDWithRole(ctx context.Context, role string) (string, error)
}

// Package directory provides lookup and creation of user accounts. The auth
// layers depend only on the Directory interface, so the in-memory demo
// directory and the Postgres-backed one are interchangeable.
package directory

import (
	"context"

	"greenchain/internal/model"
)

// Directory defines operations for user account data. A missing user is
// reported as (nil, nil); errors are reserved for lookup failures.
type Directory interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
}

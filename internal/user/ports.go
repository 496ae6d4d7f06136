package user

import (
	"context"
)

// Repository defines the contract for user data storage. Users are only
// created at registration and read at login; nothing updates or deletes
// them.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByUsername(ctx context.Context, username string) (User, error)
}

package user

import "context"

// UserRepository defines data access for login users.
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)

	GetByEmail(ctx context.Context, email string) (User, error)

	GetByID(ctx context.Context, id string) (User, error)

	// UpdatePasswordByEmployeeID rewrites the password hash for the user
	// linked to the given employee. Used by the HR bulk reset.
	UpdatePasswordByEmployeeID(ctx context.Context, employeeID string, passwordHash string) error
}

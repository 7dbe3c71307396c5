package domain

import "context"

const (
	RoleAdmin = "admin"
	RoleHost  = "host"
)

// StatusRequested is the only status an existing user may set through login.
const StatusRequested = "Requested"

const (
	UserEmailField  = "email"
	UserRoleField   = "role"
	UserStatusField = "status"
)

// LoginOutcome is either the result of a write or the untouched stored user.
type LoginOutcome struct {
	Update   *UpdateResult
	Existing Document
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (Document, error)
	// UpsertByEmail merges doc into the user with that email, creating it when absent.
	UpsertByEmail(ctx context.Context, email string, doc Document) (*UpdateResult, error)
	// UpdateByEmail merges fields into an existing user only.
	UpdateByEmail(ctx context.Context, email string, fields Document) (*UpdateResult, error)
	FindAll(ctx context.Context) ([]Document, error)
}

type UserUsecase interface {
	Login(ctx context.Context, user Document) (*LoginOutcome, error)
	GetUser(ctx context.Context, email string) (Document, error)
	UpdateUser(ctx context.Context, email string, fields Document) (*UpdateResult, error)
	ListUsers(ctx context.Context) ([]Document, error)
	HasRole(ctx context.Context, email, role string) (bool, error)
}

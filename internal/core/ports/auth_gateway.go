package ports

import (
	"context"

	"github.com/forumapp/forumcli/internal/core/domain"
)

// RegisterInput is the payload for account creation.
type RegisterInput struct {
	Username    string `json:"username" validate:"required,min=3,max=30"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	PhoneNumber string `json:"phoneNumber,omitempty" validate:"omitempty,min=7,max=20"`
}

// AuthGateway is the credential-exchange surface of the backend.
type AuthGateway interface {
	// Login exchanges credentials for the user record. Implementations map
	// 401 to domain.ErrInvalidCredentials and 403 to domain.ErrAccountBanned.
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
}

package ports

import (
	"context"

	"github.com/forumapp/forumcli/internal/core/domain"
)

// UpdateUserInput is the payload for a profile update. Empty fields are left
// out of the request body.
type UpdateUserInput struct {
	Username    string `json:"username,omitempty" validate:"omitempty,min=3,max=30"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber,omitempty" validate:"omitempty,min=7,max=20"`
}

// UserGateway covers identity reads and the moderation surface.
type UserGateway interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	Ban(ctx context.Context, id int64) (*domain.User, error)
	Unban(ctx context.Context, id int64) (*domain.User, error)
}

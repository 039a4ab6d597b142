package rest

import (
	"context"
	"net/http"

	"github.com/forumapp/forumcli/internal/core/domain"
	"github.com/forumapp/forumcli/internal/core/ports"
)

// AuthGateway calls the credential-exchange endpoints.
type AuthGateway struct {
	client *Client
}

func NewAuthGateway(client *Client) *AuthGateway {
	return &AuthGateway{client: client}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (g *AuthGateway) Login(ctx context.Context, email, password string) (*domain.User, error) {
	var user domain.User
	err := g.client.doJSON(ctx, http.MethodPost, routeLogin, "/auth/login", nil,
		loginRequest{Email: email, Password: password}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (g *AuthGateway) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	var user domain.User
	err := g.client.doJSON(ctx, http.MethodPost, routeRegister, "/auth/register", nil, input, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/forumapp/forumcli/internal/core/domain"
	"github.com/forumapp/forumcli/internal/core/ports"
)

// UserGateway calls the identity and moderation endpoints.
type UserGateway struct {
	client *Client
}

func NewUserGateway(client *Client) *UserGateway {
	return &UserGateway{client: client}
}

func (g *UserGateway) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := g.client.doJSON(ctx, http.MethodGet, "/users", "/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (g *UserGateway) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	err := g.client.doJSON(ctx, http.MethodGet, "/users/{id}", fmt.Sprintf("/users/%d", id), nil, nil, &user)
	if err != nil {
		return nil, userErr(err)
	}
	return &user, nil
}

func (g *UserGateway) Update(ctx context.Context, id int64, input ports.UpdateUserInput) (*domain.User, error) {
	var user domain.User
	err := g.client.doJSON(ctx, http.MethodPut, "/users/{id}", fmt.Sprintf("/users/%d", id), nil, input, &user)
	if err != nil {
		return nil, userErr(err)
	}
	return &user, nil
}

func (g *UserGateway) Delete(ctx context.Context, id int64) error {
	return userErr(g.client.doJSON(ctx, http.MethodDelete, "/users/{id}", fmt.Sprintf("/users/%d", id), nil, nil, nil))
}

func (g *UserGateway) Ban(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	err := g.client.doJSON(ctx, http.MethodPut, "/users/{id}/ban", fmt.Sprintf("/users/%d/ban", id), nil, nil, &user)
	if err != nil {
		return nil, userErr(err)
	}
	return &user, nil
}

func (g *UserGateway) Unban(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	err := g.client.doJSON(ctx, http.MethodPut, "/moderator/unban/{id}", fmt.Sprintf("/moderator/unban/%d", id), nil, nil, &user)
	if err != nil {
		return nil, userErr(err)
	}
	return &user, nil
}

// userErr narrows the generic not-found mapping for identity endpoints.
func userErr(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrUserNotFound
	}
	return err
}

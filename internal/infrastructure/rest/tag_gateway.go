package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/forumapp/forumcli/internal/core/domain"
)

// TagGateway calls the tagging endpoints. Tag names travel as a query
// parameter rather than a body.
type TagGateway struct {
	client *Client
}

func NewTagGateway(client *Client) *TagGateway {
	return &TagGateway{client: client}
}

func (g *TagGateway) List(ctx context.Context) ([]domain.Tag, error) {
	var tags []domain.Tag
	if err := g.client.doJSON(ctx, http.MethodGet, "/tags", "/tags", nil, nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (g *TagGateway) Create(ctx context.Context, name string) (*domain.Tag, error) {
	var t domain.Tag
	query := url.Values{"name": {name}}
	if err := g.client.doJSON(ctx, http.MethodPost, "/tags", "/tags", query, nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (g *TagGateway) ForQuestion(ctx context.Context, questionID int64) ([]domain.Tag, error) {
	var tags []domain.Tag
	err := g.client.doJSON(ctx, http.MethodGet, "/tags/question/{id}",
		fmt.Sprintf("/tags/question/%d", questionID), nil, nil, &tags)
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (g *TagGateway) AddToQuestion(ctx context.Context, questionID int64, name string) (*domain.Tag, error) {
	var t domain.Tag
	query := url.Values{"name": {name}}
	err := g.client.doJSON(ctx, http.MethodPost, "/tags/question/{id}",
		fmt.Sprintf("/tags/question/%d", questionID), query, nil, &t)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (g *TagGateway) RemoveFromQuestion(ctx context.Context, questionID int64, name string) error {
	query := url.Values{"name": {name}}
	return g.client.doJSON(ctx, http.MethodDelete, "/tags/question/{id}",
		fmt.Sprintf("/tags/question/%d", questionID), query, nil, nil)
}

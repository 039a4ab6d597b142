package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/forumapp/forumcli/internal/core/domain"
	"github.com/forumapp/forumcli/internal/core/ports"
)

// AnswerGateway calls the answer lifecycle endpoints.
type AnswerGateway struct {
	client *Client
}

func NewAnswerGateway(client *Client) *AnswerGateway {
	return &AnswerGateway{client: client}
}

func (g *AnswerGateway) ByQuestion(ctx context.Context, questionID int64) ([]domain.Answer, error) {
	var as []domain.Answer
	err := g.client.doJSON(ctx, http.MethodGet, "/answers/question/{questionId}",
		fmt.Sprintf("/answers/question/%d", questionID), nil, nil, &as)
	if err != nil {
		return nil, err
	}
	return as, nil
}

func (g *AnswerGateway) GetByID(ctx context.Context, id int64) (*domain.Answer, error) {
	var a domain.Answer
	err := g.client.doJSON(ctx, http.MethodGet, "/answers/{id}", fmt.Sprintf("/answers/%d", id), nil, nil, &a)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (g *AnswerGateway) Create(ctx context.Context, userID, questionID int64, input ports.AnswerInput) (*domain.Answer, error) {
	var a domain.Answer
	err := g.client.doJSON(ctx, http.MethodPost, "/answers/user/{userId}/question/{questionId}",
		fmt.Sprintf("/answers/user/%d/question/%d", userID, questionID), nil, input, &a)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (g *AnswerGateway) Update(ctx context.Context, id int64, input ports.AnswerInput) (*domain.Answer, error) {
	var a domain.Answer
	err := g.client.doJSON(ctx, http.MethodPut, "/answers/{id}", fmt.Sprintf("/answers/%d", id), nil, input, &a)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (g *AnswerGateway) Delete(ctx context.Context, id int64) error {
	return g.client.doJSON(ctx, http.MethodDelete, "/answers/{id}", fmt.Sprintf("/answers/%d", id), nil, nil, nil)
}

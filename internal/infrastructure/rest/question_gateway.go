package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/forumapp/forumcli/internal/core/domain"
	"github.com/forumapp/forumcli/internal/core/ports"
)

// QuestionGateway calls the question lifecycle and acceptance endpoints.
type QuestionGateway struct {
	client *Client
}

func NewQuestionGateway(client *Client) *QuestionGateway {
	return &QuestionGateway{client: client}
}

func (g *QuestionGateway) List(ctx context.Context) ([]domain.Question, error) {
	var qs []domain.Question
	if err := g.client.doJSON(ctx, http.MethodGet, "/questions", "/questions", nil, nil, &qs); err != nil {
		return nil, err
	}
	return qs, nil
}

func (g *QuestionGateway) GetByID(ctx context.Context, id int64) (*domain.Question, error) {
	var q domain.Question
	err := g.client.doJSON(ctx, http.MethodGet, "/questions/{id}", fmt.Sprintf("/questions/%d", id), nil, nil, &q)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (g *QuestionGateway) Create(ctx context.Context, userID int64, input ports.QuestionInput) (*domain.Question, error) {
	var q domain.Question
	err := g.client.doJSON(ctx, http.MethodPost, "/questions/user/{userId}",
		fmt.Sprintf("/questions/user/%d", userID), nil, input, &q)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (g *QuestionGateway) Update(ctx context.Context, id int64, input ports.QuestionInput) (*domain.Question, error) {
	var q domain.Question
	err := g.client.doJSON(ctx, http.MethodPut, "/questions/{id}", fmt.Sprintf("/questions/%d", id), nil, input, &q)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (g *QuestionGateway) Delete(ctx context.Context, id int64) error {
	return g.client.doJSON(ctx, http.MethodDelete, "/questions/{id}", fmt.Sprintf("/questions/%d", id), nil, nil, nil)
}

func (g *QuestionGateway) Search(ctx context.Context, title string) ([]domain.Question, error) {
	var qs []domain.Question
	query := url.Values{"q": {title}}
	if err := g.client.doJSON(ctx, http.MethodGet, "/questions/search", "/questions/search", query, nil, &qs); err != nil {
		return nil, err
	}
	return qs, nil
}

func (g *QuestionGateway) FilterByTag(ctx context.Context, tag string) ([]domain.Question, error) {
	var qs []domain.Question
	query := url.Values{"tag": {tag}}
	if err := g.client.doJSON(ctx, http.MethodGet, "/questions/filter", "/questions/filter", query, nil, &qs); err != nil {
		return nil, err
	}
	return qs, nil
}

func (g *QuestionGateway) ByUser(ctx context.Context, userID int64) ([]domain.Question, error) {
	var qs []domain.Question
	err := g.client.doJSON(ctx, http.MethodGet, "/questions/user/{userId}",
		fmt.Sprintf("/questions/user/%d", userID), nil, nil, &qs)
	if err != nil {
		return nil, err
	}
	return qs, nil
}

func (g *QuestionGateway) AcceptAnswer(ctx context.Context, questionID, answerID, userID int64) error {
	query := url.Values{"userId": {strconv.FormatInt(userID, 10)}}
	return g.client.doJSON(ctx, http.MethodPut, "/questions/{id}/accept/{answerId}",
		fmt.Sprintf("/questions/%d/accept/%d", questionID, answerID), query, nil, nil)
}

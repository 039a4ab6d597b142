package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/forumapp/forumcli/internal/core/domain"
)

// VoteGateway submits votes. The value rides as a query parameter; the
// backend rejects anything outside {1, -1}.
type VoteGateway struct {
	client *Client
}

func NewVoteGateway(client *Client) *VoteGateway {
	return &VoteGateway{client: client}
}

func (g *VoteGateway) VoteQuestion(ctx context.Context, questionID, voterID int64, value int) (*domain.Vote, error) {
	var v domain.Vote
	query := url.Values{"value": {strconv.Itoa(value)}}
	err := g.client.doJSON(ctx, http.MethodPost, "/votes/question/{id}/user/{voterId}",
		fmt.Sprintf("/votes/question/%d/user/%d", questionID, voterID), query, nil, &v)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (g *VoteGateway) VoteAnswer(ctx context.Context, answerID, voterID int64, value int) (*domain.Vote, error) {
	var v domain.Vote
	query := url.Values{"value": {strconv.Itoa(value)}}
	err := g.client.doJSON(ctx, http.MethodPost, "/votes/answer/{id}/user/{voterId}",
		fmt.Sprintf("/votes/answer/%d/user/%d", answerID, voterID), query, nil, &v)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

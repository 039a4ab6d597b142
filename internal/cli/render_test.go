package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/forumapp/forumcli/internal/core/domain"
)

func TestRenderQuestionLine(t *testing.T) {
	q := &domain.Question{
		ID:        7,
		Title:     "How do I parse JSON?",
		Author:    domain.Author{ID: 1, Username: "alice"},
		CreatedAt: time.Now().Add(-2 * time.Hour),
		Votes: []domain.Vote{
			{Voter: domain.Voter{ID: 2}, Value: domain.Upvote},
			{Voter: domain.Voter{ID: 3}, Value: domain.Upvote},
		},
		Tags:             []domain.Tag{{ID: 1, Name: "go"}},
		AcceptedAnswerID: 9,
	}

	var buf bytes.Buffer
	renderQuestionLine(&buf, q)
	out := buf.String()

	for _, want := range []string{"#7", "How do I parse JSON?", "[answered]", "alice", "+2 votes", "[go]"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestRenderAnswer_AcceptedMark(t *testing.T) {
	a := &domain.Answer{
		ID:        3,
		Text:      "Use encoding/json.",
		Author:    domain.Author{ID: 2, Username: "bob"},
		CreatedAt: time.Now(),
		Accepted:  true,
	}

	var buf bytes.Buffer
	renderAnswer(&buf, a)
	if !strings.Contains(buf.String(), "accepted") {
		t.Fatalf("accepted answer not marked: %q", buf.String())
	}

	buf.Reset()
	a.Accepted = false
	renderAnswer(&buf, a)
	if strings.Contains(buf.String(), "accepted") {
		t.Fatalf("unaccepted answer must not be marked: %q", buf.String())
	}
}

func TestRenderUser_BannedFlag(t *testing.T) {
	u := &domain.User{ID: 4, Username: "mallory", Email: "m@example.com", Role: domain.RoleUser, Banned: true}

	var buf bytes.Buffer
	renderUser(&buf, u)
	if !strings.Contains(buf.String(), "[banned]") {
		t.Fatalf("banned user not flagged: %q", buf.String())
	}
}

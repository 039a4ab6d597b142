package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/forumapp/forumcli/internal/core/domain"
	"github.com/forumapp/forumcli/internal/core/ports"
)

type recordingQuestionGateway struct {
	stubQuestionGateway
	mu2       sync.Mutex
	lastInput ports.QuestionInput
	lastUser  int64
}

func (g *recordingQuestionGateway) Create(_ context.Context, userID int64, input ports.QuestionInput) (*domain.Question, error) {
	g.mu2.Lock()
	defer g.mu2.Unlock()
	g.lastUser = userID
	g.lastInput = input
	return &domain.Question{ID: 1, Title: input.Title, Text: input.Text, Author: domain.Author{ID: userID}}, nil
}

func TestQuestionService_Ask_NormalisesInput(t *testing.T) {
	gw := &recordingQuestionGateway{}
	svc := NewQuestionService(gw, zerolog.Nop())

	q, err := svc.Ask(context.Background(), 3, ports.QuestionInput{
		Title: "  Trimmed title  ",
		Text:  " Trimmed text of the question. ",
	})
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if q.Title != "Trimmed title" {
		t.Fatalf("title = %q", q.Title)
	}
	if gw.lastInput.Text != "Trimmed text of the question." {
		t.Fatalf("text sent = %q", gw.lastInput.Text)
	}
	if gw.lastInput.TagNames == nil {
		t.Fatalf("absent tag list must be sent as an empty array, not null")
	}
	if gw.lastUser != 3 {
		t.Fatalf("user id sent = %d", gw.lastUser)
	}
}

func TestQuestionService_Ask_RequiresActor(t *testing.T) {
	gw := &recordingQuestionGateway{}
	svc := NewQuestionService(gw, zerolog.Nop())

	if _, err := svc.Ask(context.Background(), 0, ports.QuestionInput{Title: "t", Text: "x"}); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if gw.lastUser != 0 {
		t.Fatalf("gateway must not be called without an actor")
	}
}

func TestQuestionService_ZeroIDRejected(t *testing.T) {
	svc := NewQuestionService(newStubQuestionGateway(), zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.Get(ctx, 0); !errors.Is(err, domain.ErrInvalidTarget) {
		t.Fatalf("Get(0): %v", err)
	}
	if err := svc.Delete(ctx, 0); !errors.Is(err, domain.ErrInvalidTarget) {
		t.Fatalf("Delete(0): %v", err)
	}
	if _, err := svc.ByUser(ctx, 0); !errors.Is(err, domain.ErrInvalidTarget) {
		t.Fatalf("ByUser(0): %v", err)
	}
}

type stubAnswerGateway struct {
	lastInput ports.AnswerInput
	calls     int
}

func (g *stubAnswerGateway) ByQuestion(_ context.Context, _ int64) ([]domain.Answer, error) {
	g.calls++
	return nil, nil
}

func (g *stubAnswerGateway) GetByID(_ context.Context, id int64) (*domain.Answer, error) {
	g.calls++
	return &domain.Answer{ID: id}, nil
}

func (g *stubAnswerGateway) Create(_ context.Context, userID, _ int64, input ports.AnswerInput) (*domain.Answer, error) {
	g.calls++
	g.lastInput = input
	return &domain.Answer{ID: 1, Text: input.Text, Author: domain.Author{ID: userID}}, nil
}

func (g *stubAnswerGateway) Update(_ context.Context, id int64, input ports.AnswerInput) (*domain.Answer, error) {
	g.calls++
	return &domain.Answer{ID: id, Text: input.Text}, nil
}

func (g *stubAnswerGateway) Delete(_ context.Context, _ int64) error {
	g.calls++
	return nil
}

func TestAnswerService_Post(t *testing.T) {
	gw := &stubAnswerGateway{}
	svc := NewAnswerService(gw, zerolog.Nop())
	ctx := context.Background()

	a, err := svc.Post(ctx, 2, 10, ports.AnswerInput{Text: "  An answer.  "})
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if a.Text != "An answer." {
		t.Fatalf("text = %q", a.Text)
	}

	if _, err := svc.Post(ctx, 0, 10, ports.AnswerInput{Text: "x"}); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("anonymous post must fail, got %v", err)
	}
	if _, err := svc.Post(ctx, 2, 0, ports.AnswerInput{Text: "x"}); !errors.Is(err, domain.ErrInvalidTarget) {
		t.Fatalf("post without question must fail, got %v", err)
	}
	if gw.calls != 1 {
		t.Fatalf("rejected posts must not reach the gateway, calls = %d", gw.calls)
	}
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/forumapp/forumcli/internal/core/domain"
)

type stubTagGateway struct {
	created []string
	added   []string
	removed []string
	err     error
}

func (g *stubTagGateway) List(_ context.Context) ([]domain.Tag, error) { return nil, g.err }

func (g *stubTagGateway) Create(_ context.Context, name string) (*domain.Tag, error) {
	g.created = append(g.created, name)
	if g.err != nil {
		return nil, g.err
	}
	return &domain.Tag{ID: 1, Name: name}, nil
}

func (g *stubTagGateway) ForQuestion(_ context.Context, _ int64) ([]domain.Tag, error) {
	return nil, g.err
}

func (g *stubTagGateway) AddToQuestion(_ context.Context, _ int64, name string) (*domain.Tag, error) {
	g.added = append(g.added, name)
	if g.err != nil {
		return nil, g.err
	}
	return &domain.Tag{ID: 1, Name: name}, nil
}

func (g *stubTagGateway) RemoveFromQuestion(_ context.Context, _ int64, name string) error {
	g.removed = append(g.removed, name)
	return g.err
}

func TestTagService_NormalisesNames(t *testing.T) {
	gw := &stubTagGateway{}
	svc := NewTagService(gw, zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.Create(ctx, "  GoLang "); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.AddToQuestion(ctx, 1, "Concurrency"); err != nil {
		t.Fatalf("AddToQuestion: %v", err)
	}
	if err := svc.RemoveFromQuestion(ctx, 1, " CHANNELS"); err != nil {
		t.Fatalf("RemoveFromQuestion: %v", err)
	}

	if len(gw.created) != 1 || gw.created[0] != "golang" {
		t.Fatalf("created = %v, want [golang]", gw.created)
	}
	if len(gw.added) != 1 || gw.added[0] != "concurrency" {
		t.Fatalf("added = %v, want [concurrency]", gw.added)
	}
	if len(gw.removed) != 1 || gw.removed[0] != "channels" {
		t.Fatalf("removed = %v, want [channels]", gw.removed)
	}
}

func TestTagService_RejectsBlankAndZero(t *testing.T) {
	gw := &stubTagGateway{}
	svc := NewTagService(gw, zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.Create(ctx, "   "); !errors.Is(err, domain.ErrInvalidTarget) {
		t.Fatalf("blank tag name must be rejected, got %v", err)
	}
	if _, err := svc.AddToQuestion(ctx, 0, "go"); !errors.Is(err, domain.ErrInvalidTarget) {
		t.Fatalf("zero question id must be rejected, got %v", err)
	}
	if _, err := svc.ForQuestion(ctx, 0); !errors.Is(err, domain.ErrInvalidTarget) {
		t.Fatalf("zero question id must be rejected, got %v", err)
	}
	if len(gw.created)+len(gw.added) != 0 {
		t.Fatalf("rejected calls must not reach the gateway")
	}
}

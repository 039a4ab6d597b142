package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/forumapp/forumcli/internal/core/domain"
	"github.com/forumapp/forumcli/internal/core/ports"
)

// TagService wraps tag listing and question tagging. Tag names are lowered
// and trimmed so "Go" and "go" address the same tag.
type TagService struct {
	tags ports.TagGateway
	log  zerolog.Logger
}

func NewTagService(tags ports.TagGateway, log zerolog.Logger) *TagService {
	return &TagService{tags: tags, log: log}
}

func (s *TagService) List(ctx context.Context) ([]domain.Tag, error) {
	return s.tags.List(ctx)
}

func (s *TagService) Create(ctx context.Context, name string) (*domain.Tag, error) {
	name = normaliseTag(name)
	if name == "" {
		return nil, domain.ErrInvalidTarget
	}
	return s.tags.Create(ctx, name)
}

func (s *TagService) ForQuestion(ctx context.Context, questionID int64) ([]domain.Tag, error) {
	if questionID == 0 {
		return nil, domain.ErrInvalidTarget
	}
	return s.tags.ForQuestion(ctx, questionID)
}

func (s *TagService) AddToQuestion(ctx context.Context, questionID int64, name string) (*domain.Tag, error) {
	name = normaliseTag(name)
	if questionID == 0 || name == "" {
		return nil, domain.ErrInvalidTarget
	}
	t, err := s.tags.AddToQuestion(ctx, questionID, name)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("question_id", questionID).Str("tag", name).Msg("tag added")
	return t, nil
}

func (s *TagService) RemoveFromQuestion(ctx context.Context, questionID int64, name string) error {
	name = normaliseTag(name)
	if questionID == 0 || name == "" {
		return domain.ErrInvalidTarget
	}
	if err := s.tags.RemoveFromQuestion(ctx, questionID, name); err != nil {
		return err
	}
	s.log.Info().Int64("question_id", questionID).Str("tag", name).Msg("tag removed")
	return nil
}

func normaliseTag(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/forumapp/forumcli/internal/core/domain"
	"github.com/forumapp/forumcli/internal/core/ports"
)

// QuestionService wraps the question lifecycle. Reads pass through; writes
// are scoped to the acting user and normalised before hitting the wire.
type QuestionService struct {
	questions ports.QuestionGateway
	log       zerolog.Logger
}

func NewQuestionService(questions ports.QuestionGateway, log zerolog.Logger) *QuestionService {
	return &QuestionService{questions: questions, log: log}
}

func (s *QuestionService) List(ctx context.Context) ([]domain.Question, error) {
	return s.questions.List(ctx)
}

func (s *QuestionService) Get(ctx context.Context, id int64) (*domain.Question, error) {
	if id == 0 {
		return nil, domain.ErrInvalidTarget
	}
	return s.questions.GetByID(ctx, id)
}

func (s *QuestionService) Ask(ctx context.Context, actorID int64, input ports.QuestionInput) (*domain.Question, error) {
	if actorID == 0 {
		return nil, domain.ErrUnauthenticated
	}
	input.Title = strings.TrimSpace(input.Title)
	input.Text = strings.TrimSpace(input.Text)
	if input.TagNames == nil {
		input.TagNames = []string{}
	}

	q, err := s.questions.Create(ctx, actorID, input)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("question_id", q.ID).Int64("user_id", actorID).Msg("question posted")
	return q, nil
}

func (s *QuestionService) Update(ctx context.Context, id int64, input ports.QuestionInput) (*domain.Question, error) {
	if id == 0 {
		return nil, domain.ErrInvalidTarget
	}
	return s.questions.Update(ctx, id, input)
}

func (s *QuestionService) Delete(ctx context.Context, id int64) error {
	if id == 0 {
		return domain.ErrInvalidTarget
	}
	if err := s.questions.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("question_id", id).Msg("question deleted")
	return nil
}

func (s *QuestionService) Search(ctx context.Context, title string) ([]domain.Question, error) {
	return s.questions.Search(ctx, strings.TrimSpace(title))
}

func (s *QuestionService) FilterByTag(ctx context.Context, tag string) ([]domain.Question, error) {
	return s.questions.FilterByTag(ctx, strings.TrimSpace(tag))
}

func (s *QuestionService) ByUser(ctx context.Context, userID int64) ([]domain.Question, error) {
	if userID == 0 {
		return nil, domain.ErrInvalidTarget
	}
	return s.questions.ByUser(ctx, userID)
}

package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/forumapp/forumcli/internal/core/domain"
	"github.com/forumapp/forumcli/internal/core/ports"
)

// AnswerService wraps the answer lifecycle.
type AnswerService struct {
	answers ports.AnswerGateway
	log     zerolog.Logger
}

func NewAnswerService(answers ports.AnswerGateway, log zerolog.Logger) *AnswerService {
	return &AnswerService{answers: answers, log: log}
}

func (s *AnswerService) ForQuestion(ctx context.Context, questionID int64) ([]domain.Answer, error) {
	if questionID == 0 {
		return nil, domain.ErrInvalidTarget
	}
	return s.answers.ByQuestion(ctx, questionID)
}

func (s *AnswerService) Get(ctx context.Context, id int64) (*domain.Answer, error) {
	if id == 0 {
		return nil, domain.ErrInvalidTarget
	}
	return s.answers.GetByID(ctx, id)
}

func (s *AnswerService) Post(ctx context.Context, actorID, questionID int64, input ports.AnswerInput) (*domain.Answer, error) {
	if actorID == 0 {
		return nil, domain.ErrUnauthenticated
	}
	if questionID == 0 {
		return nil, domain.ErrInvalidTarget
	}
	input.Text = strings.TrimSpace(input.Text)

	a, err := s.answers.Create(ctx, actorID, questionID, input)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("answer_id", a.ID).Int64("question_id", questionID).Int64("user_id", actorID).Msg("answer posted")
	return a, nil
}

func (s *AnswerService) Update(ctx context.Context, id int64, input ports.AnswerInput) (*domain.Answer, error) {
	if id == 0 {
		return nil, domain.ErrInvalidTarget
	}
	return s.answers.Update(ctx, id, input)
}

func (s *AnswerService) Delete(ctx context.Context, id int64) error {
	if id == 0 {
		return domain.ErrInvalidTarget
	}
	if err := s.answers.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("answer_id", id).Msg("answer deleted")
	return nil
}

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/forumapp/forumcli/internal/core/domain"
	"github.com/forumapp/forumcli/internal/core/ports"
	"github.com/forumapp/forumcli/internal/metrics"
)

// VoteTarget is one votable entity. The two implementations share the
// submission capability but reconcile local vote state differently after the
// backend accepts a vote.
type VoteTarget interface {
	// Key identifies the widget for the in-flight guard.
	Key() string
	ID() int64
	AuthorID() int64
	Votes() []domain.Vote

	submit(ctx context.Context, gw ports.VoteGateway, voterID int64, value int) error
	reconcile(ctx context.Context, svc *VoteService, voterID int64, value int) ([]domain.Vote, error)
}

// QuestionTarget votes on a question. After a successful submission the
// question is reloaded and the server's vote list replaces local state
// verbatim, since the total and other viewers' votes may have moved
// server-side between actions.
type QuestionTarget struct {
	Question *domain.Question
}

func (t QuestionTarget) Key() string { return fmt.Sprintf("question/%d", t.ID()) }

func (t QuestionTarget) ID() int64 {
	if t.Question == nil {
		return 0
	}
	return t.Question.ID
}

func (t QuestionTarget) AuthorID() int64 {
	if t.Question == nil {
		return 0
	}
	return t.Question.Author.ID
}

func (t QuestionTarget) Votes() []domain.Vote {
	if t.Question == nil {
		return nil
	}
	return t.Question.Votes
}

func (t QuestionTarget) submit(ctx context.Context, gw ports.VoteGateway, voterID int64, value int) error {
	_, err := gw.VoteQuestion(ctx, t.ID(), voterID, value)
	return err
}

func (t QuestionTarget) reconcile(ctx context.Context, svc *VoteService, _ int64, _ int) ([]domain.Vote, error) {
	reloaded, err := svc.questions.GetByID(ctx, t.ID())
	if err != nil {
		return nil, fmt.Errorf("reload question %d: %w", t.ID(), err)
	}
	return reloaded.Votes, nil
}

// AnswerTarget votes on an answer. Answers are rendered from a locally held
// list without cross-request aggregation, so the new vote is appended
// optimistically instead of reloading.
type AnswerTarget struct {
	Answer *domain.Answer
}

func (t AnswerTarget) Key() string { return fmt.Sprintf("answer/%d", t.ID()) }

func (t AnswerTarget) ID() int64 {
	if t.Answer == nil {
		return 0
	}
	return t.Answer.ID
}

func (t AnswerTarget) AuthorID() int64 {
	if t.Answer == nil {
		return 0
	}
	return t.Answer.Author.ID
}

func (t AnswerTarget) Votes() []domain.Vote {
	if t.Answer == nil {
		return nil
	}
	return t.Answer.Votes
}

func (t AnswerTarget) submit(ctx context.Context, gw ports.VoteGateway, voterID int64, value int) error {
	_, err := gw.VoteAnswer(ctx, t.ID(), voterID, value)
	return err
}

func (t AnswerTarget) reconcile(_ context.Context, _ *VoteService, voterID int64, value int) ([]domain.Vote, error) {
	votes := domain.CloneVotes(t.Votes())
	return append(votes, domain.Vote{Voter: domain.Voter{ID: voterID}, Value: value}), nil
}

// VoteService enforces the client-side voting and acceptance rules, so the
// front end cannot submit anything the server is guaranteed to reject, and
// keeps displayed vote lists consistent with the last known server state.
type VoteService struct {
	votes     ports.VoteGateway
	questions ports.QuestionGateway
	log       zerolog.Logger

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewVoteService(votes ports.VoteGateway, questions ports.QuestionGateway, log zerolog.Logger) *VoteService {
	return &VoteService{
		votes:     votes,
		questions: questions,
		log:       log,
		inFlight:  make(map[string]bool),
	}
}

// CastVote submits a vote after checking, in order: authentication, target
// presence, authorship, duplication, and value. Each failing check
// short-circuits before any network call. The returned slice is the vote
// list to display: the reconciled list on success, the caller-supplied
// snapshot (exactly, not a mutated derivative) on any failure.
func (s *VoteService) CastVote(ctx context.Context, actorID int64, target VoteTarget, value int) ([]domain.Vote, error) {
	var snapshot []domain.Vote
	if target != nil {
		snapshot = domain.CloneVotes(target.Votes())
	}

	if actorID == 0 {
		metrics.VotesRejectedTotal.WithLabelValues("unauthenticated").Inc()
		return snapshot, domain.ErrUnauthenticated
	}
	if target == nil || target.ID() == 0 {
		metrics.VotesRejectedTotal.WithLabelValues("invalid_target").Inc()
		return snapshot, domain.ErrInvalidTarget
	}
	if target.AuthorID() == actorID {
		metrics.VotesRejectedTotal.WithLabelValues("self_vote").Inc()
		return snapshot, domain.ErrSelfVoteForbidden
	}
	if _, voted := domain.FindVoteBy(target.Votes(), actorID); voted {
		metrics.VotesRejectedTotal.WithLabelValues("duplicate").Inc()
		return snapshot, domain.ErrDuplicateVote
	}
	if !domain.ValidVoteValue(value) {
		metrics.VotesRejectedTotal.WithLabelValues("invalid_value").Inc()
		return snapshot, domain.ErrInvalidVoteValue
	}

	// One submission per widget; a second request while Submitting is
	// rejected, not queued.
	key := target.Key()
	s.mu.Lock()
	if s.inFlight[key] {
		s.mu.Unlock()
		metrics.VotesRejectedTotal.WithLabelValues("in_flight").Inc()
		return snapshot, domain.ErrVoteInFlight
	}
	s.inFlight[key] = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.inFlight, key)
		s.mu.Unlock()
	}()

	if err := target.submit(ctx, s.votes, actorID, value); err != nil {
		metrics.VotesRejectedTotal.WithLabelValues("backend").Inc()
		s.log.Warn().Err(err).Str("target", key).Int("value", value).Msg("vote rejected by backend")
		return snapshot, err
	}

	votes, err := target.reconcile(ctx, s, actorID, value)
	if err != nil {
		// The vote was accepted but reconciliation failed; show the last
		// known-good snapshot rather than a speculative list.
		s.log.Warn().Err(err).Str("target", key).Msg("vote reconciliation failed")
		return snapshot, err
	}

	metrics.VotesCastTotal.WithLabelValues(targetLabel(target), valueLabel(value)).Inc()
	s.log.Info().Str("target", key).Int("value", value).Msg("vote recorded")
	return votes, nil
}

// AcceptAnswer marks an answer accepted on behalf of the question's author.
// Only the author may accept, and the check happens before any network call.
// No local state is patched; callers re-fetch the answer list on success.
func (s *VoteService) AcceptAnswer(ctx context.Context, actorID int64, question *domain.Question, answer *domain.Answer) error {
	if actorID == 0 {
		return domain.ErrUnauthenticated
	}
	if question == nil || answer == nil || question.ID == 0 || answer.ID == 0 {
		return domain.ErrInvalidTarget
	}
	if question.Author.ID != actorID {
		return domain.ErrNotQuestionAuthor
	}

	if err := s.questions.AcceptAnswer(ctx, question.ID, answer.ID, actorID); err != nil {
		s.log.Warn().Err(err).Int64("question_id", question.ID).Int64("answer_id", answer.ID).Msg("acceptance rejected")
		return err
	}

	metrics.AcceptancesTotal.Inc()
	s.log.Info().Int64("question_id", question.ID).Int64("answer_id", answer.ID).Msg("answer accepted")
	return nil
}

func targetLabel(t VoteTarget) string {
	switch t.(type) {
	case QuestionTarget:
		return "question"
	default:
		return "answer"
	}
}

func valueLabel(v int) string {
	if v == domain.Upvote {
		return "up"
	}
	return "down"
}

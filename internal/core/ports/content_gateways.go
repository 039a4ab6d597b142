package ports

import (
	"context"
	"io"

	"github.com/forumapp/forumcli/internal/core/domain"
)

// QuestionInput is the payload for creating or updating a question.
type QuestionInput struct {
	Title    string   `json:"title" validate:"required,min=5,max=150"`
	Text     string   `json:"text" validate:"required,min=10"`
	Picture  string   `json:"picture,omitempty"`
	TagNames []string `json:"tagNames"`
}

// AnswerInput is the payload for creating or updating an answer.
type AnswerInput struct {
	Text    string `json:"text" validate:"required,min=2"`
	Picture string `json:"picture,omitempty"`
}

// QuestionGateway covers the question lifecycle, search, and acceptance.
type QuestionGateway interface {
	List(ctx context.Context) ([]domain.Question, error)
	GetByID(ctx context.Context, id int64) (*domain.Question, error)
	Create(ctx context.Context, userID int64, input QuestionInput) (*domain.Question, error)
	Update(ctx context.Context, id int64, input QuestionInput) (*domain.Question, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, title string) ([]domain.Question, error)
	FilterByTag(ctx context.Context, tag string) ([]domain.Question, error)
	ByUser(ctx context.Context, userID int64) ([]domain.Question, error)
	// AcceptAnswer marks answerID as the accepted answer of questionID on
	// behalf of userID. The server enforces authorship as well.
	AcceptAnswer(ctx context.Context, questionID, answerID, userID int64) error
}

// AnswerGateway covers the answer lifecycle.
type AnswerGateway interface {
	ByQuestion(ctx context.Context, questionID int64) ([]domain.Answer, error)
	GetByID(ctx context.Context, id int64) (*domain.Answer, error)
	Create(ctx context.Context, userID, questionID int64, input AnswerInput) (*domain.Answer, error)
	Update(ctx context.Context, id int64, input AnswerInput) (*domain.Answer, error)
	Delete(ctx context.Context, id int64) error
}

// VoteGateway submits votes. The value travels as a query parameter and the
// backend constrains it to {1, -1}.
type VoteGateway interface {
	VoteQuestion(ctx context.Context, questionID, voterID int64, value int) (*domain.Vote, error)
	VoteAnswer(ctx context.Context, answerID, voterID int64, value int) (*domain.Vote, error)
}

// TagGateway covers tag listing and question tagging.
type TagGateway interface {
	List(ctx context.Context) ([]domain.Tag, error)
	Create(ctx context.Context, name string) (*domain.Tag, error)
	ForQuestion(ctx context.Context, questionID int64) ([]domain.Tag, error)
	AddToQuestion(ctx context.Context, questionID int64, name string) (*domain.Tag, error)
	RemoveFromQuestion(ctx context.Context, questionID int64, name string) error
}

// UploadGateway attaches and removes images.
type UploadGateway interface {
	// UploadImage streams the file and returns the stored image URL.
	UploadImage(ctx context.Context, filename string, r io.Reader, size int64) (string, error)
	DeleteImage(ctx context.Context, url string) error
}

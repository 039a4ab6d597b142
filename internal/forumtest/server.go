// Package forumtest provides an in-process fake of the forum backend for
// tests. It implements the slice of the REST API the client consumes:
// credential exchange, identity and moderation, questions, answers, votes,
// tags, acceptance, and uploads, with the same rejection rules the real
// backend applies. State is held in memory; nothing here is a production
// server.
package forumtest

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/crypto/bcrypt"

	"github.com/forumapp/forumcli/internal/core/domain"
	"github.com/forumapp/forumcli/internal/infrastructure/token"
)

const maxUploadBytes = 10 << 20

// Server is the fake backend. Wrap it in httptest.NewServer via Handler.
type Server struct {
	echo  *echo.Echo
	codec token.Codec

	mu             sync.Mutex
	nextID         int64
	users          map[int64]*domain.User
	passwords      map[string][]byte
	questions      map[int64]*domain.Question
	answers        map[int64]*domain.Answer
	answerQuestion map[int64]int64
	tags           map[string]*domain.Tag
}

func New() *Server {
	s := &Server{
		codec:          token.NewCodec(),
		users:          make(map[int64]*domain.User),
		passwords:      make(map[string][]byte),
		questions:      make(map[int64]*domain.Question),
		answers:        make(map[int64]*domain.Answer),
		answerQuestion: make(map[int64]int64),
		tags:           make(map[string]*domain.Tag),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())

	e.POST("/auth/login", s.login)
	e.POST("/auth/register", s.register)

	authed := e.Group("", s.requireAuth)
	authed.GET("/users", s.listUsers)
	authed.GET("/users/:id", s.getUser)
	authed.PUT("/users/:id", s.updateUser)
	authed.DELETE("/users/:id", s.deleteUser)
	authed.PUT("/users/:id/ban", s.banUser)
	authed.PUT("/moderator/unban/:id", s.unbanUser)

	authed.GET("/questions", s.listQuestions)
	authed.GET("/questions/search", s.searchQuestions)
	authed.GET("/questions/filter", s.filterQuestions)
	authed.GET("/questions/:id", s.getQuestion)
	authed.POST("/questions/user/:userId", s.createQuestion)
	authed.GET("/questions/user/:userId", s.questionsByUser)
	authed.PUT("/questions/:id", s.updateQuestion)
	authed.DELETE("/questions/:id", s.deleteQuestion)
	authed.PUT("/questions/:id/accept/:answerId", s.acceptAnswer)

	authed.GET("/answers/question/:questionId", s.answersByQuestion)
	authed.GET("/answers/:id", s.getAnswer)
	authed.POST("/answers/user/:userId/question/:questionId", s.createAnswer)
	authed.PUT("/answers/:id", s.updateAnswer)
	authed.DELETE("/answers/:id", s.deleteAnswer)

	authed.POST("/votes/question/:id/user/:voterId", s.voteQuestion)
	authed.POST("/votes/answer/:id/user/:voterId", s.voteAnswer)

	authed.GET("/tags", s.listTags)
	authed.POST("/tags", s.createTag)
	authed.GET("/tags/question/:id", s.tagsForQuestion)
	authed.POST("/tags/question/:id", s.addTagToQuestion)
	authed.DELETE("/tags/question/:id", s.removeTagFromQuestion)

	authed.POST("/upload/image", s.uploadImage)
	authed.DELETE("/upload/image", s.deleteImage)

	s.echo = e
	return s
}

// Handler exposes the fake as an http.Handler for httptest.
func (s *Server) Handler() http.Handler { return s.echo }

// ── Seeding helpers ───────────────────────────────────────────────────────────

// SeedUser registers an account directly and returns its record.
func (s *Server) SeedUser(username, email, password, role string) *domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	u := &domain.User{ID: s.nextID, Username: username, Email: email, Role: role}
	s.users[u.ID] = u
	s.passwords[email] = hash
	return cloneUser(u)
}

// SetBanned flips a user's ban flag, the lever ban-poll tests pull.
func (s *Server) SetBanned(id int64, banned bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		u.Banned = banned
	}
}

// SeedQuestion inserts a question authored by userID.
func (s *Server) SeedQuestion(authorID int64, title, text string) *domain.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	author := s.users[authorID]
	s.nextID++
	q := &domain.Question{
		ID:        s.nextID,
		Title:     title,
		Text:      text,
		Author:    domain.Author{ID: author.ID, Username: author.Username, Score: author.Score},
		CreatedAt: time.Now().UTC(),
		Votes:     []domain.Vote{},
	}
	s.questions[q.ID] = q
	return cloneQuestion(q)
}

// SeedAnswer inserts an answer authored by userID under questionID.
func (s *Server) SeedAnswer(questionID, authorID int64, text string) *domain.Answer {
	s.mu.Lock()
	defer s.mu.Unlock()
	author := s.users[authorID]
	s.nextID++
	a := &domain.Answer{
		ID:        s.nextID,
		Text:      text,
		Author:    domain.Author{ID: author.ID, Username: author.Username, Score: author.Score},
		CreatedAt: time.Now().UTC(),
		Votes:     []domain.Vote{},
	}
	s.answers[a.ID] = a
	s.answerQuestion[a.ID] = questionID
	return cloneAnswer(a)
}

// ── Auth ──────────────────────────────────────────────────────────────────────

// requireAuth validates the bearer blob and rejects banned accounts, the
// behavior the client's 401/403 interceptor reacts to.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return c.JSON(http.StatusUnauthorized, msg("missing bearer token"))
		}
		sess, err := s.codec.Decode(parts[1])
		if err != nil {
			return c.JSON(http.StatusUnauthorized, msg("invalid token"))
		}

		s.mu.Lock()
		u, ok := s.users[sess.UserID]
		banned := ok && u.Banned
		s.mu.Unlock()

		if !ok {
			return c.JSON(http.StatusUnauthorized, msg("unknown user"))
		}
		if banned {
			return c.JSON(http.StatusForbidden, msg("account is banned"))
		}
		c.Set("user_id", sess.UserID)
		return next(c)
	}
}

func (s *Server) login(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, msg("invalid payload"))
	}

	s.mu.Lock()
	hash, ok := s.passwords[req.Email]
	var user *domain.User
	if ok {
		for _, u := range s.users {
			if u.Email == req.Email {
				user = cloneUser(u)
				break
			}
		}
	}
	s.mu.Unlock()

	if user == nil || bcrypt.CompareHashAndPassword(hash, []byte(req.Password)) != nil {
		return c.JSON(http.StatusUnauthorized, msg("invalid credentials"))
	}
	if user.Banned {
		return c.JSON(http.StatusForbidden, msg("account is banned"))
	}
	return c.JSON(http.StatusOK, user)
}

func (s *Server) register(c echo.Context) error {
	var req struct {
		Username    string `json:"username"`
		Email       string `json:"email"`
		Password    string `json:"password"`
		PhoneNumber string `json:"phoneNumber"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, msg("invalid payload"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.passwords[req.Email]; exists {
		return c.JSON(http.StatusConflict, msg("user already exists"))
	}
	hash, _ := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.MinCost)
	s.nextID++
	u := &domain.User{
		ID:          s.nextID,
		Username:    req.Username,
		Email:       req.Email,
		Role:        domain.RoleUser,
		PhoneNumber: req.PhoneNumber,
	}
	s.users[u.ID] = u
	s.passwords[req.Email] = hash
	return c.JSON(http.StatusCreated, cloneUser(u))
}

// ── Users ─────────────────────────────────────────────────────────────────────

func (s *Server) listUsers(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, cloneUser(u))
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) getUser(c echo.Context) error {
	id := pathID(c, "id")
	s.mu.Lock()
	u, ok := s.users[id]
	if ok {
		u = cloneUser(u)
	}
	s.mu.Unlock()
	if !ok {
		return c.JSON(http.StatusNotFound, msg("user not found"))
	}
	return c.JSON(http.StatusOK, u)
}

func (s *Server) updateUser(c echo.Context) error {
	var req struct {
		Username    string `json:"username"`
		Email       string `json:"email"`
		PhoneNumber string `json:"phoneNumber"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, msg("invalid payload"))
	}
	id := pathID(c, "id")

	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return c.JSON(http.StatusNotFound, msg("user not found"))
	}
	if req.Username != "" {
		u.Username = req.Username
	}
	if req.Email != "" {
		u.Email = req.Email
	}
	if req.PhoneNumber != "" {
		u.PhoneNumber = req.PhoneNumber
	}
	return c.JSON(http.StatusOK, cloneUser(u))
}

func (s *Server) deleteUser(c echo.Context) error {
	id := pathID(c, "id")
	s.mu.Lock()
	delete(s.users, id)
	s.mu.Unlock()
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) banUser(c echo.Context) error   { return s.setBan(c, true) }
func (s *Server) unbanUser(c echo.Context) error { return s.setBan(c, false) }

func (s *Server) setBan(c echo.Context, banned bool) error {
	if !s.isModerator(c) {
		return c.JSON(http.StatusForbidden, msg("moderator role required"))
	}
	id := pathID(c, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return c.JSON(http.StatusNotFound, msg("user not found"))
	}
	u.Banned = banned
	return c.JSON(http.StatusOK, cloneUser(u))
}

func (s *Server) isModerator(c echo.Context) bool {
	id, _ := c.Get("user_id").(int64)
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	return ok && u.Role == domain.RoleModerator
}

// ── Questions ─────────────────────────────────────────────────────────────────

func (s *Server) listQuestions(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Question, 0, len(s.questions))
	for _, q := range s.questions {
		out = append(out, cloneQuestion(q))
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) getQuestion(c echo.Context) error {
	id := pathID(c, "id")
	s.mu.Lock()
	q, ok := s.questions[id]
	if ok {
		q = cloneQuestion(q)
	}
	s.mu.Unlock()
	if !ok {
		return c.JSON(http.StatusNotFound, msg("question not found"))
	}
	return c.JSON(http.StatusOK, q)
}

func (s *Server) createQuestion(c echo.Context) error {
	var req struct {
		Title    string   `json:"title"`
		Text     string   `json:"text"`
		Picture  string   `json:"picture"`
		TagNames []string `json:"tagNames"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, msg("invalid payload"))
	}
	userID := pathID(c, "userId")

	s.mu.Lock()
	defer s.mu.Unlock()
	author, ok := s.users[userID]
	if !ok {
		return c.JSON(http.StatusNotFound, msg("user not found"))
	}
	s.nextID++
	q := &domain.Question{
		ID:        s.nextID,
		Title:     req.Title,
		Text:      req.Text,
		Picture:   req.Picture,
		Author:    domain.Author{ID: author.ID, Username: author.Username, Score: author.Score},
		CreatedAt: time.Now().UTC(),
		Votes:     []domain.Vote{},
		Tags:      s.resolveTagsLocked(req.TagNames),
	}
	s.questions[q.ID] = q
	return c.JSON(http.StatusCreated, cloneQuestion(q))
}

func (s *Server) updateQuestion(c echo.Context) error {
	var req struct {
		Title   string `json:"title"`
		Text    string `json:"text"`
		Picture string `json:"picture"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, msg("invalid payload"))
	}
	id := pathID(c, "id")

	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.questions[id]
	if !ok {
		return c.JSON(http.StatusNotFound, msg("question not found"))
	}
	if req.Title != "" {
		q.Title = req.Title
	}
	if req.Text != "" {
		q.Text = req.Text
	}
	q.Picture = req.Picture
	return c.JSON(http.StatusOK, cloneQuestion(q))
}

func (s *Server) deleteQuestion(c echo.Context) error {
	id := pathID(c, "id")
	s.mu.Lock()
	delete(s.questions, id)
	s.mu.Unlock()
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) searchQuestions(c echo.Context) error {
	needle := strings.ToLower(c.QueryParam("q"))
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*domain.Question{}
	for _, q := range s.questions {
		if strings.Contains(strings.ToLower(q.Title), needle) {
			out = append(out, cloneQuestion(q))
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) filterQuestions(c echo.Context) error {
	tag := strings.ToLower(c.QueryParam("tag"))
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*domain.Question{}
	for _, q := range s.questions {
		for _, t := range q.Tags {
			if t.Name == tag {
				out = append(out, cloneQuestion(q))
				break
			}
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) questionsByUser(c echo.Context) error {
	userID := pathID(c, "userId")
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*domain.Question{}
	for _, q := range s.questions {
		if q.Author.ID == userID {
			out = append(out, cloneQuestion(q))
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) acceptAnswer(c echo.Context) error {
	questionID := pathID(c, "id")
	answerID := pathID(c, "answerId")
	userID, _ := strconv.ParseInt(c.QueryParam("userId"), 10, 64)

	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.questions[questionID]
	if !ok {
		return c.JSON(http.StatusNotFound, msg("question not found"))
	}
	a, ok := s.answers[answerID]
	if !ok || s.answerQuestion[answerID] != questionID {
		return c.JSON(http.StatusNotFound, msg("answer not found"))
	}
	if q.Author.ID != userID {
		return c.JSON(http.StatusBadRequest, msg("only the question author can accept an answer"))
	}

	// At most one accepted answer per question.
	if q.AcceptedAnswerID != 0 {
		if prev, ok := s.answers[q.AcceptedAnswerID]; ok {
			prev.Accepted = false
		}
	}
	a.Accepted = true
	q.AcceptedAnswerID = a.ID
	return c.JSON(http.StatusOK, cloneAnswer(a))
}

// ── Answers ───────────────────────────────────────────────────────────────────

func (s *Server) answersByQuestion(c echo.Context) error {
	questionID := pathID(c, "questionId")
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*domain.Answer{}
	for id, a := range s.answers {
		if s.answerQuestion[id] == questionID {
			out = append(out, cloneAnswer(a))
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) getAnswer(c echo.Context) error {
	id := pathID(c, "id")
	s.mu.Lock()
	a, ok := s.answers[id]
	if ok {
		a = cloneAnswer(a)
	}
	s.mu.Unlock()
	if !ok {
		return c.JSON(http.StatusNotFound, msg("answer not found"))
	}
	return c.JSON(http.StatusOK, a)
}

func (s *Server) createAnswer(c echo.Context) error {
	var req struct {
		Text    string `json:"text"`
		Picture string `json:"picture"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, msg("invalid payload"))
	}
	userID := pathID(c, "userId")
	questionID := pathID(c, "questionId")

	s.mu.Lock()
	defer s.mu.Unlock()
	author, ok := s.users[userID]
	if !ok {
		return c.JSON(http.StatusNotFound, msg("user not found"))
	}
	if _, ok := s.questions[questionID]; !ok {
		return c.JSON(http.StatusNotFound, msg("question not found"))
	}
	s.nextID++
	a := &domain.Answer{
		ID:        s.nextID,
		Text:      req.Text,
		Picture:   req.Picture,
		Author:    domain.Author{ID: author.ID, Username: author.Username, Score: author.Score},
		CreatedAt: time.Now().UTC(),
		Votes:     []domain.Vote{},
	}
	s.answers[a.ID] = a
	s.answerQuestion[a.ID] = questionID
	return c.JSON(http.StatusCreated, cloneAnswer(a))
}

func (s *Server) updateAnswer(c echo.Context) error {
	var req struct {
		Text    string `json:"text"`
		Picture string `json:"picture"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, msg("invalid payload"))
	}
	id := pathID(c, "id")

	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.answers[id]
	if !ok {
		return c.JSON(http.StatusNotFound, msg("answer not found"))
	}
	if req.Text != "" {
		a.Text = req.Text
	}
	a.Picture = req.Picture
	return c.JSON(http.StatusOK, cloneAnswer(a))
}

func (s *Server) deleteAnswer(c echo.Context) error {
	id := pathID(c, "id")
	s.mu.Lock()
	delete(s.answers, id)
	delete(s.answerQuestion, id)
	s.mu.Unlock()
	return c.NoContent(http.StatusNoContent)
}

// ── Votes ─────────────────────────────────────────────────────────────────────

func (s *Server) voteQuestion(c echo.Context) error {
	questionID := pathID(c, "id")
	voterID := pathID(c, "voterId")
	value, err := strconv.Atoi(c.QueryParam("value"))
	if err != nil || !domain.ValidVoteValue(value) {
		return c.JSON(http.StatusBadRequest, msg("Vote value must be 1 or -1"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.questions[questionID]
	if !ok {
		return c.JSON(http.StatusNotFound, msg("question not found"))
	}
	if q.Author.ID == voterID {
		return c.JSON(http.StatusBadRequest, msg("Cannot vote on your own question"))
	}
	if _, voted := domain.FindVoteBy(q.Votes, voterID); voted {
		return c.JSON(http.StatusBadRequest, msg("Already voted on this question"))
	}
	voter := s.users[voterID]
	v := domain.Vote{Voter: domain.Voter{ID: voterID, Username: voter.Username}, Value: value}
	q.Votes = append(q.Votes, v)
	return c.JSON(http.StatusOK, v)
}

func (s *Server) voteAnswer(c echo.Context) error {
	answerID := pathID(c, "id")
	voterID := pathID(c, "voterId")
	value, err := strconv.Atoi(c.QueryParam("value"))
	if err != nil || !domain.ValidVoteValue(value) {
		return c.JSON(http.StatusBadRequest, msg("Vote value must be 1 or -1"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.answers[answerID]
	if !ok {
		return c.JSON(http.StatusNotFound, msg("answer not found"))
	}
	if a.Author.ID == voterID {
		return c.JSON(http.StatusBadRequest, msg("Cannot vote on your own answer"))
	}
	if _, voted := domain.FindVoteBy(a.Votes, voterID); voted {
		return c.JSON(http.StatusBadRequest, msg("Already voted on this answer"))
	}
	voter := s.users[voterID]
	v := domain.Vote{Voter: domain.Voter{ID: voterID, Username: voter.Username}, Value: value}
	a.Votes = append(a.Votes, v)
	return c.JSON(http.StatusOK, v)
}

// ── Tags ──────────────────────────────────────────────────────────────────────

func (s *Server) listTags(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Tag, 0, len(s.tags))
	for _, t := range s.tags {
		clone := *t
		out = append(out, &clone)
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) createTag(c echo.Context) error {
	name := strings.ToLower(c.QueryParam("name"))
	if name == "" {
		return c.JSON(http.StatusBadRequest, msg("tag name required"))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.resolveTagsLocked([]string{name})[0]
	return c.JSON(http.StatusCreated, t)
}

func (s *Server) tagsForQuestion(c echo.Context) error {
	id := pathID(c, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.questions[id]
	if !ok {
		return c.JSON(http.StatusNotFound, msg("question not found"))
	}
	return c.JSON(http.StatusOK, q.Tags)
}

func (s *Server) addTagToQuestion(c echo.Context) error {
	id := pathID(c, "id")
	name := strings.ToLower(c.QueryParam("name"))
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.questions[id]
	if !ok {
		return c.JSON(http.StatusNotFound, msg("question not found"))
	}
	t := s.resolveTagsLocked([]string{name})[0]
	for _, existing := range q.Tags {
		if existing.Name == t.Name {
			return c.JSON(http.StatusOK, t)
		}
	}
	q.Tags = append(q.Tags, t)
	return c.JSON(http.StatusCreated, t)
}

func (s *Server) removeTagFromQuestion(c echo.Context) error {
	id := pathID(c, "id")
	name := strings.ToLower(c.QueryParam("name"))
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.questions[id]
	if !ok {
		return c.JSON(http.StatusNotFound, msg("question not found"))
	}
	kept := q.Tags[:0]
	for _, t := range q.Tags {
		if t.Name != name {
			kept = append(kept, t)
		}
	}
	q.Tags = kept
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) resolveTagsLocked(names []string) []domain.Tag {
	out := make([]domain.Tag, 0, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		t, ok := s.tags[name]
		if !ok {
			s.nextID++
			t = &domain.Tag{ID: s.nextID, Name: name}
			s.tags[name] = t
		}
		out = append(out, *t)
	}
	return out
}

// ── Uploads ───────────────────────────────────────────────────────────────────

func (s *Server) uploadImage(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, msg("file field required"))
	}
	if file.Size > maxUploadBytes {
		return c.JSON(http.StatusRequestEntityTooLarge, msg("file too large"))
	}
	return c.JSON(http.StatusOK, map[string]string{
		"url": fmt.Sprintf("/uploads/%s-%s", uuid.NewString(), file.Filename),
	})
}

func (s *Server) deleteImage(c echo.Context) error {
	if c.QueryParam("url") == "" {
		return c.JSON(http.StatusBadRequest, msg("url parameter required"))
	}
	return c.NoContent(http.StatusNoContent)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func msg(text string) map[string]string {
	return map[string]string{"message": text}
}

func pathID(c echo.Context, name string) int64 {
	id, _ := strconv.ParseInt(c.Param(name), 10, 64)
	return id
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func cloneQuestion(q *domain.Question) *domain.Question {
	clone := *q
	clone.Votes = domain.CloneVotes(q.Votes)
	clone.Tags = append([]domain.Tag(nil), q.Tags...)
	return &clone
}

func cloneAnswer(a *domain.Answer) *domain.Answer {
	clone := *a
	clone.Votes = domain.CloneVotes(a.Votes)
	return &clone
}

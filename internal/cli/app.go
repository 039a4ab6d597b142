// Package cli implements the command surface of forumcli. Commands are the
// client's "views": protected ones consult the route guard before doing any
// work, and moderator-only ones additionally require the moderator role.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/forumapp/forumcli/internal/core/domain"
	"github.com/forumapp/forumcli/internal/core/ports"
	"github.com/forumapp/forumcli/internal/core/service"
)

// App wires the services behind the command table.
type App struct {
	Sessions   ports.SessionManager
	Guard      *service.Guard
	Questions  *service.QuestionService
	Answers    *service.AnswerService
	Votes      *service.VoteService
	Tags       *service.TagService
	Moderation *service.ModerationService
	Profile    *service.ProfileService
	Uploads    *service.UploadService
	Out        io.Writer

	validate *inputValidator
}

// Run dispatches one command invocation.
func (a *App) Run(ctx context.Context, args []string) error {
	if a.validate == nil {
		a.validate = newValidator()
	}
	if len(args) == 0 {
		a.usage()
		return errors.New("command required")
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return a.cmdLogin(ctx, rest)
	case "logout":
		a.Sessions.Logout(ctx)
		return nil
	case "register":
		return a.cmdRegister(ctx, rest)
	case "whoami":
		return a.cmdWhoami()
	case "profile":
		return a.cmdProfile(ctx, rest)
	case "questions":
		return a.cmdQuestions(ctx, rest)
	case "answers":
		return a.cmdAnswers(ctx, rest)
	case "vote":
		return a.cmdVote(ctx, rest)
	case "accept":
		return a.cmdAccept(ctx, rest)
	case "tags":
		return a.cmdTags(ctx, rest)
	case "mod":
		return a.cmdMod(ctx, rest)
	case "upload":
		return a.cmdUpload(ctx, rest)
	default:
		a.usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *App) usage() {
	fmt.Fprintln(a.Out, `usage: forumcli <command> [flags]

commands:
  login -email <e> -password <p>     sign in
  logout                             sign out
  register -username <u> -email <e> -password <p> [-phone <n>]
  whoami                             show the current session
  profile [-username <u>] [-email <e>] [-phone <n>]
  questions list|show|ask|search|filter|mine|edit|rm
  answers list|add|edit|rm
  vote question|answer <id> up|down
  accept <questionID> <answerID>
  tags list|add|rm
  mod users|ban|unban|rm             (moderators only)
  upload <path> | upload rm <url>`)
}

// requireSession is the guard check every protected command runs first.
func (a *App) requireSession() (*domain.Session, error) {
	if !a.Guard.IsAuthenticated() {
		return nil, fmt.Errorf("%w: run \"forumcli login\" first", domain.ErrUnauthenticated)
	}
	return a.Sessions.Current(), nil
}

func (a *App) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sess, err := a.Sessions.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Signed in as %s (%s)\n", sess.Username, sess.Role)
	return nil
}

func (a *App) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	username := fs.String("username", "", "display name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	phone := fs.String("phone", "", "phone number (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	input := ports.RegisterInput{
		Username:    *username,
		Email:       *email,
		Password:    *password,
		PhoneNumber: *phone,
	}
	if err := a.validate.Check(input); err != nil {
		return err
	}
	user, err := a.Sessions.Register(ctx, input)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Account #%d created. Sign in with \"forumcli login\".\n", user.ID)
	return nil
}

func (a *App) cmdWhoami() error {
	sess := a.Sessions.Current()
	if sess == nil {
		fmt.Fprintln(a.Out, "Not signed in.")
		return nil
	}
	role := sess.Role
	if a.Guard.IsModerator() {
		role += " (moderator panel available)"
	}
	fmt.Fprintf(a.Out, "%s <%s> %s score=%s\n", sess.Username, sess.Email, role, humanize.Ftoa(sess.Score))
	return nil
}

func (a *App) cmdProfile(ctx context.Context, args []string) error {
	if _, err := a.requireSession(); err != nil {
		return err
	}
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	username := fs.String("username", "", "new display name")
	email := fs.String("email", "", "new email")
	phone := fs.String("phone", "", "new phone number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	input := ports.UpdateUserInput{Username: *username, Email: *email, PhoneNumber: *phone}
	if input == (ports.UpdateUserInput{}) {
		sess := a.Sessions.Current()
		fmt.Fprintf(a.Out, "%s <%s> phone=%s score=%s\n", sess.Username, sess.Email, sess.PhoneNumber, humanize.Ftoa(sess.Score))
		return nil
	}
	if err := a.validate.Check(input); err != nil {
		return err
	}
	sess, err := a.Profile.UpdateOwn(ctx, input)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Profile updated: %s <%s>\n", sess.Username, sess.Email)
	return nil
}

func (a *App) cmdQuestions(ctx context.Context, args []string) error {
	sess, err := a.requireSession()
	if err != nil {
		return err
	}
	sub, rest := subcommand(args)

	switch sub {
	case "list", "":
		qs, err := a.Questions.List(ctx)
		if err != nil {
			return err
		}
		for i := range qs {
			renderQuestionLine(a.Out, &qs[i])
		}
		return nil
	case "show":
		id, err := argID(rest, 0)
		if err != nil {
			return err
		}
		q, err := a.Questions.Get(ctx, id)
		if err != nil {
			return err
		}
		renderQuestion(a.Out, q)
		answers, err := a.Answers.ForQuestion(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "\n%d answer(s):\n", len(answers))
		for i := range answers {
			renderAnswer(a.Out, &answers[i])
		}
		return nil
	case "ask":
		fs := flag.NewFlagSet("ask", flag.ContinueOnError)
		title := fs.String("title", "", "question title")
		text := fs.String("text", "", "question body")
		picture := fs.String("picture", "", "attached image URL (optional)")
		tagList := fs.String("tags", "", "comma-separated tag names")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		input := ports.QuestionInput{Title: *title, Text: *text, Picture: *picture, TagNames: splitTags(*tagList)}
		if err := a.validate.Check(input); err != nil {
			return err
		}
		q, err := a.Questions.Ask(ctx, sess.UserID, input)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "Question #%d posted.\n", q.ID)
		return nil
	case "search":
		if len(rest) == 0 {
			return errors.New("search term required")
		}
		qs, err := a.Questions.Search(ctx, strings.Join(rest, " "))
		if err != nil {
			return err
		}
		for i := range qs {
			renderQuestionLine(a.Out, &qs[i])
		}
		return nil
	case "filter":
		if len(rest) == 0 {
			return errors.New("tag name required")
		}
		qs, err := a.Questions.FilterByTag(ctx, rest[0])
		if err != nil {
			return err
		}
		for i := range qs {
			renderQuestionLine(a.Out, &qs[i])
		}
		return nil
	case "mine":
		qs, err := a.Questions.ByUser(ctx, sess.UserID)
		if err != nil {
			return err
		}
		for i := range qs {
			renderQuestionLine(a.Out, &qs[i])
		}
		return nil
	case "edit":
		fs := flag.NewFlagSet("edit", flag.ContinueOnError)
		id := fs.Int64("id", 0, "question id")
		title := fs.String("title", "", "new title")
		text := fs.String("text", "", "new body")
		picture := fs.String("picture", "", "new image URL")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		// Empty fields are left out of the request; the server keeps them.
		_, err := a.Questions.Update(ctx, *id, ports.QuestionInput{Title: *title, Text: *text, Picture: *picture})
		return err
	case "rm":
		id, err := argID(rest, 0)
		if err != nil {
			return err
		}
		return a.Questions.Delete(ctx, id)
	default:
		return fmt.Errorf("unknown questions subcommand %q", sub)
	}
}

func (a *App) cmdAnswers(ctx context.Context, args []string) error {
	sess, err := a.requireSession()
	if err != nil {
		return err
	}
	sub, rest := subcommand(args)

	switch sub {
	case "list":
		questionID, err := argID(rest, 0)
		if err != nil {
			return err
		}
		answers, err := a.Answers.ForQuestion(ctx, questionID)
		if err != nil {
			return err
		}
		for i := range answers {
			renderAnswer(a.Out, &answers[i])
		}
		return nil
	case "add":
		fs := flag.NewFlagSet("add", flag.ContinueOnError)
		questionID := fs.Int64("question", 0, "question id")
		text := fs.String("text", "", "answer body")
		picture := fs.String("picture", "", "attached image URL (optional)")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		input := ports.AnswerInput{Text: *text, Picture: *picture}
		if err := a.validate.Check(input); err != nil {
			return err
		}
		ans, err := a.Answers.Post(ctx, sess.UserID, *questionID, input)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "Answer #%d posted.\n", ans.ID)
		return nil
	case "edit":
		fs := flag.NewFlagSet("edit", flag.ContinueOnError)
		id := fs.Int64("id", 0, "answer id")
		text := fs.String("text", "", "new body")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		_, err := a.Answers.Update(ctx, *id, ports.AnswerInput{Text: *text})
		return err
	case "rm":
		id, err := argID(rest, 0)
		if err != nil {
			return err
		}
		return a.Answers.Delete(ctx, id)
	default:
		return fmt.Errorf("unknown answers subcommand %q", sub)
	}
}

// cmdVote casts a vote: vote question|answer <id> up|down. The target is
// fetched first so the reconciler sees the latest known vote list.
func (a *App) cmdVote(ctx context.Context, args []string) error {
	sess, err := a.requireSession()
	if err != nil {
		return err
	}
	if len(args) != 3 {
		return errors.New("usage: vote question|answer <id> up|down")
	}
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("bad id %q", args[1])
	}
	value := domain.Upvote
	if args[2] == "down" {
		value = domain.Downvote
	} else if args[2] != "up" {
		return fmt.Errorf("bad direction %q", args[2])
	}

	var target service.VoteTarget
	switch args[0] {
	case "question":
		q, err := a.Questions.Get(ctx, id)
		if err != nil {
			return err
		}
		target = service.QuestionTarget{Question: q}
	case "answer":
		ans, err := a.Answers.Get(ctx, id)
		if err != nil {
			return err
		}
		target = service.AnswerTarget{Answer: ans}
	default:
		return fmt.Errorf("bad target %q", args[0])
	}

	votes, err := a.Votes.CastVote(ctx, sess.UserID, target, value)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Vote recorded. New total: %+d\n", domain.TotalVotes(votes))
	return nil
}

func (a *App) cmdAccept(ctx context.Context, args []string) error {
	sess, err := a.requireSession()
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return errors.New("usage: accept <questionID> <answerID>")
	}
	questionID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("bad question id %q", args[0])
	}
	answerID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("bad answer id %q", args[1])
	}

	q, err := a.Questions.Get(ctx, questionID)
	if err != nil {
		return err
	}
	ans, err := a.Answers.Get(ctx, answerID)
	if err != nil {
		return err
	}
	if err := a.Votes.AcceptAnswer(ctx, sess.UserID, q, ans); err != nil {
		return err
	}
	// No local patch: re-fetch so the display reflects server state.
	answers, err := a.Answers.ForQuestion(ctx, questionID)
	if err != nil {
		return err
	}
	for i := range answers {
		renderAnswer(a.Out, &answers[i])
	}
	return nil
}

func (a *App) cmdTags(ctx context.Context, args []string) error {
	if _, err := a.requireSession(); err != nil {
		return err
	}
	sub, rest := subcommand(args)

	switch sub {
	case "list", "":
		tags, err := a.Tags.List(ctx)
		if err != nil {
			return err
		}
		for _, t := range tags {
			fmt.Fprintf(a.Out, "[%s]\n", t.Name)
		}
		return nil
	case "add":
		if len(rest) != 2 {
			return errors.New("usage: tags add <questionID> <name>")
		}
		questionID, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad question id %q", rest[0])
		}
		_, err = a.Tags.AddToQuestion(ctx, questionID, rest[1])
		return err
	case "rm":
		if len(rest) != 2 {
			return errors.New("usage: tags rm <questionID> <name>")
		}
		questionID, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad question id %q", rest[0])
		}
		return a.Tags.RemoveFromQuestion(ctx, questionID, rest[1])
	default:
		return fmt.Errorf("unknown tags subcommand %q", sub)
	}
}

func (a *App) cmdMod(ctx context.Context, args []string) error {
	if _, err := a.requireSession(); err != nil {
		return err
	}
	if !a.Guard.IsModerator() {
		return fmt.Errorf("%w: moderator role required", domain.ErrUnauthenticated)
	}
	sub, rest := subcommand(args)

	switch sub {
	case "users", "":
		users, err := a.Moderation.ListUsers(ctx)
		if err != nil {
			return err
		}
		for i := range users {
			renderUser(a.Out, &users[i])
		}
		return nil
	case "ban":
		id, err := argID(rest, 0)
		if err != nil {
			return err
		}
		u, err := a.Moderation.BanUser(ctx, id)
		if err != nil {
			return err
		}
		renderUser(a.Out, u)
		return nil
	case "unban":
		id, err := argID(rest, 0)
		if err != nil {
			return err
		}
		u, err := a.Moderation.UnbanUser(ctx, id)
		if err != nil {
			return err
		}
		renderUser(a.Out, u)
		return nil
	case "rm":
		id, err := argID(rest, 0)
		if err != nil {
			return err
		}
		return a.Moderation.DeleteUser(ctx, id)
	default:
		return fmt.Errorf("unknown mod subcommand %q", sub)
	}
}

func (a *App) cmdUpload(ctx context.Context, args []string) error {
	if _, err := a.requireSession(); err != nil {
		return err
	}
	if len(args) == 2 && args[0] == "rm" {
		return a.Uploads.DeleteImage(ctx, args[1])
	}
	if len(args) != 1 {
		return errors.New("usage: upload <path> | upload rm <url>")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return err
	}

	url, err := a.Uploads.UploadImage(ctx, info.Name(), f, info.Size())
	if err != nil {
		if errors.Is(err, domain.ErrUploadTooLarge) {
			return fmt.Errorf("%w (file is %s)", err, humanize.Bytes(uint64(info.Size())))
		}
		return err
	}
	fmt.Fprintln(a.Out, url)
	return nil
}

func subcommand(args []string) (string, []string) {
	if len(args) == 0 {
		return "", nil
	}
	return args[0], args[1:]
}

func argID(args []string, pos int) (int64, error) {
	if len(args) <= pos {
		return 0, errors.New("id required")
	}
	id, err := strconv.ParseInt(args[pos], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad id %q", args[pos])
	}
	return id, nil
}

func splitTags(list string) []string {
	if list == "" {
		return []string{}
	}
	parts := strings.Split(list, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

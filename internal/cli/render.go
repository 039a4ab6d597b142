package cli

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/forumapp/forumcli/internal/core/domain"
)

func renderQuestionLine(w io.Writer, q *domain.Question) {
	accepted := ""
	if q.AcceptedAnswerID != 0 {
		accepted = " [answered]"
	}
	fmt.Fprintf(w, "#%d %s%s\n    by %s, %s, %+d votes%s\n",
		q.ID, q.Title, accepted,
		q.Author.Username, humanize.Time(q.CreatedAt), domain.TotalVotes(q.Votes), renderTags(q.Tags))
}

func renderQuestion(w io.Writer, q *domain.Question) {
	renderQuestionLine(w, q)
	fmt.Fprintf(w, "\n%s\n", q.Text)
	if q.Picture != "" {
		fmt.Fprintf(w, "\nimage: %s\n", q.Picture)
	}
}

func renderAnswer(w io.Writer, a *domain.Answer) {
	mark := ""
	if a.Accepted {
		mark = " ✔ accepted"
	}
	fmt.Fprintf(w, "#%d by %s, %s, %+d votes%s\n    %s\n",
		a.ID, a.Author.Username, humanize.Time(a.CreatedAt), domain.TotalVotes(a.Votes), mark, a.Text)
}

func renderUser(w io.Writer, u *domain.User) {
	banned := ""
	if u.Banned {
		banned = " [banned]"
	}
	fmt.Fprintf(w, "#%d %s <%s> %s score=%s%s\n",
		u.ID, u.Username, u.Email, u.Role, humanize.Ftoa(u.Score), banned)
}

func renderTags(tags []domain.Tag) string {
	if len(tags) == 0 {
		return ""
	}
	out := ","
	for _, t := range tags {
		out += " [" + t.Name + "]"
	}
	return out
}

package domain

import "time"

// Author embeds the public fields of a posting user as the content endpoints
// return them.
type Author struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Score    float64 `json:"score"`
}

// Question is the server-owned read model of a posted question. The client
// holds it only for the current render cycle; every mutation triggers a
// re-fetch or a local patch that matches server semantics.
type Question struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Text             string    `json:"text"`
	Author           Author    `json:"author"`
	CreatedAt        time.Time `json:"createdAt"`
	Picture          string    `json:"picture,omitempty"`
	Votes            []Vote    `json:"votes"`
	Tags             []Tag     `json:"tags,omitempty"`
	AcceptedAnswerID int64     `json:"acceptedAnswerId,omitempty"`
}

// Answer is the server-owned read model of an answer to a question.
type Answer struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	Picture   string    `json:"picture,omitempty"`
	Votes     []Vote    `json:"votes"`
	Accepted  bool      `json:"accepted"`
}

// Tag labels a question. Tags are shared across questions and addressed by
// name on the wire.
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

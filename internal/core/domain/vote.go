package domain

// Vote values. The backend rejects any magnitude other than 1 and the client
// never sends one.
const (
	Upvote   = 1
	Downvote = -1
)

// Voter identifies the user who cast a vote. Only the id is guaranteed to be
// present; list endpoints may omit the username.
type Voter struct {
	ID       int64  `json:"id"`
	Username string `json:"username,omitempty"`
}

// Vote is one recorded vote on a question or answer. Votes are created once
// and never updated in place; a repeated vote is rejected client-side before
// it reaches the wire.
type Vote struct {
	Voter Voter `json:"voter"`
	Value int   `json:"value"`
}

// ValidVoteValue reports whether v is one of the two permitted vote values.
func ValidVoteValue(v int) bool {
	return v == Upvote || v == Downvote
}

// TotalVotes sums the values of a vote list, the number a vote widget shows.
func TotalVotes(votes []Vote) int {
	total := 0
	for _, v := range votes {
		total += v.Value
	}
	return total
}

// FindVoteBy returns the vote cast by voterID, if any.
func FindVoteBy(votes []Vote, voterID int64) (Vote, bool) {
	for _, v := range votes {
		if v.Voter.ID == voterID {
			return v, true
		}
	}
	return Vote{}, false
}

// CloneVotes returns an independent copy of a vote list so a caller-supplied
// snapshot cannot be mutated by later reconciliation.
func CloneVotes(votes []Vote) []Vote {
	if votes == nil {
		return nil
	}
	out := make([]Vote, len(votes))
	copy(out, votes)
	return out
}

package domain

import (
	"reflect"
	"testing"
)

func TestValidVoteValue(t *testing.T) {
	cases := []struct {
		value int
		want  bool
	}{
		{Upvote, true},
		{Downvote, true},
		{0, false},
		{2, false},
		{-2, false},
	}
	for _, tc := range cases {
		if got := ValidVoteValue(tc.value); got != tc.want {
			t.Errorf("ValidVoteValue(%d) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestTotalVotes(t *testing.T) {
	votes := []Vote{
		{Voter: Voter{ID: 1}, Value: Upvote},
		{Voter: Voter{ID: 2}, Value: Upvote},
		{Voter: Voter{ID: 3}, Value: Downvote},
	}
	if got := TotalVotes(votes); got != 1 {
		t.Fatalf("TotalVotes = %d, want 1", got)
	}
	if got := TotalVotes(nil); got != 0 {
		t.Fatalf("TotalVotes(nil) = %d, want 0", got)
	}
}

func TestFindVoteBy(t *testing.T) {
	votes := []Vote{
		{Voter: Voter{ID: 1}, Value: Upvote},
		{Voter: Voter{ID: 2}, Value: Downvote},
	}
	v, ok := FindVoteBy(votes, 2)
	if !ok || v.Value != Downvote {
		t.Fatalf("FindVoteBy(2) = %+v, %v", v, ok)
	}
	if _, ok := FindVoteBy(votes, 9); ok {
		t.Fatalf("FindVoteBy(9) found a vote that does not exist")
	}
}

func TestCloneVotes_Independent(t *testing.T) {
	votes := []Vote{{Voter: Voter{ID: 1}, Value: Upvote}}
	clone := CloneVotes(votes)
	clone[0].Value = Downvote
	if votes[0].Value != Upvote {
		t.Fatalf("mutating the clone changed the original")
	}
	if CloneVotes(nil) != nil {
		t.Fatalf("CloneVotes(nil) must stay nil")
	}
}

func TestSessionMerge(t *testing.T) {
	orig := Session{
		UserID:      1,
		Username:    "alice",
		Email:       "alice@example.com",
		Role:        RoleUser,
		Score:       4,
		PhoneNumber: "5550001",
	}

	name := "alice2"
	score := 9.5
	merged := orig.Merge(ProfileUpdate{Username: &name, Score: &score})

	want := orig
	want.Username = "alice2"
	want.Score = 9.5
	if !reflect.DeepEqual(merged, want) {
		t.Fatalf("Merge result = %+v, want %+v", merged, want)
	}
	if orig.Username != "alice" {
		t.Fatalf("Merge mutated the receiver: %+v", orig)
	}

	// An empty update is a no-op.
	if got := orig.Merge(ProfileUpdate{}); !reflect.DeepEqual(got, orig) {
		t.Fatalf("empty merge changed the session: %+v", got)
	}
}

func TestSessionFromUser(t *testing.T) {
	u := &User{ID: 3, Username: "carol", Email: "c@example.com", Role: RoleModerator, Score: 2, PhoneNumber: "5550002"}
	s := SessionFromUser(u)
	if s.UserID != 3 || s.Username != "carol" || s.Role != RoleModerator || s.PhoneNumber != "5550002" {
		t.Fatalf("SessionFromUser = %+v", s)
	}
	if SessionFromUser(nil) != nil {
		t.Fatalf("SessionFromUser(nil) must be nil")
	}
}

func TestSessionIsModerator(t *testing.T) {
	var none *Session
	if none.IsModerator() {
		t.Fatalf("nil session can never be a moderator")
	}
	if (&Session{Role: RoleUser}).IsModerator() {
		t.Fatalf("plain user reported as moderator")
	}
	if !(&Session{Role: RoleModerator}).IsModerator() {
		t.Fatalf("moderator not recognized")
	}
}

package domain

import "errors"

// Credential and session lifecycle errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountBanned      = errors.New("account is banned")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrNoSession          = errors.New("no active session")
)

// Voting and acceptance rule violations, all detected client-side before any
// network call is made.
var (
	ErrSelfVoteForbidden = errors.New("cannot vote on your own post")
	ErrDuplicateVote     = errors.New("already voted on this post")
	ErrInvalidVoteValue  = errors.New("vote value must be 1 or -1")
	ErrInvalidTarget     = errors.New("vote target does not exist")
	ErrVoteInFlight      = errors.New("vote submission already in flight")
	ErrNotQuestionAuthor = errors.New("only the question author can accept an answer")
)

// Backend-reported conditions.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrUserExists     = errors.New("user already exists")
	ErrNotFound       = errors.New("not found")
	ErrUploadTooLarge = errors.New("file exceeds the 10MB upload limit")
	ErrNetwork        = errors.New("backend unreachable or returned an unexpected status")
)

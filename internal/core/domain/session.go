package domain

// Session is the client's record of the currently authenticated user. It is
// held in memory and mirrored into the session store as an encoded blob so it
// survives process restarts. The blob is a convenience cache, not a
// credential: the server re-authorizes every request on its own.
type Session struct {
	UserID      int64   `json:"id"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	Role        string  `json:"role"`
	Banned      bool    `json:"isBanned"`
	Score       float64 `json:"score"`
	PhoneNumber string  `json:"phoneNumber,omitempty"`
}

// SessionFromUser builds a session from a freshly fetched user record.
func SessionFromUser(u *User) *Session {
	if u == nil {
		return nil
	}
	return &Session{
		UserID:      u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Role:        u.Role,
		Banned:      u.Banned,
		Score:       u.Score,
		PhoneNumber: u.PhoneNumber,
	}
}

// ProfileUpdate carries server-confirmed profile fields. A nil field means
// the update did not touch it and the previous value is kept; fields are
// never silently nulled.
type ProfileUpdate struct {
	Username    *string
	Email       *string
	Role        *string
	Banned      *bool
	Score       *float64
	PhoneNumber *string
}

// Merge returns a copy of the session with the update applied. The receiver
// is left untouched; identity fields change only through this path.
func (s Session) Merge(u ProfileUpdate) Session {
	if u.Username != nil {
		s.Username = *u.Username
	}
	if u.Email != nil {
		s.Email = *u.Email
	}
	if u.Role != nil {
		s.Role = *u.Role
	}
	if u.Banned != nil {
		s.Banned = *u.Banned
	}
	if u.Score != nil {
		s.Score = *u.Score
	}
	if u.PhoneNumber != nil {
		s.PhoneNumber = *u.PhoneNumber
	}
	return s
}

// IsModerator reports whether the session belongs to a moderator account.
func (s *Session) IsModerator() bool {
	return s != nil && s.Role == RoleModerator
}

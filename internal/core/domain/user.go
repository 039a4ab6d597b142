package domain

const (
	RoleUser      = "USER"
	RoleModerator = "MODERATOR"
)

// User is the server-owned read model returned by the identity endpoints.
// The client never mutates it locally; every change goes through the API and
// comes back in a fresh response.
type User struct {
	ID          int64   `json:"id"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	Role        string  `json:"role"`
	Banned      bool    `json:"isBanned"`
	Score       float64 `json:"score"`
	PhoneNumber string  `json:"phoneNumber,omitempty"`
}

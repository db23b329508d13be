package model

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the session identity returned by the backend's auth routes.
// Role defaults to "user" when the backend omits it.
type User struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role,omitempty"`
	Name   string `json:"name,omitempty"`
	Phone  string `json:"phone,omitempty"`
}

// IsAdmin is safe on a nil receiver so callers can ask without checking
// for an absent session first.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

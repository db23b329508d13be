package model

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

// UserEnvelope wraps the `{user}` body the auth routes respond with.
type UserEnvelope struct {
	User *User `json:"user"`
}

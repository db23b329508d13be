package response

import (
	"encoding/json"
	"eventbook-client/model"
	"net/http"
)

// UserResponse is the `{user}` envelope the auth routes reply with.
type UserResponse struct {
	User       *model.User `json:"user,omitempty"`
	StatusCode int         `json:"-"`
}

func (r UserResponse) Send(w http.ResponseWriter) {
	w.WriteHeader(r.StatusCode)
	json.NewEncoder(w).Encode(r)
}

// JSON writes an arbitrary success body. The event and booking routes
// respond with bare objects and arrays rather than an envelope.
func JSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

package devserver

import (
	"encoding/json"
	"errors"
	"eventbook-client/logger"
	"eventbook-client/model"
	"eventbook-client/response"
	"net/http"
	"strings"
	"time"
)

// Register handles POST /auth/register. A user object is intentionally
// not returned: clients establish their session through login.
func Register(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest("invalid request body", err.Error()).Send(ctx, w)
			return
		}
		if strings.TrimSpace(req.Email) == "" || req.Password == "" {
			response.InvalidData("register: email and password are required").Send(ctx, w)
			return
		}

		if _, err := store.RegisterUser(req); err != nil {
			if errors.Is(err, ErrDuplicateEmail) {
				response.DuplicateEntry().Send(ctx, w)
				return
			}
			logger.Errorf(ctx, "register: %v", err)
			response.SomethingWrong().Send(ctx, w)
			return
		}

		response.JSON(w, http.StatusCreated, map[string]string{"status": "registered"})
	}
}

// Login handles POST /auth/login: checks credentials and sets the
// session cookie.
func Login(store *Store, secret string, ttl time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest("invalid request body", err.Error()).Send(ctx, w)
			return
		}

		user, err := store.Authenticate(req.Email, req.Password)
		if err != nil {
			response.CanNotLogin().Send(ctx, w)
			return
		}

		token, err := IssueSessionToken(secret, user.UserID, ttl)
		if err != nil {
			logger.Errorf(ctx, "login: %v", err)
			response.SomethingWrong().Send(ctx, w)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    token,
			Path:     "/",
			Expires:  time.Now().Add(ttl),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		response.UserResponse{User: user, StatusCode: http.StatusOK}.Send(w)
	}
}

// Me handles GET /auth/me: verifies the session cookie.
func Me(store *Store, secret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := sessionUser(r, store, secret)
		if err != nil {
			response.Unauthorized().Send(r.Context(), w)
			return
		}
		response.UserResponse{User: user, StatusCode: http.StatusOK}.Send(w)
	}
}

// Logout handles POST /auth/logout: expires the session cookie. Always
// succeeds; there is nothing to fail for an already-absent session.
func Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    "",
			Path:     "/",
			Expires:  time.Unix(0, 0),
			MaxAge:   -1,
			HttpOnly: true,
		})
		response.JSON(w, http.StatusOK, map[string]string{"status": "logged out"})
	}
}

func sessionUser(r *http.Request, store *Store, secret string) (*model.User, error) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return nil, err
	}
	userID, err := ParseSessionToken(secret, cookie.Value)
	if err != nil {
		return nil, err
	}
	return store.User(userID)
}

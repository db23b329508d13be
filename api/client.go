package api

import (
	"bytes"
	"context"
	"encoding/json"
	c "eventbook-client/context"
	"eventbook-client/logger"
	"eventbook-client/model"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

// Client wraps the backend REST API. The cookie jar carries the session
// credential, so every call after a successful login is authenticated
// without callers doing anything.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("api: base URL is empty")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("api: invalid base URL %q: %w", baseURL, err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("api: creating cookie jar: %w", err)
	}

	if timeout <= 0 {
		timeout = c.DefaultHttpTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
	}, nil
}

func (cl *Client) Login(ctx context.Context, email, password string) (*model.User, error) {
	var envelope model.UserEnvelope
	err := cl.do(ctx, http.MethodPost, "/auth/login", model.LoginRequest{Email: email, Password: password}, &envelope)
	if err != nil {
		return nil, err
	}
	if envelope.User == nil {
		return nil, fmt.Errorf("login: backend returned no user")
	}
	return envelope.User, nil
}

func (cl *Client) Register(ctx context.Context, req model.RegisterRequest) error {
	return cl.do(ctx, http.MethodPost, "/auth/register", req, nil)
}

// Me verifies the session cookie against the backend.
func (cl *Client) Me(ctx context.Context) (*model.User, error) {
	var envelope model.UserEnvelope
	err := cl.do(ctx, http.MethodGet, "/auth/me", nil, &envelope)
	if err != nil {
		return nil, err
	}
	if envelope.User == nil {
		return nil, fmt.Errorf("me: backend returned no user")
	}
	return envelope.User, nil
}

func (cl *Client) Logout(ctx context.Context) error {
	return cl.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

func (cl *Client) Events(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	if err := cl.do(ctx, http.MethodGet, "/events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (cl *Client) Event(ctx context.Context, eventID string) (*model.Event, error) {
	var event model.Event
	if err := cl.do(ctx, http.MethodGet, "/events/"+url.PathEscape(eventID), nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (cl *Client) CreateEvent(ctx context.Context, req model.CreateEventRequest) error {
	return cl.do(ctx, http.MethodPost, "/events/create", req, nil)
}

func (cl *Client) DeleteEvent(ctx context.Context, eventID string) error {
	return cl.do(ctx, http.MethodDelete, "/events/"+url.PathEscape(eventID), nil, nil)
}

func (cl *Client) CreateBooking(ctx context.Context, req model.BookingRequest) (*model.BookingRecord, error) {
	var record model.BookingRecord
	if err := cl.do(ctx, http.MethodPost, "/bookings", req, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (cl *Client) UserBookings(ctx context.Context, userID string) ([]model.BookingRecord, error) {
	var records []model.BookingRecord
	if err := cl.do(ctx, http.MethodGet, "/bookings/user/"+url.PathEscape(userID), nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// do runs one request/response cycle. Non-2xx responses come back as a
// *Error carrying the backend's message when the body has one; transport
// failures come back wrapped, so errors.As distinguishes the two.
func (cl *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: marshalling %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, cl.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api: building %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if correlationID := c.GetContextValue(ctx, c.ContextKeyCorrelationID); correlationID != "" {
		req.Header.Set("Correlation-Id", correlationID)
	}

	logger.Debugf(ctx, "api: %s %s", method, path)

	res, err := cl.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return decodeError(res)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decoding %s %s response: %w", method, path, err)
	}
	return nil
}

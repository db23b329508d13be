package devserver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"eventbook-client/model"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrDuplicateEmail = errors.New("store: email already registered")
	ErrBadCredentials = errors.New("store: wrong email or password")
	ErrEventNotFound  = errors.New("store: event not found")
	ErrUserNotFound   = errors.New("store: user not found")
	ErrNotEnoughSeats = errors.New("store: not enough seats available")
	ErrBadSeatCount   = errors.New("store: seat count out of range")
)

type storedUser struct {
	user         model.User
	passwordHash string
}

// Store is the dev server's in-memory state. Everything lives behind
// one mutex; this server exists for tests and local development, not
// load.
type Store struct {
	mu       sync.Mutex
	users    map[string]*storedUser // keyed by userID
	byEmail  map[string]string      // email -> userID
	events   map[string]*model.Event
	bookings []model.BookingRecord
}

func NewStore() *Store {
	return &Store{
		users:   make(map[string]*storedUser),
		byEmail: make(map[string]string),
		events:  make(map[string]*model.Event),
	}
}

func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func (s *Store) createUser(req model.RegisterRequest, role string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[req.Email]; exists {
		return nil, ErrDuplicateEmail
	}

	user := model.User{
		UserID: uuid.NewString(),
		Email:  req.Email,
		Role:   role,
		Name:   req.Name,
		Phone:  req.Phone,
	}
	s.users[user.UserID] = &storedUser{user: user, passwordHash: hashPassword(req.Password)}
	s.byEmail[req.Email] = user.UserID

	copied := user
	return &copied, nil
}

// RegisterUser creates a regular account.
func (s *Store) RegisterUser(req model.RegisterRequest) (*model.User, error) {
	return s.createUser(req, model.RoleUser)
}

// SeedAdmin creates an admin account, for server startup and tests.
func (s *Store) SeedAdmin(name, email, password string) (*model.User, error) {
	return s.createUser(model.RegisterRequest{Name: name, Email: email, Password: password}, model.RoleAdmin)
}

// Authenticate checks credentials and returns the matching user.
func (s *Store) Authenticate(email, password string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID, ok := s.byEmail[email]
	if !ok {
		return nil, ErrBadCredentials
	}
	stored := s.users[userID]
	if stored.passwordHash != hashPassword(password) {
		return nil, ErrBadCredentials
	}
	copied := stored.user
	return &copied, nil
}

func (s *Store) User(userID string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := stored.user
	return &copied, nil
}

func (s *Store) CreateEvent(req model.CreateEventRequest) (*model.Event, error) {
	if req.Title == "" || req.TotalSeats < 0 {
		return nil, errors.New("store: invalid event")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	event := model.Event{
		EventID:     uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartAt:     req.StartAt,
		TotalSeats:  req.TotalSeats,
	}
	s.events[event.EventID] = &event

	copied := event
	return &copied, nil
}

func (s *Store) DeleteEvent(eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[eventID]; !ok {
		return ErrEventNotFound
	}
	delete(s.events, eventID)
	return nil
}

func (s *Store) Events() []model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := make([]model.Event, 0, len(s.events))
	for _, event := range s.events {
		events = append(events, *event)
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].StartAt.Before(events[j].StartAt)
	})
	return events
}

func (s *Store) Event(eventID string) (*model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[eventID]
	if !ok {
		return nil, ErrEventNotFound
	}
	copied := *event
	return &copied, nil
}

// CreateBooking enforces the per-transaction seat range and the event
// capacity invariant (seatsBooked never exceeds totalSeats).
func (s *Store) CreateBooking(req model.BookingRequest) (*model.BookingRecord, error) {
	if req.Seats < 1 || req.Seats > 5 {
		return nil, ErrBadSeatCount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[req.EventID]
	if !ok {
		return nil, ErrEventNotFound
	}
	if event.SeatsBooked+req.Seats > event.TotalSeats {
		return nil, ErrNotEnoughSeats
	}
	event.SeatsBooked += req.Seats

	record := model.BookingRecord{
		ID:            uuid.NewString(),
		UserID:        req.UserID,
		EventID:       req.EventID,
		Seats:         req.Seats,
		Phone:         req.Phone,
		CreatedAt:     time.Now().UTC(),
		EventTitle:    event.Title,
		EventStartAt:  event.StartAt,
		EventLocation: event.Location,
	}
	s.bookings = append(s.bookings, record)

	return &record, nil
}

func (s *Store) UserBookings(userID string) []model.BookingRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]model.BookingRecord, 0)
	for _, record := range s.bookings {
		if record.UserID == userID {
			records = append(records, record)
		}
	}
	return records
}

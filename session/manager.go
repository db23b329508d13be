package session

import (
	"context"
	"errors"
	"eventbook-client/api"
	"eventbook-client/logger"
	"eventbook-client/model"
	"fmt"
	"sync"
)

// AuthClient is the slice of the API client the session manager needs.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (*model.User, error)
	Register(ctx context.Context, req model.RegisterRequest) error
	Me(ctx context.Context) (*model.User, error)
	Logout(ctx context.Context) error
}

// Change is broadcast to subscribers whenever the session state moves.
type Change struct {
	User    *model.User
	Loading bool
}

// Manager is the single source of truth for who is logged in. Mutating
// operations (Initialize, Login, Register, Logout) serialize through an
// operation lock held across their network call, so an Initialize still
// in flight cannot race an explicit Login; readers use a separate lock
// and never block behind in-flight operations.
type Manager struct {
	client AuthClient
	cache  Cache

	opMu sync.Mutex

	mu      sync.RWMutex
	user    *model.User
	loading bool
	subs    map[int]chan Change
	nextSub int
}

func NewManager(client AuthClient, cache Cache) *Manager {
	if cache == nil {
		cache = NopCache{}
	}
	return &Manager{
		client: client,
		cache:  cache,
		subs:   make(map[int]chan Change),
	}
}

// Initialize loads the cached user for optimistic display, then asks
// the backend whether the session cookie is still good. An explicit
// denial clears both user and cache; a transport failure keeps the
// cached user so a flaky network does not log anyone out.
func (m *Manager) Initialize(ctx context.Context) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.setLoading(true)
	defer m.setLoading(false)

	cached, err := m.cache.Load()
	if err != nil {
		logger.Warnf(ctx, "session: unreadable cache, ignoring: %v", err)
	}
	if cached != nil {
		m.setUser(cached)
	}

	user, err := m.client.Me(ctx)
	if ctx.Err() != nil {
		return fmt.Errorf("session: initialize cancelled: %w", ctx.Err())
	}
	if err == nil {
		m.setUser(user)
		if storeErr := m.cache.Store(user); storeErr != nil {
			logger.Warnf(ctx, "session: caching user: %v", storeErr)
		}
		return nil
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		// The backend looked at the cookie and said no.
		m.setUser(nil)
		if clearErr := m.cache.Clear(); clearErr != nil {
			logger.Warnf(ctx, "session: clearing cache: %v", clearErr)
		}
		return nil
	}

	if cached != nil {
		logger.Warnf(ctx, "session: verification unreachable, keeping cached user: %v", err)
		return nil
	}
	m.setUser(nil)
	return fmt.Errorf("session: verifying session: %w", err)
}

// Login authenticates and adopts the returned user. Failures clear the
// local user and propagate so the UI can display them.
func (m *Manager) Login(ctx context.Context, email, password string) (*model.User, error) {
	m.opMu.Lock()
	defer m.opMu.Unlock()
	return m.loginLocked(ctx, email, password)
}

func (m *Manager) loginLocked(ctx context.Context, email, password string) (*model.User, error) {
	m.setLoading(true)
	defer m.setLoading(false)

	user, err := m.client.Login(ctx, email, password)
	if ctx.Err() != nil {
		return nil, fmt.Errorf("session: login cancelled: %w", ctx.Err())
	}
	if err != nil {
		m.setUser(nil)
		if clearErr := m.cache.Clear(); clearErr != nil {
			logger.Warnf(ctx, "session: clearing cache: %v", clearErr)
		}
		return nil, err
	}

	m.setUser(user)
	if storeErr := m.cache.Store(user); storeErr != nil {
		logger.Warnf(ctx, "session: caching user: %v", storeErr)
	}
	return user, nil
}

// Register creates the account and then chains into Login with the same
// credentials. Whatever user object registration itself returns is
// never trusted; only a verified login establishes the session.
func (m *Manager) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.setLoading(true)
	err := m.client.Register(ctx, req)
	m.setLoading(false)
	if err != nil {
		return nil, err
	}

	return m.loginLocked(ctx, req.Email, req.Password)
}

// Logout tells the backend to drop the session, then clears local state
// regardless of what the backend said. The client must never stay
// "logged in" locally when the user asked to leave.
func (m *Manager) Logout(ctx context.Context) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.setLoading(true)
	defer m.setLoading(false)

	if err := m.client.Logout(ctx); err != nil {
		logger.Warnf(ctx, "session: backend logout failed, clearing local state anyway: %v", err)
	}
	m.setUser(nil)
	if err := m.cache.Clear(); err != nil {
		logger.Warnf(ctx, "session: clearing cache: %v", err)
	}
}

// Current returns the authenticated user, or nil.
func (m *Manager) Current() *model.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

// Loading reports whether a session-mutating operation is in flight.
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// IsAdmin never panics: absent user means false.
func (m *Manager) IsAdmin() bool {
	return m.Current().IsAdmin()
}

// Subscribe registers for change notifications. The returned func
// unsubscribes. Slow subscribers miss intermediate states rather than
// block the manager.
func (m *Manager) Subscribe() (<-chan Change, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSub
	m.nextSub++
	ch := make(chan Change, 8)
	m.subs[id] = ch

	return ch, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}

func (m *Manager) setUser(user *model.User) {
	m.mu.Lock()
	m.user = user
	m.notifyLocked()
	m.mu.Unlock()
}

func (m *Manager) setLoading(loading bool) {
	m.mu.Lock()
	m.loading = loading
	m.notifyLocked()
	m.mu.Unlock()
}

func (m *Manager) notifyLocked() {
	change := Change{User: m.user, Loading: m.loading}
	for _, ch := range m.subs {
		select {
		case ch <- change:
		default:
		}
	}
}

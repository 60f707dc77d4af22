package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session bundles the four stores of one consultation journey. A Session is
// constructed in its initial empty state and handed to the transport layer
// explicitly; nothing here is process-global, so teardown (logout, end of
// consultation) is an explicit Manager.End rather than an implicit leak.
type Session struct {
	ID        string
	CreatedAt time.Time

	Chat     *ChatStore
	Doctor   *DoctorStore
	Pharmacy *PharmacyStore
	User     *UserStore
}

// NewSession creates a session with all four stores in their initial state.
func NewSession() *Session {
	return &Session{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Chat:      NewChatStore(),
		Doctor:    NewDoctorStore(),
		Pharmacy:  NewPharmacyStore(),
		User:      NewUserStore(),
	}
}

// Manager tracks live sessions by id. All operations are thread-safe via
// sync.RWMutex.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	limit    int
}

// NewManager creates an empty session registry. limit caps the number of
// concurrent sessions; zero or negative means unlimited.
func NewManager(limit int) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		limit:    limit,
	}
}

// Create registers a new session and returns it. Returns nil when the
// session limit is reached.
func (m *Manager) Create() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.limit > 0 && len(m.sessions) >= m.limit {
		return nil
	}
	s := NewSession()
	m.sessions[s.ID] = s
	return s
}

// Get returns the session with the given id, if it exists.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// End removes a session from the registry, destroying its state. Reports
// whether a session with that id existed.
func (m *Manager) End(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	return true
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

package session

import (
	"sync"

	"github.com/kwencafe/website/utils"
)

// Manager is the single source of truth for the admin token. Presence of a
// token means "authenticated" until a call against the API fails; no expiry
// is tracked here.
type Manager struct {
	mu    sync.RWMutex
	token string
	store *Store
	ready bool
}

// NewManager reads any previously persisted token so the initial state
// reflects the last session.
func NewManager(store *Store) (*Manager, error) {
	m := &Manager{store: store, ready: true}
	token, err := store.Load()
	if err != nil {
		return nil, err
	}
	m.token = token
	return m, nil
}

// guard catches use of a Manager that did not come from NewManager. That is a
// programming error, not a runtime condition, so it panics.
func (m *Manager) guard() {
	if m == nil || !m.ready {
		panic("session: Manager used before NewManager")
	}
}

func (m *Manager) Login(token string) {
	m.guard()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	if err := m.store.Save(token); err != nil {
		utils.ErrorLogger.Printf("persist admin token: %v", err)
	}
}

func (m *Manager) Logout() {
	m.guard()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	if err := m.store.Clear(); err != nil {
		utils.ErrorLogger.Printf("clear admin token: %v", err)
	}
}

func (m *Manager) Token() string {
	m.guard()
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

func (m *Manager) IsAuthenticated() bool {
	m.guard()
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token != ""
}

package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry maps opaque session tokens to user ids for the lifetime of the
// process. No expiry and no per-session logout; ClearAll runs at shutdown.
type Registry interface {
	Create(userID string) string
	Resolve(sessionID string) (string, bool)
	ClearAll()
}

type record struct {
	userID    string
	createdAt time.Time
}

type memoryRegistry struct {
	mu       sync.RWMutex
	sessions map[string]record
}

func NewRegistry() Registry {
	return &memoryRegistry{sessions: make(map[string]record)}
}

func (r *memoryRegistry) Create(userID string) string {
	id := uuid.NewString()
	r.mu.Lock()
	r.sessions[id] = record{userID: userID, createdAt: time.Now().UTC()}
	r.mu.Unlock()
	return id
}

func (r *memoryRegistry) Resolve(sessionID string) (string, bool) {
	r.mu.RLock()
	rec, ok := r.sessions[sessionID]
	r.mu.RUnlock()
	return rec.userID, ok
}

func (r *memoryRegistry) ClearAll() {
	r.mu.Lock()
	r.sessions = make(map[string]record)
	r.mu.Unlock()
}

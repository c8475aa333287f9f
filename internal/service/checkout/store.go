package checkout

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"walk4you-storefront/internal/domain"
)

// snapshotKey is the fixed name the hand-off payload lives under, scoped per
// session. The cart screen writes it once, the checkout screen reads it.
const snapshotKey = "checkoutData"

// SnapshotStore keeps JSON-serialized checkout snapshots keyed by session.
// A snapshot is transient; it never outlives the session (or the TTL, for
// backends that enforce one).
type SnapshotStore interface {
	Put(ctx context.Context, sessionID string, snap domain.CheckoutSnapshot) error
	// Get returns ErrNoSnapshot when nothing was written for the session or
	// the stored payload does not parse.
	Get(ctx context.Context, sessionID string) (*domain.CheckoutSnapshot, error)
	Delete(ctx context.Context, sessionID string) error
}

// NewSessionID mints an identifier for one browser-tab-equivalent session.
func NewSessionID() string {
	return uuid.NewString()
}

// MemoryStore is the in-process SnapshotStore, the default for a single
// storefront process. Last writer wins per session key.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Put(_ context.Context, sessionID string, snap domain.CheckoutSnapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data[sessionID] = raw
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Get(_ context.Context, sessionID string) (*domain.CheckoutSnapshot, error) {
	m.mu.RLock()
	raw, ok := m.data[sessionID]
	m.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNoSnapshot
	}

	var snap domain.CheckoutSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, domain.ErrNoSnapshot
	}
	return &snap, nil
}

func (m *MemoryStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	delete(m.data, sessionID)
	m.mu.Unlock()
	return nil
}

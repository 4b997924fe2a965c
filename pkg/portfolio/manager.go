package portfolio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/devfolio"
	"github.com/aretw0/devfolio/internal/logging"
	"github.com/aretw0/devfolio/pkg/domain"
	"github.com/aretw0/devfolio/pkg/ports"
)

const defaultLockTTL = 30 * time.Second

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager validates portfolios and persists the valid ones, serializing
// writes to the same ID. Unused per-ID locks are reclaimed by reference counting.
type Manager struct {
	store     ports.DocumentStore
	validator *devfolio.Validator

	mu    sync.Mutex
	locks map[string]*lockEntry

	locker  ports.DistributedLocker
	lockTTL time.Duration
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	source  string
}

// Option configures the Manager.
type Option func(*Manager)

// WithLocker enables distributed locking across replicas.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(m *Manager) {
		m.locker = locker
	}
}

// WithLockTTL sets how long a distributed lock survives a crashed holder.
func WithLockTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		m.lockTTL = ttl
	}
}

// WithValidator replaces the default validator.
func WithValidator(v *devfolio.Validator) Option {
	return func(m *Manager) {
		m.validator = v
	}
}

// WithLifecycleHooks registers store hooks. Validation hooks belong on the validator.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(m *Manager) {
		m.hooks = m.hooks.Merge(hooks)
	}
}

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithSource labels store events with the calling surface.
func WithSource(source string) Option {
	return func(m *Manager) {
		m.source = source
	}
}

// NewManager creates a Manager on top of store.
func NewManager(store ports.DocumentStore, opts ...Option) *Manager {
	m := &Manager{
		store:   store,
		locks:   make(map[string]*lockEntry),
		lockTTL: defaultLockTTL,
		logger:  logging.NewNop(),
		source:  "library",
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.validator == nil {
		m.validator = devfolio.New(devfolio.WithLogger(m.logger))
	}
	return m
}

// PutResult is the outcome of Put and Create.
type PutResult struct {
	ID string `json:"id"`
	devfolio.Result
	// Diff is set when the document was stored.
	Diff *domain.DocumentDiff `json:"diff,omitempty"`
}

// Put validates data and, when valid, stores it under id, replacing any
// previous version. An invalid document is not an error: the returned result
// carries the violations and nothing is written.
func (m *Manager) Put(ctx context.Context, id string, data any) (PutResult, error) {
	if err := domain.ValidateID(id); err != nil {
		return PutResult{ID: id}, err
	}

	res := m.validator.Validate(data)
	out := PutResult{ID: id, Result: res}
	if !res.Success {
		return out, nil
	}

	err := m.WithLock(ctx, id, func(ctx context.Context) error {
		previous, err := m.store.Load(ctx, id)
		if err != nil && !errors.Is(err, domain.ErrDocumentNotFound) {
			return fmt.Errorf("failed to load previous version: %w", err)
		}
		if err := m.store.Save(ctx, id, res.Data); err != nil {
			return fmt.Errorf("failed to save portfolio: %w", err)
		}
		out.Diff = domain.Diff(previous, res.Data)
		return nil
	})
	if err != nil {
		return out, err
	}

	m.logger.Info("Portfolio stored", "id", id, "added", out.Diff.Added, "changed", out.Diff.Changed)
	m.emit(ctx, domain.EventStored, id, out.Diff)
	return out, nil
}

// Create stores a valid document under a new random ID.
func (m *Manager) Create(ctx context.Context, data any) (PutResult, error) {
	return m.Put(ctx, uuid.NewString(), data)
}

// Get loads a stored document.
func (m *Manager) Get(ctx context.Context, id string) (*domain.Document, error) {
	if err := domain.ValidateID(id); err != nil {
		return nil, err
	}
	return m.store.Load(ctx, id)
}

// Delete removes a stored document.
func (m *Manager) Delete(ctx context.Context, id string) error {
	if err := domain.ValidateID(id); err != nil {
		return err
	}
	err := m.WithLock(ctx, id, func(ctx context.Context) error {
		return m.store.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	m.emit(ctx, domain.EventDeleted, id, nil)
	return nil
}

// List delegates to the store.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	return m.store.List(ctx)
}

// Store returns the underlying document store.
func (m *Manager) Store() ports.DocumentStore {
	return m.store
}

// Validator returns the validator used by Put.
func (m *Manager) Validator() *devfolio.Validator {
	return m.validator
}

// WithLock executes fn while holding the local, and if configured the
// distributed, lock for id.
func (m *Manager) WithLock(ctx context.Context, id string, fn func(context.Context) error) error {
	entry := m.acquire(id)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(id)
	}()

	if m.locker != nil {
		unlock, err := m.locker.Lock(ctx, id, m.lockTTL)
		if err != nil {
			return fmt.Errorf("failed to acquire distributed lock: %w", err)
		}
		defer func() {
			if err := unlock(ctx); err != nil {
				m.logger.Warn("Failed to release distributed lock (will expire via TTL)",
					"id", id,
					"error", err,
				)
			}
		}()
	}

	return fn(ctx)
}

// acquire gets or creates a lock entry and increments its reference count.
func (m *Manager) acquire(id string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.locks[id]
	if !ok {
		entry = &lockEntry{}
		m.locks[id] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and drops the entry at zero.
func (m *Manager) release(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.locks[id]
	if !ok {
		return
	}
	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, id)
	}
}

func (m *Manager) emit(ctx context.Context, typ domain.EventType, id string, diff *domain.DocumentDiff) {
	if m.hooks.OnStore == nil {
		return
	}
	m.hooks.OnStore(ctx, &domain.StoreEvent{
		EventBase: domain.EventBase{
			Timestamp: time.Now(),
			Type:      typ,
			Source:    m.source,
		},
		ID:   id,
		Diff: diff,
	})
}

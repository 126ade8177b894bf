package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

// Manager хранит сессии процесса и истекает их по таймауту неактивности
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	timeout time.Duration
	clock   Clock
	store   Store // nil - без внешнего хранилища
	logger  Logger
	gauge   Gauge
}

// NewManager создает менеджер сессий. store может быть nil.
func NewManager(timeout time.Duration, clock Clock, store Store, logger Logger, gauge Gauge) *Manager {
	if timeout <= 0 {
		timeout = domain.DefaultSessionTimeout
	}
	return &Manager{
		sessions: make(map[string]*Session),
		timeout:  timeout,
		clock:    clock,
		store:    store,
		logger:   logger,
		gauge:    gauge,
	}
}

// Timeout таймаут неактивности
func (m *Manager) Timeout() time.Duration {
	return m.timeout
}

// Create открывает сессию для пользователя с пустым инвентарём
func (m *Manager) Create(ctx context.Context, user *domain.User) *Session {
	sess := newSession(Record{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		UserName:     user.Name,
		Email:        user.Email,
		Role:         user.Role,
		Permissions:  user.Permissions,
		LastActivity: m.clock.Now(),
	})

	m.mu.Lock()
	m.sessions[sess.ID()] = sess
	n := len(m.sessions)
	m.mu.Unlock()

	m.gauge.SetActiveSessions(n)
	m.persist(ctx, sess)
	m.logger.Info("Create: session opened, id=%s, user_id=%d", sess.ID(), user.ID)

	return sess
}

// Get возвращает живую сессию и продлевает её.
// Истёкшая сессия удаляется и возвращается ErrSessionExpired.
// Сессия, известная только внешнему хранилищу, восстанавливается с пустым инвентарём.
func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	now := m.clock.Now()

	m.mu.Lock()
	sess, ok := m.sessions[id]
	m.mu.Unlock()

	if !ok {
		restored, err := m.restore(ctx, id)
		if err != nil {
			return nil, err
		}
		sess = restored
	}

	if sess.expired(now, m.timeout) {
		m.remove(ctx, id)
		return nil, ErrSessionExpired
	}

	sess.touch(now)
	m.persist(ctx, sess)

	return sess, nil
}

// Delete закрывает сессию (logout)
func (m *Manager) Delete(ctx context.Context, id string) {
	m.remove(ctx, id)
	m.logger.Info("Delete: session closed, id=%s", id)
}

// Sweep удаляет истёкшие сессии, возвращает их количество
func (m *Manager) Sweep(ctx context.Context) int {
	now := m.clock.Now()

	m.mu.Lock()
	expired := make([]string, 0)
	for id, sess := range m.sessions {
		if sess.expired(now, m.timeout) {
			expired = append(expired, id)
		}
	}
	m.mu.Unlock()

	for _, id := range expired {
		m.remove(ctx, id)
	}

	if len(expired) > 0 {
		m.logger.Info("Sweep: removed %d expired sessions", len(expired))
	}
	return len(expired)
}

// Run периодически вызывает Sweep до отмены ctx
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep(ctx)
		}
	}
}

// Count количество сессий в памяти процесса
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) restore(ctx context.Context, id string) (*Session, error) {
	if m.store == nil {
		return nil, ErrSessionNotFound
	}

	rec, err := m.store.Load(ctx, id)
	if errors.Is(err, ErrSessionNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		m.logger.Warn("Get: failed to load session from store, id=%s: %v", id, err)
		return nil, ErrSessionNotFound
	}

	m.mu.Lock()
	// Параллельный запрос мог успеть восстановить ту же сессию
	sess, ok := m.sessions[id]
	if !ok {
		sess = newSession(*rec)
		m.sessions[id] = sess
	}
	n := len(m.sessions)
	m.mu.Unlock()

	m.gauge.SetActiveSessions(n)
	m.logger.Info("Get: session restored from store, id=%s, user_id=%d", id, rec.UserID)

	return sess, nil
}

func (m *Manager) remove(ctx context.Context, id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	n := len(m.sessions)
	m.mu.Unlock()

	m.gauge.SetActiveSessions(n)

	if m.store != nil {
		if err := m.store.Delete(ctx, id); err != nil {
			m.logger.Warn("remove: failed to delete session from store, id=%s: %v", id, err)
		}
	}
}

func (m *Manager) persist(ctx context.Context, sess *Session) {
	if m.store == nil {
		return
	}
	if err := m.store.Save(ctx, sess.Record(), m.timeout); err != nil {
		m.logger.Warn("persist: failed to save session, id=%s: %v", sess.ID(), err)
	}
}

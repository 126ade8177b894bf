package session

import (
	"sync"
	"time"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

// Record метаданные сессии, которые переживают перезапуск процесса
type Record struct {
	ID           string             `json:"id"`
	UserID       int64              `json:"user_id"`
	UserName     string             `json:"user_name"`
	Email        string             `json:"email"`
	Role         domain.Role        `json:"role"`
	Permissions  domain.Permissions `json:"permissions"`
	LastActivity time.Time          `json:"last_activity"`
}

// Session рабочий контекст оператора: пользователь, время последней
// активности и собственный инвентарь мест.
type Session struct {
	mu        sync.Mutex
	record    Record
	inventory domain.SeatInventory
	loaded    bool
}

func newSession(rec Record) *Session {
	return &Session{
		record:    rec,
		inventory: domain.SeatInventory{},
	}
}

// ID идентификатор сессии
func (s *Session) ID() string {
	return s.record.ID
}

// Record копия метаданных сессии
func (s *Session) Record() Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record
}

// Can проверяет право пользователя сессии
func (s *Session) Can(perm domain.Permission) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record.Permissions.Allows(perm)
}

// Loaded сообщает, загружался ли инвентарь из хранилища в этой сессии
func (s *Session) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// ReplaceInventory заменяет инвентарь результатом полной перезагрузки
func (s *Session) ReplaceInventory(inv domain.SeatInventory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if inv == nil {
		inv = domain.SeatInventory{}
	}
	s.inventory = inv
	s.loaded = true
}

// ReplaceDate заменяет рейсы одной даты результатом частичной перезагрузки.
// Признак загрузки не меняется.
func (s *Session) ReplaceDate(date string, inv domain.SeatInventory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventory.ReplaceDate(date, inv)
}

// Book вносит подтверждённую хранилищем продажу в инвентарь
func (s *Session) Book(sale *domain.Sale) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventory.Book(sale)
}

// Release убирает удалённую продажу из инвентаря
func (s *Session) Release(sale *domain.Sale) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventory.Release(sale)
}

// SeatMap схема мест рейса по текущему (возможно устаревшему) инвентарю
func (s *Session) SeatMap(date, routeID, schedule string) domain.TripSeatMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inventory.SeatMap(date, routeID, schedule)
}

// Inventory копия инвентаря
func (s *Session) Inventory() domain.SeatInventory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inventory.Clone()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record.LastActivity = now
}

func (s *Session) expired(now time.Time, timeout time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.record.LastActivity) > timeout
}

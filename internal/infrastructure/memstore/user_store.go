package memstore

import (
	"strings"
	"sync"
	"time"

	"github.com/artifyhq/artify-backend/internal/domain/entity"
	"github.com/artifyhq/artify-backend/internal/domain/repository"
)

// UserStore is a process-memory UserRepository. The primary map is keyed by
// id; byEmail and byUsername are unique secondary indices kept consistent
// with the primary under one lock. All state is lost on restart, which is an
// accepted property of this deployment.
type UserStore struct {
	mu         sync.RWMutex
	byID       map[int64]*entity.User
	byEmail    map[string]int64
	byUsername map[string]int64
	nextID     int64
}

func NewUserStore() *UserStore {
	return &UserStore{
		byID:       make(map[int64]*entity.User),
		byEmail:    make(map[string]int64),
		byUsername: make(map[string]int64),
		nextID:     1,
	}
}

func normEmail(email string) string { return strings.ToLower(strings.TrimSpace(email)) }

// Create assigns a fresh id and inserts the user. Uniqueness of email and
// username is checked and the indices updated within the same critical
// section, so a failed create leaves no partial state behind.
func (s *UserStore) Create(u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := normEmail(u.Email)
	if _, ok := s.byEmail[email]; ok {
		return repository.ErrDuplicateEmail
	}
	if _, ok := s.byUsername[u.Username]; ok {
		return repository.ErrDuplicateUsername
	}

	u.ID = s.nextID
	s.nextID++
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}

	cp := *u
	s.byID[u.ID] = &cp
	s.byEmail[email] = u.ID
	s.byUsername[u.Username] = u.ID
	return nil
}

func (s *UserStore) GetByID(id int64) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *UserStore) GetByEmail(email string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byEmail[normEmail(email)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *s.byID[id]
	return &cp, nil
}

func (s *UserStore) GetByUsername(username string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byUsername[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *s.byID[id]
	return &cp, nil
}

func (s *UserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

var _ repository.UserRepository = (*UserStore)(nil)

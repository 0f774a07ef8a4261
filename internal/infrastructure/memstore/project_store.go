package memstore

import (
	"sync"
	"time"

	"github.com/artifyhq/artify-backend/internal/domain/entity"
	"github.com/artifyhq/artify-backend/internal/domain/repository"
)

// ProjectStore is a process-memory ProjectRepository keyed by project id.
// Returned records are copies; callers never alias store-owned memory.
type ProjectStore struct {
	mu     sync.RWMutex
	byID   map[int64]*entity.Project
	users  repository.UserRepository
	nextID int64
}

// NewProjectStore builds a store. users may be nil, in which case owner
// existence is not validated on create.
func NewProjectStore(users repository.UserRepository) *ProjectStore {
	return &ProjectStore{
		byID:   make(map[int64]*entity.Project),
		users:  users,
		nextID: 1,
	}
}

func (s *ProjectStore) Create(p *entity.Project) error {
	if s.users != nil {
		if _, err := s.users.GetByID(p.OwnerID); err != nil {
			return repository.ErrUnknownOwner
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextID
	s.nextID++
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	cp := *p
	s.byID[p.ID] = &cp
	return nil
}

func (s *ProjectStore) GetByID(id int64) (*entity.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

// ListByOwner returns every project owned by ownerID. Map iteration order is
// unspecified; callers must treat the result as a set.
func (s *ProjectStore) ListByOwner(ownerID int64) ([]*entity.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Project, 0)
	for _, p := range s.byID {
		if p.OwnerID == ownerID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

// Update applies only the fields set in upd and advances UpdatedAt when
// anything was supplied.
func (s *ProjectStore) Update(id int64, upd repository.ProjectUpdate) (*entity.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Data != nil {
		p.Data = *upd.Data
	}
	if upd.Name != nil || upd.Data != nil {
		p.UpdatedAt = time.Now()
	}
	cp := *p
	return &cp, nil
}

func (s *ProjectStore) Delete(id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return false, nil
	}
	delete(s.byID, id)
	return true, nil
}

func (s *ProjectStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

var _ repository.ProjectRepository = (*ProjectStore)(nil)

package repository

import "github.com/artifyhq/artify-backend/internal/domain/entity"

// ProjectUpdate carries the optional fields of an update. Nil means "leave
// unchanged".
type ProjectUpdate struct {
	Name *string
	Data *string
}

// ProjectRepository defines the interface for project storage. Ownership is
// not enforced here; callers are expected to check OwnerID themselves.
type ProjectRepository interface {
	Create(p *entity.Project) error
	GetByID(id int64) (*entity.Project, error)
	ListByOwner(ownerID int64) ([]*entity.Project, error)
	Update(id int64, upd ProjectUpdate) (*entity.Project, error)
	// Delete reports whether a record existed and was removed. Deleting a
	// missing id is not an error.
	Delete(id int64) (bool, error)
	Count() int
}

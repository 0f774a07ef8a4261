package repository

import "github.com/artifyhq/artify-backend/internal/domain/entity"

// UserRepository defines the interface for user storage. Implementations
// must keep the id, email and username indices consistent atomically.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Count() int
}

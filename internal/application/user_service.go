package application

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/artifyhq/artify-backend/internal/domain/entity"
	"github.com/artifyhq/artify-backend/internal/domain/repository"
	"github.com/artifyhq/artify-backend/pkg/helpers"
)

var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrEmailExists        = errors.New("email already exists")
	ErrUsernameExists     = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserService registers and authenticates accounts and issues session
// tokens for them.
type UserService struct {
	Repo   repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewUserService(repo repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, JWT: jwt, Logger: logger}
}

// AuthResult is returned by Register and Login: the user summary plus a
// freshly issued bearer token.
type AuthResult struct {
	User    entity.UserSummary
	Token   string
	Expires time.Time
}

// Register creates an account. The password is stored only as a bcrypt
// hash. Duplicate checks are delegated to the store so they stay atomic
// with the insert.
func (s *UserService) Register(username, email, password string) (*AuthResult, error) {
	if username == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Username: username, Email: email, Password: hash}
	if err := s.Repo.Create(u); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, ErrEmailExists
		case errors.Is(err, repository.ErrDuplicateUsername):
			return nil, ErrUsernameExists
		}
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "username": u.Username}).Info("user registered")
	}
	return s.issue(u)
}

// Login authenticates by email and password. Unknown email and wrong
// password produce the identical error so callers cannot tell which field
// was wrong.
func (s *UserService) Login(email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}
	u, err := s.Repo.GetByEmail(email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return s.issue(u)
}

func (s *UserService) issue(u *entity.User) (*AuthResult, error) {
	token, exp, err := s.JWT.Generate(u.ID, u.Username, u.Email)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return nil, err
	}
	return &AuthResult{User: u.Summary(), Token: token, Expires: exp}, nil
}

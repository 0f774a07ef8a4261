package memstore

import (
	"errors"
	"testing"

	"github.com/artifyhq/artify-backend/internal/domain/entity"
	"github.com/artifyhq/artify-backend/internal/domain/repository"
)

func newUser(username, email string) *entity.User {
	return &entity.User{Username: username, Email: email, Password: "hash"}
}

func TestUserStoreCreateAssignsMonotonicIDs(t *testing.T) {
	t.Parallel()

	s := NewUserStore()
	a := newUser("alice", "a@x.com")
	b := newUser("bob", "b@x.com")

	if err := s.Create(a); err != nil {
		t.Fatalf("create alice: %v", err)
	}
	if err := s.Create(b); err != nil {
		t.Fatalf("create bob: %v", err)
	}
	if a.ID != 1 || b.ID != 2 {
		t.Fatalf("expected ids 1,2 got %d,%d", a.ID, b.ID)
	}
	if a.CreatedAt.IsZero() {
		t.Fatal("CreatedAt not set")
	}
	if s.Count() != 2 {
		t.Fatalf("count = %d, want 2", s.Count())
	}
}

func TestUserStoreDuplicateEmail(t *testing.T) {
	t.Parallel()

	s := NewUserStore()
	if err := s.Create(newUser("alice", "a@x.com")); err != nil {
		t.Fatalf("create: %v", err)
	}
	// same email, different username
	err := s.Create(newUser("alice2", "a@x.com"))
	if !errors.Is(err, repository.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	// email matching is case-insensitive
	err = s.Create(newUser("alice3", "A@X.COM"))
	if !errors.Is(err, repository.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail for case variant, got %v", err)
	}
	if s.Count() != 1 {
		t.Fatalf("failed create mutated the store, count = %d", s.Count())
	}
}

func TestUserStoreDuplicateUsername(t *testing.T) {
	t.Parallel()

	s := NewUserStore()
	if err := s.Create(newUser("alice", "a@x.com")); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := s.Create(newUser("alice", "other@x.com"))
	if !errors.Is(err, repository.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestUserStoreLookups(t *testing.T) {
	t.Parallel()

	s := NewUserStore()
	u := newUser("alice", "a@x.com")
	if err := s.Create(u); err != nil {
		t.Fatalf("create: %v", err)
	}

	byID, err := s.GetByID(u.ID)
	if err != nil || byID.Username != "alice" {
		t.Fatalf("GetByID = %+v, %v", byID, err)
	}
	byEmail, err := s.GetByEmail("A@x.com")
	if err != nil || byEmail.ID != u.ID {
		t.Fatalf("GetByEmail = %+v, %v", byEmail, err)
	}
	byName, err := s.GetByUsername("alice")
	if err != nil || byName.ID != u.ID {
		t.Fatalf("GetByUsername = %+v, %v", byName, err)
	}

	if _, err := s.GetByID(999); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.GetByEmail("nobody@x.com"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserStoreReturnsCopies(t *testing.T) {
	t.Parallel()

	s := NewUserStore()
	u := newUser("alice", "a@x.com")
	if err := s.Create(u); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.GetByID(u.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	got.Username = "mallory"

	again, err := s.GetByID(u.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if again.Username != "alice" {
		t.Fatal("mutation of returned record leaked into the store")
	}
}

// Package memory provides array-backed implementations of the repository
// contracts. They exist for fast, deterministic unit tests: every use case
// is exercised against these before it ever touches MySQL. Each repository
// guards its slice with a mutex so parallel tests can share nothing and
// still run safely.
package memory

import (
	"context"
	"sync"

	"github.com/lucasmarqs/gym-checkin-api/internal/model"
	"github.com/lucasmarqs/gym-checkin-api/internal/repository"
)

// UserRepo is the in-memory repository.UserRepository.
type UserRepo struct {
	mu    sync.Mutex
	items []*model.User
}

func NewUserRepo() *UserRepo { return &UserRepo{} }

func (r *UserRepo) Create(_ context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	cp := *u
	r.items = append(r.items, &cp)
	return nil
}

func (r *UserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.Email == email {
			cp := *it
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.ID == id {
			cp := *it
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

// Len reports the number of stored users.
func (r *UserRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

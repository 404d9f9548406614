package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/accountsim/accountsim/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

// UserRepository is a map-backed user store. The store is owned by a single
// script run and recreated fresh each time; it is not safe for concurrent
// use.
type UserRepository struct {
	users map[string]model.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[string]model.User),
	}
}

func (r *UserRepository) GetByName(_ context.Context, name string) (model.User, error) {
	user, ok := r.users[name]
	if !ok {
		return model.User{}, model.ErrNotFound
	}

	return user, nil
}

func (r *UserRepository) Create(_ context.Context, user model.User) (model.User, error) {
	if _, ok := r.users[user.Name]; ok {
		return model.User{}, fmt.Errorf("failed to create user %s: %w", user.Name, model.ErrUserExists)
	}

	r.users[user.Name] = user

	return user, nil
}

func (r *UserRepository) SetVerified(_ context.Context, name string) (model.User, error) {
	user, ok := r.users[name]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	if user.Verified {
		return model.User{}, fmt.Errorf("failed to verify user %s: %w", name, model.ErrAlreadyVerified)
	}

	user.Verified = true
	user.UpdatedAt = time.Now()
	r.users[name] = user

	return user, nil
}

func (r *UserRepository) UpdatePassword(_ context.Context, name, oldPassword, newPassword string) (model.User, error) {
	user, ok := r.users[name]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	if !user.Verified {
		return model.User{}, fmt.Errorf("failed to update password for user %s: %w", name, model.ErrNotVerified)
	}
	if user.Password != oldPassword {
		return model.User{}, fmt.Errorf("failed to update password for user %s: %w", name, model.ErrWrongPassword)
	}

	user.Password = newPassword
	user.UpdatedAt = time.Now()
	r.users[name] = user

	return user, nil
}

func (r *UserRepository) Delete(_ context.Context, name string) error {
	user, ok := r.users[name]
	if !ok {
		return model.ErrNotFound
	}
	if !user.Verified {
		return fmt.Errorf("failed to delete user %s: %w", name, model.ErrNotVerified)
	}

	delete(r.users, name)

	return nil
}

// Len reports the number of stored users.
func (r *UserRepository) Len() int {
	return len(r.users)
}

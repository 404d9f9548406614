package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	apiErrors "github.com/accountsim/accountsim/internal/api/errors"
	"github.com/accountsim/accountsim/internal/logger"
	"github.com/accountsim/accountsim/internal/model"
)

// Account implements the account lifecycle decisions: register, verify,
// change password, remove. It owns no state; all mutation happens in the
// user store, and readiness signals go to the notification sink.
type Account struct {
	users         model.UserStore
	notifications model.NotificationSink
	logger        *logger.Logger
}

func NewAccount(
	users model.UserStore,
	notifications model.NotificationSink,
	logger *logger.Logger,
) *Account {
	return &Account{
		users:         users,
		notifications: notifications,
		logger:        logger,
	}
}

// Register creates a new unverified user and signals that the name is ready
// for verification. A taken name is rejected with a message naming the
// conflicting user.
func (a *Account) Register(ctx context.Context, name, password string) error {
	a.logger.Debug("Account service: registering user",
		"name", name)

	_, err := a.users.GetByName(ctx, name)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Account service: failed to get user by name",
			"name", name,
			"error", err.Error())
		return fmt.Errorf("failed to get user by name: %w", err)
	}

	if err == nil {
		a.logger.Info("Account service: user already exists",
			"name", name)
		return apiErrors.NewErrUserExists(name)
	}

	user := model.User{
		ID:        uuid.New(),
		Name:      name,
		Password:  password,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := a.users.Create(ctx, user); err != nil {
		a.logger.Error("Account service: failed to create user",
			"name", name,
			"error", err.Error())
		return apiErrors.NewErrRegistration(err)
	}

	a.notifications.Notify(ctx, name)

	a.logger.Info("Account service: user registered",
		"name", name,
		"user_id", user.ID)

	return nil
}

// Verify marks a registered user as verified. It fails for unknown names and
// for users that are already verified.
func (a *Account) Verify(ctx context.Context, name string) error {
	a.logger.Debug("Account service: verifying user",
		"name", name)

	_, err := a.users.SetVerified(ctx, name)
	switch {
	case err == nil:
	case errors.Is(err, model.ErrNotFound):
		return apiErrors.NewErrUserNotFound(name)
	case errors.Is(err, model.ErrAlreadyVerified):
		return apiErrors.NewErrAlreadyVerified(name)
	default:
		a.logger.Error("Account service: failed to verify user",
			"name", name,
			"error", err.Error())
		return apiErrors.NewErrInternalServerError(err)
	}

	a.logger.Info("Account service: user verified",
		"name", name)

	return nil
}

// ChangePassword replaces the stored password. The user must exist, be
// verified, and the supplied old password must match; the mismatch message
// is distinct from the not-found one.
func (a *Account) ChangePassword(ctx context.Context, name, oldPassword, newPassword string) error {
	a.logger.Debug("Account service: changing user password",
		"name", name)

	_, err := a.users.UpdatePassword(ctx, name, oldPassword, newPassword)
	switch {
	case err == nil:
	case errors.Is(err, model.ErrNotFound):
		return apiErrors.NewErrUserNotFound(name)
	case errors.Is(err, model.ErrNotVerified):
		return apiErrors.NewErrNotVerified(name)
	case errors.Is(err, model.ErrWrongPassword):
		return apiErrors.NewErrWrongPassword(name)
	default:
		a.logger.Error("Account service: failed to change password",
			"name", name,
			"error", err.Error())
		return apiErrors.NewErrInternalServerError(err)
	}

	a.logger.Info("Account service: password changed",
		"name", name)

	return nil
}

// Remove deletes a verified user. Unknown and unverified users are rejected.
func (a *Account) Remove(ctx context.Context, name string) error {
	a.logger.Debug("Account service: removing user",
		"name", name)

	err := a.users.Delete(ctx, name)
	switch {
	case err == nil:
	case errors.Is(err, model.ErrNotFound):
		return apiErrors.NewErrUserNotFound(name)
	case errors.Is(err, model.ErrNotVerified):
		return apiErrors.NewErrNotVerified(name)
	default:
		a.logger.Error("Account service: failed to remove user",
			"name", name,
			"error", err.Error())
		return apiErrors.NewErrInternalServerError(err)
	}

	a.logger.Info("Account service: user removed",
		"name", name)

	return nil
}

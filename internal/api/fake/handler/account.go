package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/accountsim/accountsim/internal/api/fake"
	"github.com/accountsim/accountsim/internal/logger"
)

// AccountService defines the account lifecycle operations behind the routes.
type AccountService interface {
	Register(ctx context.Context, name, password string) error
	Verify(ctx context.Context, name string) error
	ChangePassword(ctx context.Context, name, oldPassword, newPassword string) error
	Remove(ctx context.Context, name string) error
}

// RegisterRequest is the body of POST /users.
type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// VerifyRequest is the body of POST /users/verify.
type VerifyRequest struct {
	Name string `json:"name"`
}

// ChangePasswordRequest is the body of PUT /users/password.
type ChangePasswordRequest struct {
	Name        string `json:"name"`
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// RemoveRequest is the body of DELETE /users.
type RemoveRequest struct {
	Name string `json:"name"`
}

// ErrorResponse is the body of every failure response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Account handles the fake HTTP endpoints for the account lifecycle.
type Account struct {
	accountService AccountService
	logger         *logger.Logger
}

// NewAccount creates a new Account handler.
func NewAccount(accountService AccountService, logger *logger.Logger) *Account {
	return &Account{
		accountService: accountService,
		logger:         logger,
	}
}

// Register creates a new unverified user.
func (h *Account) Register(ctx context.Context, req fake.Request) fake.Response {
	var body RegisterRequest
	if err := json.Unmarshal(req.Body, &body); err != nil {
		return badRequest(err)
	}

	h.logger.Debug("Account handler: processing register request",
		"name", body.Name)

	if err := h.accountService.Register(ctx, body.Name, body.Password); err != nil {
		h.logger.Error("Account handler: register failed",
			"name", body.Name,
			"error", err.Error())
		return handleError(err)
	}

	h.logger.Info("Account handler: register completed",
		"name", body.Name)

	return fake.Response{Status: http.StatusCreated}
}

// Verify marks a registered user as verified.
func (h *Account) Verify(ctx context.Context, req fake.Request) fake.Response {
	var body VerifyRequest
	if err := json.Unmarshal(req.Body, &body); err != nil {
		return badRequest(err)
	}

	h.logger.Debug("Account handler: processing verify request",
		"name", body.Name)

	if err := h.accountService.Verify(ctx, body.Name); err != nil {
		h.logger.Error("Account handler: verify failed",
			"name", body.Name,
			"error", err.Error())
		return handleError(err)
	}

	h.logger.Info("Account handler: verify completed",
		"name", body.Name)

	return fake.Response{Status: http.StatusOK}
}

// ChangePassword replaces a verified user's password.
func (h *Account) ChangePassword(ctx context.Context, req fake.Request) fake.Response {
	var body ChangePasswordRequest
	if err := json.Unmarshal(req.Body, &body); err != nil {
		return badRequest(err)
	}

	h.logger.Debug("Account handler: processing change password request",
		"name", body.Name)

	if err := h.accountService.ChangePassword(ctx, body.Name, body.OldPassword, body.NewPassword); err != nil {
		h.logger.Error("Account handler: change password failed",
			"name", body.Name,
			"error", err.Error())
		return handleError(err)
	}

	h.logger.Info("Account handler: change password completed",
		"name", body.Name)

	return fake.Response{Status: http.StatusOK}
}

// Remove deletes a verified user.
func (h *Account) Remove(ctx context.Context, req fake.Request) fake.Response {
	var body RemoveRequest
	if err := json.Unmarshal(req.Body, &body); err != nil {
		return badRequest(err)
	}

	h.logger.Debug("Account handler: processing remove request",
		"name", body.Name)

	if err := h.accountService.Remove(ctx, body.Name); err != nil {
		h.logger.Error("Account handler: remove failed",
			"name", body.Name,
			"error", err.Error())
		return handleError(err)
	}

	h.logger.Info("Account handler: remove completed",
		"name", body.Name)

	return fake.Response{Status: http.StatusOK}
}

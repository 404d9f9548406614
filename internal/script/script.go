// Package script replays the fixed account-lifecycle request sequence
// through the fake client and checks each outcome in order.
package script

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/accountsim/accountsim/internal/api/fake"
	"github.com/accountsim/accountsim/internal/api/fake/handler"
	"github.com/accountsim/accountsim/internal/logger"
	"github.com/accountsim/accountsim/internal/model"
)

// Step is one scripted request with its expected outcome. Run returns nil
// when the outcome matches and the assertion message otherwise.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// Runner executes the script strictly in order and stops at the first step
// whose outcome does not match. No retries.
type Runner struct {
	client        *fake.Client
	notifications model.NotificationLog
	logger        *logger.Logger
}

func NewRunner(client *fake.Client, notifications model.NotificationLog, logger *logger.Logger) *Runner {
	return &Runner{
		client:        client,
		notifications: notifications,
		logger:        logger,
	}
}

// Run executes every step in order and returns the first failure.
func (r *Runner) Run(ctx context.Context) error {
	for _, step := range r.Steps() {
		r.logger.Debug("Script: running step",
			"step", step.Name)

		if err := step.Run(ctx); err != nil {
			r.logger.Error("Script: step failed",
				"step", step.Name,
				"error", err.Error())
			return err
		}

		r.logger.Info("Script: step passed",
			"step", step.Name)
	}

	return nil
}

// Steps returns the fixed sequence. The ordering is part of the contract:
// later steps depend on the state left behind by earlier ones.
func (r *Runner) Steps() []Step {
	return []Step{
		{Name: "register user1", Run: r.register("user1", "pass1")},
		{Name: "user1 ready for verification", Run: r.expectReady("user1", true)},
		{Name: "register user2", Run: r.register("user2", "pass2")},
		{Name: "user2 ready for verification", Run: r.expectReady("user2", true)},
		{Name: "re-register user1 rejected", Run: r.registerRejected("user1", "pass1")},
		{Name: "verify user1", Run: r.verify("user1")},
		{Name: "verify unknown user3 rejected", Run: r.verifyRejected("user3")},
		{Name: "user3 not ready for verification", Run: r.expectReady("user3", false)},
		{Name: "re-verify user1 rejected", Run: r.verifyRejected("user1")},
		{Name: "change user1 password with wrong old password rejected", Run: r.changePasswordRejected("user1", "bogus", "pass9")},
		{Name: "change user1 password", Run: r.changePassword("user1", "pass1", "pass9")},
		{Name: "change unverified user2 password rejected", Run: r.changePasswordRejected("user2", "pass2", "pass9")},
		{Name: "remove unverified user2 rejected", Run: r.removeRejected("user2")},
		{Name: "verify user2", Run: r.verify("user2")},
		{Name: "remove user2", Run: r.remove("user2")},
		{Name: "re-remove user2 rejected", Run: r.removeRejected("user2")},
	}
}

func (r *Runner) register(name, password string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		resp, err := r.do(ctx, http.MethodPost, "/users", handler.RegisterRequest{Name: name, Password: password})
		if err != nil {
			return err
		}
		if !resp.OK() {
			return failure(resp)
		}

		return nil
	}
}

func (r *Runner) registerRejected(name, password string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		resp, err := r.do(ctx, http.MethodPost, "/users", handler.RegisterRequest{Name: name, Password: password})
		if err != nil {
			return err
		}
		if resp.OK() {
			return fmt.Errorf("registration of %s should have been rejected, got status %d", name, resp.Status)
		}

		return nil
	}
}

func (r *Runner) verify(name string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		resp, err := r.do(ctx, http.MethodPost, "/users/verify", handler.VerifyRequest{Name: name})
		if err != nil {
			return err
		}
		if !resp.OK() {
			return failure(resp)
		}

		return nil
	}
}

func (r *Runner) verifyRejected(name string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		resp, err := r.do(ctx, http.MethodPost, "/users/verify", handler.VerifyRequest{Name: name})
		if err != nil {
			return err
		}
		if resp.OK() {
			return fmt.Errorf("verification of %s should have been rejected, got status %d", name, resp.Status)
		}

		return nil
	}
}

func (r *Runner) changePassword(name, oldPassword, newPassword string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		resp, err := r.do(ctx, http.MethodPut, "/users/password", handler.ChangePasswordRequest{
			Name:        name,
			OldPassword: oldPassword,
			NewPassword: newPassword,
		})
		if err != nil {
			return err
		}
		if !resp.OK() {
			return failure(resp)
		}

		return nil
	}
}

func (r *Runner) changePasswordRejected(name, oldPassword, newPassword string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		resp, err := r.do(ctx, http.MethodPut, "/users/password", handler.ChangePasswordRequest{
			Name:        name,
			OldPassword: oldPassword,
			NewPassword: newPassword,
		})
		if err != nil {
			return err
		}
		if resp.OK() {
			return fmt.Errorf("password change for %s should have been rejected, got status %d", name, resp.Status)
		}

		return nil
	}
}

func (r *Runner) remove(name string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		resp, err := r.do(ctx, http.MethodDelete, "/users", handler.RemoveRequest{Name: name})
		if err != nil {
			return err
		}
		if !resp.OK() {
			return failure(resp)
		}

		return nil
	}
}

func (r *Runner) removeRejected(name string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		resp, err := r.do(ctx, http.MethodDelete, "/users", handler.RemoveRequest{Name: name})
		if err != nil {
			return err
		}
		if resp.OK() {
			return fmt.Errorf("removal of %s should have been rejected, got status %d", name, resp.Status)
		}

		return nil
	}
}

func (r *Runner) expectReady(name string, want bool) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		got := r.notifications.Ready(ctx, name)
		if got == want {
			return nil
		}
		if want {
			return fmt.Errorf("user %s should be ready for verification", name)
		}

		return fmt.Errorf("user %s should not be ready for verification", name)
	}
}

func (r *Runner) do(ctx context.Context, method, path string, body any) (fake.Response, error) {
	resp, err := r.client.Do(ctx, method, path, body)
	if err != nil {
		return fake.Response{}, fmt.Errorf("request %s %s failed: %w", method, r.client.URL(path), err)
	}

	return resp, nil
}

// failure turns a rejection response into the step's assertion error, using
// the response message when the body carries one.
func failure(resp fake.Response) error {
	if msg := resp.ErrorMessage(); msg != "" {
		return errors.New(msg)
	}

	return fmt.Errorf("request failed with status %d", resp.Status)
}

package script

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accountsim/accountsim/internal/api/fake/router"
	"github.com/accountsim/accountsim/internal/model"
	"github.com/accountsim/accountsim/internal/repository/memory"
	"github.com/accountsim/accountsim/internal/service"
	"github.com/accountsim/accountsim/internal/testutil"
)

func newRunner(t *testing.T) (*Runner, *memory.UserRepository) {
	t.Helper()

	users := memory.NewUserRepository()
	notifications := memory.NewNotificationLog()
	accountService := service.NewAccount(users, notifications, testutil.MakeNoopLogger())

	r := router.New(accountService, testutil.MakeNoopLogger(), "http://localhost:8080", false)

	return NewRunner(r.Register(), notifications, testutil.MakeNoopLogger()), users
}

func TestRunner_Run_FullScriptPasses(t *testing.T) {
	t.Parallel()

	runner, users := newRunner(t)

	require.NoError(t, runner.Run(context.Background()))

	// user2 was removed at the end of the script; user1 survives with its
	// changed password.
	assert.Equal(t, 1, users.Len())
	user1, err := users.GetByName(context.Background(), "user1")
	require.NoError(t, err)
	assert.True(t, user1.Verified)
	assert.Equal(t, "pass9", user1.Password)
}

func TestRunner_Run_FailFastOnFirstMismatch(t *testing.T) {
	t.Parallel()

	runner, users := newRunner(t)

	// Pre-seeding user1 flips the first step's expected outcome; the run
	// must stop there and surface that message, leaving user2 unregistered.
	_, err := users.Create(context.Background(), model.User{
		ID:        uuid.New(),
		Name:      "user1",
		Password:  "pass1",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	})
	require.NoError(t, err)

	err = runner.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, "user user1 already exists", err.Error())

	_, err = users.GetByName(context.Background(), "user2")
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestRunner_Run_UnexpectedSuccessFails(t *testing.T) {
	t.Parallel()

	runner, users := newRunner(t)

	steps := runner.Steps()
	ctx := context.Background()

	// Replay the script up to the re-register step, then clear user1 from
	// the store so the rejection expectation no longer holds.
	for _, step := range steps[:4] {
		require.NoError(t, step.Run(ctx))
	}

	_, err := users.SetVerified(ctx, "user1")
	require.NoError(t, err)
	require.NoError(t, users.Delete(ctx, "user1"))

	err = steps[4].Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "should have been rejected")
}

func TestRunner_Steps_Order(t *testing.T) {
	t.Parallel()

	runner, _ := newRunner(t)

	steps := runner.Steps()
	require.Len(t, steps, 16)

	// The core ordering is the contract: registration and readiness checks
	// come first, the rejected duplicates and unknown-user probes follow.
	assert.Equal(t, "register user1", steps[0].Name)
	assert.Equal(t, "user1 ready for verification", steps[1].Name)
	assert.Equal(t, "re-register user1 rejected", steps[4].Name)
	assert.Equal(t, "verify user1", steps[5].Name)
	assert.Equal(t, "user3 not ready for verification", steps[7].Name)
	assert.Equal(t, "re-remove user2 rejected", steps[15].Name)
}

func TestRunner_ReadinessIsConsumedOnce(t *testing.T) {
	t.Parallel()

	users := memory.NewUserRepository()
	notifications := memory.NewNotificationLog()
	accountService := service.NewAccount(users, notifications, testutil.MakeNoopLogger())
	r := router.New(accountService, testutil.MakeNoopLogger(), "http://localhost:8080", false)
	runner := NewRunner(r.Register(), notifications, testutil.MakeNoopLogger())

	ctx := context.Background()
	steps := runner.Steps()

	require.NoError(t, steps[0].Run(ctx)) // register user1
	require.NoError(t, steps[1].Run(ctx)) // consumes readiness
	err := steps[1].Run(ctx)              // second check must fail
	require.Error(t, err)
	assert.Equal(t, "user user1 should be ready for verification", err.Error())
}

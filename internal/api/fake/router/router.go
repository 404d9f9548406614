package router

import (
	"net/http"

	"github.com/accountsim/accountsim/internal/api/fake"
	"github.com/accountsim/accountsim/internal/api/fake/handler"
	"github.com/accountsim/accountsim/internal/api/fake/middleware"
	"github.com/accountsim/accountsim/internal/logger"
	"github.com/accountsim/accountsim/internal/service"
)

// Router wires the account routes and middleware onto a fake client.
type Router struct {
	accountService *service.Account
	logger         *logger.Logger
	baseURL        string
	traceRequests  bool
}

// New creates new Router instance.
//
// Parameters:
//   - accountService: The account lifecycle service
//   - logger: The logger for request logging
//   - baseURL: The base URL reported in logs
//   - traceRequests: Whether to attach the request logging middleware
//
// Returns a pointer to the newly created Router instance.
func New(
	accountService *service.Account,
	logger *logger.Logger,
	baseURL string,
	traceRequests bool,
) *Router {
	return &Router{
		accountService: accountService,
		logger:         logger,
		baseURL:        baseURL,
		traceRequests:  traceRequests,
	}
}

// Register builds the fake client with all routes and middleware attached.
func (r *Router) Register() *fake.Client {
	c := fake.NewClient(r.baseURL)

	if r.traceRequests {
		logging := middleware.NewLogging(r.logger)
		c.Use(logging.Handle)
	}

	r.registerAccountRoutes(c)

	return c
}

func (r *Router) registerAccountRoutes(c *fake.Client) {
	accountHandler := handler.NewAccount(r.accountService, r.logger)
	c.Handle(http.MethodPost, "/users", accountHandler.Register)
	c.Handle(http.MethodPost, "/users/verify", accountHandler.Verify)
	c.Handle(http.MethodPut, "/users/password", accountHandler.ChangePassword)
	c.Handle(http.MethodDelete, "/users", accountHandler.Remove)
}

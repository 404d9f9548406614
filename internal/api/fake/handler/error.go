package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	apiErrors "github.com/accountsim/accountsim/internal/api/errors"
	"github.com/accountsim/accountsim/internal/api/fake"
	"github.com/accountsim/accountsim/internal/model"
)

func handleError(err error) fake.Response {
	var apiErr *apiErrors.APIError
	if errors.As(err, &apiErr) {
		return errorResponse(apiErr.Status, apiErr.Message)
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return errorResponse(http.StatusNotFound, "user not found")
	default:
		return errorResponse(http.StatusInternalServerError, "internal server error")
	}
}

func badRequest(err error) fake.Response {
	return errorResponse(http.StatusBadRequest, fmt.Sprintf("malformed request body: %v", err))
}

func errorResponse(status int, message string) fake.Response {
	body, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		return fake.Response{Status: http.StatusInternalServerError}
	}

	return fake.Response{Status: status, Body: body}
}

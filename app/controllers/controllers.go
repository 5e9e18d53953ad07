// Package controllers holds the HTTP handlers. Each controller owns one
// resource and delegates all domain logic to app/services.
package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopkit/admin/app/gateway"
	"github.com/shopkit/admin/app/services"
	"github.com/shopkit/admin/pkg/logger"
	"github.com/shopkit/admin/pkg/response"
)

// decode reads a JSON request body into v. A malformed body is reported
// as a 400 by the caller.
func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// respondError maps service errors onto the JSON envelope. Unknown
// errors become a logged 500 with no detail leaked to the client.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var verr services.ValidationError
	switch {
	case errors.Is(err, gateway.ErrNotFound):
		response.NotFound(w)
	case errors.As(err, &verr):
		response.ValidationError(w, verr)
	case errors.Is(err, services.ErrInvalidTransition):
		response.Conflict(w, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		response.Error(w, http.StatusUnauthorized, "Invalid credentials")
	default:
		logger.WithCtx(r.Context()).Error("request failed",
			"method", r.Method, "path", r.URL.Path, "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

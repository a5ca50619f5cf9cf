package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"clubops/internal/delivery/http/helpers"
	"clubops/internal/delivery/http/middleware"
	"clubops/internal/domain"
)

func principalFromRequest(r *http.Request) (domain.Principal, bool) {
	return middleware.PrincipalFromContext(r.Context())
}

// writeServiceError maps domain sentinel errors onto the API envelope.
// Anything unrecognized is a transport/persistence failure: logged and
// reported as retryable.
func writeServiceError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "not found")
	case errors.Is(err, domain.ErrForbidden):
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "forbidden")
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrMissingColumns):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrScheduleConflict):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
	case errors.Is(err, domain.ErrSheetUnavailable):
		// Keep the fetcher's actionable message (usually: publish the sheet).
		helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeBadGateway, err.Error())
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "action did not complete, please retry")
	}
}

// requirePrincipal fetches the authenticated principal or writes a 401.
func requirePrincipal(w http.ResponseWriter, r *http.Request) (domain.Principal, bool) {
	p, ok := principalFromRequest(r)
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
	}
	return p, ok
}

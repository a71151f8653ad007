package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/marketpulse/marketpulse-api/internal/domain"
	"github.com/marketpulse/marketpulse-api/internal/usecases/connecting"
	"github.com/marketpulse/marketpulse-api/pkg/apiErrors"
	"github.com/marketpulse/marketpulse-api/pkg/middleware"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type CompleteConnectionRequest struct {
	// Code is the OAuth authorization code, or "storeID:secretKey" for
	// key-based platforms.
	Code string `json:"code"`
}

func ListConnections(service connecting.Connector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middleware.UserFromContext(r.Context())
		if claims == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authenticated", nil)
			return
		}

		connections, err := service.ListConnections(claims.UserID)
		if err != nil {
			logrus.WithError(err).Error("error listing connections")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error listing connections", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"connections": connections})
	}
}

// BeginConnection starts the connect flow for a platform. The response
// carries either a consent URL to redirect the user to, or the connection
// itself when no consent step exists (demo mode).
func BeginConnection(service connecting.Connector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middleware.UserFromContext(r.Context())
		if claims == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authenticated", nil)
			return
		}

		platform, ok := platformParam(w, r)
		if !ok {
			return
		}

		state := r.URL.Query().Get("state")

		start, err := service.BeginConnection(r.Context(), claims.UserID, platform, state)
		if err != nil {
			handleConnectionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, start)
	}
}

func CompleteConnection(service connecting.Connector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middleware.UserFromContext(r.Context())
		if claims == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authenticated", nil)
			return
		}

		platform, ok := platformParam(w, r)
		if !ok {
			return
		}

		var req CompleteConnectionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		connection, err := service.CompleteConnection(r.Context(), claims.UserID, platform, req.Code)
		if err != nil {
			handleConnectionError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, connection)
	}
}

func Disconnect(service connecting.Connector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middleware.UserFromContext(r.Context())
		if claims == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authenticated", nil)
			return
		}

		platform, ok := platformParam(w, r)
		if !ok {
			return
		}

		if err := service.Disconnect(r.Context(), claims.UserID, platform); err != nil {
			if errors.Is(err, domain.ErrNotConnected) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Platform is not connected", nil)
				return
			}
			logrus.WithError(err).Error("error disconnecting platform")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error disconnecting platform", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func platformParam(w http.ResponseWriter, r *http.Request) (domain.Platform, bool) {
	params := httprouter.ParamsFromContext(r.Context())

	platform, err := domain.ParsePlatform(params.ByName("platform"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrUnknownPlatform, err.Error(), nil)
		return "", false
	}

	return platform, true
}

func handleConnectionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrAuthExpired):
		apiErrors.WriteError(w, apiErrors.ErrPlatformAuth, "Platform rejected the credentials", nil)
	default:
		logrus.WithError(err).Error("connection flow failed")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Error talking to the platform", nil)
	}
}

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/smart-plant-guard/internal/logger"
	"github.com/MKhiriev/smart-plant-guard/internal/mfa"
	"github.com/MKhiriev/smart-plant-guard/internal/rbac"
	"github.com/MKhiriev/smart-plant-guard/internal/service"
	"github.com/MKhiriev/smart-plant-guard/internal/store"
	"github.com/MKhiriev/smart-plant-guard/internal/utils"
	"github.com/MKhiriev/smart-plant-guard/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the resulting
// [models.Session] in the request context. The role inside the session comes
// from the signed token only; no request header can change it.
//
// The middleware rejects requests with HTTP 401 Unauthorized when the header
// is absent or malformed, or when the token is expired or invalid.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			utils.WriteError(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		session, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, service.ErrTokenIsExpiredOrInvalid.Error(), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSession(ctx, session)))
	})
}

// accountStatus reads the users row on every request. Deactivated accounts
// are rejected, and so is a token whose role no longer matches the row: a
// role change forces a fresh login. It must run after auth.
func (h *Handler) accountStatus(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)
		session, _ := utils.GetSessionFromContext(ctx)

		status, err := h.services.AuthService.AccountStatus(ctx, session.UserID)
		if errors.Is(err, store.ErrNoUserWasFound) {
			utils.WriteError(w, service.ErrTokenIsExpiredOrInvalid.Error(), http.StatusUnauthorized)
			return
		}
		if err != nil {
			writeError(w, r, err)
			return
		}

		if status.Role != session.Role {
			log.Info().Int64("user_id", session.UserID).
				Str("token_role", session.Role.String()).
				Str("account_role", status.Role.String()).
				Msg("token role is stale")
			utils.WriteError(w, service.ErrTokenIsExpiredOrInvalid.Error(), http.StatusUnauthorized)
			return
		}

		if err = rbac.RequireActiveAccount(session.Subject(status.Active)); err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithAccountActive(ctx, status.Active)))
	})
}

// requireMFA allows privileged sessions that have passed the code check.
func (h *Handler) requireMFA(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, _ := utils.GetSessionFromContext(r.Context())

		if err := mfa.Guard(session); err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// require evaluates gate against the caller. Requests without a session are
// evaluated as an active public subject.
func (h *Handler) require(gate rbac.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := gate(subjectFromRequest(r)); err != nil {
				writeError(w, r, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func subjectFromRequest(r *http.Request) rbac.Subject {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		return models.Session{Role: rbac.RolePublic}.Subject(true)
	}
	return session.Subject(utils.GetAccountActiveFromContext(r.Context()))
}

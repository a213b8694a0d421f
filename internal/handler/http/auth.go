package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/smart-plant-guard/internal/logger"
	"github.com/MKhiriev/smart-plant-guard/internal/utils"
	"github.com/MKhiriev/smart-plant-guard/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	profile, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", profile.ID).Msg("user registered")
	utils.WriteJSON(w, profile, http.StatusCreated)
}

// login checks the password. Privileged accounts receive a token that only
// opens the MFA endpoints until the mailed code is verified.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	session, result, err := h.services.AuthService.StartLogin(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if !h.issueToken(w, r, session, &result) {
		return
	}

	log.Debug().Int64("id", session.UserID).Bool("require_mfa", result.RequireMFA).Msg("user passed password check")
	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) verifyMFA(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.VerifyCodeRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	session, _ := utils.GetSessionFromContext(ctx)
	verified, err := h.services.AuthService.VerifyLogin(ctx, session, req.Code)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result := models.LoginResult{Role: verified.Role.String()}
	if !h.issueToken(w, r, verified, &result) {
		return
	}

	logger.FromRequest(r).Info().Int64("id", verified.UserID).Msg("second factor verified")
	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) resendMFA(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session, _ := utils.GetSessionFromContext(ctx)

	sentTo, err := h.services.AuthService.ResendCode(ctx, session)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CodeSentResponse{SentTo: sentTo}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session, _ := utils.GetSessionFromContext(ctx)

	profile, err := h.services.AuthService.Profile(ctx, session.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MeResponse{User: profile, MFAVerified: session.MFAVerified}, http.StatusOK)
}

// logout has no server state to drop: session tokens are not stored. The
// client discards its token.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// issueToken signs session into result.Token and the Authorization header.
// It reports false after writing an error response.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, session models.Session, result *models.LoginResult) bool {
	token, err := h.services.AuthService.CreateToken(r.Context(), session)
	if err != nil {
		writeError(w, r, err)
		return false
	}

	result.Token = token.String()
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", result.Token))
	return true
}

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/smart-plant-guard/internal/config"
	"github.com/MKhiriev/smart-plant-guard/internal/logger"
	"github.com/MKhiriev/smart-plant-guard/internal/utils"
	"github.com/MKhiriev/smart-plant-guard/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// It normalises the base URL from cfg.ServerURL; a bare host:port gets the
// http scheme. A token from cfg is preloaded.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(cfg config.CLIAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(cfg.Token)
	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.UserProfile, error) {
	var profile models.UserProfile
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&profile).
		Post("/api/auth/register")
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("login request: %w", err)
	}
	return h.acceptToken(resp)
}

func (h *httpServerAdapter) VerifyCode(ctx context.Context, code string) (models.LoginResult, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(models.VerifyCodeRequest{Code: code}).
		Post("/api/auth/mfa/verify")
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("verify code request: %w", err)
	}
	return h.acceptToken(resp)
}

func (h *httpServerAdapter) ResendCode(ctx context.Context) (string, error) {
	var sent models.CodeSentResponse
	if err := h.getOrPost(ctx, resty.MethodPost, "/api/auth/mfa/resend", nil, &sent); err != nil {
		return "", err
	}
	return sent.SentTo, nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.MeResponse, error) {
	var me models.MeResponse
	err := h.getOrPost(ctx, resty.MethodGet, "/api/auth/me", nil, &me)
	return me, err
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var v models.VersionResponse
	err := h.getOrPost(ctx, resty.MethodGet, "/api/version", nil, &v)
	return v, err
}

func (h *httpServerAdapter) ListSpecies(ctx context.Context, public bool) ([]models.SpeciesView, error) {
	var list itemList[models.SpeciesView]
	err := h.getOrPost(ctx, resty.MethodGet, scopedPath(public, "/api/public/species", "/api/species"), nil, &list)
	return list.Items, err
}

func (h *httpServerAdapter) ListObservations(ctx context.Context, public bool) ([]models.ObservationView, error) {
	var list itemList[models.ObservationView]
	err := h.getOrPost(ctx, resty.MethodGet, scopedPath(public, "/api/public/observations", "/api/plant-observations"), nil, &list)
	return list.Items, err
}

func (h *httpServerAdapter) ListUsers(ctx context.Context, query models.UserListQuery) (models.UserPage, error) {
	req := h.authedRequest(ctx)
	if query.Page > 0 {
		req.SetQueryParam("page", strconv.Itoa(query.Page))
	}
	if query.Size > 0 {
		req.SetQueryParam("size", strconv.Itoa(query.Size))
	}
	if query.Email != "" {
		req.SetQueryParam("email", query.Email)
	}
	if query.Role != "" {
		req.SetQueryParam("role", query.Role)
	}
	if query.Active != nil {
		req.SetQueryParam("active", strconv.FormatBool(*query.Active))
	}

	var page models.UserPage
	resp, err := req.SetResult(&page).Get("/api/admin/users")
	if err != nil {
		return models.UserPage{}, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserPage{}, err
	}
	return page, nil
}

func (h *httpServerAdapter) SetUserActive(ctx context.Context, userID int64, active bool) (models.UserProfile, error) {
	var profile models.UserProfile
	err := h.getOrPost(ctx, resty.MethodPatch, fmt.Sprintf("/api/admin/users/%d/active", userID),
		models.SetActiveRequest{Active: &active}, &profile)
	return profile, err
}

func (h *httpServerAdapter) SetUserRole(ctx context.Context, userID int64, role string) (models.UserProfile, error) {
	var profile models.UserProfile
	err := h.getOrPost(ctx, resty.MethodPatch, fmt.Sprintf("/api/admin/users/%d/role", userID),
		models.SetRoleRequest{Role: role}, &profile)
	return profile, err
}

type itemList[T any] struct {
	Items []T `json:"items"`
}

func scopedPath(public bool, publicPath, fullPath string) string {
	if public {
		return publicPath
	}
	return fullPath
}

// getOrPost sends an authenticated request and decodes a 2xx body into result.
func (h *httpServerAdapter) getOrPost(ctx context.Context, method, path string, body, result any) error {
	req := h.authedRequest(ctx).SetResult(result)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}
	return mapHTTPError(resp)
}

// acceptToken decodes a LoginResult and stores its token. The body token is
// preferred; the Authorization header is the fallback.
func (h *httpServerAdapter) acceptToken(resp *resty.Response) (models.LoginResult, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.LoginResult{}, err
	}

	var result models.LoginResult
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return models.LoginResult{}, fmt.Errorf("decode login result: %w", err)
	}

	if result.Token == "" {
		token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return models.LoginResult{}, ErrMissingToken
		}
		result.Token = token
	}

	h.SetToken(result.Token)
	h.logger.Debug().Str("role", result.Role).Bool("require_mfa", result.RequireMFA).Msg("token stored")
	return result, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the API client used by plantctl.
//
// [ServerAdapter] hides the REST surface behind typed calls. Error responses
// are mapped from HTTP status codes by mapHTTPError so that callers can use
// [errors.Is] (e.g. [ErrUnauthorized] for 401, [ErrForbidden] for 403). The
// server's {"error": ...} message is kept in the wrapped error.
package adapter

import (
	"context"

	"github.com/MKhiriev/smart-plant-guard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the plant-guard API.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account. It does not log in.
	Register(ctx context.Context, req models.RegisterRequest) (models.UserProfile, error)

	// Login checks the password and stores the returned token. When the
	// result has RequireMFA set, the token only opens the MFA endpoints until
	// VerifyCode succeeds.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)

	// VerifyCode submits the mailed code and stores the upgraded token.
	VerifyCode(ctx context.Context, code string) (models.LoginResult, error)

	// ResendCode asks for a new code and returns the masked destination.
	ResendCode(ctx context.Context) (string, error)

	// Me returns the caller's profile.
	Me(ctx context.Context) (models.MeResponse, error)

	// Version returns the server build version.
	Version(ctx context.Context) (models.VersionResponse, error)

	// ListSpecies lists species from the full (authenticated) or the public
	// view.
	ListSpecies(ctx context.Context, public bool) ([]models.SpeciesView, error)

	// ListObservations lists observations from the full or the public view.
	ListObservations(ctx context.Context, public bool) ([]models.ObservationView, error)

	// ListUsers pages through accounts. Admin only.
	ListUsers(ctx context.Context, query models.UserListQuery) (models.UserPage, error)

	// SetUserActive activates or deactivates an account. Admin only.
	SetUserActive(ctx context.Context, userID int64, active bool) (models.UserProfile, error)

	// SetUserRole assigns a role. Admin only.
	SetUserRole(ctx context.Context, userID int64, role string) (models.UserProfile, error)
}

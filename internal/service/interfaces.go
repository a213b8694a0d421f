// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/smart-plant-guard/internal/rbac"
	"github.com/MKhiriev/smart-plant-guard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService covers registration, the two-step login and session tokens.
type AuthService interface {
	// Register creates an account. Privileged roles requested at
	// registration are created inactive until an admin activates them.
	Register(ctx context.Context, req models.RegisterRequest) (models.UserProfile, error)

	// StartLogin checks the password and, for privileged roles, mails a
	// verification code. The returned session is never MFA-verified.
	StartLogin(ctx context.Context, req models.LoginRequest) (models.Session, models.LoginResult, error)

	// ResendCode issues a new code for the session's principal and returns
	// the masked address it was sent to.
	ResendCode(ctx context.Context, session models.Session) (string, error)

	// VerifyLogin consumes the pending code and returns the session marked
	// as MFA-verified.
	VerifyLogin(ctx context.Context, session models.Session, code string) (models.Session, error)

	Profile(ctx context.Context, userID int64) (models.UserProfile, error)

	// AccountStatus reads is_active and the normalized role of the users row.
	AccountStatus(ctx context.Context, userID int64) (models.AccountStatus, error)

	CreateToken(ctx context.Context, session models.Session) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Session, error)
}

// AdminService manages accounts on behalf of an admin.
type AdminService interface {
	ListRoles(ctx context.Context) []models.RoleView
	ListUsers(ctx context.Context, query models.UserListQuery) (models.UserPage, error)
	GetUser(ctx context.Context, id int64) (models.UserProfile, error)
	SetActive(ctx context.Context, id int64, active bool) (models.UserProfile, error)

	// SetRole accepts only known role names; anything else fails with
	// [rbac.ErrUnknownRole].
	SetRole(ctx context.Context, id int64, role string) (models.UserProfile, error)
}

// SpeciesService reads and writes the species catalogue. Full views decrypt
// the protected payload; public views only show non-endangered species.
type SpeciesService interface {
	Create(ctx context.Context, req models.CreateSpeciesRequest) (models.SpeciesView, error)
	GetFull(ctx context.Context, id int64) (models.SpeciesView, error)
	ListFull(ctx context.Context) ([]models.SpeciesView, error)
	GetPublic(ctx context.Context, id int64) (models.SpeciesView, error)
	ListPublic(ctx context.Context) ([]models.SpeciesView, error)
}

// ObservationService records field observations. Coordinates and notes are
// sealed on write and shown only in full views.
type ObservationService interface {
	Record(ctx context.Context, observerID int64, req models.RecordObservationRequest) (models.ObservationView, error)
	GetFull(ctx context.Context, id int64) (models.ObservationView, error)
	ListFull(ctx context.Context) ([]models.ObservationView, error)
	GetPublic(ctx context.Context, id int64) (models.ObservationView, error)
	ListPublic(ctx context.Context) ([]models.ObservationView, error)
}

// SensorService reads field sensor devices with their readings. Every
// field may come from the sealed payload or the legacy columns.
type SensorService interface {
	ListDevices(ctx context.Context) ([]models.SensorDeviceView, error)
	GetDevice(ctx context.Context, id int64) (models.SensorDeviceView, error)
}

// AIResultService reads species identification results.
type AIResultService interface {
	List(ctx context.Context) ([]models.AIResultView, error)
	Get(ctx context.Context, id int64) (models.AIResultView, error)
	ListByObservation(ctx context.Context, observationID int64) ([]models.AIResultView, error)
}

// AppInfoService reports build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}

// Challenger issues and checks second-factor codes. *mfa.Manager
// satisfies it.
type Challenger interface {
	Start(ctx context.Context, principalID int64, role rbac.Role, address string) error
	Verify(ctx context.Context, principalID int64, role rbac.Role, code string) error
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/smart-plant-guard/internal/crypto"
	"github.com/MKhiriev/smart-plant-guard/internal/logger"
	"github.com/MKhiriev/smart-plant-guard/internal/rbac"
	"github.com/MKhiriev/smart-plant-guard/internal/store"
	"github.com/MKhiriev/smart-plant-guard/models"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type adminService struct {
	userRepository store.UserRepository
	cipher         crypto.FieldCipher

	logger *logger.Logger
}

func NewAdminService(userRepository store.UserRepository, cipher crypto.FieldCipher, logger *logger.Logger) AdminService {
	return &adminService{
		userRepository: userRepository,
		cipher:         cipher,
		logger:         logger,
	}
}

func (s *adminService) ListRoles(ctx context.Context) []models.RoleView {
	roles := rbac.Roles()
	views := make([]models.RoleView, 0, len(roles))
	for _, r := range roles {
		views = append(views, models.NewRoleView(r))
	}
	return views
}

// ListUsers returns one page, newest accounts first. Page starts at 1 and
// size is clamped to [1, maxPageSize]. An email in the query is matched
// exactly through the lookup index; the role and status filters apply to
// that match too. An unknown role name fails with [rbac.ErrUnknownRole].
func (s *adminService) ListUsers(ctx context.Context, query models.UserListQuery) (models.UserPage, error) {
	log := logger.FromContext(ctx).With().Str("func", "adminService.ListUsers").Logger()

	filter := models.UserFilter{Active: query.Active}
	if strings.TrimSpace(query.Role) != "" {
		role, err := rbac.ParseRole(query.Role)
		if err != nil {
			return models.UserPage{}, err
		}
		filter.Role = role
	}

	page, size := normalizePage(query.Page, query.Size)
	result := models.UserPage{Items: []models.UserProfile{}, Page: page, Size: size}

	if query.Email != "" {
		index, err := s.cipher.Index(query.Email)
		if err != nil {
			return models.UserPage{}, err
		}
		user, err := s.userRepository.GetUserByEmailIndex(ctx, index)
		if errors.Is(err, store.ErrNoUserWasFound) {
			return result, nil
		}
		if err != nil {
			log.Err(err).Msg("user search by email index failed")
			return models.UserPage{}, fmt.Errorf("user search by email failed: %w", err)
		}
		if !filter.Matches(user) {
			return result, nil
		}
		result.Total = 1
		if page == 1 {
			result.Items = append(result.Items, profileOf(user, s.cipher))
		}
		return result, nil
	}

	users, err := s.userRepository.ListUsers(ctx, filter, (page-1)*size, size)
	if err != nil {
		log.Err(err).Msg("listing users failed")
		return models.UserPage{}, fmt.Errorf("listing users failed: %w", err)
	}
	total, err := s.userRepository.CountUsers(ctx, filter)
	if err != nil {
		log.Err(err).Msg("counting users failed")
		return models.UserPage{}, fmt.Errorf("counting users failed: %w", err)
	}

	for _, u := range users {
		result.Items = append(result.Items, profileOf(u, s.cipher))
	}
	result.Total = total
	return result, nil
}

func (s *adminService) GetUser(ctx context.Context, id int64) (models.UserProfile, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("user search by id failed: %w", err)
	}
	return profileOf(user, s.cipher), nil
}

func (s *adminService) SetActive(ctx context.Context, id int64, active bool) (models.UserProfile, error) {
	if err := s.userRepository.UpdateUserActive(ctx, id, active); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", id).Msg("account activation update failed")
		return models.UserProfile{}, fmt.Errorf("account activation update failed: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("user_id", id).Bool("active", active).Msg("account activation changed")
	return s.GetUser(ctx, id)
}

func (s *adminService) SetRole(ctx context.Context, id int64, raw string) (models.UserProfile, error) {
	role, err := rbac.ParseRole(raw)
	if err != nil {
		return models.UserProfile{}, err
	}

	if err = s.userRepository.UpdateUserRole(ctx, id, role.String()); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", id).Msg("role update failed")
		return models.UserProfile{}, fmt.Errorf("role update failed: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("user_id", id).Str("role", role.String()).Msg("role assigned")
	return s.GetUser(ctx, id)
}

func normalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	switch {
	case size <= 0:
		size = defaultPageSize
	case size > maxPageSize:
		size = maxPageSize
	}
	return page, size
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/smart-plant-guard/internal/logger"
	"github.com/MKhiriev/smart-plant-guard/internal/mock"
	"github.com/MKhiriev/smart-plant-guard/internal/rbac"
	"github.com/MKhiriev/smart-plant-guard/internal/store"
	"github.com/MKhiriev/smart-plant-guard/models"
)

func newAdminFixture(t *testing.T) (AdminService, *mock.MockUserRepository, func(id int64, email string) models.User) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	cipher := newTestCipher(t)

	mkUser := func(id int64, email string) models.User {
		return models.User{
			ID:          id,
			Role:        "researcher",
			EmailIndex:  indexed(t, cipher, email),
			EmailBundle: sealed(t, cipher, email),
			IsActive:    true,
		}
	}
	return NewAdminService(users, cipher, logger.Nop()), users, mkUser
}

func TestAdmin_ListRoles(t *testing.T) {
	svc, _, _ := newAdminFixture(t)

	roles := svc.ListRoles(context.Background())
	require.Len(t, roles, 3)

	assert.Equal(t, "admin", roles[0].Name)
	assert.True(t, roles[0].Privileged)
	assert.Contains(t, roles[0].Permissions, string(rbac.PermRolesView))

	assert.Equal(t, "public", roles[2].Name)
	assert.False(t, roles[2].Privileged)
	assert.ElementsMatch(t, []string{
		string(rbac.PermSpeciesViewPublic),
		string(rbac.PermObservationsViewPublic),
	}, roles[2].Permissions)
}

func TestAdmin_ListUsers_Paging(t *testing.T) {
	tests := []struct {
		name       string
		query      models.UserListQuery
		wantOffset int
		wantLimit  int
		wantPage   int
	}{
		{name: "defaults", query: models.UserListQuery{}, wantOffset: 0, wantLimit: 20, wantPage: 1},
		{name: "third page", query: models.UserListQuery{Page: 3, Size: 10}, wantOffset: 20, wantLimit: 10, wantPage: 3},
		{name: "size clamped", query: models.UserListQuery{Page: 2, Size: 500}, wantOffset: 100, wantLimit: 100, wantPage: 2},
		{name: "negative page", query: models.UserListQuery{Page: -4, Size: 5}, wantOffset: 0, wantLimit: 5, wantPage: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users, mkUser := newAdminFixture(t)

			users.EXPECT().ListUsers(gomock.Any(), models.UserFilter{}, tt.wantOffset, tt.wantLimit).
				Return([]models.User{mkUser(2, "b@x.org"), mkUser(1, "a@x.org")}, nil)
			users.EXPECT().CountUsers(gomock.Any(), models.UserFilter{}).Return(int64(42), nil)

			page, err := svc.ListUsers(context.Background(), tt.query)
			require.NoError(t, err)

			assert.Equal(t, tt.wantPage, page.Page)
			assert.Equal(t, tt.wantLimit, page.Size)
			assert.Equal(t, int64(42), page.Total)
			require.Len(t, page.Items, 2)
			assert.Equal(t, "b@x.org", *page.Items[0].Email)
		})
	}
}

func TestAdmin_ListUsers_ByEmail(t *testing.T) {
	svc, users, mkUser := newAdminFixture(t)
	u := mkUser(9, "find@me.org")

	users.EXPECT().GetUserByEmailIndex(gomock.Any(), u.EmailIndex).Return(u, nil)

	page, err := svc.ListUsers(context.Background(), models.UserListQuery{Email: " FIND@me.org"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, int64(9), page.Items[0].ID)

	users.EXPECT().GetUserByEmailIndex(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)

	page, err = svc.ListUsers(context.Background(), models.UserListQuery{Email: "ghost@me.org"})
	require.NoError(t, err)
	assert.Zero(t, page.Total)
	assert.Empty(t, page.Items)
}

func TestAdmin_ListUsers_RoleAndStatusFilters(t *testing.T) {
	active := true
	inactive := false

	tests := []struct {
		name       string
		query      models.UserListQuery
		wantFilter models.UserFilter
	}{
		{name: "role", query: models.UserListQuery{Role: " Researcher "}, wantFilter: models.UserFilter{Role: rbac.RoleResearcher}},
		{name: "legacy role name", query: models.UserListQuery{Role: "user"}, wantFilter: models.UserFilter{Role: rbac.RolePublic}},
		{name: "inactive", query: models.UserListQuery{Active: &inactive}, wantFilter: models.UserFilter{Active: &inactive}},
		{name: "both", query: models.UserListQuery{Role: "admin", Active: &active}, wantFilter: models.UserFilter{Role: rbac.RoleAdmin, Active: &active}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users, mkUser := newAdminFixture(t)

			users.EXPECT().ListUsers(gomock.Any(), tt.wantFilter, 0, 20).Return([]models.User{mkUser(3, "c@x.org")}, nil)
			users.EXPECT().CountUsers(gomock.Any(), tt.wantFilter).Return(int64(1), nil)

			page, err := svc.ListUsers(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, int64(1), page.Total)
		})
	}
}

func TestAdmin_ListUsers_UnknownRole(t *testing.T) {
	svc, _, _ := newAdminFixture(t)

	_, err := svc.ListUsers(context.Background(), models.UserListQuery{Role: "gardener"})
	assert.ErrorIs(t, err, rbac.ErrUnknownRole)
}

func TestAdmin_ListUsers_ByEmailRespectsFilters(t *testing.T) {
	svc, users, mkUser := newAdminFixture(t)
	u := mkUser(9, "find@me.org")
	inactive := false

	users.EXPECT().GetUserByEmailIndex(gomock.Any(), u.EmailIndex).Return(u, nil).Times(2)

	page, err := svc.ListUsers(context.Background(), models.UserListQuery{Email: "find@me.org", Role: "admin"})
	require.NoError(t, err)
	assert.Zero(t, page.Total, "role %q does not match", u.Role)
	assert.Empty(t, page.Items)

	page, err = svc.ListUsers(context.Background(), models.UserListQuery{Email: "find@me.org", Active: &inactive})
	require.NoError(t, err)
	assert.Zero(t, page.Total, "the account is active")
}

func TestAdmin_ListUsers_Errors(t *testing.T) {
	dbErr := errors.New("db down")

	svc, users, _ := newAdminFixture(t)
	users.EXPECT().ListUsers(gomock.Any(), models.UserFilter{}, 0, 20).Return(nil, dbErr)
	_, err := svc.ListUsers(context.Background(), models.UserListQuery{})
	assert.ErrorIs(t, err, dbErr)

	svc, users, _ = newAdminFixture(t)
	users.EXPECT().ListUsers(gomock.Any(), models.UserFilter{}, 0, 20).Return(nil, nil)
	users.EXPECT().CountUsers(gomock.Any(), models.UserFilter{}).Return(int64(0), dbErr)
	_, err = svc.ListUsers(context.Background(), models.UserListQuery{})
	assert.ErrorIs(t, err, dbErr)
}

func TestAdmin_SetActive(t *testing.T) {
	svc, users, mkUser := newAdminFixture(t)
	u := mkUser(3, "c@x.org")
	u.IsActive = false

	gomock.InOrder(
		users.EXPECT().UpdateUserActive(gomock.Any(), int64(3), false).Return(nil),
		users.EXPECT().GetUserByID(gomock.Any(), int64(3)).Return(u, nil),
	)

	profile, err := svc.SetActive(context.Background(), 3, false)
	require.NoError(t, err)
	assert.False(t, profile.IsActive)

	users.EXPECT().UpdateUserActive(gomock.Any(), int64(4), true).Return(store.ErrNoUserWasFound)
	_, err = svc.SetActive(context.Background(), 4, true)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAdmin_SetRole(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantRole string
		wantErr  error
	}{
		{name: "admin", raw: "admin", wantRole: "admin"},
		{name: "case and spaces", raw: " Researcher ", wantRole: "researcher"},
		{name: "legacy alias", raw: "user", wantRole: "public"},
		{name: "unknown", raw: "superuser", wantErr: rbac.ErrUnknownRole},
		{name: "empty", raw: "", wantErr: rbac.ErrUnknownRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users, mkUser := newAdminFixture(t)

			if tt.wantErr == nil {
				u := mkUser(5, "e@x.org")
				u.Role = tt.wantRole
				users.EXPECT().UpdateUserRole(gomock.Any(), int64(5), tt.wantRole).Return(nil)
				users.EXPECT().GetUserByID(gomock.Any(), int64(5)).Return(u, nil)
			}

			profile, err := svc.SetRole(context.Background(), 5, tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, profile.Role)
		})
	}
}

func TestAdmin_GetUser_NotFound(t *testing.T) {
	svc, users, _ := newAdminFixture(t)
	users.EXPECT().GetUserByID(gomock.Any(), int64(77)).Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.GetUser(context.Background(), 77)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

package models

import "github.com/MKhiriev/smart-plant-guard/internal/rbac"

// RoleView is one entry of GET /api/admin/roles.
type RoleView struct {
	Name        string   `json:"name"`
	Privileged  bool     `json:"privileged"`
	Permissions []string `json:"permissions"`
}

// NewRoleView describes role with its permissions from the built-in table.
func NewRoleView(role rbac.Role) RoleView {
	perms := rbac.PermissionsOf(role)
	names := make([]string, 0, len(perms))
	for _, p := range perms {
		names = append(names, string(p))
	}
	return RoleView{
		Name:        role.String(),
		Privileged:  role.IsPrivileged(),
		Permissions: names,
	}
}

package rbac

import "fmt"

// Permission is a token from the fixed policy table.
type Permission string

const (
	PermRolesView              Permission = "tables:roles:view"
	PermUsersView              Permission = "tables:users:view"
	PermRolesAssign            Permission = "roles:assign"
	PermAccountActivation      Permission = "account:activation"
	PermSpeciesViewFull        Permission = "tables:species:view_full"
	PermSensorDevicesView      Permission = "tables:sensor_devices:view"
	PermSensorReadingsView     Permission = "tables:sensor_readings:view"
	PermObservationsViewFull   Permission = "tables:plant_observations:view_full"
	PermAIResultsView          Permission = "tables:ai_results:view"
	PermAlertsView             Permission = "tables:alerts:view"
	PermSpeciesManage          Permission = "species:manage"
	PermObservationsRecord     Permission = "plant_observations:record"
	PermSpeciesViewPublic      Permission = "tables:species:view_public"
	PermObservationsViewPublic Permission = "tables:plant_observations:view_public"
)

var (
	adminOnly  = roleSet(RoleAdmin)
	privileged = roleSet(RoleAdmin, RoleResearcher)
	everyone   = roleSet(RoleAdmin, RoleResearcher, RolePublic)
)

var policy = map[Permission]map[Role]struct{}{
	PermRolesView:              adminOnly,
	PermUsersView:              adminOnly,
	PermRolesAssign:            adminOnly,
	PermAccountActivation:      adminOnly,
	PermSpeciesViewFull:        privileged,
	PermSensorDevicesView:      privileged,
	PermSensorReadingsView:     privileged,
	PermObservationsViewFull:   privileged,
	PermAIResultsView:          privileged,
	PermAlertsView:             privileged,
	PermSpeciesManage:          privileged,
	PermObservationsRecord:     privileged,
	PermSpeciesViewPublic:      everyone,
	PermObservationsViewPublic: everyone,
}

func roleSet(roles ...Role) map[Role]struct{} {
	m := make(map[Role]struct{}, len(roles))
	for _, r := range roles {
		m[r] = struct{}{}
	}
	return m
}

// ParsePermission rejects tokens that are not in the policy table.
func ParsePermission(token string) (Permission, error) {
	p := Permission(token)
	if _, ok := policy[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPermission, token)
	}
	return p, nil
}

// HasPermission reports exact membership of role in the role set granted p.
// Unknown permissions are granted to nobody.
func HasPermission(role Role, p Permission) bool {
	_, ok := policy[p][role]
	return ok
}

// PermissionsOf returns every permission granted to role, in table order.
func PermissionsOf(role Role) []Permission {
	var out []Permission
	for _, p := range allPermissions {
		if HasPermission(role, p) {
			out = append(out, p)
		}
	}
	return out
}

var allPermissions = []Permission{
	PermRolesView, PermUsersView, PermRolesAssign, PermAccountActivation,
	PermSpeciesViewFull, PermSensorDevicesView, PermSensorReadingsView,
	PermObservationsViewFull, PermAIResultsView, PermAlertsView,
	PermSpeciesManage, PermObservationsRecord,
	PermSpeciesViewPublic, PermObservationsViewPublic,
}

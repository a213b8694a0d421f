package rbac

import "fmt"

// Subject is the caller a gate is evaluated against. Role must come from
// the signed session, and Active from the users row.
type Subject struct {
	Role   Role
	Active bool
}

// Gate allows the subject by returning nil.
type Gate func(Subject) error

// Table names a data table exposed through a view.
type Table string

const (
	TableRoles             Table = "roles"
	TableUsers             Table = "users"
	TableSpecies           Table = "species"
	TableSensorDevices     Table = "sensor_devices"
	TableSensorReadings    Table = "sensor_readings"
	TablePlantObservations Table = "plant_observations"
	TableAIResults         Table = "ai_results"
	TableAlerts            Table = "alerts"
)

// Scope selects how much of a table is shown.
type Scope string

const (
	ScopeFull   Scope = "full"
	ScopePublic Scope = "public"
)

type tableView struct {
	table Table
	scope Scope
}

var tableViews = map[tableView]Permission{
	{TableRoles, ScopeFull}:               PermRolesView,
	{TableUsers, ScopeFull}:               PermUsersView,
	{TableSpecies, ScopeFull}:             PermSpeciesViewFull,
	{TableSpecies, ScopePublic}:           PermSpeciesViewPublic,
	{TableSensorDevices, ScopeFull}:       PermSensorDevicesView,
	{TableSensorReadings, ScopeFull}:      PermSensorReadingsView,
	{TablePlantObservations, ScopeFull}:   PermObservationsViewFull,
	{TablePlantObservations, ScopePublic}: PermObservationsViewPublic,
	{TableAIResults, ScopeFull}:           PermAIResultsView,
	{TableAlerts, ScopeFull}:              PermAlertsView,
}

// TableViewPermission returns the permission guarding a table view.
func TableViewPermission(table Table, scope Scope) (Permission, error) {
	p, ok := tableViews[tableView{table, scope}]
	if !ok {
		return "", fmt.Errorf("%w: %s/%s", ErrUnmappedTableView, table, scope)
	}
	return p, nil
}

// RequirePermission allows subjects whose role holds p.
func RequirePermission(p Permission) Gate {
	return func(s Subject) error {
		if !HasPermission(s.Role, p) {
			return ErrForbidden
		}
		return nil
	}
}

// RequireTableView resolves the view permission once. An unmapped view
// produces a gate that always fails with ErrUnmappedTableView.
func RequireTableView(table Table, scope Scope) Gate {
	p, err := TableViewPermission(table, scope)
	if err != nil {
		return func(Subject) error { return err }
	}
	return RequirePermission(p)
}

// RequireActiveAccount denies deactivated accounts regardless of role.
func RequireActiveAccount(s Subject) error {
	if !s.Active {
		return fmt.Errorf("%w: %w", ErrForbidden, ErrAccountInactive)
	}
	return nil
}

// RequireAdminActive allows only active admins.
func RequireAdminActive(s Subject) error {
	if err := RequireActiveAccount(s); err != nil {
		return err
	}
	if s.Role != RoleAdmin {
		return ErrForbidden
	}
	return nil
}

// All combines gates; the first denial wins.
func All(gates ...Gate) Gate {
	return func(s Subject) error {
		for _, g := range gates {
			if err := g(s); err != nil {
				return err
			}
		}
		return nil
	}
}

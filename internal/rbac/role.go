// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package rbac evaluates a fixed role based access policy.
//
// The role set, the permission table and the table-view map are closed and
// built into the binary. Gates return nil to allow, [ErrForbidden] to deny
// and [ErrUnmappedTableView] when asked about a view that has no mapping.
package rbac

import (
	"fmt"
	"strings"
)

// Role is one of the three account roles.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleResearcher Role = "researcher"
	RolePublic     Role = "public"
)

// legacyUserRole is the pre-rename name of RolePublic still found in old rows.
const legacyUserRole = "user"

// Roles lists every role in display order.
func Roles() []Role {
	return []Role{RoleAdmin, RoleResearcher, RolePublic}
}

// NormalizeRole maps a raw role name onto the role set. Matching ignores
// case and surrounding whitespace. "user" is an alias of public, and anything
// unrecognized also becomes public.
func NormalizeRole(raw string) Role {
	switch r := strings.ToLower(strings.TrimSpace(raw)); r {
	case string(RoleAdmin):
		return RoleAdmin
	case string(RoleResearcher):
		return RoleResearcher
	default:
		return RolePublic
	}
}

// ParseRole is the strict variant of NormalizeRole used for admin input.
func ParseRole(raw string) (Role, error) {
	r := strings.ToLower(strings.TrimSpace(raw))
	switch r {
	case string(RoleAdmin), string(RoleResearcher), string(RolePublic):
		return Role(r), nil
	case legacyUserRole:
		return RolePublic, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, raw)
}

// IsPrivileged reports whether the role must pass a second factor.
func (r Role) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleResearcher
}

func (r Role) String() string {
	return string(r)
}

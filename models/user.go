package models

import (
	"time"

	"github.com/MKhiriev/smart-plant-guard/internal/rbac"
)

// User is a row of the users table.
//
// Email and username are stored twice: as a keyed lookup index used for
// equality search and as an encrypted envelope holding the value itself.
// LegacyEmail and LegacyUsername are the plaintext columns of rows created
// before field encryption; new rows leave them empty.
type User struct {
	ID             int64     `json:"id"`
	Role           string    `json:"role"`
	EmailIndex     string    `json:"-"`
	EmailBundle    string    `json:"-"`
	UsernameIndex  string    `json:"-"`
	UsernameBundle string    `json:"-"`
	LegacyEmail    string    `json:"-"`
	LegacyUsername string    `json:"-"`
	PasswordHash   string    `json:"-"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserProfile is the decrypted, client-facing view of a user.
type UserProfile struct {
	ID        int64     `json:"id"`
	Email     *string   `json:"email"`
	Username  *string   `json:"username"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// UserPage is one page of the admin user listing.
type UserPage struct {
	Items []UserProfile `json:"items"`
	Page  int           `json:"page"`
	Size  int           `json:"size"`
	Total int64         `json:"total"`
}

// AccountStatus is the live state of an account, read from its users row
// on every authenticated request.
type AccountStatus struct {
	Active bool
	Role   rbac.Role
}

// UserListQuery selects a page of the admin user listing. A non-empty Email
// narrows the listing to the account with that address. Role takes a role
// name and Active, when set, keeps only accounts with that status.
type UserListQuery struct {
	Page   int
	Size   int
	Email  string
	Role   string
	Active *bool
}

// UserFilter restricts user listings. The zero value matches every user.
type UserFilter struct {
	Role   rbac.Role
	Active *bool
}

// Matches reports whether u passes the filter. Stored role names are
// normalized first, so legacy "USER" rows match RolePublic.
func (f UserFilter) Matches(u User) bool {
	if f.Role != "" && rbac.NormalizeRole(u.Role) != f.Role {
		return false
	}
	if f.Active != nil && u.IsActive != *f.Active {
		return false
	}
	return true
}

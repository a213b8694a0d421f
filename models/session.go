package models

import "github.com/MKhiriev/smart-plant-guard/internal/rbac"

// Session is the authenticated caller as carried by the signed bearer token.
//
// Role is copied from the users row at login and is never taken from client
// input. MFAVerified starts false on every login and is set only after the
// same principal passes a verification code check.
type Session struct {
	UserID      int64     `json:"user_id"`
	Role        rbac.Role `json:"role"`
	MFAVerified bool      `json:"mfa_verified"`
}

// Subject returns the RBAC subject for this session. Active comes from the
// users row, not from the token, so it is passed in by the caller.
func (s Session) Subject(active bool) rbac.Subject {
	return rbac.Subject{Role: s.Role, Active: active}
}

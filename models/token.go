package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/smart-plant-guard/internal/rbac"
)

// SessionClaims is the JWT claim set of a session token: the standard
// registered claims plus the role and MFA state.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Role is the normalized role name read from the users row at login.
	Role string `json:"role"`

	// MFA is true once the principal has passed a verification code check.
	MFA bool `json:"mfa"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [SessionClaims] for claim access.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be sent as a bearer token.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	SessionClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// GetUserID extracts the user identifier from the "sub" claim.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// Session rebuilds the [Session] carried by the token. The role is
// normalized again so a token minted with an unknown role degrades to public.
func (t *Token) Session() (Session, error) {
	userID, err := t.GetUserID()
	if err != nil {
		return Session{}, err
	}
	return Session{
		UserID:      userID,
		Role:        rbac.NormalizeRole(t.Role),
		MFAVerified: t.MFA,
	}, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyCodeRequest is the body of POST /api/auth/mfa/verify.
type VerifyCodeRequest struct {
	Code string `json:"code"`
}

// LoginResult is returned by login and MFA endpoints. SentTo is the masked
// address the code was delivered to.
type LoginResult struct {
	Token      string `json:"token"`
	Role       string `json:"role"`
	RequireMFA bool   `json:"require_mfa"`
	SentTo     string `json:"sent_to,omitempty"`
}

// SetActiveRequest is the body of PATCH /api/admin/users/{id}/active.
type SetActiveRequest struct {
	Active *bool `json:"active"`
}

// SetRoleRequest is the body of PATCH /api/admin/users/{id}/role.
type SetRoleRequest struct {
	Role string `json:"role"`
}

// ErrorResponse is the JSON body written for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CodeSentResponse is the body of POST /api/auth/mfa/resend.
type CodeSentResponse struct {
	SentTo string `json:"sent_to"`
}

// MeResponse is the body of GET /api/auth/me.
type MeResponse struct {
	User        UserProfile `json:"user"`
	MFAVerified bool        `json:"mfa_verified"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

// ErrInvalidID is returned for a missing, non-numeric or non-positive {id}
// path parameter.
var ErrInvalidID = errors.New("invalid id")

// ErrInvalidActiveFilter is returned when ?active= is not a boolean.
var ErrInvalidActiveFilter = errors.New("invalid active filter")

// msgInvalidCode is the single message for every failed code check, so a
// caller cannot tell a missing challenge from an expired or wrong one.
const msgInvalidCode = "invalid or expired verification code"

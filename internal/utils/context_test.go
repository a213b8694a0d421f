// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/smart-plant-guard/internal/rbac"
	"github.com/MKhiriev/smart-plant-guard/models"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "testKey", contextKey("testKey").String())
	assert.Equal(t, "session", SessionCtxKey.String())
}

func TestSessionContext_RoundTrip(t *testing.T) {
	want := models.Session{UserID: 42, Role: rbac.RoleAdmin, MFAVerified: true}
	ctx := WithSession(context.Background(), want)

	got, ok := GetSessionFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, want, got)

	id, ok := GetUserIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(42), id)
}

func TestSessionContext_Missing(t *testing.T) {
	_, ok := GetSessionFromContext(context.Background())
	assert.False(t, ok)

	id, ok := GetUserIDFromContext(context.Background())
	assert.False(t, ok)
	assert.Zero(t, id)
}

func TestSessionContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionCtxKey, "not-a-session")

	_, ok := GetSessionFromContext(ctx)
	assert.False(t, ok)
}

func TestSessionContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("otherKey"), models.Session{UserID: 1})

	_, ok := GetSessionFromContext(ctx)
	assert.False(t, ok)
}

func TestAccountActiveContext(t *testing.T) {
	assert.False(t, GetAccountActiveFromContext(context.Background()))
	assert.True(t, GetAccountActiveFromContext(WithAccountActive(context.Background(), true)))
	assert.False(t, GetAccountActiveFromContext(WithAccountActive(context.Background(), false)))
}

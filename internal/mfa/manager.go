// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mfa implements the email one-time-code second factor for
// privileged roles.
//
// A principal moves through NoChallenge -> Pending -> {Verified, Expired}
// -> NoChallenge. Start issues and mails a code; Verify consumes it exactly
// once; Guard checks that a session has already been verified. Expiry is
// enforced lazily by Verify. A background sweeper may purge expired entries
// of the memory store to bound its size, but correctness never depends on it.
package mfa

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/smart-plant-guard/internal/logger"
	"github.com/MKhiriev/smart-plant-guard/internal/mail"
	"github.com/MKhiriev/smart-plant-guard/internal/rbac"
	"github.com/MKhiriev/smart-plant-guard/models"
)

// DefaultTTL is how long a code stays valid.
const DefaultTTL = 5 * time.Minute

const codeSubject = "Smart Plant Admin/Researcher Verification Code"

// Manager issues and checks verification codes.
type Manager struct {
	store   ChallengeStore
	sender  mail.Sender
	ttl     time.Duration
	now     func() time.Time
	entropy io.Reader
	locks   *keyedMutex
	logger  *logger.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithTTL overrides DefaultTTL. Non-positive values are ignored.
func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.ttl = ttl
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager builds a Manager backed by store that delivers codes through
// sender.
func NewManager(store ChallengeStore, sender mail.Sender, log *logger.Logger, opts ...Option) *Manager {
	if log == nil {
		log = logger.Nop()
	}
	m := &Manager{
		store:   store,
		sender:  sender,
		ttl:     DefaultTTL,
		now:     time.Now,
		entropy: rand.Reader,
		locks:   newKeyedMutex(),
		logger:  log,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// TTL returns the configured code lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Start issues a fresh code for principalID and mails it to address. Any
// previous challenge is replaced only after delivery succeeds; on delivery
// failure nothing changes and ErrDeliveryFailed is returned.
func (m *Manager) Start(ctx context.Context, principalID int64, role rbac.Role, address string) error {
	if !role.IsPrivileged() {
		return rbac.ErrForbidden
	}

	code, err := generateCode(m.entropy)
	if err != nil {
		return err
	}

	body := fmt.Sprintf("Your %d-digit code is: %s\nThis code will expire in %s.",
		CodeLength, code, formatTTL(m.ttl))

	if err := m.sender.Send(ctx, address, codeSubject, body); err != nil {
		m.logger.Warn().Err(err).Int64("user_id", principalID).Msg("verification code delivery failed")
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	unlock := m.locks.Lock(principalID)
	defer unlock()

	challenge := Challenge{
		Code:      code,
		ExpiresAt: m.now().Add(m.ttl),
		Address:   address,
	}
	if err := m.store.Set(ctx, principalID, challenge); err != nil {
		return fmt.Errorf("store challenge: %w", err)
	}

	m.logger.Debug().Int64("user_id", principalID).Time("expires_at", challenge.ExpiresAt).Msg("verification challenge issued")
	return nil
}

// Verify consumes the pending challenge when code matches. A wrong code
// keeps the challenge; an expired one is deleted. The check and the delete
// are one atomic store operation, so a code is accepted at most once even
// when several servers share the store. The local lock only serializes
// callers inside this process.
func (m *Manager) Verify(ctx context.Context, principalID int64, role rbac.Role, code string) error {
	if !role.IsPrivileged() {
		return rbac.ErrForbidden
	}

	unlock := m.locks.Lock(principalID)
	defer unlock()

	now := m.now()
	var verdict error
	_, ok, err := m.store.Consume(ctx, principalID, func(c Challenge) bool {
		if now.After(c.ExpiresAt) {
			verdict = ErrChallengeExpired
			return true
		}
		if subtle.ConstantTimeCompare([]byte(code), []byte(c.Code)) != 1 {
			verdict = ErrIncorrectCode
			return false
		}
		verdict = nil
		return true
	})
	if err != nil {
		return fmt.Errorf("consume challenge: %w", err)
	}
	if !ok {
		return ErrChallengeNotFound
	}
	if verdict != nil {
		return verdict
	}

	m.logger.Debug().Int64("user_id", principalID).Msg("verification challenge passed")
	return nil
}

// Guard allows privileged sessions that have passed verification.
func (m *Manager) Guard(session models.Session) error {
	return Guard(session)
}

// Guard is the stateless check behind Manager.Guard.
func Guard(session models.Session) error {
	if !session.Role.IsPrivileged() {
		return rbac.ErrForbidden
	}
	if !session.MFAVerified {
		return ErrUnauthorized
	}
	return nil
}

func formatTTL(d time.Duration) string {
	if d%time.Minute == 0 {
		n := int(d / time.Minute)
		if n == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", n)
	}
	return d.String()
}

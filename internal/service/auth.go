// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service provides the business logic behind the EventHub
// pages, separated from HTTP handling so the operations stay testable
// without a request context.
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/olegiv/eventhub-go/internal/model"
	"github.com/olegiv/eventhub-go/internal/store"
)

// Authentication and signup errors surfaced to the user.
var (
	// ErrInvalidCredentials is deliberately generic: it does not reveal
	// whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrSignupIncomplete   = errors.New("full name, email and password are required")
)

// AuthService implements admin login and signup over the admins
// collection.
type AuthService struct {
	store *store.Storage
}

// NewAuthService creates a new AuthService.
func NewAuthService(s *store.Storage) *AuthService {
	return &AuthService{store: s}
}

// Authenticate scans the admins collection for an exact, case-sensitive
// match on both email and password. On failure it returns
// ErrInvalidCredentials regardless of which field was wrong.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (model.Admin, error) {
	for _, admin := range s.store.Admins(ctx) {
		if admin.Email == email && admin.Password == password {
			return admin, nil
		}
	}
	return model.Admin{}, ErrInvalidCredentials
}

// Signup appends a new admin record.
//
// Rejected without writing anything when the passwords differ, a field
// is missing, or the email is already taken. Success does not log the
// new admin in.
func (s *AuthService) Signup(ctx context.Context, fullName, email, password, confirm string) error {
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(email)

	if fullName == "" || email == "" || password == "" {
		return ErrSignupIncomplete
	}
	if password != confirm {
		return ErrPasswordMismatch
	}

	admins := s.store.Admins(ctx)
	for _, admin := range admins {
		if admin.Email == email {
			return ErrEmailTaken
		}
	}

	admins = append(admins, model.Admin{
		Email:    email,
		Password: password,
		FullName: fullName,
	})
	return s.store.WriteAdmins(ctx, admins)
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the domain records persisted by EventHub:
// Admin, Event, and Participant. Field tags match the JSON shapes
// stored in the key-value storage table, so the persisted data stays
// readable by any client that understands the original layout.
package model

// Admin represents an event administrator account.
//
// Passwords are stored and compared in plaintext. This is a demo
// application without an authentication security layer; the persisted
// shape keeps the plaintext field for compatibility.
type Admin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Participant represents one registration for an event. Registrations
// are grouped by event ID in the participants collection; a bucket is
// append-only and duplicates are permitted.
//
// RegisteredOn is an ISO-8601 (RFC 3339) timestamp string.
type Participant struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Comments     string `json:"comments,omitempty"`
	RegisteredOn string `json:"registeredOn"`
}

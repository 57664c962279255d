// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Event represents a single event listing.
//
// Seeded events carry fixed slug IDs ("web-dev", "evt_1", ...); events
// created through the admin UI get a timestamp-derived "evt_<millis>"
// token. Date is an ISO date string (2006-01-02) and Time is HH:MM,
// both kept as strings to match the persisted shape.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	AdminEmail  string `json:"adminEmail"`
	Image       string `json:"image"`
}

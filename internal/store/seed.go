// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/olegiv/eventhub-go/internal/model"
)

// Default admin credentials. The password is plaintext on purpose; see
// model.Admin.
const (
	DefaultAdminEmail    = "admin@eventhub.com"
	DefaultAdminPassword = "password123"
	DefaultAdminName     = "Default Admin"
)

// Seed populates the admins and events collections with default data.
//
// Create-if-empty semantics, not a merge: the default admin is
// appended only when no record carries its email, and the default
// events are written only when the events collection is empty. Both
// checks make repeated invocation idempotent.
func (s *Storage) Seed(ctx context.Context) error {
	if err := s.seedDefaultAdmin(ctx); err != nil {
		return fmt.Errorf("seeding default admin: %w", err)
	}
	if err := s.seedDefaultEvents(ctx); err != nil {
		return fmt.Errorf("seeding default events: %w", err)
	}
	return nil
}

func (s *Storage) seedDefaultAdmin(ctx context.Context) error {
	admins := s.Admins(ctx)
	for _, admin := range admins {
		if admin.Email == DefaultAdminEmail {
			return nil
		}
	}

	admins = append(admins, model.Admin{
		Email:    DefaultAdminEmail,
		Password: DefaultAdminPassword,
		FullName: DefaultAdminName,
	})
	if err := s.WriteAdmins(ctx, admins); err != nil {
		return err
	}

	slog.Info("default admin created", "email", DefaultAdminEmail)
	return nil
}

func (s *Storage) seedDefaultEvents(ctx context.Context) error {
	if len(s.Events(ctx)) > 0 {
		return nil
	}

	if err := s.WriteEvents(ctx, DefaultEvents()); err != nil {
		return err
	}

	slog.Info("default events created", "count", len(DefaultEvents()))
	return nil
}

// DefaultEvents returns the fixed seed list: the three original campus
// events plus the ten conference listings, all owned by the default
// admin. Order is part of the contract (the home page features the
// first three).
func DefaultEvents() []model.Event {
	const owner = DefaultAdminEmail

	return []model.Event{
		{
			ID: "web-dev", Title: "Web Development Workshop",
			Date: "2025-12-10", Time: "10:00", Location: "Main Auditorium",
			Description: "Learn how to build responsive websites using HTML, CSS, and JavaScript.",
			AdminEmail:  owner, Image: "images/web_dev_workshop.png",
		},
		{
			ID: "ai-ml", Title: "AI & Machine Learning Meetup",
			Date: "2025-11-20", Time: "14:00", Location: "Room 204",
			Description: "A meetup for AI enthusiasts to share ideas and innovations.",
			AdminEmail:  owner, Image: "images/Ai_ML_workshop.jpg",
		},
		{
			ID: "startup", Title: "Startup Networking Session",
			Date: "2025-12-05", Time: "18:00", Location: "College Grounds",
			Description: "Connect with entrepreneurs and investors to grow your startup ideas.",
			AdminEmail:  owner, Image: "images/networking.png",
		},
		{
			ID: "evt_1", Title: "AI & Machine Learning Expo",
			Description: "Keynotes on Generative AI, MLOps, and Large Language Models.",
			Date:        "2025-10-25", Time: "09:00", Location: "San Francisco, CA (Hybrid)",
			AdminEmail: owner, Image: "https://picsum.photos/400/200?random=1",
		},
		{
			ID: "evt_2", Title: "Full-Stack Dev Conference",
			Description: "Modern web architecture with React, Node.js, and serverless backends.",
			Date:        "2025-11-12", Time: "09:00", Location: "Virtual & Seattle, WA",
			AdminEmail: owner, Image: "https://picsum.photos/400/200?random=2",
		},
		{
			ID: "evt_3", Title: "Cloud Security Summit 2025",
			Description: "Protecting data in multi-cloud environments (AWS, GCP, Azure).",
			Date:        "2025-12-03", Time: "09:00", Location: "London, UK (Online)",
			AdminEmail: owner, Image: "https://picsum.photos/400/200?random=3",
		},
		{
			ID: "evt_4", Title: "DevOps and SRE Bootcamp",
			Description: "Continuous Integration/Deployment (CI/CD) and site reliability engineering.",
			Date:        "2026-01-15", Time: "09:00", Location: "Austin, TX",
			AdminEmail: owner, Image: "https://picsum.photos/400/200?random=4",
		},
		{
			ID: "evt_5", Title: "UX/UI Design Masterclass",
			Description: "Designing intuitive and accessible digital products.",
			Date:        "2026-02-01", Time: "09:00", Location: "Online Workshop",
			AdminEmail: owner, Image: "https://picsum.photos/400/200?random=5",
		},
		{
			ID: "evt_6", Title: "Quantum Computing Pioneers",
			Description: "Exploring superconducting qubits and quantum algorithms.",
			Date:        "2026-03-01", Time: "09:00", Location: "Boston, MA",
			AdminEmail: owner, Image: "https://picsum.photos/400/200?random=6",
		},
		{
			ID: "evt_7", Title: "Mobile App Innovation Day",
			Description: "Latest in native (iOS/Android) and cross-platform (Flutter/React Native) development.",
			Date:        "2026-04-10", Time: "09:00", Location: "Virtual Event",
			AdminEmail: owner, Image: "https://picsum.photos/400/200?random=7",
		},
		{
			ID: "evt_8", Title: "Big Data & Analytics Forum",
			Description: "Harnessing the power of petabytes with Hadoop, Spark, and data lakes.",
			Date:        "2026-05-22", Time: "09:00", Location: "Chicago, IL",
			AdminEmail: owner, Image: "https://picsum.photos/400/200?random=8",
		},
		{
			ID: "evt_9", Title: "Embedded Systems Workshop",
			Description: "From IoT sensors to real-time operating systems (RTOS).",
			Date:        "2026-06-06", Time: "09:00", Location: "Silicon Valley, CA",
			AdminEmail: owner, Image: "https://picsum.photos/400/200?random=9",
		},
		{
			ID: "evt_10", Title: "Cyber Warfare Defense",
			Description: "Current threat landscapes, penetration testing, and incident response.",
			Date:        "2026-07-19", Time: "09:00", Location: "Washington, D.C.",
			AdminEmail: owner, Image: "https://picsum.photos/400/200?random=10",
		},
	}
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package version

import "testing"

func TestInfoString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"zero value", Info{}, "eventhub dev"},
		{"version only", Info{Version: "v1.0.0"}, "eventhub v1.0.0"},
		{
			"full",
			Info{Version: "v1.2.3", GitCommit: "abc1234", BuildTime: "2025-01-30T12:00:00Z"},
			"eventhub v1.2.3 (abc1234) built 2025-01-30T12:00:00Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

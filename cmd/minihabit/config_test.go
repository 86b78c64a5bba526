// Copyright (C) ConfigHub, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"testing"
)

func TestResolveOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		changed []string
		env     map[string]string
		want    Options
	}{
		{
			name: "defaults",
			want: Options{LogDir: DefaultLogDir},
		},
		{
			name: "env log dir",
			env:  map[string]string{EnvLogDir: "/var/log/minihabit"},
			want: Options{LogDir: "/var/log/minihabit"},
		},
		{
			name:    "flag log dir wins over env",
			opts:    Options{LogDir: "logs"},
			changed: []string{"log-dir"},
			env:     map[string]string{EnvLogDir: "/var/log/minihabit"},
			want:    Options{LogDir: "logs"},
		},
		{
			name: "env accessible",
			env:  map[string]string{EnvAccessible: "true"},
			want: Options{Accessible: true, LogDir: DefaultLogDir},
		},
		{
			name: "env accessible not a bool",
			env:  map[string]string{EnvAccessible: "maybe"},
			want: Options{LogDir: DefaultLogDir},
		},
		{
			name:    "flag accessible=false wins over env",
			changed: []string{"accessible"},
			env:     map[string]string{EnvAccessible: "1"},
			want:    Options{LogDir: DefaultLogDir},
		},
		{
			name: "output and no-log pass through",
			opts: Options{Output: "plan.yaml", NoLog: true},
			want: Options{Output: "plan.yaml", NoLog: true, LogDir: DefaultLogDir},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changed := func(name string) bool {
				for _, c := range tt.changed {
					if c == name {
						return true
					}
				}
				return false
			}
			getenv := func(key string) string { return tt.env[key] }

			got := resolveOptions(tt.opts, changed, getenv)
			if got != tt.want {
				t.Errorf("resolveOptions() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

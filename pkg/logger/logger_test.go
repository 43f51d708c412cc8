package logger

import (
	"testing"
	"time"
)

func TestComputeEnabled(t *testing.T) {
	tests := []struct {
		name      string
		patterns  string
		namespace string
		enabled   bool
	}{
		{
			name:      "empty DEBUG disables all loggers",
			patterns:  "",
			namespace: "linter:compliance",
			enabled:   false,
		},
		{
			name:      "wildcard enables all loggers",
			patterns:  "*",
			namespace: "linter:compliance",
			enabled:   true,
		},
		{
			name:      "exact match enables logger",
			patterns:  "linter:compliance",
			namespace: "linter:compliance",
			enabled:   true,
		},
		{
			name:      "exact match leaves other namespaces disabled",
			patterns:  "linter:compliance",
			namespace: "registry:load",
			enabled:   false,
		},
		{
			name:      "namespace wildcard enables subtree",
			patterns:  "linter:*",
			namespace: "linter:sections",
			enabled:   true,
		},
		{
			name:      "namespace wildcard ignores other subtrees",
			patterns:  "linter:*",
			namespace: "cli:validate",
			enabled:   false,
		},
		{
			name:      "comma separated patterns",
			patterns:  "registry:*,cli:*",
			namespace: "cli:validate",
			enabled:   true,
		},
		{
			name:      "exclusion wins over wildcard",
			patterns:  "linter:*,-linter:compliance",
			namespace: "linter:compliance",
			enabled:   false,
		},
		{
			name:      "exclusion leaves siblings enabled",
			patterns:  "linter:*,-linter:compliance",
			namespace: "linter:sections",
			enabled:   true,
		},
		{
			name:      "suffix wildcard",
			patterns:  "*:load",
			namespace: "registry:load",
			enabled:   true,
		},
		{
			name:      "middle wildcard",
			patterns:  "linter:*:rules",
			namespace: "linter:frontmatter:rules",
			enabled:   true,
		},
		{
			name:      "whitespace around patterns is tolerated",
			patterns:  " linter:* , cli:* ",
			namespace: "linter:sections",
			enabled:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := computeEnabled(tt.namespace, tt.patterns); got != tt.enabled {
				t.Errorf("computeEnabled(%q, %q) = %v, want %v", tt.namespace, tt.patterns, got, tt.enabled)
			}
		})
	}
}

func TestDisabledLoggerIsSilent(t *testing.T) {
	l := &Logger{namespace: "test:silent", enabled: false}
	// Must not panic or write; emit is only reached when enabled.
	l.Printf("should not appear %d", 42)
	l.Print("should not appear")
	if l.Enabled() {
		t.Error("logger should be disabled")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{2 * time.Hour, "2h"},
		{3 * time.Minute, "3m"},
		{1500 * time.Millisecond, "1.5s"},
		{12 * time.Millisecond, "12ms"},
		{150 * time.Microsecond, "150µs"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.in); got != tt.want {
			t.Errorf("formatDuration(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

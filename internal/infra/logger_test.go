package infra

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		env, level string
		want       zerolog.Level
	}{
		{"development", "", zerolog.DebugLevel},
		{"production", "", zerolog.InfoLevel},
		{"production", "warn", zerolog.WarnLevel},
		{"development", "ERROR", zerolog.ErrorLevel},
		{"production", "bogus", zerolog.InfoLevel},
	}
	for _, tc := range tests {
		if got := NewLogger(tc.env, tc.level).GetLevel(); got != tc.want {
			t.Fatalf("NewLogger(%q, %q) level = %s, want %s", tc.env, tc.level, got, tc.want)
		}
	}
}

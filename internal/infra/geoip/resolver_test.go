package geoip

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestNewResolverDisabledWithoutPath(t *testing.T) {
	r, err := NewResolver("  ")
	if err != nil {
		t.Fatalf("NewResolver() error: %v", err)
	}
	if r != nil {
		t.Fatalf("NewResolver() = %v, want nil", r)
	}
	if r.Lookup() != nil {
		t.Fatalf("Lookup() on disabled resolver should be nil")
	}
	if _, err := r.CountryCode("203.0.113.4"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("CountryCode() error = %v, want ErrUnavailable", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
}

func TestNewResolverMissingDatabase(t *testing.T) {
	if _, err := NewResolver(filepath.Join(t.TempDir(), "missing.mmdb")); err == nil {
		t.Fatalf("NewResolver() expected error for missing database")
	}
}

package prefs

import (
	"context"

	ferrors "github.com/matzehuels/folio/pkg/errors"
)

// Store is a string key-value preference store.
type Store interface {
	// Get returns the value for key and whether it was set.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an unset key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Backend names reported to observability hooks.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// ThemeKey is the key the colour theme is stored under.
const ThemeKey = "theme"

// Theme is a colour scheme.
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// DefaultTheme is used when no valid theme is stored.
const DefaultTheme = Dark

// ParseTheme validates a theme name.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case Dark, Light:
		return Theme(s), nil
	}
	return "", ferrors.New(ferrors.ErrCodeInvalidTheme, "unknown theme %q (want %q or %q)", s, Dark, Light)
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

// LoadTheme reads the stored theme. Unset or unknown values yield
// DefaultTheme; only store failures are returned as errors.
func LoadTheme(ctx context.Context, s Store) (Theme, error) {
	v, ok, err := s.Get(ctx, ThemeKey)
	if err != nil {
		return DefaultTheme, err
	}
	if !ok {
		return DefaultTheme, nil
	}
	t, err := ParseTheme(v)
	if err != nil {
		return DefaultTheme, nil
	}
	return t, nil
}

// SaveTheme validates and stores t.
func SaveTheme(ctx context.Context, s Store, t Theme) error {
	if _, err := ParseTheme(string(t)); err != nil {
		return err
	}
	return s.Set(ctx, ThemeKey, string(t))
}

// ToggleTheme flips the stored theme and returns the new value.
func ToggleTheme(ctx context.Context, s Store) (Theme, error) {
	cur, err := LoadTheme(ctx, s)
	if err != nil {
		return cur, err
	}
	next := cur.Toggle()
	if err := SaveTheme(ctx, s, next); err != nil {
		return cur, err
	}
	return next, nil
}

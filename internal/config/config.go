package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	ferrors "github.com/matzehuels/folio/pkg/errors"
	"github.com/matzehuels/folio/pkg/prefs"
)

const (
	defaultAddr            = ":8080"
	defaultFPS             = 60
	minimumFPS             = 1
	maximumFPS             = 240
	defaultRedisTimeout    = 3 * time.Second
	defaultShutdownTimeout = 5 * time.Second
)

// Config captures startup settings shared by every folio command.
type Config struct {
	Addr            string
	FPS             int
	ContentPath     string
	RedisURL        string
	RedisTimeout    time.Duration
	Theme           prefs.Theme // empty means use the stored preference
	ShutdownTimeout time.Duration
}

// LoadFromEnv loads runtime configuration from environment variables.
func LoadFromEnv() (Config, error) {
	addr, err := readRequiredOrDefault("FOLIO_ADDR", defaultAddr)
	if err != nil {
		return Config{}, err
	}

	fps, err := readInt("FOLIO_FPS", defaultFPS, minimumFPS, maximumFPS)
	if err != nil {
		return Config{}, err
	}

	contentPath := strings.TrimSpace(os.Getenv("FOLIO_CONTENT"))
	if contentPath != "" {
		contentPath = filepath.Clean(contentPath)
	}

	redisURL := strings.TrimSpace(os.Getenv("FOLIO_REDIS_URL"))

	redisTimeout, err := readDuration("FOLIO_REDIS_TIMEOUT", defaultRedisTimeout)
	if err != nil {
		return Config{}, err
	}

	var theme prefs.Theme
	if raw := strings.TrimSpace(os.Getenv("FOLIO_THEME")); raw != "" {
		theme, err = prefs.ParseTheme(raw)
		if err != nil {
			return Config{}, ferrors.Wrap(ferrors.ErrCodeInvalidConfig, err, "FOLIO_THEME")
		}
	}

	shutdownTimeout, err := readDuration("FOLIO_SHUTDOWN_TIMEOUT", defaultShutdownTimeout)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Addr:            addr,
		FPS:             fps,
		ContentPath:     contentPath,
		RedisURL:        redisURL,
		RedisTimeout:    redisTimeout,
		Theme:           theme,
		ShutdownTimeout: shutdownTimeout,
	}, nil
}

// ValidateFPS checks a frame rate supplied on the command line.
func ValidateFPS(fps int) error {
	if fps < minimumFPS || fps > maximumFPS {
		return ferrors.New(ferrors.ErrCodeInvalidConfig, "fps must be between %d and %d", minimumFPS, maximumFPS)
	}
	return nil
}

func readRequiredOrDefault(key, fallback string) (string, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	if strings.TrimSpace(raw) == "" {
		return "", ferrors.New(ferrors.ErrCodeInvalidConfig, "%s must not be empty", key)
	}

	return raw, nil
}

func readInt(key string, fallback, min, max int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ferrors.Wrap(ferrors.ErrCodeInvalidConfig, err, "%s must be an integer", key)
	}
	if parsed < min || parsed > max {
		return 0, ferrors.New(ferrors.ErrCodeInvalidConfig, "%s must be between %d and %d", key, min, max)
	}

	return parsed, nil
}

func readDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return 0, ferrors.Wrap(ferrors.ErrCodeInvalidConfig, err, "%s must be a valid duration", key)
	}
	if parsed <= 0 {
		return 0, ferrors.New(ferrors.ErrCodeInvalidConfig, "%s must be greater than 0", key)
	}

	return parsed, nil
}

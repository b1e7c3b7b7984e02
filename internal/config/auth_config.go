package config

import (
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// AuthConfig supplies the immutable process-wide authentication settings.
// The signing secret is loaded once at start and never rotated while the
// process runs; rotating it invalidates every outstanding token.
type AuthConfig interface {
	GetTokenSecret() string
	GetTokenLifetime() time.Duration
	GetBcryptCost() int
}

const (
	tokenSecretVar   = "TOKEN_SECRET"
	tokenLifetimeVar = "TOKEN_LIFETIME"
	bcryptCostVar    = "BCRYPT_COST"

	defaultTokenLifetime = 24 * time.Hour
)

type Auth struct{}

var _ AuthConfig = Auth{}

func (Auth) GetTokenSecret() string {
	return GetEnv(tokenSecretVar, "")
}

func (Auth) GetTokenLifetime() time.Duration {
	raw := GetEnv(tokenLifetimeVar, "")
	if raw == "" {
		return defaultTokenLifetime
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return defaultTokenLifetime
	}
	return d
}

func (Auth) GetBcryptCost() int {
	raw := GetEnv(bcryptCostVar, "")
	if raw == "" {
		return bcrypt.DefaultCost
	}
	cost, err := strconv.Atoi(raw)
	if err != nil || cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return bcrypt.DefaultCost
	}
	return cost
}

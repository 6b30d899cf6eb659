package authz

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/MarksSoftwareGmbH/cakephp-tinyauth/pkg/acl"
)

// Config holds the engine's authorization policy and cache behavior.
//
// Which roles.Source the engine uses (static map, file, or database) is the
// caller's wiring decision and is not part of this struct.
type Config struct {
	// RoleColumn is the session field holding the single role id when
	// MultiRole is off.
	RoleColumn string `env:"AUTHZ_ROLE_COLUMN" envDefault:"role_id"`

	// MultiRole switches role lookup from the session field to the injected
	// user-role repository.
	MultiRole bool `env:"AUTHZ_MULTI_ROLE" envDefault:"false"`

	// AdminRole grants access to admin-prefixed resources when AllowAdmin is
	// on. Empty disables the shortcut.
	AdminRole acl.RoleID `env:"AUTHZ_ADMIN_ROLE"`

	// SuperAdminRole bypasses all per-resource checks. Empty disables it.
	SuperAdminRole acl.RoleID `env:"AUTHZ_SUPER_ADMIN_ROLE"`

	// AdminPrefix is the routing prefix receiving special-cased treatment.
	AdminPrefix string `env:"AUTHZ_ADMIN_PREFIX" envDefault:"admin"`

	// AllowAdmin permits AdminRole holders on all AdminPrefix resources.
	AllowAdmin bool `env:"AUTHZ_ALLOW_ADMIN" envDefault:"false"`

	// AllowUser permits any logged-in user on everything outside AdminPrefix.
	AllowUser bool `env:"AUTHZ_ALLOW_USER" envDefault:"false"`

	// CacheKey names the cache slot for the compiled table. Consumed when
	// constructing the cache store, e.g. aclcache.NewRedisStore.
	CacheKey string `env:"AUTHZ_CACHE_KEY" envDefault:"acl"`

	// AutoClearCache drops the cached table before every check, but only
	// while Debug is on. Models "rebuild every request while developing".
	AutoClearCache bool `env:"AUTHZ_AUTO_CLEAR_CACHE" envDefault:"false"`

	// Debug marks the process as running in development mode.
	Debug bool `env:"AUTHZ_DEBUG" envDefault:"false"`
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		RoleColumn:  "role_id",
		AdminPrefix: "admin",
		CacheKey:    "acl",
	}
}

var loadDotEnv sync.Once

// LoadConfig reads the configuration from environment variables, loading a
// .env file first if one exists.
func LoadConfig() (Config, error) {
	loadDotEnv.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	return cfg, nil
}

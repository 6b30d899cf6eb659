package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarksSoftwareGmbH/cakephp-tinyauth/pkg/acl"
	"github.com/MarksSoftwareGmbH/cakephp-tinyauth/pkg/authz"
)

func TestDefaultConfig(t *testing.T) {
	cfg := authz.DefaultConfig()

	assert.Equal(t, "role_id", cfg.RoleColumn)
	assert.Equal(t, "admin", cfg.AdminPrefix)
	assert.Equal(t, "acl", cfg.CacheKey)
	assert.False(t, cfg.AllowUser)
	assert.False(t, cfg.AllowAdmin)
	assert.False(t, cfg.MultiRole)
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults without environment", func(t *testing.T) {
		cfg, err := authz.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "role_id", cfg.RoleColumn)
		assert.Equal(t, "admin", cfg.AdminPrefix)
		assert.Equal(t, "acl", cfg.CacheKey)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("AUTHZ_ADMIN_PREFIX", "backoffice")
		t.Setenv("AUTHZ_SUPER_ADMIN_ROLE", "1")
		t.Setenv("AUTHZ_ALLOW_USER", "true")
		t.Setenv("AUTHZ_AUTO_CLEAR_CACHE", "true")
		t.Setenv("AUTHZ_DEBUG", "true")

		cfg, err := authz.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "backoffice", cfg.AdminPrefix)
		assert.Equal(t, acl.RoleID("1"), cfg.SuperAdminRole)
		assert.True(t, cfg.AllowUser)
		assert.True(t, cfg.AutoClearCache)
		assert.True(t, cfg.Debug)
	})

	t.Run("invalid boolean", func(t *testing.T) {
		t.Setenv("AUTHZ_MULTI_ROLE", "definitely")

		_, err := authz.LoadConfig()
		assert.ErrorIs(t, err, authz.ErrInvalidConfig)
	})
}

package authz_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarksSoftwareGmbH/cakephp-tinyauth/pkg/acl"
	"github.com/MarksSoftwareGmbH/cakephp-tinyauth/pkg/aclcache"
	"github.com/MarksSoftwareGmbH/cakephp-tinyauth/pkg/authz"
)

func TestEngine_ConcurrentAuthorize(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	source := &countingRuleSource{raw: testRules()}
	engine, err := authz.New(authz.DefaultConfig(),
		authz.WithRuleSource(source),
		authz.WithRoleSource(testRoleSource()),
		authz.WithCacheStore(aclcache.NewMemoryStore()),
	)
	require.NoError(t, err)

	const numGoroutines = 50
	const numOperations = 200

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()

			for j := 0; j < numOperations; j++ {
				switch j % 3 {
				case 0:
					ok, err := engine.Authorize(ctx, authz.Request{
						Roles: []acl.RoleID{"2"}, Controller: "Posts", Action: "view",
					})
					assert.NoError(t, err)
					assert.True(t, ok)
				case 1:
					ok, err := engine.Authorize(ctx, authz.Request{
						Roles: []acl.RoleID{"1"}, Controller: "Posts", Action: "delete",
					})
					assert.NoError(t, err)
					assert.True(t, ok)
				case 2:
					ok, err := engine.Authorize(ctx, authz.Request{
						Roles: []acl.RoleID{"2"}, Controller: "Users", Action: "view",
					})
					assert.NoError(t, err)
					assert.False(t, ok)
				}
			}
		}(i)
	}

	wg.Wait()

	// The memoized table keeps concurrent checks from recompiling.
	assert.Equal(t, int32(1), source.calls.Load())
}

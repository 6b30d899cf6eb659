package acl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarksSoftwareGmbH/cakephp-tinyauth/pkg/acl"
)

func TestEncodeResource(t *testing.T) {
	tests := []struct {
		name       string
		descriptor acl.ResourceDescriptor
		want       string
	}{
		{
			name:       "controller only",
			descriptor: acl.ResourceDescriptor{Controller: "Posts"},
			want:       "Posts",
		},
		{
			name:       "with prefix",
			descriptor: acl.ResourceDescriptor{Prefix: "admin", Controller: "Posts"},
			want:       "admin/Posts",
		},
		{
			name:       "with plugin",
			descriptor: acl.ResourceDescriptor{Plugin: "Blog", Controller: "Posts"},
			want:       "Blog.Posts",
		},
		{
			name:       "plugin and prefix",
			descriptor: acl.ResourceDescriptor{Plugin: "Blog", Prefix: "admin", Controller: "Posts"},
			want:       "Blog.admin/Posts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, acl.EncodeResource(tt.descriptor))
		})
	}
}

func TestDecodeResource(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want acl.ResourceDescriptor
	}{
		{
			name: "controller only",
			key:  "Posts",
			want: acl.ResourceDescriptor{Controller: "Posts"},
		},
		{
			name: "prefix and controller",
			key:  "admin/Posts",
			want: acl.ResourceDescriptor{Prefix: "admin", Controller: "Posts"},
		},
		{
			name: "plugin and controller",
			key:  "Blog.Posts",
			want: acl.ResourceDescriptor{Plugin: "Blog", Controller: "Posts"},
		},
		{
			name: "plugin prefix and controller",
			key:  "Blog.admin/Posts",
			want: acl.ResourceDescriptor{Plugin: "Blog", Prefix: "admin", Controller: "Posts"},
		},
		{
			name: "plugin separator wins over prefix separator",
			key:  "Blog.api/v1/Posts",
			want: acl.ResourceDescriptor{Plugin: "Blog", Prefix: "api", Controller: "v1/Posts"},
		},
		{
			name: "empty key",
			key:  "",
			want: acl.ResourceDescriptor{Controller: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, acl.DecodeResource(tt.key))
		})
	}
}

// Every combination of present/absent plugin and prefix must survive a full
// decode(encode(d)) cycle unchanged.
func TestResourceRoundTrip(t *testing.T) {
	descriptors := []acl.ResourceDescriptor{
		{Controller: "Posts"},
		{Prefix: "admin", Controller: "Posts"},
		{Plugin: "Blog", Controller: "Posts"},
		{Plugin: "Blog", Prefix: "admin", Controller: "Posts"},
	}

	for _, d := range descriptors {
		t.Run(acl.EncodeResource(d), func(t *testing.T) {
			assert.Equal(t, d, acl.DecodeResource(acl.EncodeResource(d)))
		})
	}
}

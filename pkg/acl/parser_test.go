package acl_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarksSoftwareGmbH/cakephp-tinyauth/pkg/acl"
)

func TestParse(t *testing.T) {
	t.Run("sections and entries", func(t *testing.T) {
		source := `
; site rules
[Posts]
view,index = editor, author
* = admin

[Blog.admin/Articles]
delete = admin
`
		raw, err := acl.Parse(strings.NewReader(source))
		require.NoError(t, err)

		require.Len(t, raw, 2)
		assert.Equal(t, "editor, author", raw["Posts"]["view,index"])
		assert.Equal(t, "admin", raw["Posts"]["*"])
		assert.Equal(t, "admin", raw["Blog.admin/Articles"]["delete"])
	})

	t.Run("values stay raw", func(t *testing.T) {
		raw, err := acl.Parse(strings.NewReader("[Posts]\nview =  editor ,, author "))
		require.NoError(t, err)

		// Splitting and trimming is Compile's job, not the parser's.
		assert.Equal(t, "editor ,, author", raw["Posts"]["view"])
	})

	t.Run("empty source", func(t *testing.T) {
		_, err := acl.Parse(strings.NewReader(""))
		assert.ErrorIs(t, err, acl.ErrNoRules)
	})

	t.Run("comments only", func(t *testing.T) {
		_, err := acl.Parse(strings.NewReader("; nothing here\n# nor here\n"))
		assert.ErrorIs(t, err, acl.ErrNoRules)
	})

	t.Run("keys outside sections ignored", func(t *testing.T) {
		_, err := acl.Parse(strings.NewReader("view = editor\n"))
		assert.ErrorIs(t, err, acl.ErrNoRules)
	})
}

func TestParseFile(t *testing.T) {
	t.Run("reads from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "acl.ini")
		require.NoError(t, os.WriteFile(path, []byte("[Posts]\nview = editor\n"), 0o600))

		raw, err := acl.ParseFile(path)
		require.NoError(t, err)
		assert.Equal(t, "editor", raw["Posts"]["view"])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := acl.ParseFile(filepath.Join(t.TempDir(), "missing.ini"))
		assert.ErrorIs(t, err, acl.ErrRuleFileNotFound)
	})
}

package roles

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MarksSoftwareGmbH/cakephp-tinyauth/pkg/acl"
)

// FileSource reads a YAML role table from disk, one "name: id" pair per
// role. Integer ids are accepted and carried in their decimal form.
type FileSource struct {
	path string
}

// NewFileSource creates a source backed by the YAML file at path. The file
// is re-read on every Resolve call.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Resolve reads and parses the file. A missing file or an empty table is a
// configuration error.
func (s *FileSource) Resolve(ctx context.Context) (map[string]acl.RoleID, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Join(ErrReadFailed, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrReadFailed, err)
	}
	if len(raw) == 0 {
		return nil, ErrNoRoles
	}

	roles := make(map[string]acl.RoleID, len(raw))
	for name, id := range raw {
		roles[strings.ToLower(name)] = acl.RoleID(fmt.Sprint(id))
	}
	return roles, nil
}

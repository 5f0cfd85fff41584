package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aretw0/branchtale/pkg/domain"
)

// extensions are tried in order when resolving a table file.
var extensions = []string{".json", ".yaml", ".yml"}

// Source implements ports.TableSource using a directory on the local filesystem.
// It reads NODES.json and CHOICES.json (or their .yaml/.yml variants).
type Source struct {
	Dir string
}

// New creates a new Source over dir.
// If dir is empty, it defaults to the current directory.
func New(dir string) *Source {
	if dir == "" {
		dir = "."
	}
	return &Source{Dir: dir}
}

// Fetch reads the table file.
func (s *Source) Fetch(ctx context.Context, table domain.Table) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &domain.LoadError{Table: table, Err: err}
	}

	path, err := s.resolve(table)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.LoadError{Table: table, Reason: fmt.Sprintf("cannot read %s", path), Err: err}
	}
	return data, nil
}

// resolve returns the first existing file for the table.
func (s *Source) resolve(table domain.Table) (string, error) {
	for _, ext := range extensions {
		candidate := filepath.Join(s.Dir, table.FileName(ext))
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", &domain.LoadError{Table: table, Reason: fmt.Sprintf("cannot stat %s", candidate), Err: err}
		}
	}
	return "", &domain.LoadError{Table: table, Reason: fmt.Sprintf("not found in %s", s.Dir)}
}

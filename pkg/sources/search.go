// Package sources implements schema file discovery and reading against the
// real filesystem.
package sources

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"github.com/protonav/protonav/pkg/engine"
	"golang.org/x/sync/errgroup"
)

// OSSource is the production engine.FileSource.
type OSSource struct{}

var _ engine.FileSource = OSSource{}

func (OSSource) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// FindFiles walks root recursively and returns the files whose root-relative
// slash path matches pattern, sorted lexically. Deterministic output order
// matters: resolution treats file order within a root as a priority, so it
// must not depend on directory enumeration order. Dependency directories and
// dot directories are pruned.
func (OSSource) FindFiles(root string, pattern string) ([]string, error) {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, err
	}
	// "**/..." globs require a separator; also accept matches at the root
	// itself so top-level files are found
	var topLevel glob.Glob
	if rest, ok := strings.CutPrefix(pattern, "**/"); ok {
		if topLevel, err = glob.Compile(rest, '/'); err != nil {
			return nil, err
		}
	}
	if !filepath.IsAbs(root) {
		if a, err := filepath.Abs(root); err == nil {
			root = a
		}
	}
	var files []string
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && (name == "node_modules" || name == "vendor" || strings.HasPrefix(name, ".")) {
				return fs.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if g.Match(rel) || (topLevel != nil && topLevel.Match(rel)) {
			files = append(files, path)
		}
		return nil
	})
	sort.Strings(files)
	return files, nil
}

// SearchDirs finds all files matching pattern under each dir, walking the
// dirs concurrently but returning results in dir order.
func SearchDirs(pattern string, dirs ...string) ([]string, error) {
	perDir := make([][]string, len(dirs))
	var eg errgroup.Group
	for i, dir := range dirs {
		eg.Go(func() error {
			found, err := OSSource{}.FindFiles(dir, pattern)
			if err != nil {
				return err
			}
			perDir[i] = found
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	var files []string
	for _, f := range perDir {
		files = append(files, f...)
	}
	return files, nil
}

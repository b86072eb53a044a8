package lsp

import (
	"path/filepath"
	"strings"

	"github.com/kralicky/tools-lite/gopls/pkg/protocol"
	"github.com/mitchellh/mapstructure"
)

type Settings struct {
	LogLevel    string   `mapstructure:"logLevel" json:"logLevel"`
	SearchPaths []string `mapstructure:"searchPaths" json:"searchPaths"`
}

// DecodeSettings decodes the loosely-typed settings blob the client sends in
// initializationOptions or didChangeConfiguration.
func DecodeSettings(raw any) (Settings, error) {
	var s Settings
	if raw == nil {
		return s, nil
	}
	err := mapstructure.Decode(raw, &s)
	return s, err
}

// ResolveSearchRoots merges the configured search paths against the
// workspace folders into the final ordered, deduplicated, absolute root list
// the engine consumes. ${workspaceFolder} expands once per folder; relative
// paths resolve against each folder. With no search paths configured the
// folders themselves are the roots.
func (s Settings) ResolveSearchRoots(folders []protocol.WorkspaceFolder) []string {
	folderPaths := make([]string, 0, len(folders))
	for _, f := range folders {
		folderPaths = append(folderPaths, protocol.DocumentURI(f.URI).Path())
	}

	var roots []string
	if len(s.SearchPaths) == 0 {
		roots = folderPaths
	} else {
		for _, p := range s.SearchPaths {
			p = filepath.FromSlash(p)
			switch {
			case strings.Contains(p, "${workspaceFolder}") || strings.Contains(p, "${workspaceRoot}"):
				for _, fp := range folderPaths {
					expanded := strings.ReplaceAll(p, "${workspaceFolder}", fp)
					expanded = strings.ReplaceAll(expanded, "${workspaceRoot}", fp)
					roots = append(roots, expanded)
				}
			case filepath.IsAbs(p):
				roots = append(roots, p)
			default:
				for _, fp := range folderPaths {
					roots = append(roots, filepath.Join(fp, p))
				}
			}
		}
	}

	out := make([]string, 0, len(roots))
	seen := map[string]struct{}{}
	for _, r := range roots {
		r = filepath.Clean(r)
		if !filepath.IsAbs(r) {
			if a, err := filepath.Abs(r); err == nil {
				r = a
			}
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

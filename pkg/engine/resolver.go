package engine

import (
	"context"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/kralicky/tools-lite/gopls/pkg/protocol"
)

// ProtoGlob matches schema files under a search root.
const ProtoGlob = "**/*.proto"

var (
	packagePattern    = regexp.MustCompile(`(?m)^\s*package\s+([\w.]+)\s*;`)
	importStmtPattern = regexp.MustCompile(`(?m)^\s*import\s+(?:public\s+|weak\s+)?"([^"]+)"\s*;`)
)

// PackageOf returns the file's package declaration, or "".
func PackageOf(text string) string {
	if m := packagePattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// ImportsOf returns the file's import paths in declaration order.
func ImportsOf(text string) []string {
	var out []string
	for _, m := range importStmtPattern.FindAllStringSubmatch(text, -1) {
		out = append(out, m[1])
	}
	return out
}

// Resolver locates the defining occurrence of a possibly-dotted type
// reference across the requesting document, its imports, and every schema
// file under the configured search roots. It holds no state between queries;
// Roots is a value injected per query, never ambient configuration.
type Resolver struct {
	Source FileSource
	Roots  []string
}

// resolution is the full answer for one reference: where the symbol is, what
// it is, and the text it was found in (so callers can render it without a
// second read).
type resolution struct {
	Loc  *Location
	Kind ScopeKind
	Name string // simple name, last segment
	Line int    // declaration line within Text
	Text string
}

// Resolve returns the location of the first conclusive match for ref in
// candidate priority order, or nil if no candidate defines it. Candidate
// order encodes the priority policy: the current file, then explicit imports
// in declaration order, then search roots in configured order with lexical
// file order within each root. Same-named symbols in later candidates are
// shadowed, not reported as ambiguous.
func (r *Resolver) Resolve(ctx context.Context, doc Document, ref string) (*Location, error) {
	res, err := r.resolveRef(ctx, doc, ref)
	if res == nil {
		return nil, err
	}
	return res.Loc, err
}

func (r *Resolver) resolveRef(ctx context.Context, doc Document, ref string) (*resolution, error) {
	ref = strings.TrimPrefix(ref, ".")
	if ref == "" {
		return nil, nil
	}
	var found *resolution
	err := r.eachCandidate(ctx, doc, func(path, text string) bool {
		found = matchFile(path, text, ref)
		return found != nil
	})
	return found, err
}

// eachCandidate visits candidate files in priority order until visit returns
// true. Unreadable candidates are skipped, never fatal. The context is
// checked between file reads to bound latency on large search roots.
func (r *Resolver) eachCandidate(ctx context.Context, doc Document, visit func(path, text string) bool) error {
	seen := map[string]struct{}{doc.Path: {}}
	if visit(doc.Path, doc.Text) {
		return nil
	}
	for _, imp := range ImportsOf(doc.Text) {
		if err := ctx.Err(); err != nil {
			return err
		}
		path, data, ok := r.locateImport(filepath.Dir(doc.Path), imp)
		if !ok {
			slog.Debug("import does not resolve against any search root", "import", imp)
			continue
		}
		if _, dup := seen[path]; dup {
			continue
		}
		seen[path] = struct{}{}
		if visit(path, string(data)) {
			return nil
		}
	}
	for _, root := range r.Roots {
		files, err := r.Source.FindFiles(root, ProtoGlob)
		if err != nil {
			slog.Debug("skipping unsearchable root", "root", root, "error", err)
			continue
		}
		for _, f := range files {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, dup := seen[f]; dup {
				continue
			}
			seen[f] = struct{}{}
			data, err := r.Source.ReadFile(f)
			if err != nil {
				slog.Debug("skipping unreadable candidate", "path", f, "error", err)
				continue
			}
			if visit(f, string(data)) {
				return nil
			}
		}
	}
	return nil
}

// CandidateFiles returns the ordered, deduplicated candidate set for doc.
func (r *Resolver) CandidateFiles(ctx context.Context, doc Document) ([]string, error) {
	var out []string
	err := r.eachCandidate(ctx, doc, func(path, _ string) bool {
		out = append(out, path)
		return false
	})
	return out, err
}

// ResolveImport maps an import path from doc to a file on disk, trying each
// search root in order and falling back to a path-suffix match over the
// scanned corpus for imports declared relative to an unconfigured prefix.
func (r *Resolver) ResolveImport(doc Document, imp string) (string, []byte, bool) {
	return r.locateImport(filepath.Dir(doc.Path), imp)
}

func (r *Resolver) locateImport(docDir, imp string) (string, []byte, bool) {
	for _, dir := range append([]string{docDir}, r.Roots...) {
		p := filepath.Join(dir, filepath.FromSlash(imp))
		if data, err := r.Source.ReadFile(p); err == nil {
			return p, data, true
		}
	}
	suffix := "/" + imp
	for _, root := range r.Roots {
		files, err := r.Source.FindFiles(root, ProtoGlob)
		if err != nil {
			continue
		}
		for _, f := range files {
			if !strings.HasSuffix(filepath.ToSlash(f), suffix) {
				continue
			}
			if data, err := r.Source.ReadFile(f); err == nil {
				return f, data, true
			}
		}
	}
	return "", nil, false
}

// matchFile tries the reference against one candidate file. Strategies in
// order: strip the file's package when the reference is qualified with it,
// then the bare reference ignoring the package. The remaining dotted
// segments descend nested scopes by exact name; a failed segment rules out
// this file only.
func matchFile(path, text, ref string) *resolution {
	pkg := PackageOf(text)
	var attempts []string
	if pkg != "" && strings.HasPrefix(ref, pkg+".") {
		attempts = append(attempts, strings.TrimPrefix(ref, pkg+"."))
	}
	attempts = append(attempts, ref)

	tree := ComputeScopeTree(text, -1)
	for _, attempt := range attempts {
		id, ok := tree.Find(attempt)
		if !ok {
			continue
		}
		if k := tree.Kind(id); k != ScopeMessage && k != ScopeEnum {
			continue
		}
		if res := resolutionAt(path, text, tree, id); res != nil {
			return res
		}
	}
	return nil
}

// resolutionAt builds the resolution for an already-located scope node,
// pinning the range to the symbol's name token on its declaration line.
func resolutionAt(path, text string, tree *ScopeTree, id ScopeID) *resolution {
	lines := splitLines(text)
	ln := tree.Line(id)
	if ln >= len(lines) {
		return nil
	}
	name := tree.Name(id)
	re := regexp.MustCompile(`\b(?:message|enum|service)\s+(` + regexp.QuoteMeta(name) + `)\b`)
	m := re.FindStringSubmatchIndex(lines[ln])
	if m == nil {
		return nil
	}
	return &resolution{
		Loc: &Location{
			Path: path,
			Range: protocol.Range{
				Start: protocol.Position{Line: uint32(ln), Character: uint32(m[2])},
				End:   protocol.Position{Line: uint32(ln), Character: uint32(m[3])},
			},
		},
		Kind: tree.Kind(id),
		Name: name,
		Line: ln,
		Text: text,
	}
}

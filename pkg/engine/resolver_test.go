package engine_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/protonav/protonav/pkg/engine"
	"github.com/stretchr/testify/require"
)

// memSource serves files from a map, with optional per-path read failures.
type memSource struct {
	files  map[string]string
	broken map[string]bool
}

func (s *memSource) ReadFile(path string) ([]byte, error) {
	if s.broken[path] {
		return nil, errors.New("injected read failure")
	}
	text, ok := s.files[path]
	if !ok {
		return nil, errors.New("not found")
	}
	return []byte(text), nil
}

func (s *memSource) FindFiles(root, pattern string) ([]string, error) {
	if s.broken[root] {
		return nil, errors.New("injected walk failure")
	}
	var out []string
	for path := range s.files {
		if strings.HasPrefix(path, root+"/") && strings.HasSuffix(path, ".proto") {
			out = append(out, path)
		}
	}
	sort.Strings(out)
	return out, nil
}

func TestResolveInCurrentDocument(t *testing.T) {
	doc := engine.Document{
		Path: "/ws/app.proto",
		Text: "syntax = \"proto3\";\n\nmessage Config {\n  string name = 1;\n}\n",
	}
	r := &engine.Resolver{Source: &memSource{files: map[string]string{}}}

	loc, err := r.Resolve(context.Background(), doc, "Config")
	require.NoError(t, err)
	require.NotNil(t, loc)
	require.Equal(t, "/ws/app.proto", loc.Path)
	require.EqualValues(t, 2, loc.Range.Start.Line)
	require.EqualValues(t, 8, loc.Range.Start.Character)
	require.EqualValues(t, 14, loc.Range.End.Character)
}

func TestResolveImportWinsOverScan(t *testing.T) {
	src := &memSource{files: map[string]string{
		"/ws/app.proto":      "import \"types.proto\";\n\nmessage App {\n  Status s = 1;\n}\n",
		"/ws/types.proto":    "enum Status {\n  OK = 0;\n}\n",
		"/ws/aaa/dupe.proto": "enum Status {\n  STALE = 0;\n}\n",
	}}
	r := &engine.Resolver{Source: src, Roots: []string{"/ws"}}
	doc := engine.Document{Path: "/ws/app.proto", Text: src.files["/ws/app.proto"]}

	// /ws/aaa/dupe.proto sorts before /ws/types.proto in the root scan, so
	// only import priority can explain types.proto winning.
	loc, err := r.Resolve(context.Background(), doc, "Status")
	require.NoError(t, err)
	require.NotNil(t, loc)
	require.Equal(t, "/ws/types.proto", loc.Path)
}

func TestResolvePackageQualifiedReference(t *testing.T) {
	src := &memSource{files: map[string]string{
		"/ws/lib/wire.proto": "package a.b;\n\nmessage Envelope {\n  message Header {\n    string id = 1;\n  }\n}\n",
	}}
	r := &engine.Resolver{Source: src, Roots: []string{"/ws"}}
	doc := engine.Document{Path: "/ws/app.proto", Text: "message App {}\n"}

	for _, ref := range []string{"a.b.Envelope.Header", "Envelope.Header", ".a.b.Envelope.Header"} {
		loc, err := r.Resolve(context.Background(), doc, ref)
		require.NoError(t, err, "ref %q", ref)
		require.NotNil(t, loc, "ref %q", ref)
		require.Equal(t, "/ws/lib/wire.proto", loc.Path)
		require.EqualValues(t, 3, loc.Range.Start.Line)
	}
}

func TestResolveSkipsUnreadableCandidates(t *testing.T) {
	src := &memSource{
		files: map[string]string{
			"/ws/a.proto": "message Target { int32 x = 1; }\n",
			"/ws/b.proto": "message Target { int32 y = 1; }\n",
		},
		broken: map[string]bool{"/ws/a.proto": true},
	}
	r := &engine.Resolver{Source: src, Roots: []string{"/ws"}}
	doc := engine.Document{Path: "/ws/app.proto", Text: "message App {}\n"}

	loc, err := r.Resolve(context.Background(), doc, "Target")
	require.NoError(t, err)
	require.NotNil(t, loc)
	require.Equal(t, "/ws/b.proto", loc.Path)
}

func TestResolveUnknownReference(t *testing.T) {
	src := &memSource{files: map[string]string{
		"/ws/a.proto": "message Known {}\n",
	}}
	r := &engine.Resolver{Source: src, Roots: []string{"/ws"}}
	doc := engine.Document{Path: "/ws/app.proto", Text: "message App {}\n"}

	loc, err := r.Resolve(context.Background(), doc, "Missing")
	require.NoError(t, err)
	require.Nil(t, loc)
}

func TestResolveIgnoresFieldsAndServices(t *testing.T) {
	src := &memSource{files: map[string]string{
		"/ws/a.proto": "service Pinger {\n  rpc Ping (Req) returns (Resp);\n}\n",
	}}
	r := &engine.Resolver{Source: src, Roots: []string{"/ws"}}
	doc := engine.Document{Path: "/ws/app.proto", Text: "message App {}\n"}

	loc, err := r.Resolve(context.Background(), doc, "Pinger")
	require.NoError(t, err)
	require.Nil(t, loc, "services are not field types and must not resolve as one")
}

func TestResolveHonorsContextCancellation(t *testing.T) {
	src := &memSource{files: map[string]string{
		"/ws/a.proto": "message Target {}\n",
	}}
	r := &engine.Resolver{Source: src, Roots: []string{"/ws"}}
	doc := engine.Document{Path: "/ws/app.proto", Text: "message App {}\n"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.Resolve(ctx, doc, "Target")
	require.ErrorIs(t, err, context.Canceled)
}

func TestCandidateFilesOrder(t *testing.T) {
	src := &memSource{files: map[string]string{
		"/ws/app.proto":     "import \"z.proto\";\nimport \"a.proto\";\n",
		"/ws/z.proto":       "message Z {}\n",
		"/ws/a.proto":       "message A {}\n",
		"/ws/sub/m.proto":   "message M {}\n",
		"/other/ext.proto":  "message Ext {}\n",
		"/ws/notes/log.txt": "not a schema",
	}}
	r := &engine.Resolver{Source: src, Roots: []string{"/ws", "/other"}}
	doc := engine.Document{Path: "/ws/app.proto", Text: src.files["/ws/app.proto"]}

	got, err := r.CandidateFiles(context.Background(), doc)
	require.NoError(t, err)
	want := []string{
		"/ws/app.proto", // current document first
		"/ws/z.proto",   // imports in declaration order
		"/ws/a.proto",
		"/ws/sub/m.proto", // then roots in configured order, files sorted
		"/other/ext.proto",
	}
	require.Equal(t, want, got)
}

func TestResolveImportSuffixFallback(t *testing.T) {
	src := &memSource{files: map[string]string{
		"/ws/vendor/acme/types/common.proto": "message Common {}\n",
	}}
	r := &engine.Resolver{Source: src, Roots: []string{"/ws"}}
	doc := engine.Document{Path: "/ws/app.proto", Text: "message App {}\n"}

	// "acme/types/common.proto" does not exist relative to the doc or any
	// root, so the suffix match over the corpus has to find it.
	path, data, ok := r.ResolveImport(doc, "acme/types/common.proto")
	require.True(t, ok)
	require.Equal(t, "/ws/vendor/acme/types/common.proto", path)
	require.Contains(t, string(data), "message Common")
}

func TestPackageAndImportsOf(t *testing.T) {
	text := `syntax = "proto3";
package acme.v1;

import "a.proto";
import public "b.proto";
import weak "c.proto";
`
	require.Equal(t, "acme.v1", engine.PackageOf(text))
	require.Equal(t, []string{"a.proto", "b.proto", "c.proto"}, engine.ImportsOf(text))
	require.Equal(t, "", engine.PackageOf("message M {}\n"))
	require.Nil(t, engine.ImportsOf("message M {}\n"))
}

package engine_test

import (
	"testing"

	"github.com/protonav/protonav/pkg/engine"
)

const scopeFixture = `syntax = "proto3";
package a.b;

message Outer {
  message Inner {
    int32 v = 1;
  }
  enum Mode { UNSET = 0; }
  string name = 1;
}
service Watcher {
  rpc Watch (Req) returns (Resp);
}
`

func TestComputeScopeTree(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		line          int
		wantKind      engine.ScopeKind
		wantQualified string
	}{
		{
			name:          "top level",
			text:          scopeFixture,
			line:          1,
			wantKind:      engine.ScopeProto,
			wantQualified: "",
		},
		{
			name:          "inside message",
			text:          scopeFixture,
			line:          8,
			wantKind:      engine.ScopeMessage,
			wantQualified: "Outer",
		},
		{
			name:          "inside nested message",
			text:          scopeFixture,
			line:          5,
			wantKind:      engine.ScopeMessage,
			wantQualified: "Outer.Inner",
		},
		{
			name:          "inside service",
			text:          scopeFixture,
			line:          11,
			wantKind:      engine.ScopeService,
			wantQualified: "Watcher",
		},
		{
			name:          "unterminated blocks stay open",
			text:          "message A {\n  message B {\n",
			line:          2,
			wantKind:      engine.ScopeMessage,
			wantQualified: "A.B",
		},
		{
			name:          "brace in line comment is ignored",
			text:          "message A {\n  // }\n  int32 x = 1;\n",
			line:          2,
			wantKind:      engine.ScopeMessage,
			wantQualified: "A",
		},
		{
			name:          "block comment suppresses openers",
			text:          "/*\nmessage A {\n*/\nmessage B {\n",
			line:          4,
			wantKind:      engine.ScopeMessage,
			wantQualified: "B",
		},
		{
			name:          "inside block comment",
			text:          "/*\nsome text\n*/\n",
			line:          1,
			wantKind:      engine.ScopeComment,
			wantQualified: "",
		},
		{
			name:          "single line block closes on its own line",
			text:          "message A { }\nmessage B {\n  int32 x = 1;\n",
			line:          2,
			wantKind:      engine.ScopeMessage,
			wantQualified: "B",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := engine.ComputeScopeTree(tt.text, tt.line)
			got := tree.Innermost()
			if kind := tree.Kind(got); kind != tt.wantKind {
				t.Errorf("Kind() = %v, want %v", kind, tt.wantKind)
			}
			if q := tree.QualifiedName(got); q != tt.wantQualified {
				t.Errorf("QualifiedName() = %q, want %q", q, tt.wantQualified)
			}
		})
	}
}

func TestScopeTreeAncestryTerminatesAtRoot(t *testing.T) {
	tree := engine.ComputeScopeTree(scopeFixture, 5)
	id := tree.Innermost()
	for steps := 0; id != tree.Root(); steps++ {
		if steps > 10 {
			t.Fatal("ancestry chain did not terminate at the root")
		}
		id = tree.Parent(id)
	}
}

func TestScopeTreeFind(t *testing.T) {
	tree := engine.ComputeScopeTree(scopeFixture, -1)
	id, ok := tree.Find("Outer.Inner")
	if !ok {
		t.Fatal("Find(Outer.Inner) not found")
	}
	if line := tree.Line(id); line != 4 {
		t.Errorf("Line() = %d, want 4", line)
	}
	if _, ok := tree.Find("Outer.Missing"); ok {
		t.Error("Find(Outer.Missing) unexpectedly found")
	}
	if id, ok := tree.Find("Outer.Mode"); !ok || tree.Kind(id) != engine.ScopeEnum {
		t.Error("Find(Outer.Mode) should locate the nested enum")
	}
}

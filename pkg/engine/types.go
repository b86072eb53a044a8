// Package engine implements the schema symbol engine: a lexical scope
// tracker, a tolerant structural parser, and a qualified-name resolver for
// protobuf schema files. It operates on raw document text that may be
// syntactically broken at any moment, so everything here is best-effort by
// design; no component ever fails hard on malformed input.
package engine

import (
	"strings"

	"github.com/kralicky/tools-lite/gopls/pkg/protocol"
)

// FileSource abstracts the filesystem operations the engine needs. Production
// code uses pkg/sources; tests inject an in-memory implementation.
type FileSource interface {
	ReadFile(path string) ([]byte, error)
	FindFiles(root string, pattern string) ([]string, error)
}

// Document is a point-in-time snapshot of one schema file. The engine never
// retains a Document past the query that received it.
type Document struct {
	Path string
	Text string
}

// Location identifies the name token of a symbol's defining occurrence.
type Location struct {
	Path  string
	Range protocol.Range
}

// MessageInfo describes the structure of a single message declaration.
// Tag-number uniqueness is not enforced; schema-level validity is protoc's
// concern, not ours.
type MessageInfo struct {
	Name           string
	Comment        string
	RawSource      string
	Fields         []FieldInfo
	NestedMessages []MessageInfo
	NestedEnums    []EnumInfo
}

// FieldInfo describes one field line. Type is a scalar keyword, a possibly
// dotted type reference, or a synthesized "map<K, V>" string.
type FieldInfo struct {
	Label   string
	Type    string
	Name    string
	Number  int
	Comment string
}

// EnumInfo describes a single enum declaration.
type EnumInfo struct {
	Name      string
	Comment   string
	RawSource string
	Values    []EnumValueInfo
}

type EnumValueInfo struct {
	Name    string
	Number  int
	Comment string
}

// ServiceInfo describes a service declaration and its rpc signatures.
type ServiceInfo struct {
	Name      string
	Comment   string
	RawSource string
	RPCs      []RPCInfo
}

type RPCInfo struct {
	Name            string
	Request         string
	Response        string
	ClientStreaming bool
	ServerStreaming bool
	Comment         string
}

// ScopeKind classifies a node in the lexical nesting tree.
type ScopeKind int

const (
	ScopeProto ScopeKind = iota
	ScopeMessage
	ScopeEnum
	ScopeService
	ScopeComment
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeProto:
		return "proto"
	case ScopeMessage:
		return "message"
	case ScopeEnum:
		return "enum"
	case ScopeService:
		return "service"
	case ScopeComment:
		return "comment"
	}
	return "unknown"
}

// ScopeID indexes a node within a ScopeTree.
type ScopeID int

const NoScope ScopeID = -1

// scopeNode is stored in a flat arena with integer parent links rather than
// pointers; the tree is query-scoped and nothing may outlive the document
// snapshot it was computed from.
type scopeNode struct {
	kind      ScopeKind
	name      string
	parent    ScopeID
	children  []ScopeID
	line      int // line of the opening declaration
	openDepth int // brace depth recorded when the scope was pushed
}

// ScopeTree is the lexical nesting tree of one document at one point in
// time. Node 0 is always the Proto root. Trees are rebuilt from scratch on
// every query; there is no cross-query cache to go stale.
type ScopeTree struct {
	nodes     []scopeNode
	innermost ScopeID
}

// Root returns the Proto root scope.
func (t *ScopeTree) Root() ScopeID { return 0 }

// Innermost returns the deepest scope still open at the line the tree was
// computed up to. Unterminated blocks simply remain open.
func (t *ScopeTree) Innermost() ScopeID { return t.innermost }

func (t *ScopeTree) Kind(id ScopeID) ScopeKind {
	if id == NoScope {
		return ScopeProto
	}
	return t.nodes[id].kind
}

func (t *ScopeTree) Name(id ScopeID) string { return t.nodes[id].name }

func (t *ScopeTree) Parent(id ScopeID) ScopeID { return t.nodes[id].parent }

// Line returns the line number of the scope's opening declaration.
func (t *ScopeTree) Line(id ScopeID) int { return t.nodes[id].line }

// Children returns the scope's children in textual order.
func (t *ScopeTree) Children(id ScopeID) []ScopeID { return t.nodes[id].children }

// QualifiedName joins the scope's name with its ancestor names by ".", up to
// but excluding the Proto root. Comment scopes contribute nothing.
func (t *ScopeTree) QualifiedName(id ScopeID) string {
	var parts []string
	for id > 0 {
		if n := t.nodes[id].name; n != "" {
			parts = append(parts, n)
		}
		id = t.nodes[id].parent
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, ".")
}

// Find locates the scope whose dotted path from the root equals name.
func (t *ScopeTree) Find(name string) (ScopeID, bool) {
	segs := strings.Split(name, ".")
	id := t.Root()
outer:
	for _, seg := range segs {
		for _, c := range t.nodes[id].children {
			if t.nodes[c].name == seg {
				id = c
				continue outer
			}
		}
		return NoScope, false
	}
	return id, true
}

// EnclosingOfKind walks from id toward the root and returns the first scope
// of the given kind, or NoScope.
func (t *ScopeTree) EnclosingOfKind(id ScopeID, kind ScopeKind) ScopeID {
	for id > 0 {
		if t.nodes[id].kind == kind {
			return id
		}
		id = t.nodes[id].parent
	}
	return NoScope
}

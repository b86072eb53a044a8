package engine_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/protonav/protonav/pkg/engine"
	"github.com/stretchr/testify/require"
)

func TestParseMessageSingleField(t *testing.T) {
	info := engine.ParseMessage("Foo", "message Foo { int32 x = 1; // note\n }")
	require.Equal(t, "Foo", info.Name)
	require.Len(t, info.Fields, 1)
	require.Equal(t, engine.FieldInfo{
		Type:    "int32",
		Name:    "x",
		Number:  1,
		Comment: "note",
	}, info.Fields[0])
}

func TestParseMessageIsIdempotentOverRawSource(t *testing.T) {
	text := `syntax = "proto3";

// A user record.
message User {
  // unique id
  string id = 1;
  repeated string emails = 2; // all verified
  map<string, int64> counters = 3;

  message Profile {
    string bio = 1;
  }
  enum Kind {
    UNKNOWN = 0;
    ADMIN = 1; // has the keys
  }
  Kind kind = 4;
}

message Unrelated {
  int32 y = 1;
}
`
	first := engine.ParseMessage("User", text)
	require.NotEmpty(t, first.RawSource)
	second := engine.ParseMessage("User", first.RawSource)
	if diff := cmp.Diff(first.Fields, second.Fields); diff != "" {
		t.Errorf("re-parsing RawSource changed fields (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(first.NestedMessages, second.NestedMessages, cmpopts.IgnoreFields(engine.MessageInfo{}, "RawSource")); diff != "" {
		t.Errorf("re-parsing RawSource changed nested messages:\n%s", diff)
	}
}

func TestParseMessageStructure(t *testing.T) {
	text := `// A user record.
message User {
  // unique id
  string id = 1;
  repeated string emails = 2; // all verified
  map<string , int64> counters = 3;
  optional a.b.External ref = 4 [deprecated = true];

  message Profile {
    string bio = 1;
  }
  enum Kind {
    UNKNOWN = 0;
  }
}
`
	info := engine.ParseMessage("User", text)
	require.Equal(t, "A user record.", info.Comment)

	want := []engine.FieldInfo{
		{Type: "string", Name: "id", Number: 1, Comment: "unique id"},
		{Label: "repeated", Type: "string", Name: "emails", Number: 2, Comment: "all verified"},
		{Type: "map<string, int64>", Name: "counters", Number: 3},
		{Label: "optional", Type: "a.b.External", Name: "ref", Number: 4},
	}
	if diff := cmp.Diff(want, info.Fields); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, info.NestedMessages, 1)
	require.Equal(t, "Profile", info.NestedMessages[0].Name)
	require.Len(t, info.NestedMessages[0].Fields, 1)
	require.Equal(t, "bio", info.NestedMessages[0].Fields[0].Name)

	require.Len(t, info.NestedEnums, 1)
	require.Equal(t, "Kind", info.NestedEnums[0].Name)
}

func TestParseMessageNestedRoundTrip(t *testing.T) {
	info := engine.ParseMessage("Outer", "message Outer { message Inner { int32 v = 1; } }")
	require.Len(t, info.NestedMessages, 1)
	inner := info.NestedMessages[0]
	require.Equal(t, "Inner", inner.Name)
	require.Len(t, inner.Fields, 1)
	require.Equal(t, "v", inner.Fields[0].Name)
}

func TestParseMessageMalformedTagTolerance(t *testing.T) {
	text := `message M {
  string a = abc;
  string b = 2;
}
`
	info := engine.ParseMessage("M", text)
	require.Len(t, info.Fields, 1)
	require.Equal(t, "b", info.Fields[0].Name)
}

func TestParseMessageCommentAccumulation(t *testing.T) {
	text := `message M {
  // first
  // second
  int32 a = 1; // inline

  // does not survive the blank line

  int32 b = 2;
  option deprecated = true;
  // attached to nothing matchable
  oneof choice {
    string c = 3;
  }
  bool ok = 4;
}
`
	info := engine.ParseMessage("M", text)
	require.Len(t, info.Fields, 3)
	require.Equal(t, "first\nsecond\ninline", info.Fields[0].Comment)
	require.Equal(t, "", info.Fields[1].Comment)
	// fields inside the oneof block are nested one level down and skipped
	require.Equal(t, "ok", info.Fields[2].Name)
	require.Equal(t, "", info.Fields[2].Comment)
}

func TestParseMessageMissingOpener(t *testing.T) {
	info := engine.ParseMessage("Ghost", "message Other { int32 x = 1; }")
	require.Equal(t, "Ghost", info.Name)
	require.Empty(t, info.Fields)
	require.Empty(t, info.RawSource)
}

func TestParseMessageUnterminated(t *testing.T) {
	info := engine.ParseMessage("M", "message M {\n  int32 x = 1;\n")
	require.Len(t, info.Fields, 1)
	require.Equal(t, "x", info.Fields[0].Name)
}

func TestParseMessageRawSourceBalanced(t *testing.T) {
	text := `message Outer {
  message Inner {
    enum E { A = 0; }
  }
}
trailing garbage`
	info := engine.ParseMessage("Outer", text)
	opens := 0
	for _, c := range info.RawSource {
		switch c {
		case '{':
			opens++
		case '}':
			opens--
		}
	}
	require.Zero(t, opens, "RawSource brace balance must be exactly zero")
	require.NotContains(t, info.RawSource, "trailing garbage")
}

func TestParseEnum(t *testing.T) {
	text := `// Color space.
enum Color {
  option allow_alias = true;
  RED = 0; // primary
  BLUE = 1;
  NEGATIVE = -1;
  BAD = x;
}
`
	info := engine.ParseEnum("Color", text)
	require.Equal(t, "Color space.", info.Comment)
	want := []engine.EnumValueInfo{
		{Name: "RED", Number: 0, Comment: "primary"},
		{Name: "BLUE", Number: 1},
		{Name: "NEGATIVE", Number: -1},
	}
	if diff := cmp.Diff(want, info.Values); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestParseService(t *testing.T) {
	text := `service Watcher {
  // Streams updates.
  rpc Watch (WatchRequest) returns (stream WatchResponse);
  rpc Ping (PingRequest) returns (PingResponse) {
    option idempotency_level = NO_SIDE_EFFECTS;
  }
}
`
	info := engine.ParseService("Watcher", text)
	require.Len(t, info.RPCs, 2)
	require.Equal(t, engine.RPCInfo{
		Name:            "Watch",
		Request:         "WatchRequest",
		Response:        "WatchResponse",
		ServerStreaming: true,
		Comment:         "Streams updates.",
	}, info.RPCs[0])
	require.Equal(t, "Ping", info.RPCs[1].Name)
	require.Equal(t, "PingRequest", info.RPCs[1].Request)
}

func TestParseMessageBlockLeadingComment(t *testing.T) {
	text := `/*
 * Spans multiple lines.
 */
message M {
  int32 x = 1;
}
`
	info := engine.ParseMessage("M", text)
	require.Equal(t, "Spans multiple lines.", info.Comment)
}

package engine

import "fmt"

// primitiveTypes carries the static documentation card for each scalar type
// keyword. Hovering one of these never touches the filesystem.
var primitiveTypes = map[string]string{
	"double":   "A double-precision (64-bit) floating point number.",
	"float":    "A single-precision (32-bit) floating point number.",
	"int32":    "A 32-bit signed integer using variable-length encoding. Inefficient for negative values; use sint32 if the field is likely to hold them.",
	"int64":    "A 64-bit signed integer using variable-length encoding. Inefficient for negative values; use sint64 if the field is likely to hold them.",
	"uint32":   "A 32-bit unsigned integer using variable-length encoding.",
	"uint64":   "A 64-bit unsigned integer using variable-length encoding.",
	"sint32":   "A 32-bit signed integer using ZigZag variable-length encoding. More efficient than int32 for negative values.",
	"sint64":   "A 64-bit signed integer using ZigZag variable-length encoding. More efficient than int64 for negative values.",
	"fixed32":  "A 32-bit unsigned integer, always four bytes on the wire. More efficient than uint32 for values often greater than 2^28.",
	"fixed64":  "A 64-bit unsigned integer, always eight bytes on the wire. More efficient than uint64 for values often greater than 2^56.",
	"sfixed32": "A 32-bit signed integer, always four bytes on the wire.",
	"sfixed64": "A 64-bit signed integer, always eight bytes on the wire.",
	"bool":     "A boolean value.",
	"string":   "A string of text; must contain UTF-8 encoded or 7-bit ASCII text, and may not be longer than 2^32 bytes.",
	"bytes":    "An arbitrary sequence of bytes no longer than 2^32.",
}

func renderPrimitive(name string) string {
	return fmt.Sprintf("```protobuf\n%s\n```\n\n%s\n", name, primitiveTypes[name])
}

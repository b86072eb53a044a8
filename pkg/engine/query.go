package engine

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/kralicky/tools-lite/gopls/pkg/protocol"
)

// Engine answers hover and definition queries. It is a pure function of the
// document snapshot, cursor position and search-root list it is handed; two
// overlapping queries share nothing.
type Engine struct {
	resolver *Resolver
}

func NewEngine(source FileSource, roots []string) *Engine {
	return &Engine{resolver: &Resolver{Source: source, Roots: roots}}
}

// Resolver exposes the engine's resolver for callers that only need name
// resolution.
func (e *Engine) Resolver() *Resolver { return e.resolver }

// Hover classifies the word under the cursor and produces a documentation
// payload for it, or nil when there is nothing sensible to say.
func (e *Engine) Hover(ctx context.Context, doc Document, pos protocol.Position) (*protocol.Hover, error) {
	q, err := e.queryAt(ctx, doc, pos)
	if q == nil {
		return nil, err
	}
	return q.hover, err
}

// Definition resolves the word under the cursor to the location of its
// defining occurrence, or nil when it has none.
func (e *Engine) Definition(ctx context.Context, doc Document, pos protocol.Position) (*Location, error) {
	q, err := e.queryAt(ctx, doc, pos)
	if q == nil {
		return nil, err
	}
	return q.location, err
}

type queryResult struct {
	hover    *protocol.Hover
	location *Location
}

var importLinePattern = regexp.MustCompile(`^\s*import\s+(?:public\s+|weak\s+)?"([^"]+)"`)

// queryAt runs the classification sequence: comment, scalar keyword, import
// path, type-reference position, field name, enum value, then a bare-name
// fallback. The first state that produces a result wins.
func (e *Engine) queryAt(ctx context.Context, doc Document, pos protocol.Position) (*queryResult, error) {
	lines := splitLines(doc.Text)
	if int(pos.Line) >= len(lines) {
		return nil, nil
	}
	line := lines[pos.Line]
	col := int(pos.Character)

	word, wordRange := wordAt(line, int(pos.Line), col)
	if word == "" {
		return nil, nil
	}

	tree := ComputeScopeTree(doc.Text, int(pos.Line))

	if tree.Kind(tree.Innermost()) == ScopeComment || insideComment(line, col) {
		return nil, nil
	}

	if _, ok := primitiveTypes[word]; ok {
		return &queryResult{hover: markdownHover(renderPrimitive(word), wordRange)}, nil
	}

	if m := importLinePattern.FindStringSubmatch(line); m != nil {
		return e.importQuery(doc, m[1], wordRange)
	}

	dotted, dottedRange := dottedWordAt(line, int(pos.Line), col)

	if typeRefContext(line, dotted) {
		return e.typeQuery(ctx, doc, tree, dotted, dottedRange)
	}

	if m := fieldLinePattern.FindStringSubmatch(line); m != nil && m[3] == word {
		return e.fieldQuery(doc, tree, word, wordRange)
	}

	if tree.Kind(tree.Innermost()) == ScopeEnum {
		if m := enumValueLinePattern.FindStringSubmatch(line); m != nil && m[1] == word {
			return e.enumValueQuery(doc, tree, word, wordRange)
		}
	}

	return e.typeQuery(ctx, doc, tree, dotted, dottedRange)
}

// typeRefContext reports whether ref occupies a type position on the line: a
// field type, a map key or value, an rpc request or response, or an extend
// target.
func typeRefContext(line, ref string) bool {
	if ref == "" {
		return false
	}
	q := regexp.QuoteMeta(ref)
	for _, p := range []string{
		`^\s*(?:optional\s+|required\s+|repeated\s+)?` + q + `\s+[A-Za-z_]\w*\s*=`,
		`\bmap\s*<\s*` + q + `\s*,`,
		`\bmap\s*<[^,>]+,\s*` + q + `\s*>`,
		`\brpc\s+[A-Za-z_]\w*\s*\(\s*(?:stream\s+)?` + q + `\s*\)`,
		`\breturns\s*\(\s*(?:stream\s+)?` + q + `\s*\)`,
		`^\s*extend\s+` + q + `\b`,
	} {
		if ok, _ := regexp.MatchString(p, line); ok {
			return true
		}
	}
	return false
}

func (e *Engine) typeQuery(ctx context.Context, doc Document, tree *ScopeTree, ref string, rng protocol.Range) (*queryResult, error) {
	res, err := e.resolveType(ctx, doc, tree, ref)
	if res == nil || err != nil {
		return nil, err
	}
	var md string
	switch res.Kind {
	case ScopeEnum:
		md = renderEnum(parseEnumAt(res.Text, res.Line, res.Name))
	default:
		md = renderMessage(parseMessageAt(res.Text, res.Line, res.Name))
	}
	return &queryResult{hover: markdownHover(md, rng), location: res.Loc}, nil
}

// resolveType prefers a nested type visible from the enclosing scope over a
// same-named type elsewhere, then falls back to the resolver's global
// candidate search.
func (e *Engine) resolveType(ctx context.Context, doc Document, tree *ScopeTree, ref string) (*resolution, error) {
	ref = strings.TrimPrefix(ref, ".")
	if ref == "" {
		return nil, nil
	}
	fullTree := ComputeScopeTree(doc.Text, -1)
	for id := tree.Innermost(); id > 0; id = tree.Parent(id) {
		if tree.Kind(id) != ScopeMessage {
			continue
		}
		if target, ok := fullTree.Find(tree.QualifiedName(id) + "." + ref); ok {
			if k := fullTree.Kind(target); k == ScopeMessage || k == ScopeEnum {
				if res := resolutionAt(doc.Path, doc.Text, fullTree, target); res != nil {
					return res, nil
				}
			}
		}
	}
	return e.resolver.resolveRef(ctx, doc, ref)
}

func (e *Engine) importQuery(doc Document, importPath string, rng protocol.Range) (*queryResult, error) {
	path, data, ok := e.resolver.ResolveImport(doc, importPath)
	if !ok {
		return nil, nil
	}
	text := string(data)
	tree := ComputeScopeTree(text, -1)
	var messages, enums, services int
	for _, c := range tree.Children(tree.Root()) {
		switch tree.Kind(c) {
		case ScopeMessage:
			messages++
		case ScopeEnum:
			enums++
		case ScopeService:
			services++
		}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "`%s`\n\n", importPath)
	if pkg := PackageOf(text); pkg != "" {
		fmt.Fprintf(&b, "package `%s`\n\n", pkg)
	}
	fmt.Fprintf(&b, "%d messages, %d enums, %d services", messages, enums, services)
	return &queryResult{
		hover:    markdownHover(b.String(), rng),
		location: &Location{Path: path},
	}, nil
}

func (e *Engine) fieldQuery(doc Document, tree *ScopeTree, name string, rng protocol.Range) (*queryResult, error) {
	msg := tree.EnclosingOfKind(tree.Innermost(), ScopeMessage)
	if msg == NoScope {
		return nil, nil
	}
	info := parseMessageAt(doc.Text, tree.Line(msg), tree.Name(msg))
	for _, f := range info.Fields {
		if f.Name != name {
			continue
		}
		var b strings.Builder
		if f.Comment != "" {
			b.WriteString(f.Comment + "\n\n")
		}
		b.WriteString("```protobuf\n" + fieldSignature(f) + "\n```\n")
		return &queryResult{
			hover:    markdownHover(b.String(), rng),
			location: &Location{Path: doc.Path, Range: rng},
		}, nil
	}
	return nil, nil
}

func (e *Engine) enumValueQuery(doc Document, tree *ScopeTree, name string, rng protocol.Range) (*queryResult, error) {
	enum := tree.EnclosingOfKind(tree.Innermost(), ScopeEnum)
	if enum == NoScope {
		return nil, nil
	}
	info := parseEnumAt(doc.Text, tree.Line(enum), tree.Name(enum))
	for _, v := range info.Values {
		if v.Name != name {
			continue
		}
		var b strings.Builder
		if v.Comment != "" {
			b.WriteString(v.Comment + "\n\n")
		}
		fmt.Fprintf(&b, "```protobuf\n%s = %d;\n```\n", v.Name, v.Number)
		return &queryResult{
			hover:    markdownHover(b.String(), rng),
			location: &Location{Path: doc.Path, Range: rng},
		}, nil
	}
	return nil, nil
}

// parseMessageAt parses the message declared at the given line, recovering
// the leading comment from the text above when the narrowed parse cannot see
// it.
func parseMessageAt(text string, line int, name string) MessageInfo {
	lines := splitLines(text)
	if line >= len(lines) {
		return MessageInfo{Name: name}
	}
	info := ParseMessage(name, strings.Join(lines[line:], "\n"))
	if info.Comment == "" {
		info.Comment = commentAbove(text, offsetOfLine(text, line))
	}
	return info
}

func parseEnumAt(text string, line int, name string) EnumInfo {
	lines := splitLines(text)
	if line >= len(lines) {
		return EnumInfo{Name: name}
	}
	info := ParseEnum(name, strings.Join(lines[line:], "\n"))
	if info.Comment == "" {
		info.Comment = commentAbove(text, offsetOfLine(text, line))
	}
	return info
}

func offsetOfLine(text string, line int) int {
	off := 0
	for i, l := range splitLines(text) {
		if i >= line {
			break
		}
		off += len(l) + 1
	}
	if off > len(text) {
		off = len(text)
	}
	return off
}

func renderMessage(info MessageInfo) string {
	var b strings.Builder
	if info.Comment != "" {
		b.WriteString(info.Comment + "\n\n")
	}
	b.WriteString("```protobuf\n")
	fmt.Fprintf(&b, "message %s {\n", info.Name)
	for _, f := range info.Fields {
		for _, c := range commentLines(f.Comment) {
			fmt.Fprintf(&b, "  // %s\n", c)
		}
		fmt.Fprintf(&b, "  %s\n", fieldSignature(f))
	}
	for _, m := range info.NestedMessages {
		fmt.Fprintf(&b, "  message %s { … }\n", m.Name)
	}
	for _, en := range info.NestedEnums {
		fmt.Fprintf(&b, "  enum %s { … }\n", en.Name)
	}
	b.WriteString("}\n```\n")
	return b.String()
}

func renderEnum(info EnumInfo) string {
	var b strings.Builder
	if info.Comment != "" {
		b.WriteString(info.Comment + "\n\n")
	}
	b.WriteString("```protobuf\n")
	fmt.Fprintf(&b, "enum %s {\n", info.Name)
	for _, v := range info.Values {
		for _, c := range commentLines(v.Comment) {
			fmt.Fprintf(&b, "  // %s\n", c)
		}
		fmt.Fprintf(&b, "  %s = %d;\n", v.Name, v.Number)
	}
	b.WriteString("}\n```\n")
	return b.String()
}

func fieldSignature(f FieldInfo) string {
	var b strings.Builder
	if f.Label != "" {
		b.WriteString(f.Label + " ")
	}
	fmt.Fprintf(&b, "%s %s = %d;", f.Type, f.Name, f.Number)
	return b.String()
}

func commentLines(c string) []string {
	if c == "" {
		return nil
	}
	return strings.Split(c, "\n")
}

func markdownHover(md string, rng protocol.Range) *protocol.Hover {
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: md,
		},
		Range: rng,
	}
}

func isIdentByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// wordAt expands the identifier around col. When the cursor sits just past
// the last character, the word to its left is used, matching editor hover
// behavior.
func wordAt(line string, lineNo, col int) (string, protocol.Range) {
	return expandAt(line, lineNo, col, isIdentByte)
}

// dottedWordAt additionally crosses dots, producing the full qualified
// reference under the cursor.
func dottedWordAt(line string, lineNo, col int) (string, protocol.Range) {
	word, rng := expandAt(line, lineNo, col, func(b byte) bool {
		return isIdentByte(b) || b == '.'
	})
	trimmed := strings.Trim(word, ".")
	if d := len(word) - len(strings.TrimLeft(word, ".")); d > 0 {
		rng.Start.Character += uint32(d)
	}
	if d := len(word) - len(strings.TrimRight(word, ".")); d > 0 {
		rng.End.Character -= uint32(d)
	}
	return trimmed, rng
}

func expandAt(line string, lineNo, col int, include func(byte) bool) (string, protocol.Range) {
	if col > len(line) {
		col = len(line)
	}
	if col == len(line) || !include(line[col]) {
		if col > 0 && include(line[col-1]) {
			col--
		} else {
			return "", protocol.Range{}
		}
	}
	start, end := col, col+1
	for start > 0 && include(line[start-1]) {
		start--
	}
	for end < len(line) && include(line[end]) {
		end++
	}
	return line[start:end], protocol.Range{
		Start: protocol.Position{Line: uint32(lineNo), Character: uint32(start)},
		End:   protocol.Position{Line: uint32(lineNo), Character: uint32(end)},
	}
}

// insideComment reports whether col falls within a comment on this line.
// Only same-line spans are considered; multi-line block comments are handled
// by the scope tracker's comment scopes.
func insideComment(line string, col int) bool {
	if idx := strings.Index(line, "//"); idx >= 0 && col >= idx {
		return true
	}
	for i := 0; i < len(line); {
		s := strings.Index(line[i:], "/*")
		if s < 0 {
			return false
		}
		s += i
		e := strings.Index(line[s+2:], "*/")
		if e < 0 {
			return col > s
		}
		e += s + 2 + 2
		if col > s && col < e {
			return true
		}
		i = e
	}
	return false
}

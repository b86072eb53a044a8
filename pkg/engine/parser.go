package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Field, enum value and rpc line grammars. These are deliberately looser
// than the protobuf grammar: lines that partially match but carry an invalid
// tag simply fail the pattern and are omitted, never reported.
var (
	fieldLinePattern = regexp.MustCompile(`^\s*(?:(optional|required|repeated)\s+)?` +
		`(map\s*<\s*[\w.]+\s*,\s*[\w.]+\s*>|\.?[A-Za-z_][\w.]*)\s+` +
		`([A-Za-z_]\w*)\s*=\s*(\d+)\s*(?:\[[^\]]*\])?\s*;\s*(?://+\s*(.*?))?\s*$`)

	enumValueLinePattern = regexp.MustCompile(`^\s*([A-Za-z_]\w*)\s*=\s*(-?\d+)\s*` +
		`(?:\[[^\]]*\])?\s*;\s*(?://+\s*(.*?))?\s*$`)

	rpcLinePattern = regexp.MustCompile(`^\s*rpc\s+([A-Za-z_]\w*)\s*\(\s*(stream\s+)?(\.?[\w.]+)\s*\)\s*` +
		`returns\s*\(\s*(stream\s+)?(\.?[\w.]+)\s*\)\s*[;{]?\s*(?://+\s*(.*?))?\s*$`)

	nestedOpenPattern = regexp.MustCompile(`^\s*(message|enum)\s+([A-Za-z_]\w*)\s*\{`)

	// statements that can never be fields but would otherwise leave a stale
	// pending comment attached to the next field
	statementKeywordPattern = regexp.MustCompile(`^\s*(option|reserved|extensions|extend|oneof|rpc|group)\b`)

	mapTypePattern = regexp.MustCompile(`^map\s*<\s*([\w.]+)\s*,\s*([\w.]+)\s*>$`)
)

// ParseMessage extracts the structure of the first "message name {" block in
// text. If no such block exists the returned info has the given name and no
// fields; callers treat that as a legitimate, if unhelpful, result.
func ParseMessage(name, text string) MessageInfo {
	info := MessageInfo{Name: name}
	declStart, open, ok := findDecl("message", name, text)
	if !ok {
		return info
	}
	bodyEnd, rawEnd := blockExtent(text, open)
	info.RawSource = strings.TrimLeft(text[declStart:rawEnd], " \t")
	info.Comment = commentAbove(text, declStart)

	depth := 0
	inBlock := false
	var pending []string
	lines := splitLines(text[open+1 : bodyEnd])
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		startedInBlock := inBlock
		code, nb := stripComments(line, inBlock)
		inBlock = nb
		codeTrim := strings.TrimSpace(code)
		d := strings.Count(code, "{") - strings.Count(code, "}")

		if depth > 0 || startedInBlock || nb {
			// inside a nested block or a block comment: nothing here is ours
			pending = nil
			depth += d
			if depth < 0 {
				depth = 0
			}
			continue
		}

		if codeTrim == "" {
			if c, isComment := cutLineComment(line); isComment {
				pending = append(pending, c)
			} else {
				// blank lines break comment runs; comments never skip over them
				pending = nil
			}
			depth += d
			continue
		}

		if m := nestedOpenPattern.FindStringSubmatch(code); m != nil {
			rest := strings.Join(lines[i:], "\n")
			switch m[1] {
			case "message":
				nested := ParseMessage(m[2], rest)
				if nested.Comment == "" && len(pending) > 0 {
					nested.Comment = strings.Join(pending, "\n")
				}
				info.NestedMessages = append(info.NestedMessages, nested)
			case "enum":
				nested := ParseEnum(m[2], rest)
				if nested.Comment == "" && len(pending) > 0 {
					nested.Comment = strings.Join(pending, "\n")
				}
				info.NestedEnums = append(info.NestedEnums, nested)
			}
			pending = nil
		} else if statementKeywordPattern.MatchString(code) {
			pending = nil
		} else if m := fieldLinePattern.FindStringSubmatch(line); m != nil {
			if number, err := strconv.Atoi(m[4]); err == nil {
				info.Fields = append(info.Fields, FieldInfo{
					Label:   m[1],
					Type:    normalizeType(m[2]),
					Name:    m[3],
					Number:  number,
					Comment: joinComments(pending, m[5]),
				})
			}
			pending = nil
		} else {
			pending = nil
		}

		depth += d
		if depth < 0 {
			depth = 0
		}
	}
	return info
}

// ParseEnum extracts the structure of the first "enum name {" block in text.
// Same fail-soft contract as ParseMessage.
func ParseEnum(name, text string) EnumInfo {
	info := EnumInfo{Name: name}
	declStart, open, ok := findDecl("enum", name, text)
	if !ok {
		return info
	}
	bodyEnd, rawEnd := blockExtent(text, open)
	info.RawSource = strings.TrimLeft(text[declStart:rawEnd], " \t")
	info.Comment = commentAbove(text, declStart)

	depth := 0
	inBlock := false
	var pending []string
	for _, line := range splitLines(text[open+1 : bodyEnd]) {
		startedInBlock := inBlock
		code, nb := stripComments(line, inBlock)
		inBlock = nb
		codeTrim := strings.TrimSpace(code)
		d := strings.Count(code, "{") - strings.Count(code, "}")

		if depth > 0 || startedInBlock || nb {
			pending = nil
			depth += d
			if depth < 0 {
				depth = 0
			}
			continue
		}
		if codeTrim == "" {
			if c, isComment := cutLineComment(line); isComment {
				pending = append(pending, c)
			} else {
				pending = nil
			}
			depth += d
			continue
		}
		if statementKeywordPattern.MatchString(code) {
			pending = nil
		} else if m := enumValueLinePattern.FindStringSubmatch(line); m != nil {
			if number, err := strconv.Atoi(m[2]); err == nil {
				info.Values = append(info.Values, EnumValueInfo{
					Name:    m[1],
					Number:  number,
					Comment: joinComments(pending, m[3]),
				})
			}
			pending = nil
		} else {
			pending = nil
		}
		depth += d
		if depth < 0 {
			depth = 0
		}
	}
	return info
}

// ParseService extracts the first "service name {" block and its rpc
// signatures.
func ParseService(name, text string) ServiceInfo {
	info := ServiceInfo{Name: name}
	declStart, open, ok := findDecl("service", name, text)
	if !ok {
		return info
	}
	bodyEnd, rawEnd := blockExtent(text, open)
	info.RawSource = strings.TrimLeft(text[declStart:rawEnd], " \t")
	info.Comment = commentAbove(text, declStart)

	depth := 0
	inBlock := false
	var pending []string
	for _, line := range splitLines(text[open+1 : bodyEnd]) {
		startedInBlock := inBlock
		code, nb := stripComments(line, inBlock)
		inBlock = nb
		codeTrim := strings.TrimSpace(code)
		d := strings.Count(code, "{") - strings.Count(code, "}")

		if depth > 0 || startedInBlock || nb {
			pending = nil
			depth += d
			if depth < 0 {
				depth = 0
			}
			continue
		}
		if codeTrim == "" {
			if c, isComment := cutLineComment(line); isComment {
				pending = append(pending, c)
			} else {
				pending = nil
			}
			depth += d
			continue
		}
		if m := rpcLinePattern.FindStringSubmatch(line); m != nil {
			info.RPCs = append(info.RPCs, RPCInfo{
				Name:            m[1],
				Request:         m[3],
				Response:        m[5],
				ClientStreaming: m[2] != "",
				ServerStreaming: m[4] != "",
				Comment:         joinComments(pending, m[6]),
			})
			pending = nil
		} else {
			pending = nil
		}
		depth += d
		if depth < 0 {
			depth = 0
		}
	}
	return info
}

// findDecl locates "keyword name ... {" at the start of a line and returns
// the offset of the line start and of the opening brace.
func findDecl(keyword, name, text string) (declStart, open int, ok bool) {
	re := regexp.MustCompile(`(?m)^[ \t]*` + keyword + `[ \t]+` + regexp.QuoteMeta(name) + `\b[^{\n]*\{`)
	loc := re.FindStringIndex(text)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1] - 1, true
}

// blockExtent returns the end offsets of the block opened at open: bodyEnd is
// the offset of the matching closing brace (exclusive body bound) and rawEnd
// the offset just past it. An unterminated block extends to the end of text.
func blockExtent(text string, open int) (bodyEnd, rawEnd int) {
	if close := matchingBrace(text, open); close >= 0 {
		return close, close + 1
	}
	return len(text), len(text)
}

// matchingBrace finds the brace closing the one at open, skipping comment
// spans. A non-recursive regex cannot do this; nested messages, enums and
// oneofs require the explicit counter. Returns -1 if the block never closes.
func matchingBrace(text string, open int) int {
	depth := 0
	for i := open; i < len(text); i++ {
		switch {
		case strings.HasPrefix(text[i:], "//"):
			nl := strings.IndexByte(text[i:], '\n')
			if nl < 0 {
				return -1
			}
			i += nl
		case strings.HasPrefix(text[i:], "/*"):
			end := strings.Index(text[i+2:], "*/")
			if end < 0 {
				return -1
			}
			i += end + 3
		case text[i] == '{':
			depth++
		case text[i] == '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// commentAbove collects the comment run immediately preceding the
// declaration starting at declStart: either consecutive "//" lines or one
// "/* */" block, with no blank line in between.
func commentAbove(text string, declStart int) string {
	lines := splitLines(text[:declStart])
	if len(lines) > 0 {
		// drop the partial fragment of the declaration line itself
		lines = lines[:len(lines)-1]
	}
	i := len(lines) - 1
	if i < 0 {
		return ""
	}
	if strings.HasSuffix(strings.TrimSpace(lines[i]), "*/") {
		for j := i; j >= 0; j-- {
			if strings.Contains(lines[j], "/*") {
				return normalizeBlockComment(lines[j : i+1])
			}
		}
		return ""
	}
	var run []string
	for ; i >= 0; i-- {
		c, isComment := cutLineComment(lines[i])
		if !isComment {
			break
		}
		run = append([]string{c}, run...)
	}
	return strings.Join(run, "\n")
}

// cutLineComment reports whether the line is a standalone "//" comment and
// returns its text with the marker stripped.
func cutLineComment(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "//") {
		return "", false
	}
	return strings.TrimSpace(strings.TrimLeft(trimmed, "/")), true
}

func normalizeBlockComment(lines []string) string {
	var out []string
	for _, l := range lines {
		l = strings.TrimSpace(l)
		l = strings.TrimPrefix(l, "/*")
		l = strings.TrimSuffix(l, "*/")
		l = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(l), "*"))
		if l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}

func joinComments(pending []string, inline string) string {
	parts := append([]string{}, pending...)
	if inline != "" {
		parts = append(parts, inline)
	}
	return strings.Join(parts, "\n")
}

// normalizeType canonicalizes map types to "map<K, V>" and leaves everything
// else untouched.
func normalizeType(t string) string {
	if m := mapTypePattern.FindStringSubmatch(t); m != nil {
		return fmt.Sprintf("map<%s, %s>", m[1], m[2])
	}
	return t
}

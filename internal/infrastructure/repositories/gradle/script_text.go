package gradle

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedScript is returned when a block of the script cannot be delimited.
var ErrMalformedScript = errors.New("malformed build script")

const indent = "    "

// block is a "header { ... }" region; open and close are the brace offsets.
type block struct {
	header int
	open   int
	close  int
}

// line is a line of the script; end excludes the newline.
type line struct {
	start int
	end   int
	text  string
}

// skipNonCode returns the offset after the string or comment starting at i, or i
// when none starts there.
func skipNonCode(source string, i int) int {
	switch {
	case strings.HasPrefix(source[i:], "//"):
		if end := strings.IndexByte(source[i:], '\n'); end >= 0 {
			return i + end
		}
		return len(source)
	case strings.HasPrefix(source[i:], "/*"):
		if end := strings.Index(source[i+2:], "*/"); end >= 0 {
			return i + 2 + end + 2 //nolint:mnd // skip both delimiters
		}
		return len(source)
	case source[i] == '\'' || source[i] == '"':
		quote := source[i]
		for j := i + 1; j < len(source); j++ {
			if source[j] == '\\' {
				j++
				continue
			}
			if source[j] == quote || source[j] == '\n' {
				return j + 1
			}
		}
		return len(source)
	}
	return i
}

func isIdentChar(c byte) bool {
	return c == '_' || c == '.' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// matchBrace returns the offset of the brace closing the one at open.
func matchBrace(source string, open int) (int, bool) {
	depth := 0
	for i := open; i < len(source); {
		if next := skipNonCode(source, i); next != i {
			i = next
			continue
		}
		switch source[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
		i++
	}
	return 0, false
}

// findBlock locates the first top-level block introduced by header.
func findBlock(source, header string) (block, bool, error) {
	depth := 0
	for i := 0; i < len(source); {
		if next := skipNonCode(source, i); next != i {
			i = next
			continue
		}

		c := source[i]
		switch {
		case c == '{':
			depth++
		case c == '}':
			depth--
		case depth == 0 && strings.HasPrefix(source[i:], header) && (i == 0 || !isIdentChar(source[i-1])):
			j := i + len(header)
			for j < len(source) && isSpace(source[j]) {
				j++
			}
			if j < len(source) && source[j] == '{' {
				end, ok := matchBrace(source, j)
				if !ok {
					return block{}, false, fmt.Errorf("%w: unclosed %q block", ErrMalformedScript, header)
				}
				return block{header: i, open: j, close: end}, true, nil
			}
		}
		i++
	}
	return block{}, false, nil
}

// linesIn splits source[from:to] into lines keeping their offsets.
func linesIn(source string, from, to int) []line {
	var lines []line
	for start := from; start < to; {
		end := strings.IndexByte(source[start:to], '\n')
		if end < 0 {
			lines = append(lines, line{start: start, end: to, text: source[start:to]})
			break
		}
		lines = append(lines, line{start: start, end: start + end, text: source[start : start+end]})
		start += end + 1
	}
	return lines
}

// removeRange deletes source[start:end] plus the newline following it.
func removeRange(source string, start, end int) string {
	if end < len(source) && source[end] == '\n' {
		end++
	}
	return source[:start] + source[end:]
}

// insertBeforeClose adds entry as the last line of b.
func insertBeforeClose(source string, b block, entry string) string {
	lineStart := strings.LastIndexByte(source[:b.close], '\n') + 1
	if strings.TrimSpace(source[lineStart:b.close]) == "" && lineStart > b.open {
		return source[:lineStart] + entry + "\n" + source[lineStart:]
	}
	return source[:b.close] + "\n" + entry + "\n" + source[b.close:]
}

// appendText adds text at the end of source, separated by a blank line.
func appendText(source, text string) string {
	switch {
	case source == "":
		return text
	case strings.HasSuffix(source, "\n"):
		return source + "\n" + text
	default:
		return source + "\n\n" + text
	}
}

// insertIntoBlock adds entry to the block introduced by header, creating the block when absent.
func insertIntoBlock(source, header, entry string) (string, error) {
	b, found, err := findBlock(source, header)
	if err != nil {
		return "", err
	}
	if !found {
		return appendText(source, header+" {\n"+entry+"\n}\n"), nil
	}
	return insertBeforeClose(source, b, entry), nil
}

func quote(value string) string {
	return "'" + strings.NewReplacer(`\`, `\\`, "'", `\'`, "\n", `\n`, "\r", `\r`).Replace(value) + "'"
}

func unquote(value string) string {
	value = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), ";"))
	if len(value) < 2 || (value[0] != '\'' && value[0] != '"') || value[len(value)-1] != value[0] {
		return value
	}

	inner := value[1 : len(value)-1]
	var sb strings.Builder
	for i := 0; i < len(inner); i++ {
		if inner[i] != '\\' || i+1 == len(inner) {
			sb.WriteByte(inner[i])
			continue
		}
		i++
		switch inner[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		default:
			sb.WriteByte(inner[i])
		}
	}
	return sb.String()
}

// codeOf returns text without a trailing comment or statement separator.
func codeOf(text string) string {
	for i := 0; i < len(text); {
		if strings.HasPrefix(text[i:], "//") || strings.HasPrefix(text[i:], "/*") {
			text = text[:i]
			break
		}
		if next := skipNonCode(text, i); next != i {
			i = next
			continue
		}
		i++
	}
	return strings.TrimRight(text, " \t;")
}

package report

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
)

var (
	keyColor     = color.New(color.FgBlue, color.Bold)
	stringColor  = color.New(color.FgGreen)
	numberColor  = color.New(color.FgCyan, color.Bold)
	literalColor = color.New(color.FgMagenta, color.Italic)
)

// Highlight indents a JSON document by two spaces and colours its tokens.
// Colours are omitted when color.NoColor is set.
func Highlight(src []byte) ([]byte, error) {
	var indented bytes.Buffer
	if err := json.Indent(&indented, src, "", "  "); err != nil {
		return nil, fmt.Errorf("failed to indent json: %w", err)
	}

	b := indented.Bytes()
	var out bytes.Buffer
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c == '"':
			end := stringEnd(b, i)
			tok := string(b[i:end])
			if nextNonSpace(b, end) == ':' {
				out.WriteString(keyColor.Sprint(tok))
			} else {
				out.WriteString(stringColor.Sprint(tok))
			}
			i = end
		case c == '-' || (c >= '0' && c <= '9'):
			end := i + 1
			for end < len(b) && bytes.IndexByte([]byte("0123456789+-.eE"), b[end]) >= 0 {
				end++
			}
			out.WriteString(numberColor.Sprint(string(b[i:end])))
			i = end
		case c >= 'a' && c <= 'z':
			end := i + 1
			for end < len(b) && b[end] >= 'a' && b[end] <= 'z' {
				end++
			}
			out.WriteString(literalColor.Sprint(string(b[i:end])))
			i = end
		default:
			out.WriteByte(c)
			i++
		}
	}
	return out.Bytes(), nil
}

// stringEnd returns the index just past the string literal starting at b[start].
func stringEnd(b []byte, start int) int {
	for i := start + 1; i < len(b); i++ {
		switch b[i] {
		case '\\':
			i++
		case '"':
			return i + 1
		}
	}
	return len(b)
}

func nextNonSpace(b []byte, from int) byte {
	for i := from; i < len(b); i++ {
		switch b[i] {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b[i]
	}
	return 0
}

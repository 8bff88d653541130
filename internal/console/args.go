package console

import (
	"errors"
	"strings"
)

// 空白区切り。"..." でくくれば空白を含められる。
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		cur     strings.Builder
		inQuote bool
		hasTok  bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			hasTok = true
		case (r == ' ' || r == '\t') && !inQuote:
			if hasTok {
				args = append(args, cur.String())
				cur.Reset()
				hasTok = false
			}
		default:
			cur.WriteRune(r)
			hasTok = true
		}
	}
	if inQuote {
		return nil, errors.New("unterminated quote")
	}
	if hasTok {
		args = append(args, cur.String())
	}
	return args, nil
}

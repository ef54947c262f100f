package manifest

import (
	"errors"
	"strings"
)

// ErrUnhandledValue marks a manifest value in none of the recognized forms.
var ErrUnhandledValue = errors.New("unhandled value form")

// parseValue reads one manifest value expression from the head of s and
// returns the parsed strings plus the number of bytes consumed. The four
// recognized forms are:
//
//	key 'value'
//	key('value')
//	key {'a', 'b'}
//	key({'a', 'b'})
func parseValue(s string) ([]string, int, error) {
	if s == "" {
		return nil, 0, ErrUnhandledValue
	}

	switch s[0] {
	case '(':
		if len(s) > 1 && s[1] == '{' {
			end := strings.IndexByte(s, '}')
			if end < 0 {
				return nil, 0, ErrUnhandledValue
			}
			return splitQuoted(s[2:end]), end + 1, nil
		}

		end := strings.IndexByte(s, ')')
		if end < 0 {
			return nil, 0, ErrUnhandledValue
		}
		v, _, err := readQuoted(strings.TrimSpace(s[1:end]))
		if err != nil {
			return nil, 0, err
		}
		return []string{v}, end + 1, nil

	case '\'', '"':
		v, n, err := readQuoted(s)
		if err != nil {
			return nil, 0, err
		}
		return []string{v}, n, nil

	case '{':
		end := strings.IndexByte(s, '}')
		if end < 0 {
			return nil, 0, ErrUnhandledValue
		}
		return splitQuoted(s[1:end]), end + 1, nil
	}

	return nil, 0, ErrUnhandledValue
}

// readQuoted reads a leading quoted string and reports how many bytes it
// consumed, closing quote included.
func readQuoted(s string) (string, int, error) {
	if s == "" || (s[0] != '\'' && s[0] != '"') {
		return "", 0, ErrUnhandledValue
	}

	end := strings.IndexByte(s[1:], s[0])
	if end < 0 {
		return "", 0, ErrUnhandledValue
	}

	return s[1 : 1+end], end + 2, nil
}

// splitQuoted extracts all quoted strings from a brace-list body, ignoring
// commas and whitespace between them.
func splitQuoted(s string) []string {
	var out []string
	for i := 0; i < len(s); i++ {
		if s[i] != '\'' && s[i] != '"' {
			continue
		}
		end := strings.IndexByte(s[i+1:], s[i])
		if end < 0 {
			break
		}
		out = append(out, s[i+1:i+1+end])
		i += end + 1
	}
	return out
}

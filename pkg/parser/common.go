package parser

import (
	"bytes"
	"errors"
	"strconv"
)

// Nginx escapes `"`, `\` to `\xXX`
// Apache esacpes `"`, `\` to `\"` `\\`
func findEndingDoubleQuote(data []byte) int {
	inEscape := false
	for i := 0; i < len(data); i++ {
		if inEscape {
			inEscape = false
		} else {
			if data[i] == '\\' {
				inEscape = true
			} else if data[i] == '"' {
				return i
			}
		}
	}
	return -1
}

// splitFields splits line by spaces and tabs. A field starting with `"`
// runs to the matching unescaped quote and a field starting with `[` runs
// to the next `]`; the delimiters are stripped. Runs of blanks count as one
// separator.
func splitFields(line []byte) ([][]byte, error) {
	res := make([][]byte, 0, 16)
	for baseIdx := 0; baseIdx < len(line); {
		switch line[baseIdx] {
		case ' ', '\t':
			baseIdx++
		case '"':
			quoteIdx := findEndingDoubleQuote(line[baseIdx+1:])
			if quoteIdx == -1 {
				return res, errors.New("unexpected format: unbalanced quotes")
			}
			res = append(res, line[baseIdx+1:baseIdx+quoteIdx+1])
			baseIdx += quoteIdx + 2
		case '[':
			bracketIdx := bytes.IndexByte(line[baseIdx+1:], ']')
			if bracketIdx == -1 {
				return res, errors.New("unexpected format: no ]")
			}
			res = append(res, line[baseIdx+1:baseIdx+bracketIdx+1])
			baseIdx += bracketIdx + 2
		default:
			spaceIdx := bytes.IndexAny(line[baseIdx:], " \t")
			if spaceIdx == -1 {
				res = append(res, line[baseIdx:])
				return res, nil
			}
			res = append(res, line[baseIdx:baseIdx+spaceIdx])
			baseIdx += spaceIdx + 1
		}
	}
	return res, nil
}

// splitRequest splits "$request" into method, URL and protocol.
func splitRequest(request []byte) (method, url, protocol []byte) {
	url = request
	spaceIndex := bytes.IndexByte(url, ' ')
	if spaceIndex == -1 {
		// Some abnormal requests do not have a HTTP method
		// Sliently ignore this case
		return nil, url, nil
	}
	method, url = url[:spaceIndex], url[spaceIndex+1:]
	spaceIndex = bytes.LastIndexByte(url, ' ')
	if spaceIndex == -1 {
		// Some abnormal requests do not have a HTTP version
		return method, url, nil
	}
	return method, url[:spaceIndex], url[spaceIndex+1:]
}

// parseSize reads $body_bytes_sent. "-", empty and garbage all mean 0.
func parseSize(b []byte) uint64 {
	if len(b) == 0 || (len(b) == 1 && b[0] == '-') {
		return 0
	}
	size, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return 0
	}
	return size
}

// Package jsonutil extracts JSON payloads from LLM text responses, which
// routinely wrap the payload in prose or markdown fences.
package jsonutil

import (
	"encoding/json"
	"errors"
)

var (
	ErrNoObject = errors.New("jsonutil: no JSON object found")
	ErrNoArray  = errors.New("jsonutil: no JSON array found")
)

// ExtractObject returns the first balanced {...} object in s that parses
// as valid JSON. Leading and trailing prose is tolerated.
func ExtractObject(s string) (string, error) {
	if isValid(s) && len(s) > 0 && s[0] == '{' {
		return s, nil
	}
	out, ok := extractBalanced(s, '{', '}')
	if !ok {
		return "", ErrNoObject
	}
	return out, nil
}

// ExtractArray returns the first balanced [...] array in s that parses
// as valid JSON.
func ExtractArray(s string) (string, error) {
	if isValid(s) && len(s) > 0 && s[0] == '[' {
		return s, nil
	}
	out, ok := extractBalanced(s, '[', ']')
	if !ok {
		return "", ErrNoArray
	}
	return out, nil
}

// extractBalanced tries every opening byte in s as a candidate start.
// A stray opener in the prose (unbalanced, or balanced but not valid
// JSON) must not shadow a real payload later in the text.
func extractBalanced(s string, open, close byte) (string, bool) {
	for start := 0; start < len(s); start++ {
		if s[start] != open {
			continue
		}
		end, ok := scanBalanced(s, start, open, close)
		if !ok {
			continue
		}
		candidate := s[start : end+1]
		if isValid(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// scanBalanced returns the index of the byte closing the opener at
// start, skipping string literals and escapes.
func scanBalanced(s string, start int, open, close byte) (int, bool) {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

func isValid(s string) bool {
	var raw json.RawMessage
	return json.Unmarshal([]byte(s), &raw) == nil
}

package service

import (
	"errors"
	"strings"
)

// ValidatePlaceholders checks that template content carries at least one
// well-formed {{placeholder}} token and no empty ones.
//
// The scan is a non-nested, greedy, left-to-right pass: each "{{" is paired
// with the nearest following "}}", and scanning resumes after that token.
// So "{{a{{b}}" yields one token with interior "a{{b". A trailing "{{" with
// no closing delimiter is not a placeholder; it neither counts nor errors.
func ValidatePlaceholders(content string) error {
	valid := 0
	rest := content
	for {
		start := strings.Index(rest, "{{")
		if start < 0 {
			break
		}
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end < 0 {
			// Unterminated token, not recognized as a placeholder
			break
		}

		if strings.TrimSpace(rest[:end]) == "" {
			return errors.New("placeholders cannot be empty, use {{name}} with a descriptive name")
		}
		valid++
		rest = rest[end+2:]
	}

	if valid == 0 {
		return errors.New("content must contain at least one placeholder like {{topic}}")
	}

	return nil
}

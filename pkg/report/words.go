package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// DefaultMaxInputSize is 64KB.
	DefaultMaxInputSize = 64 * 1024
	// EnvMaxInputSize is the environment variable to override the default
	EnvMaxInputSize = "NFASIM_MAX_INPUT_SIZE"
)

var (
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("input contains invalid UTF-8 sequences")
)

// ParseWord turns a raw input line into symbols.
// A line starting with '[' is decoded as a JSON array of strings; anything else is
// split on whitespace. Control characters are stripped and an empty line is the
// empty word.
func ParseWord(line string) ([]string, error) {
	clean, err := sanitize(line)
	if err != nil {
		return nil, err
	}
	clean = strings.TrimSpace(clean)

	if strings.HasPrefix(clean, "[") {
		var symbols []string
		if err := json.Unmarshal([]byte(clean), &symbols); err != nil {
			return nil, fmt.Errorf("invalid symbol list: %w", err)
		}
		if symbols == nil {
			symbols = []string{}
		}
		return symbols, nil
	}
	return strings.Fields(clean), nil
}

// sanitize enforces the size limit, validates UTF-8 and strips control characters.
func sanitize(input string) (string, error) {
	limit := maxInputSize()
	if len(input) > limit {
		// Reject rather than truncate: a truncated word is a different word.
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(input), limit)
	}
	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}

	clean := true
	for _, r := range input {
		if unicode.IsControl(r) && !isSafeControl(r) {
			clean = false
			break
		}
	}
	if clean {
		return input, nil
	}

	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if !unicode.IsControl(r) || isSafeControl(r) {
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}

func isSafeControl(r rune) bool {
	return r == '\n' || r == '\t' || r == '\r'
}

func maxInputSize() int {
	if val := os.Getenv(EnvMaxInputSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxInputSize
}

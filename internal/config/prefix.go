package config

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

// Prefix validation errors
var (
	ErrPrefixTooShort           = errors.New("prefix must be at least 2 characters")
	ErrPrefixTooLong            = errors.New("prefix must be at most 32 characters")
	ErrPrefixInvalidChars       = errors.New("prefix must contain only lowercase letters, numbers, and hyphens")
	ErrPrefixInvalidStart       = errors.New("prefix must start with a lowercase letter")
	ErrPrefixInvalidEnd         = errors.New("prefix must end with a lowercase letter or number")
	ErrPrefixConsecutiveHyphens = errors.New("prefix cannot contain consecutive hyphens")
)

// prefixRegex matches a class prefix that stays a single valid CSS class
// token once "-suffix" is appended.
var prefixRegex = regexp.MustCompile(`^[a-z][a-z0-9-]*[a-z0-9]$`)

// ValidatePrefix validates a global class prefix:
// - 2-32 characters
// - Lowercase alphanumeric + hyphens only
// - Must start with a lowercase letter
// - Must end with a lowercase letter or digit
// - No consecutive hyphens
func ValidatePrefix(prefix string) error {
	if len(prefix) < 2 {
		return ErrPrefixTooShort
	}
	if len(prefix) > 32 {
		return ErrPrefixTooLong
	}

	if strings.Contains(prefix, "--") {
		return ErrPrefixConsecutiveHyphens
	}

	if !prefixRegex.MatchString(prefix) {
		firstChar := rune(prefix[0])
		if !unicode.IsLower(firstChar) || !unicode.IsLetter(firstChar) {
			return ErrPrefixInvalidStart
		}

		lastChar := rune(prefix[len(prefix)-1])
		if !unicode.IsLower(lastChar) && !unicode.IsDigit(lastChar) {
			return ErrPrefixInvalidEnd
		}

		return ErrPrefixInvalidChars
	}

	return nil
}

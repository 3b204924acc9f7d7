package utils

import (
	"strings"
	"unicode"
)

// CommandPrefix marks a shell token as a command rather than a word
const CommandPrefix = ":"

// SplitTokens splits a line into whitespace separated tokens
func SplitTokens(line string) []string {
	return strings.Fields(line)
}

// IsCommand reports whether a token starts a shell command
func IsCommand(token string) bool {
	return len(token) > len(CommandPrefix) && strings.HasPrefix(token, CommandPrefix)
}

// IsOnlyNumbers checks if a string consists entirely of numeric digits
func IsOnlyNumbers(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ContainsSpecialChars checks if a string contains anything but letters
func ContainsSpecialChars(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// SkipReason names why a dictionary entry is rejected, for debug logs
func SkipReason(s string) string {
	switch {
	case IsOnlyNumbers(s):
		return "numeric"
	case ContainsSpecialChars(s):
		return "special characters"
	default:
		return "outside a-z"
	}
}

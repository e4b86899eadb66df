package utils

import (
	"os"
	"strings"

	"todotree.dev/todotree/internal/errors"
)

// IsInteractive checks if we're in an interactive terminal
func IsInteractive() bool {
	// Allow forcing non-interactive mode via environment variable
	if os.Getenv("TODOTREE_NON_INTERACTIVE") != "" || os.Getenv("TODOTREE_TEST_NO_INTERACTIVE") != "" {
		return false
	}

	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// ValidateTitle rejects empty or whitespace-only titles. The engine itself
// accepts any string; callers enforce this at the boundary.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.ErrEmptyTitle
	}
	return nil
}

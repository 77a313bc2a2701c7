package internal

import (
	"os"
	"regexp"
	"strings"
)

// TrimLines collapses an indented JSON literal into its compact form so
// tests can compare response bodies written readably.
func TrimLines(s string) string {
	re := regexp.MustCompile(": +")
	trimmed := string(re.ReplaceAll([]byte(s), []byte(":")))
	trimmed = strings.ReplaceAll(trimmed, "\n", "")
	trimmed = strings.ReplaceAll(trimmed, "\t", "")
	trimmed = strings.TrimSpace(trimmed)
	return trimmed
}

// MustEnv returns the named environment variable and panics when it is
// missing or blank. Meant for main() wiring only.
func MustEnv(name string) string {
	value := os.Getenv(name)
	if strings.TrimSpace(value) == "" {
		panic(name + " is empty")
	}
	return value
}

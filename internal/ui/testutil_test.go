package ui

import "regexp"

// stripANSI removes ANSI escape sequences so assertions see plain text.
func stripANSI(s string) string {
	ansiRegex := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	return ansiRegex.ReplaceAllString(s, "")
}

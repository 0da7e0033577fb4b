package stitch

import (
	"regexp"
	"strings"
)

var (
	dropPattern     = regexp.MustCompile(`[^a-z0-9 ]+`)
	collapsePattern = regexp.MustCompile(` +`)
)

// Normalize lowercases text, drops everything outside [a-z0-9 ] and
// collapses runs of spaces into single spaces. Idempotent.
func Normalize(text string) string {
	cleaned := dropPattern.ReplaceAllString(strings.ToLower(text), "")
	return collapsePattern.ReplaceAllString(cleaned, " ")
}

// Tokenize splits a normalized message into its words. An empty or
// whitespace-only message yields no tokens.
func Tokenize(normalized string) []string {
	return strings.Fields(normalized)
}

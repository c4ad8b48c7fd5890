// Package textnorm canonicalizes free-text transaction fields so that
// keyword matching behaves the same regardless of how the source system
// encoded the text. The same function must be applied to rule keywords
// and to record text; matching silently fails if only one side is
// normalized.
package textnorm

import (
	"regexp"
	"strings"

	"golang.org/x/text/width"
)

// CorpToken is the canonical spelling of the Korean corporate-entity prefix.
const CorpToken = "(주)"

var (
	// corpVariant matches the spelled-out and symbol forms of the corporate
	// prefix, with any surrounding spaces or slashes.
	corpVariant = regexp.MustCompile(`[ /]*(?:주식회사|㈜)[ /]*`)

	// corpRun collapses repeated canonical tokens, optionally separated by
	// spaces, into a single occurrence.
	corpRun = regexp.MustCompile(`\(주\)(?: ?\(주\))+`)

	// spaceRun matches one or more whitespace characters, including the
	// full-width space and the non-breaking space.
	spaceRun = regexp.MustCompile(`[\s\x{00A0}\x{3000}]+`)
)

// Normalize returns the canonical form of s. It converts full-width
// characters to their half-width equivalents, collapses whitespace runs to
// a single ASCII space, rewrites corporate-entity name variants to (주),
// and trims the ends. The function is pure, total, and idempotent.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = width.Narrow.String(s)
	s = spaceRun.ReplaceAllString(s, " ")
	s = corpVariant.ReplaceAllString(s, CorpToken)
	s = corpRun.ReplaceAllString(s, CorpToken)

	return strings.TrimSpace(s)
}

// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize cleans user-supplied text before it is stored.
//
// Group names, leader names, and other short fields arriving from CSV
// imports or admin forms must end up as plain text. Descriptions may
// keep basic formatting.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy = bluemonday.StrictPolicy()
	ugcPolicy    = bluemonday.UGCPolicy()
)

// Strip removes all markup, leaving plain text only.
func Strip(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}

// Sanitize keeps basic user-generated-content formatting (paragraphs,
// emphasis, lists, links) and removes everything dangerous.
func Sanitize(s string) string {
	return strings.TrimSpace(ugcPolicy.Sanitize(s))
}

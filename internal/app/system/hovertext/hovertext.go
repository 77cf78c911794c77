// Package hovertext sanitizes journal free text before it is embedded in
// chart hover labels. Reasons and emotion descriptors come straight from
// user entries; the charting frontend injects hover templates as HTML, so
// everything passing through here is stripped to plain text with bluemonday.
package hovertext

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		// Hover labels carry no formatting; strip all markup.
		policy = bluemonday.StrictPolicy()
	})
	return policy
}

// Clean strips markup from one annotation and trims the result.
func Clean(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(getPolicy().Sanitize(s))
}

// CleanAll sanitizes a list of annotations, dropping entries that are empty
// after cleaning. A nil input yields an empty (non-nil) slice so hover data
// serializes as [] rather than null.
func CleanAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if c := Clean(s); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// Join renders annotations as a single hover line.
func Join(in []string) string {
	return strings.Join(CleanAll(in), ", ")
}

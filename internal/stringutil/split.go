// Package stringutil provides small string helpers shared by the CLI, the MCP
// server, and the renderer.
package stringutil

import "strings"

// SplitList splits a comma-separated option value into its trimmed, non-empty
// entries. An empty or blank input yields nil, which callers treat as "no
// filter on this axis".
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Set converts a list to a membership set. A nil or empty list yields nil.
func Set(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	m := make(map[string]bool, len(values))
	for _, v := range values {
		m[v] = true
	}
	return m
}

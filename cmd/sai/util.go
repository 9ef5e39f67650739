package main

import "strings"

// formatArgs renders a command-line argument slice for --verbose echo
// output, quoting any argument that contains a space, tab or double quote
// (embedded double quotes are backslash-escaped).
func formatArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if strings.ContainsAny(a, " \t\"") {
			quoted[i] = `"` + strings.ReplaceAll(a, `"`, `\"`) + `"`
		} else {
			quoted[i] = a
		}
	}
	return strings.Join(quoted, " ")
}

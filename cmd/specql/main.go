// Package main provides a CLI for rendering specql query specs.
//
// The CLI supports:
//   - render: Validate a spec and print the SQL statement
//   - validate: Check a spec without printing SQL
//   - dialects: List supported dialects and their restrictions
//   - config show: Print the effective configuration
//
// Specs are read from a YAML or JSON file, or from stdin when the file is
// omitted or "-".
//
// Usage:
//
//	specql [flags] <command>
package main

func main() {
	Execute()
}

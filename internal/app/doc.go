// Package app wires application dependencies for the CLI.
//
// It loads Config from YAML (with environment overrides), builds the logger,
// the car store and the high-level services, and exposes them via App for
// commands to use.
package app

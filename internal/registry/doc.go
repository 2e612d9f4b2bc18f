// Package registry is the catalog of the tour.
//
// Every topic package under lessons/ implements Module and registers its topic
// and lessons here at startup. The registry then answers lookups for the CLI,
// the HTTP server and the TUI, checks that a loaded tour plan only references
// lessons that exist, and resolves a plan plus command-line selectors into the
// ordered list of lessons a run executes.
package registry

// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the lifecycle behind every entrypoint: a
// batch run, the catalog, a single lesson, the HTTP server and the terminal
// browser. It is decoupled from the CLI that drives it.
package app

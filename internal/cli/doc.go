// Package cli is responsible for parsing command-line arguments, merging them
// with the settings file, and handling process-level concerns like exit codes.
// It translates flags into the application's configuration and dispatches to
// the App.
package cli

// Package runner executes resolved lessons on a bounded pool of goroutines.
//
// Every lesson gets its own console and its own deadline, so one slow or
// panicking lesson cannot affect another. Results are returned in the order
// the lessons were given, whatever order they finished in. When verification
// is on, each result carries a diff between the documented and the actual
// output.
package runner

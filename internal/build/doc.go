// Package build runs one composition end to end: load fragment files, optionally fill
// identity from the git remote, compose, resolve plugin references and write the output.
//
// All execution paths (CLI commands, the watcher, tests) route through Service so that
// logging and metrics stay uniform.
package build

// Package internal contains the implementation packages for joinstart.
//
// # Package Organization
//
//   - words: the fixed word sequence, Join, and the per-target output line
//   - foo: the entry target; prints its line and then calls bar
//   - bar: the library target; PrintBar and Fprint
//   - baz: the test-only target asserting the word sequence
//   - pkgset: third-party package manifest of the targets and its resolution
//   - config: Viper-backed settings (JOINSTART_ environment prefix)
//   - logging: slog-backed structured logging to stderr
//   - version: build information
//   - testutils: helpers shared by package tests
package internal

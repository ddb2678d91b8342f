// Package baz is the test-only target of the quickstart. Its tests assert the
// fixed word sequence element by element; the package has no runtime code.
package baz

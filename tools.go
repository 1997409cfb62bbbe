//go:build tools

package tools

// This file tracks CLI tool dependencies used via go:generate and make
// targets. It is not compiled into the binary.
//
// - github.com/matryer/moq (mock generation)
// - github.com/pressly/goose/v3/cmd/goose (manual migration runs)

//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// mockgen is run through `go generate` to refresh mocks/, so it is tracked
// here to keep go.mod / go.sum in sync on a fresh checkout.
package pressure_lab

import (
	_ "go.uber.org/mock/mockgen"
)

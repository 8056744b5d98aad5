// Package harness runs YAML-defined scenarios against a fresh engine and
// compares the resulting state against golden files.
//
// Each scenario is a sequence of engine operations with explicit timestamps,
// executed over an in-memory store with a sequential event-ID generator, so
// every run of the same scenario produces byte-identical state. Scenarios
// live in testdata/, golden snapshots in testdata/golden/.
//
// To regenerate golden files after an intentional behavior change:
//
//	go test ./internal/harness -update
package harness

// Package pipeline provides a framework for executing run steps in sequence.
//
// A sorting run passes through a fixed set of stages: partitioning the
// URLs into per-domain category files, exporting the extracted parameter
// names, and writing summary files. Each stage is implemented as a Step
// that receives the current Run and can modify it.
//
// Design decision: We use a pipeline pattern instead of direct function calls
// because:
// 1. Optional stages are added or left out without touching the core logic
// 2. It provides consistent error handling and logging across steps
// 3. It supports cancellation via context between stages
//
// Steps run strictly one after another. A run owns its output directory
// and nothing in it is shared between steps running at the same time.
package pipeline

// Package densemat is a small dense 2D matrix-of-float64 toolkit for Go:
// allocation, element access, elementwise and scalar arithmetic, naive
// matrix multiplication, and both out-of-place and in-place transposition.
//
// 🚀 What is densemat?
//
//	A compact, deterministic matrix primitive that brings together:
//		• Dense container: row-major float64 storage, bounds-checked access
//		• Constructors: zeroed, constant-filled, uniform-random, wrapped views
//		• Elementwise ops: Add, Sub, scalar add/sub/mul, pow, Apply
//		• Multiplication: naive triple-loop MatMul with an allocation-free variant
//		• Transpose engine: out-of-place copy or in-place follow-the-cycles
//		  permutation with shape-dependent dispatch
//
// ✨ Why choose densemat?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable numerics – fixed loop orders, left-to-right accumulation
//   - Typed errors – sentinel errors checked with errors.Is, no panics
//   - Lean – one package under matrix/, nothing to configure
//
// All functionality lives in the single subpackage:
//
//	matrix/ – Dense container, arithmetic kernels and the transpose engine
//
// densemat is intentionally NOT a linear-algebra suite: there is no
// decomposition, inversion, eigenvalue machinery, sparsity or parallelism.
// It targets small numeric and educational codebases that need a reliable
// grid of reals and nothing more.
//
//	go get github.com/MKuranowski/densemat/matrix
package densemat

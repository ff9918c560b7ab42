// Package matrix provides a dense, row-major 2D matrix of float64 values
// with bounds-checked access, in-place elementwise and scalar arithmetic,
// naive matrix multiplication, and a transpose engine.
//
// The matrix package provides:
//
//   - Dense, the sole concrete container: flat row-major storage with
//     element (i, j) at index i*Cols()+j, plus constructors for zeroed,
//     constant-filled, uniform-random and caller-owned (wrapped) buffers.
//   - Elementwise kernels (Add, Sub, AddScalar, SubScalar, MulScalar,
//     PowScalar, Apply) that mutate the left operand in place.
//   - MatMul / MatMulInto with a pinned left-to-right accumulation order,
//     so results are reproducible bit for bit across runs and platforms.
//   - Transposed (out-of-place, any shape) and Transpose (in-place),
//     the latter dispatching between a vector shortcut, a square swap and a
//     follow-the-cycles permutation that needs only one temporary value and
//     one visited bit per element.
//
// All failure modes are sentinel errors (see errors.go) matched with
// errors.Is; no public operation panics on caller misuse. Matrices are not
// safe for concurrent mutation; callers must serialize access.
//
// See the examples in this package for usage patterns.
package matrix

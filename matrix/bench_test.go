// Package matrix_test provides benchmarks for core matrix operations,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/MKuranowski/densemat/matrix"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{64, 256, 512}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkE error
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			B := mustDense(b, n, n)
			fillSeeded(b, A, 1337)
			fillSeeded(b, B, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkE = matrix.Add(A, B)
			}
		})
	}
}

func BenchmarkMatMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			B := mustDense(b, n, n)
			fillSeeded(b, A, 11)
			fillSeeded(b, B, 22)
			dest := mustDense(b, n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkE = matrix.MatMulInto(A, B, dest)
			}
		})
	}
}

func BenchmarkTransposed(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%dx%d", n, 2*n), func(b *testing.B) {
			A := mustDense(b, n, 2*n)
			fillSeeded(b, A, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Transposed(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkTranspose_InPlaceRectangle(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%dx%d", n, 2*n), func(b *testing.B) {
			A := mustDense(b, n, 2*n)
			fillSeeded(b, A, 13)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				// Two transposes keep the shape stable across iterations.
				sinkE = matrix.Transpose(A)
				sinkE = matrix.Transpose(A)
			}
		})
	}
}

func BenchmarkTranspose_InPlaceSquare(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			fillSeeded(b, A, 17)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkE = matrix.Transpose(A)
			}
		})
	}
}

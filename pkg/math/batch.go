package math

import "github.com/dgravesa/go-parallel/parallel"

// Batch helpers for tooling and asset pipelines that touch large vector
// arrays. The scalar operations above stay sequential and allocation-free;
// these spread the work across goroutines instead.

// NormalizeBatch normalizes every vector in vs in place.
func NormalizeBatch(vs []Vector3) {
	parallel.For(len(vs), func(i, _ int) {
		vs[i] = Normalize(vs[i])
	})
}

// ScaleBatch multiplies every vector in vs by s in place.
func ScaleBatch(vs []Vector3, s float32) {
	parallel.For(len(vs), func(i, _ int) {
		vs[i] = vs[i].Scale(s)
	})
}

// LerpBatch writes Lerp(a[i], b[i], t) into dst[i] for every index.
// The three slices must have equal length.
func LerpBatch(dst, a, b []Vector3, t float32) {
	parallel.For(len(dst), func(i, _ int) {
		dst[i] = Lerp(a[i], b[i], t)
	})
}

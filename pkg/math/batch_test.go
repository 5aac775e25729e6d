package math

import "testing"

func makeTestVectors(n int) []Vector3 {
	vs := make([]Vector3, n)
	for i := range vs {
		vs[i] = Vector3{float32(i + 1), float32(i % 7), float32(-i)}
	}
	return vs
}

func TestNormalizeBatch(t *testing.T) {
	vs := makeTestVectors(1000)
	want := make([]Vector3, len(vs))
	for i, v := range vs {
		want[i] = Normalize(v)
	}

	NormalizeBatch(vs)
	for i := range vs {
		if vs[i] != want[i] {
			t.Fatalf("NormalizeBatch[%d] = %v, want %v", i, vs[i], want[i])
		}
	}
}

func TestScaleBatch(t *testing.T) {
	vs := makeTestVectors(257)
	want := make([]Vector3, len(vs))
	for i, v := range vs {
		want[i] = v.Scale(2.5)
	}

	ScaleBatch(vs, 2.5)
	for i := range vs {
		if vs[i] != want[i] {
			t.Fatalf("ScaleBatch[%d] = %v, want %v", i, vs[i], want[i])
		}
	}
}

func TestLerpBatch(t *testing.T) {
	a := makeTestVectors(100)
	b := makeTestVectors(100)
	for i := range b {
		b[i] = b[i].Scale(3)
	}
	dst := make([]Vector3, 100)

	LerpBatch(dst, a, b, 0.5)
	for i := range dst {
		if want := Lerp(a[i], b[i], 0.5); dst[i] != want {
			t.Fatalf("LerpBatch[%d] = %v, want %v", i, dst[i], want)
		}
	}
}

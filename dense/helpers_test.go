package dense_test

import (
	"testing"

	"github.com/katalvlaran/lvldense/cdouble"
	"github.com/katalvlaran/lvldense/dense"
)

const tol = 1e-9

// rdf builds an RDF matrix from row-major real values, failing the test
// on any construction error.
func rdf(t *testing.T, rows, cols int, vals ...float64) *dense.Matrix {
	t.Helper()
	data := make([]cdouble.Complex, len(vals))
	for i := range vals {
		data[i] = cdouble.FromFloat(vals[i])
	}
	m, err := dense.NewMatrix(dense.RDF, rows, cols, data)
	if err != nil {
		t.Fatalf("rdf %dx%d: %v", rows, cols, err)
	}
	return m
}

// cdf builds a CDF matrix from row-major complex values.
func cdf(t *testing.T, rows, cols int, vals ...complex128) *dense.Matrix {
	t.Helper()
	data := make([]cdouble.Complex, len(vals))
	for i := range vals {
		data[i] = cdouble.FromComplex128(vals[i])
	}
	m, err := dense.NewMatrix(dense.CDF, rows, cols, data)
	if err != nil {
		t.Fatalf("cdf %dx%d: %v", rows, cols, err)
	}
	return m
}

// requireClose asserts entrywise closeness of two matrices.
func requireClose(t *testing.T, got, want *dense.Matrix, eps float64) {
	t.Helper()
	if !got.EqualWithin(want, eps) {
		t.Fatalf("matrices differ beyond %g:\n got: %v\nwant: %v", eps, got, want)
	}
}

// requireProductIs asserts a·b == want within tol.
func requireProductIs(t *testing.T, a, b, want *dense.Matrix) {
	t.Helper()
	p, err := a.Mul(b)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	requireClose(t, p, want, tol)
}

// requireIdentityProduct asserts a·b is the identity within tol.
func requireIdentityProduct(t *testing.T, a, b *dense.Matrix) {
	t.Helper()
	n := a.Rows()
	id, err := dense.Identity(a.Ring(), n)
	if err != nil {
		t.Fatal(err)
	}
	requireProductIs(t, a, b, id)
}

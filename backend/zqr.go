// Package backend: complex QR by Householder reflections.

package backend

import (
	"math"
	"math/cmplx"
)

// zreflector holds one Householder reflector H = I − 2·v·vᴴ/(vᴴv),
// acting on rows col..m-1.
type zreflector struct {
	col int
	v   []complex128 // length m-col; vᴴv > 0
}

// applyLeft computes H·A restricted to columns from..n-1 of the m×n
// matrix a.
func (h zreflector) applyLeft(a []complex128, m, n, from int) {
	var vv float64
	var i, j int
	for i = range h.v {
		vv += real(h.v[i])*real(h.v[i]) + imag(h.v[i])*imag(h.v[i])
	}
	if vv == 0 {
		return
	}
	scale := complex(2/vv, 0)
	for j = from; j < n; j++ {
		var dot complex128 // vᴴ · column
		for i = range h.v {
			dot += cmplx.Conj(h.v[i]) * a[(h.col+i)*n+j]
		}
		dot *= scale
		for i = range h.v {
			a[(h.col+i)*n+j] -= h.v[i] * dot
		}
	}
}

// ZQR factors an m×n matrix as A = Q·R with Q m×m unitary and R m×n
// upper trapezoidal. The R diagonal is not phase-normalized; callers
// needing a canonical form must post-process (the dense layer documents
// a sign-normalization helper for exactly that).
func (gonumEngine) ZQR(a []complex128, m, n int) ([]complex128, []complex128, error) {
	if err := checkPositive(a, m, n); err != nil {
		return nil, nil, err
	}
	r := cloneZ(a)
	k := min(m, n)
	refl := make([]zreflector, 0, k)
	var col, i int
	for col = 0; col < k; col++ {
		if col == m-1 {
			break // single-row remainder needs no reflection
		}
		// Build the reflector sending column col (rows col..m-1) onto
		// ∓|x|·e₁ with the phase of the leading entry.
		norm := 0.0
		for i = col; i < m; i++ {
			e := r[i*n+col]
			norm += real(e)*real(e) + imag(e)*imag(e)
		}
		if norm == 0 {
			continue
		}
		normv := complex(math.Sqrt(norm), 0)
		lead := r[col*n+col]
		phase := complex(1, 0)
		if lead != 0 {
			phase = lead / complex(cmplx.Abs(lead), 0)
		}
		v := make([]complex128, m-col)
		for i = col; i < m; i++ {
			v[i-col] = r[i*n+col]
		}
		v[0] += phase * normv
		h := zreflector{col: col, v: v}
		h.applyLeft(r, m, n, col)
		refl = append(refl, h)
	}
	// Scrub the numerically zero subdiagonal of R.
	var j int
	for i = 0; i < m; i++ {
		for j = 0; j < min(i, n); j++ {
			r[i*n+j] = 0
		}
	}
	// Accumulate Q = H₁·H₂·...·Hₖ by applying reflectors to the identity
	// in reverse order.
	q := identityZ(m)
	for i = len(refl) - 1; i >= 0; i-- {
		refl[i].applyLeft(q, m, m, 0)
	}
	return q, r, nil
}

// Package backend: complex singular value decomposition by one-sided
// Jacobi orthogonalization.

package backend

import (
	"math"
	"math/cmplx"
	"sort"
)

// ZSVD computes the full decomposition A = U·diag(s)·Vᴴ with U m×m and
// V n×n unitary and s the min(m,n) singular values in descending order.
func (e gonumEngine) ZSVD(a []complex128, m, n int) ([]complex128, []float64, []complex128, error) {
	if err := checkPositive(a, m, n); err != nil {
		return nil, nil, nil, err
	}
	if m < n {
		// Work on Aᴴ: A = U S Vᴴ  ⇔  Aᴴ = V S Uᴴ.
		u2, s, v2, err := e.ZSVD(conjTransposeZ(a, m, n), n, m)
		if err != nil {
			return nil, nil, nil, err
		}
		return v2, s, u2, nil
	}
	g := cloneZ(a) // m×n working columns, m ≥ n
	v := identityZ(n)

	const eps = 1e-15
	var sweep, p, q, i int
	converged := false
	for sweep = 0; sweep < jacobiMaxSweeps && !converged; sweep++ {
		converged = true
		for p = 0; p < n-1; p++ {
			for q = p + 1; q < n; q++ {
				if !orthogonalizePair(g, v, m, n, p, q, eps) {
					converged = false
				}
			}
		}
	}
	if !converged {
		return nil, nil, nil, ErrConvergence
	}

	// Singular values are the column norms; sort descending, carrying
	// the columns of G and V along.
	sv := make([]float64, n)
	for p = 0; p < n; p++ {
		sv[p] = normColumnZ(g, m, n, p)
	}
	idx := make([]int, n)
	for i = range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(x, y int) bool { return sv[idx[x]] > sv[idx[y]] })

	s := make([]float64, n)
	vOut := make([]complex128, n*n)
	u := make([]complex128, m*m)
	var j int
	for j = 0; j < n; j++ {
		s[j] = sv[idx[j]]
		for i = 0; i < n; i++ {
			vOut[i*n+j] = v[i*n+idx[j]]
		}
	}
	// Left vectors: normalized nonzero columns of G; rank-deficient and
	// trailing columns are completed to an orthonormal basis.
	smax := 0.0
	if n > 0 {
		smax = s[0]
	}
	rankTol := float64(m) * ulp * smax
	filled := make([]bool, m)
	for j = 0; j < n; j++ {
		if s[j] <= rankTol {
			break
		}
		inv := complex(1/s[j], 0)
		for i = 0; i < m; i++ {
			u[i*m+j] = g[i*n+idx[j]] * inv
		}
		filled[j] = true
	}
	completeBasisZ(u, m, filled)
	return u, s, vOut, nil
}

// orthogonalizePair rotates columns p and q of g toward orthogonality and
// reports whether they already were (within eps, relative).
func orthogonalizePair(g, v []complex128, m, n, p, q int, eps float64) bool {
	var alpha, beta float64
	var gamma complex128
	var i int
	for i = 0; i < m; i++ {
		gp, gq := g[i*n+p], g[i*n+q]
		alpha += real(gp)*real(gp) + imag(gp)*imag(gp)
		beta += real(gq)*real(gq) + imag(gq)*imag(gq)
		gamma += cmplx.Conj(gp) * gq
	}
	ag := cmplx.Abs(gamma)
	if ag <= eps*math.Sqrt(alpha*beta) || ag == 0 {
		return true
	}
	phi := gamma / complex(ag, 0)
	tau := (beta - alpha) / (2 * ag)
	var t float64
	if tau >= 0 {
		t = 1 / (tau + math.Sqrt(1+tau*tau))
	} else {
		t = -1 / (-tau + math.Sqrt(1+tau*tau))
	}
	c := 1 / math.Sqrt(1+t*t)
	cc := complex(c, 0)
	sp := complex(t*c, 0) * phi

	for i = 0; i < m; i++ {
		gp, gq := g[i*n+p], g[i*n+q]
		g[i*n+p] = cc*gp - cmplx.Conj(sp)*gq
		g[i*n+q] = sp*gp + cc*gq
	}
	for i = 0; i < n; i++ {
		vp, vq := v[i*n+p], v[i*n+q]
		v[i*n+p] = cc*vp - cmplx.Conj(sp)*vq
		v[i*n+q] = sp*vp + cc*vq
	}
	return false
}

// completeBasisZ fills the unfilled columns of the m×m matrix u with unit
// vectors orthogonal to every filled column, by Gram–Schmidt over the
// standard basis candidates.
func completeBasisZ(u []complex128, m int, filled []bool) {
	var col, cand, i, j int
	cand = 0
	for col = 0; col < m; col++ {
		if filled[col] {
			continue
		}
		for ; cand < 2*m; cand++ {
			// Candidate e_{cand mod m}, orthogonalized twice for stability.
			w := make([]complex128, m)
			w[cand%m] = 1
			var pass int
			for pass = 0; pass < 2; pass++ {
				for j = 0; j < m; j++ {
					if !filled[j] {
						continue
					}
					var dot complex128
					for i = 0; i < m; i++ {
						dot += cmplx.Conj(u[i*m+j]) * w[i]
					}
					for i = 0; i < m; i++ {
						w[i] -= dot * u[i*m+j]
					}
				}
			}
			norm := 0.0
			for i = 0; i < m; i++ {
				norm += real(w[i])*real(w[i]) + imag(w[i])*imag(w[i])
			}
			if norm > 0.25 {
				inv := complex(1/math.Sqrt(norm), 0)
				for i = 0; i < m; i++ {
					u[i*m+col] = w[i] * inv
				}
				filled[col] = true
				cand++
				break
			}
		}
	}
}

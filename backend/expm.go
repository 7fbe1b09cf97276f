// Package backend: matrix exponential by the scaling-and-squaring method
// with a degree-13 Padé approximant. One generic kernel serves both
// lanes; the element type only has to supply an absolute value and a
// linear solver.

package backend

import "math"

// padeCoeff holds the numerator coefficients of the [13/13] Padé
// approximant to exp; the denominator reuses them with alternating signs.
var padeCoeff = [14]float64{
	64764752532480000, 32382376266240000, 7771770303897600,
	1187353796428800, 129060195264000, 10559470521600,
	670442572800, 33522128640, 1323241920, 40840800,
	960960, 16380, 182, 1,
}

// theta13 is the largest 1-norm for which the unscaled degree-13
// approximant stays within double precision (Higham 2005).
const theta13 = 5.371920351148152

// fromFloat lifts a float64 into the lane element type. A direct
// conversion T(x) is not available for non-constant x, float64 does not
// convert to complex128.
func fromFloat[T float64 | complex128](x float64) T {
	var z T
	switch p := any(&z).(type) {
	case *float64:
		*p = x
	case *complex128:
		*p = complex(x, 0)
	}
	return z
}

func mulFlat[T float64 | complex128](a, b []T, n int) []T {
	c := make([]T, n*n)
	var i, j, k int
	for i = 0; i < n; i++ {
		for k = 0; k < n; k++ {
			aik := a[i*n+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < n; j++ {
				c[i*n+j] += aik * b[k*n+j]
			}
		}
	}
	return c
}

func identityFlat[T float64 | complex128](n int) []T {
	id := make([]T, n*n)
	var i int
	for i = 0; i < n; i++ {
		id[i*n+i] = 1
	}
	return id
}

// norm1 is the maximum absolute column sum.
func norm1[T float64 | complex128](a []T, n int, abs func(T) float64) float64 {
	best := 0.0
	var i, j int
	for j = 0; j < n; j++ {
		sum := 0.0
		for i = 0; i < n; i++ {
			sum += abs(a[i*n+j])
		}
		if sum > best {
			best = sum
		}
	}
	return best
}

// expmPade evaluates exp(A). The solve callback solves M·X = RHS for a
// square M and n-column RHS, both in flat row-major form.
func expmPade[T float64 | complex128](a []T, n int, abs func(T) float64, solve func(m, rhs []T) ([]T, error)) ([]T, error) {
	if n == 0 {
		return []T{}, nil
	}
	w := make([]T, len(a))
	copy(w, a)

	// Scale A by 2^-s so the Padé approximant is accurate, square back s
	// times at the end.
	nrm := norm1(w, n, abs)
	s := 0
	if nrm > theta13 {
		s = int(math.Ceil(math.Log2(nrm / theta13)))
		factor := fromFloat[T](math.Ldexp(1, -s))
		for i := range w {
			w[i] *= factor
		}
	}

	a2 := mulFlat(w, w, n)
	a4 := mulFlat(a2, a2, n)
	a6 := mulFlat(a2, a4, n)
	id := identityFlat[T](n)
	var b [14]T
	for i := range padeCoeff {
		b[i] = fromFloat[T](padeCoeff[i])
	}

	// U = A·(A6·(b13·A6 + b11·A4 + b9·A2) + b7·A6 + b5·A4 + b3·A2 + b1·I)
	inner := make([]T, n*n)
	var i int
	for i = range inner {
		inner[i] = b[13]*a6[i] + b[11]*a4[i] + b[9]*a2[i]
	}
	u := mulFlat(a6, inner, n)
	for i = range u {
		u[i] += b[7]*a6[i] + b[5]*a4[i] + b[3]*a2[i] + b[1]*id[i]
	}
	u = mulFlat(w, u, n)

	// V = A6·(b12·A6 + b10·A4 + b8·A2) + b6·A6 + b4·A4 + b2·A2 + b0·I
	for i = range inner {
		inner[i] = b[12]*a6[i] + b[10]*a4[i] + b[8]*a2[i]
	}
	v := mulFlat(a6, inner, n)
	for i = range v {
		v[i] += b[6]*a6[i] + b[4]*a4[i] + b[2]*a2[i] + b[0]*id[i]
	}

	// exp(A) ≈ (V − U)⁻¹·(V + U), then undo the scaling by squaring.
	num := make([]T, n*n)
	den := make([]T, n*n)
	for i = range v {
		num[i] = v[i] + u[i]
		den[i] = v[i] - u[i]
	}
	x, err := solve(den, num)
	if err != nil {
		return nil, err
	}
	for ; s > 0; s-- {
		x = mulFlat(x, x, n)
	}
	return x, nil
}

// ZExpm computes exp(A) for a complex square matrix.
func (e gonumEngine) ZExpm(a []complex128, n int) ([]complex128, error) {
	if err := checkPositive(a, n, n); err != nil {
		return nil, err
	}
	return expmPade(a, n, absCplx, func(m, rhs []complex128) ([]complex128, error) {
		return e.ZSolve(m, n, rhs, n)
	})
}

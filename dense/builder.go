// Package dense: the mutable Builder and the convenience constructors.
// The Builder is the only mutation surface in the package; Build freezes
// its state into an immutable Matrix by deep copy, so a Builder can keep
// accumulating after Build without aliasing any published matrix.

package dense

import (
	"github.com/katalvlaran/lvldense/backend"
	"github.com/katalvlaran/lvldense/cdouble"
)

// Builder accumulates entries for a rows×cols matrix over a ring.
// Not safe for concurrent use; freeze with Build before sharing.
type Builder struct {
	ring       Ring
	rows, cols int
	data       []complex128
	eng        backend.Engine
	err        error
}

// NewBuilder returns an all-zero accumulator. Negative dimensions poison
// the builder: mutators become no-ops and Build returns ErrBadShape.
// Zero dimensions are legal (degenerate matrices are first-class).
func NewBuilder(ring Ring, rows, cols int, opts ...Option) *Builder {
	b := &Builder{ring: ring, rows: rows, cols: cols}
	b.eng = gatherBuildOptions(opts).engine
	if rows < 0 || cols < 0 || !ring.valid() {
		b.err = ErrBadShape
		return b
	}
	b.data = make([]complex128, rows*cols)
	return b
}

// Set writes entry (i, j). On an RDF builder a nonzero imaginary lane is
// rejected with ErrRingConversion; out-of-range indices with ErrOutOfRange.
func (b *Builder) Set(i, j int, z cdouble.Complex) error {
	if b.err != nil {
		return b.err
	}
	if i < 0 || i >= b.rows || j < 0 || j >= b.cols {
		return ErrOutOfRange
	}
	if b.ring == RDF && z.Imag() != 0 {
		return ErrRingConversion
	}
	b.data[i*b.cols+j] = z.Complex128()
	return nil
}

// SetReal writes a real entry; legal on both rings.
func (b *Builder) SetReal(i, j int, x float64) error {
	return b.Set(i, j, cdouble.FromFloat(x))
}

// At reads back entry (i, j) as currently accumulated.
func (b *Builder) At(i, j int) (cdouble.Complex, error) {
	if b.err != nil {
		return cdouble.Zero, b.err
	}
	if i < 0 || i >= b.rows || j < 0 || j >= b.cols {
		return cdouble.Zero, ErrOutOfRange
	}
	return cdouble.FromComplex128(b.data[i*b.cols+j]), nil
}

// SetRow writes a full row. The slice length must equal the column count.
func (b *Builder) SetRow(i int, row []cdouble.Complex) error {
	if b.err != nil {
		return b.err
	}
	if i < 0 || i >= b.rows {
		return ErrOutOfRange
	}
	if len(row) != b.cols {
		return ErrShapeMismatch
	}
	var j int
	for j = range row {
		if err := b.Set(i, j, row[j]); err != nil {
			return err
		}
	}
	return nil
}

// Fill writes every entry to z.
func (b *Builder) Fill(z cdouble.Complex) error {
	if b.err != nil {
		return b.err
	}
	if b.ring == RDF && z.Imag() != 0 {
		return ErrRingConversion
	}
	v := z.Complex128()
	var k int
	for k = range b.data {
		b.data[k] = v
	}
	return nil
}

// Build freezes the accumulated state into an immutable Matrix. The
// matrix owns a deep copy; the builder stays usable afterwards.
func (b *Builder) Build() (*Matrix, error) {
	if b.err != nil {
		return nil, b.err
	}
	return newMatrix(b.ring, b.rows, b.cols, append([]complex128(nil), b.data...), b.eng), nil
}

// NewMatrix builds a matrix directly from row-major data. The data length
// must equal rows·cols; RDF data must have zero imaginary lanes.
func NewMatrix(ring Ring, rows, cols int, data []cdouble.Complex, opts ...Option) (*Matrix, error) {
	if rows < 0 || cols < 0 || !ring.valid() || len(data) != rows*cols {
		return nil, ErrBadShape
	}
	buf := make([]complex128, len(data))
	var k int
	for k = range data {
		if ring == RDF && data[k].Imag() != 0 {
			return nil, ErrRingConversion
		}
		buf[k] = data[k].Complex128()
	}
	return newMatrix(ring, rows, cols, buf, gatherBuildOptions(opts).engine), nil
}

// Zeros returns the rows×cols zero matrix.
func Zeros(ring Ring, rows, cols int, opts ...Option) (*Matrix, error) {
	if rows < 0 || cols < 0 || !ring.valid() {
		return nil, ErrBadShape
	}
	return newMatrix(ring, rows, cols, make([]complex128, rows*cols), gatherBuildOptions(opts).engine), nil
}

// Identity returns the n×n identity.
func Identity(ring Ring, n int, opts ...Option) (*Matrix, error) {
	if n < 0 || !ring.valid() {
		return nil, ErrBadShape
	}
	data := make([]complex128, n*n)
	var i int
	for i = 0; i < n; i++ {
		data[i*n+i] = 1
	}
	return newMatrix(ring, n, n, data, gatherBuildOptions(opts).engine), nil
}

// Diagonal returns the square matrix with d on its diagonal. RDF rejects
// entries with nonzero imaginary lanes.
func Diagonal(ring Ring, d []cdouble.Complex, opts ...Option) (*Matrix, error) {
	if !ring.valid() {
		return nil, ErrBadShape
	}
	n := len(d)
	data := make([]complex128, n*n)
	var i int
	for i = 0; i < n; i++ {
		if ring == RDF && d[i].Imag() != 0 {
			return nil, ErrRingConversion
		}
		data[i*n+i] = d[i].Complex128()
	}
	return newMatrix(ring, n, n, data, gatherBuildOptions(opts).engine), nil
}

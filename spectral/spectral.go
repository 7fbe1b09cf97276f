package spectral

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lvldense/dense"
)

// plot dimensions; square for the complex plane, wide for decay curves.
const (
	spectrumSize = 5 * vg.Inch
	decayWidth   = 6 * vg.Inch
	decayHeight  = 4 * vg.Inch
)

// Spectrum writes a scatter plot of the eigenvalues of the square matrix
// m in the complex plane to path.
func Spectrum(m *dense.Matrix, path string) error {
	vals, err := m.Eigenvalues()
	if err != nil {
		return fmt.Errorf("spectral: eigenvalues: %w", err)
	}
	pts := make(plotter.XYs, 0, len(vals))
	var i int
	for i = range vals {
		z, ok := vals[i].Value().Complex()
		if !ok {
			continue
		}
		pts = append(pts, plotter.XY{X: z.Real(), Y: z.Imag()})
	}
	p := plot.New()
	p.Title.Text = "Eigenvalue spectrum"
	p.X.Label.Text = "Re"
	p.Y.Label.Text = "Im"
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("spectral: scatter: %w", err)
	}
	p.Add(plotter.NewGrid(), sc)
	if err := p.Save(spectrumSize, spectrumSize, path); err != nil {
		return fmt.Errorf("spectral: save: %w", err)
	}
	return nil
}

// SingularValues writes the descending singular-value decay of m as a
// line-and-points plot to path. The y axis is logarithmic when every
// singular value is positive.
func SingularValues(m *dense.Matrix, path string) error {
	sv, err := m.SingularValues()
	if err != nil {
		return fmt.Errorf("spectral: svd: %w", err)
	}
	pts := make(plotter.XYs, len(sv))
	positive := true
	var i int
	for i = range sv {
		pts[i] = plotter.XY{X: float64(i + 1), Y: sv[i]}
		if sv[i] <= 0 {
			positive = false
		}
	}
	p := plot.New()
	p.Title.Text = "Singular values"
	p.X.Label.Text = "index"
	p.Y.Label.Text = "σ"
	if positive && len(sv) > 0 {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("spectral: line: %w", err)
	}
	p.Add(plotter.NewGrid(), line, points)
	if err := p.Save(decayWidth, decayHeight, path); err != nil {
		return fmt.Errorf("spectral: save: %w", err)
	}
	return nil
}

// Package spectral renders quick diagnostic plots of a matrix's
// spectrum: eigenvalues scattered in the complex plane and the decay of
// the singular values. Output is a file whose format follows the path
// extension (png, svg, pdf, ...), as supported by gonum/plot.
package spectral

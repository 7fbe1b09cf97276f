// Package dense: the per-matrix factor cache.
// Immutability makes invalidation unnecessary: once computed, a factor
// set is correct forever, so every slot is an at-most-once cell and
// repeated calls return the same immutable factor matrices.

package dense

import "sync"

// slot is a concurrency-safe at-most-once cell; the first get computes,
// later gets observe the stored result (including a stored error).
type slot[T any] struct {
	once sync.Once
	val  T
	err  error
}

func (s *slot[T]) get(compute func() (T, error)) (T, error) {
	s.once.Do(func() { s.val, s.err = compute() })
	return s.val, s.err
}

type luFactors struct {
	perm    []int
	p, l, u *Matrix
}

type qrFactors struct {
	q, r *Matrix
}

type svdFactors struct {
	u, s, v *Matrix
}

type schurFactors struct {
	q, t *Matrix
}

// predicateID distinguishes the cached structural predicates.
type predicateID int

const (
	predUnitary predicateID = iota
	predHermitian
	predSkewHermitian
	predNormal
)

// predicateKey is the typed cache key: the verdict depends on which
// predicate ran, under which strategy, at which tolerance.
type predicateKey struct {
	pred predicateID
	alg  PredicateAlgorithm
	tol  float64
}

// cache holds every memoized result of one matrix.
type cache struct {
	lu        slot[luFactors]
	qr        slot[qrFactors]
	svd       slot[svdFactors]
	schurRDF  slot[schurFactors]
	schurCDF  slot[schurFactors]
	chol      slot[*Matrix]
	hermitian slot[bool]

	mu    sync.Mutex
	preds map[predicateKey]bool
}

func newCache() *cache {
	return &cache{preds: make(map[predicateKey]bool)}
}

// predicate memoizes a boolean verdict under its typed key. The mutex is
// held across compute, so concurrent callers observe one evaluation.
func (c *cache) predicate(key predicateKey, compute func() bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.preds[key]; ok {
		return v
	}
	v := compute()
	c.preds[key] = v
	return v
}

package unionfind

import "fmt"

// New creates a UF of n singleton sets {0}, {1}, …, {n-1}.
// Returns ErrInvalidSize if n < 0. n == 0 yields an empty, usable structure.
// Complexity: O(n) time and memory.
func New(n int) (*UF, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	uf := &UF{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf, nil
}

// Len returns the number of elements the structure was created with.
func (uf *UF) Len() int {
	return len(uf.parent)
}

// Count returns the current number of disjoint sets.
func (uf *UF) Count() int {
	return uf.count
}

// Find returns the canonical root of the set containing p.
// Every node on the path from p to the root is relinked directly to the root
// (full path compression), done iteratively to avoid deep recursion.
// Returns ErrIndexOutOfRange if p is not in [0, n).
// Complexity: O(α(n)) amortized.
func (uf *UF) Find(p int) (int, error) {
	// 1. Reject elements outside [0, n).
	if err := uf.validate(p); err != nil {
		return 0, err
	}

	// 2. Walk up to the root.
	root := p
	for root != uf.parent[root] {
		root = uf.parent[root]
	}
	// 3. Point every visited node straight at the root.
	for p != root {
		next := uf.parent[p]
		uf.parent[p] = root
		p = next
	}

	return root, nil
}

// Connected reports whether p and q belong to the same set.
// Returns ErrIndexOutOfRange if either element is not in [0, n).
// Complexity: O(α(n)) amortized.
func (uf *UF) Connected(p, q int) (bool, error) {
	rootP, err := uf.Find(p)
	if err != nil {
		return false, err
	}
	rootQ, err := uf.Find(q)
	if err != nil {
		return false, err
	}

	return rootP == rootQ, nil
}

// Union merges the sets containing p and q. The root of the smaller tree is
// attached under the root of the larger; on equal sizes q's root goes under
// p's root. Union of two already-connected elements is a no-op.
// Returns ErrIndexOutOfRange if either element is not in [0, n).
// Complexity: O(α(n)) amortized.
func (uf *UF) Union(p, q int) error {
	// 1. Resolve both roots (this also validates and compresses).
	rootP, err := uf.Find(p)
	if err != nil {
		return err
	}
	rootQ, err := uf.Find(q)
	if err != nil {
		return err
	}
	// 2. Same root: already connected, nothing to do.
	if rootP == rootQ {
		return nil
	}

	// 3. Attach the smaller tree under the larger root; ties go under rootP.
	if uf.size[rootP] < uf.size[rootQ] {
		uf.parent[rootP] = rootQ
		uf.size[rootQ] += uf.size[rootP]
	} else {
		uf.parent[rootQ] = rootP
		uf.size[rootP] += uf.size[rootQ]
	}
	// 4. One fewer disjoint set.
	uf.count--

	return nil
}

// Size returns the number of elements in the set containing p.
func (uf *UF) Size(p int) (int, error) {
	root, err := uf.Find(p)
	if err != nil {
		return 0, err
	}

	return uf.size[root], nil
}

// validate checks that p is a valid element index.
func (uf *UF) validate(p int) error {
	if p < 0 || p >= len(uf.parent) {
		return outOfRange(p, len(uf.parent))
	}

	return nil
}

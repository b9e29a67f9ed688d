// Package unionfind provides a weighted quick-union disjoint-set structure
// with full path compression over the integer elements 0..n-1.
//
// What:
//
//   - UF keeps a parent link and a subtree size for every element.
//   - Union attaches the root of the smaller tree under the root of the larger
//     one, which bounds every tree height at O(log n).
//   - Find relinks every node it visits directly to the discovered root, so
//     repeated lookups on the same path become O(1).
//
// Why:
//
//   - Dynamic connectivity: answer "are p and q connected?" while edges are
//     only ever added (percolation grids, Kruskal MST, image labeling).
//   - Cluster counting: Count reports the number of disjoint sets at any time.
//
// Complexity:
//
//   - New:                 O(n) time, O(n) memory.
//   - Find/Union/Connected: O(α(n)) amortized, α = inverse Ackermann.
//
// Errors:
//
//   - ErrInvalidSize:     New was called with a negative element count.
//   - ErrIndexOutOfRange: an element lies outside [0, n).
//
// A UF is not safe for concurrent mutation; callers that share one across
// goroutines must serialize access themselves.
package unionfind

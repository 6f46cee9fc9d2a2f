/*

Integer 2D grid indices

*/

package sdfgrid

// V2i is a 2D integer vector, used for grid index pairs.
type V2i [2]int

// Add adds two vectors. Return v = a + b.
func (a V2i) Add(b V2i) V2i {
	return V2i{a[0] + b[0], a[1] + b[1]}
}

// Clamp limits each component of a to the index range [0, dims).
func (a V2i) Clamp(dims V2i) V2i {
	return V2i{clampIndex(a[0], dims[0]), clampIndex(a[1], dims[1])}
}

// clampIndex limits i to [0, n-1].
func clampIndex(i, n int) int {
	if i > n-1 {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

// Dims is a set of the three dimensions of a Poly3Dist. Every
// non-empty subset of {DimX, DimY, DimZ} is representable, so a
// partial integral can name exactly the dimensions it integrates
// out.
type Dims uint

const (
	DimX Dims = 1 << iota
	DimY
	DimZ

	// DimsAll is the full three-dimensional set.
	DimsAll = DimX | DimY | DimZ
)

// Has reports whether d contains every dimension in dims.
func (d Dims) Has(dims Dims) bool {
	return d&dims == dims
}

func (d Dims) String() string {
	if d == 0 {
		return "{}"
	}
	s := "{"
	for _, dim := range []struct {
		bit  Dims
		name string
	}{{DimX, "x"}, {DimY, "y"}, {DimZ, "z"}} {
		if d.Has(dim.bit) {
			if len(s) > 1 {
				s += ","
			}
			s += dim.name
		}
	}
	return s + "}"
}

// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

// A Density is a one-dimensional statistical shape.
type Density interface {
	// PDF returns the value of this density at x. It is
	// non-negative for all x when the parameters are valid
	// (see Validate on the concrete types).
	PDF(x float64) float64

	// Bounds returns reasonable bounds for this density. The
	// total weight outside of these bounds should be
	// approximately 0.
	Bounds() (float64, float64)
}

// An Integrable is a Density with an exact closed-form integral over
// an arbitrary sub-range of its domain.
type Integrable interface {
	Density

	// Integral returns the integral of PDF over r.
	Integral(r Interval) float64
}

// An Interval is a closed range [Min, Max] of one fit variable.
type Interval struct {
	Min, Max float64
}

// Length returns Max - Min.
func (r Interval) Length() float64 {
	return r.Max - r.Min
}

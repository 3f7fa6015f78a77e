// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

// ExpDist is the exponential shape exp(Alpha·x). Alpha may have
// either sign; Alpha == 0 is the uniform shape.
type ExpDist struct {
	Alpha float64
}

var _ Integrable = ExpDist{}

func (d ExpDist) PDF(x float64) float64 {
	return math.Exp(d.Alpha * x)
}

// Integral returns the exact integral of PDF over r. The expm1 form
// keeps it accurate for small |Alpha|·x, degenerating smoothly to
// the range length as Alpha → 0.
func (d ExpDist) Integral(r Interval) float64 {
	if d.Alpha == 0 {
		return r.Length()
	}
	return (math.Expm1(d.Alpha*r.Max) - math.Expm1(d.Alpha*r.Min)) / d.Alpha
}

func (d ExpDist) Bounds() (float64, float64) {
	// Where the shape has decayed to e^-20 of its value at 0.
	switch {
	case d.Alpha < 0:
		return 0, -20 / d.Alpha
	case d.Alpha > 0:
		return -20 / d.Alpha, 0
	}
	return 0, 1
}

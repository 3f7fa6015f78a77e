// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dist implements the density shapes used as building blocks for
// maximum-likelihood fits of physics observables.
//
// Each shape is a pure value type: evaluation and integration are
// functions of the parameters and the point or range alone, with no
// state carried between calls. The shapes are deliberately not
// normalized; scaling a shape so that it integrates to one over the
// fit range is the responsibility of the model-assembly layer, which
// uses the exact sub-range integrals provided here.
package dist // import "github.com/hepfit/go-hepmath/dist"

import (
	"errors"
	"math"
)

var inf = math.Inf(1)

const (
	sqrt2       = math.Sqrt2
	sqrtPiOver2 = 1.2533141373155003 // √(π/2)
	sq2pi       = 2.5066282746310007 // √(2π)
	logSq2pi    = 0.9189385332046728 // log √(2π)
)

// ErrUnsupported is returned by Validate when a parameter
// combination has no defined density, as opposed to merely being
// out of its domain.
var ErrUnsupported = errors.New("dist: unsupported parameter configuration")

// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// shape tabulates a fit shape over a range and prints its integral.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hepfit/go-hepmath/dist"
)

var (
	shape = flag.String("shape", "bifurcated", "shape to tabulate: bifurcated, hyperbolic, gauss, cb, expo")
	mu    = flag.Float64("mu", 0, "location")
	sigma = flag.Float64("sigma", 1, "width")

	alphaL = flag.Float64("alphaL", 1.5, "left tail onset in standard deviations")
	nL     = flag.Float64("nL", 3, "left tail order")
	alphaR = flag.Float64("alphaR", 1.5, "right tail onset in standard deviations")
	nR     = flag.Float64("nR", 3, "right tail order")

	lambda = flag.Float64("lambda", -2, "hyperbolic shape order")
	zeta   = flag.Float64("zeta", 1, "hyperbolic concentration")
	beta   = flag.Float64("beta", 0, "hyperbolic asymmetry")

	expAlpha = flag.Float64("alpha", -1, "exponential slope (expo); tail onset (cb)")

	min    = flag.Float64("min", -5, "lower edge of the tabulated range")
	max    = flag.Float64("max", 5, "upper edge of the tabulated range")
	points = flag.Int("n", 21, "number of tabulated points")
)

func main() {
	flag.Parse()
	if *points < 2 || *max <= *min {
		fmt.Fprintln(os.Stderr, "need n >= 2 and max > min")
		os.Exit(1)
	}

	r := dist.Interval{Min: *min, Max: *max}
	var pdf func(float64) float64
	var integral float64

	switch *shape {
	case "bifurcated":
		d := dist.BifurcatedTailDist{
			Mu: *mu, Sigma: *sigma,
			AlphaL: *alphaL, NL: *nL,
			AlphaR: *alphaR, NR: *nR,
		}
		check(d.Validate())
		pdf, integral = d.PDF, d.Integral(r)
	case "hyperbolic":
		d := dist.HyperbolicDist{
			Mu: *mu, Sigma: *sigma,
			Lambda: *lambda, Zeta: *zeta, Beta: *beta,
			AlphaL: *alphaL, NL: *nL,
			AlphaR: *alphaR, NR: *nR,
		}
		check(d.Validate())
		pdf, integral = d.PDF, d.NumIntegral(r)
	case "gauss":
		d := dist.GaussDist{Mu: *mu, Sigma: *sigma}
		check(d.Validate())
		pdf, integral = d.PDF, d.Integral(r)
	case "cb":
		d := dist.CrystalBallDist{Mu: *mu, Sigma: *sigma, Alpha: *expAlpha, N: *nL}
		check(d.Validate())
		pdf, integral = d.PDF, d.Integral(r)
	case "expo":
		d := dist.ExpDist{Alpha: *expAlpha}
		pdf, integral = d.PDF, d.Integral(r)
	default:
		fmt.Fprintf(os.Stderr, "unknown shape %q\n", *shape)
		os.Exit(1)
	}

	step := (*max - *min) / float64(*points-1)
	for i := 0; i < *points; i++ {
		x := *min + float64(i)*step
		fmt.Printf("%12.6g %12.6g\n", x, pdf(x))
	}
	fmt.Printf("\nintegral over [%g, %g]: %.8g\n", *min, *max, integral)
}

func check(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

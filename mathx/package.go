// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mathx implements special functions that are missing from the
// standard math package.
package mathx // import "github.com/hepfit/go-hepmath/mathx"

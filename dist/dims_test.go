// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "testing"

func TestDims(t *testing.T) {
	subsets := []Dims{DimX, DimY, DimZ, DimX | DimY, DimX | DimZ, DimY | DimZ, DimsAll}
	seen := make(map[Dims]bool)
	for _, d := range subsets {
		if seen[d] {
			t.Errorf("subset %v not unique", d)
		}
		seen[d] = true
	}
	if len(seen) != 7 {
		t.Errorf("want 7 distinct non-empty subsets, got %d", len(seen))
	}

	if !DimsAll.Has(DimX | DimZ) {
		t.Error("want DimsAll to contain {x,z}")
	}
	if (DimX | DimY).Has(DimZ) {
		t.Error("want {x,y} to not contain z")
	}

	want := map[Dims]string{
		0:           "{}",
		DimX:        "{x}",
		DimY | DimZ: "{y,z}",
		DimsAll:     "{x,y,z}",
	}
	for d, s := range want {
		if got := d.String(); got != s {
			t.Errorf("want %q, got %q", s, got)
		}
	}
}

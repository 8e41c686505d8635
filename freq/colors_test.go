// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package freq

import (
	"testing"
)

func TestColorPicker(t *testing.T) {
	p := NewColorPicker(0)

	a := p.Next()
	b := p.Next()
	c := p.Next()

	for _, col := range []struct{ R, G, B float64 }{
		{a.R, a.G, a.B}, {b.R, b.G, b.B}, {c.R, c.G, c.B},
	} {
		if col.R < 0 || col.R > 1 || col.G < 0 || col.G > 1 || col.B < 0 || col.B > 1 {
			t.Error(col)
		}
	}

	if a.DistanceLab(b) < 0.05 {
		t.Error(a.DistanceLab(b))
	}

	if a.DistanceLab(c) < 0.05 || b.DistanceLab(c) < 0.05 {
		t.Error("colors not distinct")
	}
}

func TestColorPickerDeterministic(t *testing.T) {
	p1 := NewColorPicker(42)
	p2 := NewColorPicker(42)

	for i := 0; i < 5; i++ {
		if p1.Next() != p2.Next() {
			t.Error("same seed produced different palettes")
		}
	}
}

// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package freq

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// A ColorPicker hands out pastel colors that keep a maximal perceptual
// distance to all colors handed out before. Deterministic for a fixed
// seed, reruns produce the same palette.
type ColorPicker struct {
	used   []colorful.Color
	rnd    *rand.Rand
	pastel float64
}

// NewColorPicker returns a picker seeded with the fixed base palette
func NewColorPicker(seed int64) *ColorPicker {
	return &ColorPicker{
		used: []colorful.Color{
			{R: 1, G: 1, B: 0},
			{R: 0.5, G: 0.5, B: 0},
			{R: 0.878, G: 0.984, B: 0.957},
		},
		rnd:    rand.New(rand.NewSource(seed)),
		pastel: 0.1,
	}
}

// Next returns a new color distinct from the colors in use
func (p *ColorPicker) Next() colorful.Color {
	var best colorful.Color
	bestDist := -1.0

	for i := 0; i < 100; i++ {
		cand := p.random()

		d := cand.DistanceLab(p.used[0])
		for _, u := range p.used[1:] {
			if dc := cand.DistanceLab(u); dc < d {
				d = dc
			}
		}

		if d > bestDist {
			bestDist = d
			best = cand
		}
	}

	p.used = append(p.used, best)
	return best
}

func (p *ColorPicker) random() colorful.Color {
	return colorful.Color{
		R: (p.rnd.Float64() + p.pastel) / (1.0 + p.pastel),
		G: (p.rnd.Float64() + p.pastel) / (1.0 + p.pastel),
		B: (p.rnd.Float64() + p.pastel) / (1.0 + p.pastel),
	}
}

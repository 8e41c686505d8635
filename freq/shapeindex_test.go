// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package freq

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"testing"
)

func TestShapeIndex(t *testing.T) {
	feed := loadTestFeed(t)

	trips, e := FilterTrips(feed, []string{"WD", "WE"})

	if e != nil {
		t.Error(e)
		return
	}

	proj, e := NewProjector(17, true)

	if e != nil {
		t.Error(e)
		return
	}

	ix := BuildShapeIndex(trips, proj)

	// T1/T2 carry shape SHP1 passing through all three stops
	line, ok := ix.Line(Segment{"S1", "S2"})

	if !ok {
		t.Error("expected shape geometry for S1->S2")
		return
	}

	if len(line) < 2 {
		t.Error(line)
	}

	// the cut must start at S1 and end at S2 (shape runs through the
	// stops, so the snap distance is near zero)
	s1 := proj.ProjectPoint(orb.Point{-80.5200, 43.4500})
	s2 := proj.ProjectPoint(orb.Point{-80.5000, 43.4600})

	if planar.Distance(line[0], s1) > 10 {
		t.Error(planar.Distance(line[0], s1))
	}

	if planar.Distance(line[len(line)-1], s2) > 10 {
		t.Error(planar.Distance(line[len(line)-1], s2))
	}

	// the S1->S2 cut follows the shape via an intermediate vertex
	if len(line) != 3 {
		t.Error(len(line))
	}

	// T3 runs against the shape direction and has no shape of its own
	if _, ok := ix.Line(Segment{"S2", "S1"}); ok {
		t.Error("expected no shape geometry for the shapeless reverse trip")
	}
}

func TestSliceLine(t *testing.T) {
	line := orb.LineString{{0, 0}, {10, 0}, {20, 0}}

	cut := sliceLine(line, 5, 15)

	if len(cut) != 3 {
		t.Error(cut)
		return
	}

	if cut[0][0] != 5 || cut[1][0] != 10 || cut[2][0] != 15 {
		t.Error(cut)
	}

	if sliceLine(line, 15, 5) != nil {
		t.Error("expected nil for reversed measures")
	}
}

func TestSnapToLine(t *testing.T) {
	line := orb.LineString{{0, 0}, {10, 0}, {20, 0}}

	p, m := snapToLine(line, orb.Point{5, 3})

	if p[0] != 5 || p[1] != 0 {
		t.Error(p)
	}

	if m != 5 {
		t.Error(m)
	}

	p, m = snapToLine(line, orb.Point{25, 0})

	if p[0] != 20 || p[1] != 0 {
		t.Error(p)
	}

	if m != 20 {
		t.Error(m)
	}
}

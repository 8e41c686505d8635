// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package freq

import (
	gtfs "github.com/patrickbr/gtfsparser/gtfs"
	"github.com/paulmach/orb"
)

// max distance in meters between a stop and its shape before we fall
// back to a straight line for the segment
const maxSnapDist = 200.0

// A ShapeIndex holds, per segment, a planar exemplar geometry cut from
// the shape of a trip traversing the segment. Segments travelled by
// shapeless trips only are not in the index, they are drawn as straight
// lines.
type ShapeIndex struct {
	lines map[Segment]orb.LineString
}

// BuildShapeIndex projects every referenced shape once and cuts, for
// each directed segment of the given trips, the part of the shape
// between the snapped positions of the two stops. The first trip
// traversing a segment with a usable shape wins.
func BuildShapeIndex(trips []*gtfs.Trip, proj *Projector) *ShapeIndex {
	ix := &ShapeIndex{lines: make(map[Segment]orb.LineString)}

	shapeCache := make(map[string]orb.LineString)

	for _, t := range trips {
		if t.Shape == nil || len(t.Shape.Points) < 2 {
			continue
		}

		line, ok := shapeCache[t.Shape.Id]
		if !ok {
			line = projectShape(t.Shape, proj)
			shapeCache[t.Shape.Id] = line
		}

		for i := 1; i < len(t.StopTimes); i++ {
			from := t.StopTimes[i-1].Stop()
			to := t.StopTimes[i].Stop()

			if from == nil || to == nil || from.Id == to.Id {
				continue
			}

			seg := Segment{From: from.Id, To: to.Id}
			if _, ok := ix.lines[seg]; ok {
				continue
			}

			cut := cutSegment(line, proj.ProjectPoint(orb.Point{float64(from.Lon), float64(from.Lat)}),
				proj.ProjectPoint(orb.Point{float64(to.Lon), float64(to.Lat)}))

			if len(cut) >= 2 {
				ix.lines[seg] = cut
			}
		}
	}

	return ix
}

// Line returns the planar exemplar geometry for a segment, if any
func (ix *ShapeIndex) Line(seg Segment) (orb.LineString, bool) {
	l, ok := ix.lines[seg]
	return l, ok
}

func projectShape(s *gtfs.Shape, proj *Projector) orb.LineString {
	line := make(orb.LineString, len(s.Points))
	for i, p := range s.Points {
		line[i] = proj.ProjectPoint(orb.Point{float64(p.Lon), float64(p.Lat)})
	}
	return line
}

// cutSegment snaps both stops onto the shape and returns the part of
// the shape between them. If a stop is too far from the shape, or the
// snapped measures run against the shape direction, nil is returned.
func cutSegment(line orb.LineString, from, to orb.Point) orb.LineString {
	fromSnap, fromM := snapToLine(line, from)
	toSnap, toM := snapToLine(line, to)

	if dist(fromSnap[0], fromSnap[1], from[0], from[1]) > maxSnapDist {
		return nil
	}
	if dist(toSnap[0], toSnap[1], to[0], to[1]) > maxSnapDist {
		return nil
	}

	return sliceLine(line, fromM, toM)
}

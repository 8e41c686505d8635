// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package freq

import (
	"math"

	"github.com/paulmach/orb"
)

// Calculate the distance between two points (x1, y1) and (x2, y2)
func dist(x1 float64, y1 float64, x2 float64, y2 float64) float64 {
	return math.Sqrt((x2-x1)*(x2-x1) + (y2-y1)*(y2-y1))
}

// Calculate the perpendicular distance from point p to line segment [a, b]
func perpendicularDist(px, py, lax, lay, lbx, lby float64) float64 {
	d := dist(lax, lay, lbx, lby) * dist(lax, lay, lbx, lby)

	if d == 0 {
		return dist(px, py, lax, lay)
	}
	t := ((px-lax)*(lbx-lax) + (py-lay)*(lby-lay)) / d
	if t < 0 {
		return dist(px, py, lax, lay)
	} else if t > 1 {
		return dist(px, py, lbx, lby)
	}

	return dist(px, py, lax+t*(lbx-lax), lay+t*(lby-lay))
}

// Snap the point p to line segment [a, b]
func snapToWithProgr(px, py, lax, lay, lbx, lby float64) (float64, float64, float64) {
	d := dist(lax, lay, lbx, lby) * dist(lax, lay, lbx, lby)

	if d == 0 {
		return lax, lay, 0
	}
	t := ((px-lax)*(lbx-lax) + (py-lay)*(lby-lay)) / d
	if t < 0 {
		return lax, lay, 0
	} else if t > 1 {
		return lbx, lby, 1
	}

	return lax + t*(lbx-lax), lay + t*(lby-lay), t
}

// Snap the point p onto the line string, returning the snapped point
// and its measure (distance along the line)
func snapToLine(line orb.LineString, p orb.Point) (orb.Point, float64) {
	bestD := math.Inf(1)
	bestM := 0.0
	best := p

	m := 0.0
	for i := 1; i < len(line); i++ {
		a := line[i-1]
		b := line[i]

		d := perpendicularDist(p[0], p[1], a[0], a[1], b[0], b[1])
		if d < bestD {
			x, y, t := snapToWithProgr(p[0], p[1], a[0], a[1], b[0], b[1])
			bestD = d
			bestM = m + t*dist(a[0], a[1], b[0], b[1])
			best = orb.Point{x, y}
		}

		m += dist(a[0], a[1], b[0], b[1])
	}

	return best, bestM
}

// Cut the part between the measures from and to out of the line string
func sliceLine(line orb.LineString, from, to float64) orb.LineString {
	if to <= from {
		return nil
	}

	ret := make(orb.LineString, 0)
	ret = append(ret, interpolate(line, from))

	m := 0.0
	for i := 1; i < len(line); i++ {
		m += dist(line[i-1][0], line[i-1][1], line[i][0], line[i][1])
		if m > from && m < to {
			ret = append(ret, line[i])
		}
	}

	ret = append(ret, interpolate(line, to))
	return ret
}

// Return the point at measure m along the line string
func interpolate(line orb.LineString, m float64) orb.Point {
	cur := 0.0
	for i := 1; i < len(line); i++ {
		d := dist(line[i-1][0], line[i-1][1], line[i][0], line[i][1])
		if cur+d >= m && d > 0 {
			t := (m - cur) / d
			return orb.Point{
				line[i-1][0] + t*(line[i][0]-line[i-1][0]),
				line[i-1][1] + t*(line[i][1]-line[i-1][1]),
			}
		}
		cur += d
	}

	return line[len(line)-1]
}

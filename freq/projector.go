// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package freq

import (
	"github.com/patrickbr/gtfsparser"
	"github.com/paulmach/orb"
	"github.com/wroge/wgs84"
)

// A Projector converts between geographic (lon, lat) and planar UTM
// coordinates so that line operations are metrically meaningful. All
// projection math is delegated to the wgs84 package.
type Projector struct {
	Zone     int
	Northern bool

	fwd wgs84.Func
	inv wgs84.Func
}

// NewProjector returns a Projector for the given UTM zone
func NewProjector(zone int, northern bool) (*Projector, error) {
	if zone < 1 || zone > 60 {
		return nil, &ProjectionError{Zone: zone, Reason: "zone must be in the range [1, 60]"}
	}

	utm := wgs84.UTM(float64(zone), northern)

	return &Projector{
		Zone:     zone,
		Northern: northern,
		fwd:      wgs84.LonLat().To(utm),
		inv:      utm.To(wgs84.LonLat()),
	}, nil
}

// Project converts a geographic coordinate to planar easting/northing
func (p *Projector) Project(lon, lat float64) (float64, float64) {
	x, y, _ := p.fwd(lon, lat, 0)
	return x, y
}

// Unproject converts a planar easting/northing back to lon/lat
func (p *Projector) Unproject(x, y float64) (float64, float64) {
	lon, lat, _ := p.inv(x, y, 0)
	return lon, lat
}

// ProjectPoint projects a geographic orb.Point to the plane
func (p *Projector) ProjectPoint(pt orb.Point) orb.Point {
	x, y := p.Project(pt[0], pt[1])
	return orb.Point{x, y}
}

// UnprojectLine converts a planar line string back to lon/lat pairs
// in GeoJSON coordinate order
func (p *Projector) UnprojectLine(line orb.LineString) [][]float64 {
	ret := make([][]float64, len(line))
	for i, pt := range line {
		lon, lat := p.Unproject(pt[0], pt[1])
		ret[i] = []float64{lon, lat}
	}
	return ret
}

// DetectZone infers the UTM zone and hemisphere from the mean stop
// position of the feed
func DetectZone(feed *gtfsparser.Feed) (int, bool, error) {
	if len(feed.Stops) == 0 {
		return 0, false, &ProjectionError{Reason: "feed contains no stops to detect a zone from"}
	}

	var lon, lat float64
	for _, s := range feed.Stops {
		lon += float64(s.Lon)
		lat += float64(s.Lat)
	}
	lon /= float64(len(feed.Stops))
	lat /= float64(len(feed.Stops))

	zone := int((lon+180.0)/6.0) + 1
	if zone < 1 {
		zone = 1
	}
	if zone > 60 {
		zone = 60
	}

	return zone, lat >= 0, nil
}

// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package freq

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/patrickbr/gtfsparser"
	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/simplify"
	"golang.org/x/exp/slices"
)

// gradient endpoints for the count-based stroke color
var strokeLow = colorful.Color{R: 1, G: 1, B: 0}
var strokeHigh = colorful.Color{R: 0.9, G: 0.1, B: 0.1}

// RenderOptions control how aggregated segments are drawn
type RenderOptions struct {
	// follow the shape of a traversing trip instead of drawing a
	// straight stop-to-stop line
	FollowShapes bool

	// Douglas-Peucker tolerance in meters for shape-following lines,
	// 0 disables simplification
	Simplify float64

	// stroke-width per traversing trip
	WidthScale float64
}

// A Renderer turns a frequency-count mapping into GeoJSON line
// features, one per segment
type Renderer struct {
	proj   *Projector
	shapes *ShapeIndex
	opts   RenderOptions
}

// NewRenderer returns a renderer using the given projector. The shape
// index may be nil, segments are then drawn as straight lines.
func NewRenderer(proj *Projector, shapes *ShapeIndex, opts RenderOptions) *Renderer {
	if opts.WidthScale <= 0 {
		opts.WidthScale = 10.0 / 200.0
	}
	return &Renderer{proj: proj, shapes: shapes, opts: opts}
}

// FeatureCollection builds one line feature per aggregated segment,
// stroke color and width encoding the trip count. Output is stable
// across runs, segments are ordered and no randomness is involved.
func (r *Renderer) FeatureCollection(feed *gtfsparser.Feed, counts Counts) *geojson.FeatureCollection {
	return r.featureCollection(feed, counts, nil)
}

func (r *Renderer) featureCollection(feed *gtfsparser.Feed, counts Counts, stroke *colorful.Color) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	segs := make([]Segment, 0, len(counts))
	for seg := range counts {
		segs = append(segs, seg)
	}

	slices.SortFunc(segs, func(a, b Segment) int {
		if a.From != b.From {
			return strings.Compare(a.From, b.From)
		}
		return strings.Compare(a.To, b.To)
	})

	for _, seg := range segs {
		line := r.segmentLine(feed, seg)
		if len(line) < 2 || planar.Length(line) == 0 {
			continue
		}

		count := counts[seg]

		f := geojson.NewLineStringFeature(r.proj.UnprojectLine(line))
		f.SetProperty("from", seg.From)
		f.SetProperty("to", seg.To)
		f.SetProperty("count", count)

		width := r.opts.WidthScale * float64(count)
		if width < 1.0 {
			width = 1.0
		}
		f.SetProperty("stroke-width", width)

		if stroke != nil {
			f.SetProperty("stroke", stroke.Hex())
		} else {
			t := 0.0
			if maxCount > 0 {
				t = float64(count) / float64(maxCount)
			}
			f.SetProperty("stroke", strokeLow.BlendLab(strokeHigh, t).Clamped().Hex())
		}

		fc.AddFeature(f)
	}

	return fc
}

// segmentLine returns the planar geometry for a segment, either cut
// from a shape or the straight line between the two stops
func (r *Renderer) segmentLine(feed *gtfsparser.Feed, seg Segment) orb.LineString {
	if r.opts.FollowShapes && r.shapes != nil {
		if line, ok := r.shapes.Line(seg); ok {
			if r.opts.Simplify > 0 && len(line) > 2 {
				line = simplify.DouglasPeucker(r.opts.Simplify).LineString(line.Clone())
			}
			return line
		}
	}

	from, ok := feed.Stops[seg.From]
	if !ok {
		return nil
	}
	to, ok := feed.Stops[seg.To]
	if !ok {
		return nil
	}

	return orb.LineString{
		r.proj.ProjectPoint(orb.Point{float64(from.Lon), float64(from.Lat)}),
		r.proj.ProjectPoint(orb.Point{float64(to.Lon), float64(to.Lat)}),
	}
}

// WritePerRoute writes one feature collection per route id into dir,
// each route tinted with a distinct color
func (r *Renderer) WritePerRoute(feed *gtfsparser.Feed, byRoute map[string]Counts, dir string) error {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return &OutputError{Path: dir, Err: err}
	}

	routeIds := make([]string, 0, len(byRoute))
	for id := range byRoute {
		routeIds = append(routeIds, id)
	}
	slices.Sort(routeIds)

	picker := NewColorPicker(0)

	for _, id := range routeIds {
		c := picker.Next()
		fc := r.featureCollection(feed, byRoute[id], &c)

		for _, f := range fc.Features {
			f.SetProperty("route", id)
		}

		if err := WriteFeatureCollection(fc, filepath.Join(dir, id+".geojson")); err != nil {
			return err
		}
	}

	return nil
}

// WriteFeatureCollection writes the collection to path, all-or-nothing.
// The collection is written to a temporary file next to path first and
// renamed into place, a failed write never leaves a partial artifact.
func WriteFeatureCollection(fc *geojson.FeatureCollection, path string) error {
	bytes, err := json.Marshal(fc)
	if err != nil {
		return &OutputError{Path: path, Err: err}
	}

	tmp, err := ioutil.TempFile(filepath.Dir(path), filepath.Base(path)+".tmp")
	if err != nil {
		return &OutputError{Path: path, Err: err}
	}

	if _, err := tmp.Write(bytes); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &OutputError{Path: path, Err: err}
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &OutputError{Path: path, Err: err}
	}

	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return &OutputError{Path: path, Err: err}
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return &OutputError{Path: path, Err: err}
	}

	return nil
}

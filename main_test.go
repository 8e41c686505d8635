// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package main

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/patrickbr/gtfsfreq/freq"
	"github.com/patrickbr/gtfsparser"
	geojson "github.com/paulmach/go.geojson"
)

func TestGtfsFreq(t *testing.T) {
	opts := gtfsparser.ParseOptions{UseDefValueOnError: false, DropErroneous: false, DryRun: false}

	feed, e := freq.LoadFeed("./freq/testfeed", opts)

	if e != nil {
		t.Error(e)
		return
	}

	trips, e := freq.FilterTrips(feed, []string{"WD"})

	if e != nil {
		t.Error(e)
		return
	}

	counts := freq.Aggregate(trips)

	if len(counts) != 2 {
		t.Error(counts)
		return
	}

	zone, northern, e := freq.DetectZone(feed)

	if e != nil {
		t.Error(e)
		return
	}

	proj, e := freq.NewProjector(zone, northern)

	if e != nil {
		t.Error(e)
		return
	}

	shapes := freq.BuildShapeIndex(trips, proj)
	renderer := freq.NewRenderer(proj, shapes, freq.RenderOptions{FollowShapes: true, Simplify: 3.0})

	outputPath := ".testout.geojson"

	fc := renderer.FeatureCollection(feed, counts)

	if e := freq.WriteFeatureCollection(fc, outputPath); e != nil {
		t.Error(e)
		return
	}
	defer os.Remove(outputPath)

	bytes, e := ioutil.ReadFile(outputPath)

	if e != nil {
		t.Error(e)
		return
	}

	fc2, e := geojson.UnmarshalFeatureCollection(bytes)

	if e != nil {
		t.Error(e)
		return
	}

	if len(fc2.Features) != 2 {
		t.Error(len(fc2.Features))
		return
	}

	for _, f := range fc2.Features {
		if !f.Geometry.IsLineString() {
			t.Error(f.Geometry)
		}

		if f.Properties["count"].(float64) != 2 {
			t.Error(f.Properties["count"])
		}
	}

	// a calendar without trips yields an empty, but valid, map
	trips, e = freq.FilterTrips(feed, []string{"HOL"})

	if e != nil {
		t.Error(e)
		return
	}

	fc = renderer.FeatureCollection(feed, freq.Aggregate(trips))

	if len(fc.Features) != 0 {
		t.Error(len(fc.Features))
	}

	// parsing a missing feed is a dataset error
	_, e = freq.LoadFeed("./no-such-feed", opts)

	if e == nil {
		t.Error("expected error for missing feed")
		return
	}

	if _, ok := e.(*freq.DatasetError); !ok {
		t.Error(e)
	}
}

// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package main

import (
	"fmt"
	"os"

	"github.com/patrickbr/gtfsfreq/freq"
	"github.com/patrickbr/gtfsparser"
	flag "github.com/spf13/pflag"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "gtfsfreq - (C) 2016-2023 by Patrick Brosi <info@patrickbrosi.de>\n\nUsage:\n\n  %s [<options>] <input GTFS> <calendar> [<calendar>...]\n\nCounts for every directed route segment how many trips of the given\nservice calendars pass over it and writes a GeoJSON map encoding the\nfrequencies.\n\nAllowed options:\n\n", os.Args[0])
		flag.PrintDefaults()
	}

	outputPath := flag.StringP("output", "o", "freq-out.geojson", "GeoJSON output file")
	utmZone := flag.IntP("utm", "u", 0, "UTM zone to project to, 0 = auto-detect from the feed")
	followShapes := flag.BoolP("follow-shapes", "s", false, "draw segments along the route shape instead of straight stop-to-stop lines")
	simplifyTol := flag.Float64P("simplify", "", 3.0, "simplification tolerance (in meters) for shape-following segments, 0 = off")
	widthScale := flag.Float64P("width-scale", "", 0.05, "stroke width per traversing trip")
	perRouteDir := flag.StringP("per-route", "", "", "additionally write one GeoJSON file per route into this directory")

	assumeCleanCsv := flag.BoolP("assume-clean-csv", "", false, "assume clean csv (no leading spaces, clean line breaks)")
	useDefaultValuesOnError := flag.BoolP("default-on-errs", "e", false, "if non-required fields have errors, fall back to the default values")
	fixZip := flag.BoolP("fix-zip", "z", false, "try to fix some errors in the ZIP file directory hierarchy")
	dropErroneousEntities := flag.BoolP("drop-errs", "D", false, "drop erroneous entries from feed")
	checkNullCoords := flag.BoolP("check-null-coords", "n", false, "check for (0, 0) coordinates")
	showWarnings := flag.BoolP("show-warnings", "W", false, "show warnings")
	help := flag.BoolP("help", "?", false, "this message")

	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	args := flag.Args()

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "No GTFS location specified, see --help")
		os.Exit(1)
	}

	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "No calendars specified, see --help")
		os.Exit(1)
	}

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "Error:", r)
			os.Exit(1)
		}
	}()

	gtfsPath := args[0]
	calendars := args[1:]

	opts := gtfsparser.ParseOptions{}
	opts.UseDefValueOnError = *useDefaultValuesOnError
	opts.DropErroneous = *dropErroneousEntities
	opts.CheckNullCoordinates = *checkNullCoords
	opts.ZipFix = *fixZip
	opts.ShowWarnings = *showWarnings
	opts.AssumeCleanCsv = *assumeCleanCsv

	fmt.Fprintf(os.Stdout, "Parsing GTFS feed in '%s' ...", gtfsPath)
	if opts.ShowWarnings {
		fmt.Fprintf(os.Stdout, "\n")
	}

	feed, err := freq.LoadFeed(gtfsPath, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nError while parsing GTFS feed:\n")
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done.\n")

	trips, err := freq.FilterTrips(feed, calendars)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err.Error())
		os.Exit(1)
	}

	fmt.Fprintf(os.Stdout, "Aggregating segment frequencies...")
	counts := freq.Aggregate(trips)
	fmt.Fprintf(os.Stdout, " done. (%d trips, %d segments)\n", len(trips), len(counts))

	zone := *utmZone
	northern := true

	if z, n, err := freq.DetectZone(feed); err == nil {
		if zone == 0 {
			zone = z
		}
		northern = n
	} else if zone == 0 {
		fmt.Fprintln(os.Stderr, "Error:", err.Error())
		os.Exit(1)
	}

	proj, err := freq.NewProjector(zone, northern)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err.Error())
		os.Exit(1)
	}

	var shapes *freq.ShapeIndex
	if *followShapes {
		fmt.Fprintf(os.Stdout, "Matching segments to shapes...")
		shapes = freq.BuildShapeIndex(trips, proj)
		fmt.Fprintf(os.Stdout, " done.\n")
	}

	renderer := freq.NewRenderer(proj, shapes, freq.RenderOptions{
		FollowShapes: *followShapes,
		Simplify:     *simplifyTol,
		WidthScale:   *widthScale,
	})

	fmt.Fprintf(os.Stdout, "Writing frequency map to '%s' (UTM zone %d)...", *outputPath, proj.Zone)

	fc := renderer.FeatureCollection(feed, counts)
	if err := freq.WriteFeatureCollection(fc, *outputPath); err != nil {
		fmt.Fprintf(os.Stderr, "\nError while writing frequency map:\n")
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done.\n")

	if len(*perRouteDir) > 0 {
		fmt.Fprintf(os.Stdout, "Writing per-route maps to '%s'...", *perRouteDir)

		byRoute := freq.AggregateByRoute(trips)
		if err := renderer.WritePerRoute(feed, byRoute, *perRouteDir); err != nil {
			fmt.Fprintf(os.Stderr, "\nError while writing per-route maps:\n")
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		fmt.Fprintf(os.Stdout, " done. (%d routes)\n", len(byRoute))
	}
}

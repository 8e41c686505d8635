// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package freq

import (
	"github.com/patrickbr/gtfsparser"
)

// LoadFeed parses the GTFS feed (directory or ZIP file) at path.
// Parsing is delegated to gtfsparser, any failure is wrapped in a
// DatasetError.
func LoadFeed(path string, opts gtfsparser.ParseOptions) (*gtfsparser.Feed, error) {
	feed := gtfsparser.NewFeed()
	feed.SetParseOpts(opts)

	if err := feed.Parse(path); err != nil {
		return nil, &DatasetError{Path: path, Err: err}
	}

	return feed, nil
}

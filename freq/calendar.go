// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package freq

import (
	"errors"
	"github.com/patrickbr/gtfsparser"
	gtfs "github.com/patrickbr/gtfsparser/gtfs"
)

// FilterTrips returns the trips of the feed running under at least one
// of the given service ids. Every requested id must exist in the feed.
func FilterTrips(feed *gtfsparser.Feed, calendars []string) ([]*gtfs.Trip, error) {
	if len(calendars) == 0 {
		return nil, errors.New("no calendars selected")
	}

	sel := make(map[string]bool, len(calendars))

	for _, c := range calendars {
		if _, ok := feed.Services[c]; !ok {
			return nil, &UnknownCalendarError{Calendar: c}
		}
		sel[c] = true
	}

	ret := make([]*gtfs.Trip, 0)

	for _, t := range feed.Trips {
		if t.Service != nil && sel[t.Service.Id()] {
			ret = append(ret, t)
		}
	}

	return ret, nil
}

// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package freq

import (
	gtfs "github.com/patrickbr/gtfsparser/gtfs"
)

// A Segment is a directed hop between two consecutive stops of a trip.
// (A, B) and (B, A) are distinct, service frequency may differ by
// direction.
type Segment struct {
	From string
	To   string
}

// Counts maps segments to the number of trips traversing them
type Counts map[Segment]int

// Aggregate walks the stop sequence of every trip and counts, per
// directed segment, how many trips pass over it. Trips with fewer than
// two stop times contribute nothing.
func Aggregate(trips []*gtfs.Trip) Counts {
	ret := make(Counts)

	for _, t := range trips {
		addSegments(ret, t)
	}

	return ret
}

// AggregateByRoute counts segments separately for each route id
func AggregateByRoute(trips []*gtfs.Trip) map[string]Counts {
	ret := make(map[string]Counts)

	for _, t := range trips {
		if t.Route == nil {
			continue
		}
		c, ok := ret[t.Route.Id]
		if !ok {
			c = make(Counts)
			ret[t.Route.Id] = c
		}
		addSegments(c, t)
	}

	return ret
}

func addSegments(c Counts, t *gtfs.Trip) {
	for i := 1; i < len(t.StopTimes); i++ {
		from := t.StopTimes[i-1].Stop()
		to := t.StopTimes[i].Stop()

		if from == nil || to == nil || from.Id == to.Id {
			continue
		}

		c[Segment{From: from.Id, To: to.Id}]++
	}
}

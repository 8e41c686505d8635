// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package freq

import "fmt"

// A DatasetError wraps a failure to read the GTFS input
type DatasetError struct {
	Path string
	Err  error
}

func (e *DatasetError) Error() string {
	return fmt.Sprintf("could not read GTFS feed in '%s': %s", e.Path, e.Err.Error())
}

func (e *DatasetError) Unwrap() error {
	return e.Err
}

// An UnknownCalendarError is returned if a requested service id
// does not appear in the feed
type UnknownCalendarError struct {
	Calendar string
}

func (e *UnknownCalendarError) Error() string {
	return fmt.Sprintf("calendar '%s' not found in feed", e.Calendar)
}

// A ProjectionError is returned for an unusable UTM zone
type ProjectionError struct {
	Zone   int
	Reason string
}

func (e *ProjectionError) Error() string {
	return fmt.Sprintf("cannot project to UTM zone %d: %s", e.Zone, e.Reason)
}

// An OutputError wraps a failure to write the output artifact
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("could not write output to '%s': %s", e.Path, e.Err.Error())
}

func (e *OutputError) Unwrap() error {
	return e.Err
}

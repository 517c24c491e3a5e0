package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/GeoNet/hazard/internal/eq"
	"github.com/GeoNet/hazard/internal/geo"
	"github.com/GeoNet/hazard/internal/platform/metrics"
	"github.com/GeoNet/kit/weft"
)

type sourceQuery struct {
	ID int `schema:"id"`
}

type distanceQuery struct {
	ID        int     `schema:"id"`
	Latitude  float64 `schema:"latitude"`
	Longitude float64 `schema:"longitude"`
}

type distance struct {
	RJB  float64 `json:"rJB"`
	RRup float64 `json:"rRup"`
	RX   float64 `json:"rX"`
}

type nearest struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Depth     float64 `json:"depth"`
	Distance  float64 `json:"distance"`
	Bearing   float64 `json:"bearing"`
}

// serves the rupture summaries of one source
// e.g. /source/ruptures?id=1
func rupturesHandler(r *http.Request, h http.Header, b *bytes.Buffer) error {
	metrics.Request()

	err := weft.CheckQuery(r, []string{"GET"}, []string{"id"}, []string{})
	if err != nil {
		metrics.StatusBadRequest()
		return err
	}

	var q sourceQuery
	if err := decoder.Decode(&q, r.URL.Query()); err != nil {
		metrics.StatusBadRequest()
		return weft.StatusError{Code: http.StatusBadRequest, Err: err}
	}

	if _, ok := sources.Get(q.ID); !ok {
		metrics.StatusNotFound()
		return weft.StatusError{Code: http.StatusNotFound, Err: fmt.Errorf("no source with id %d", q.ID)}
	}

	s, err := ruptures.Ruptures(q.ID)
	if err != nil {
		return sourceError(err)
	}

	out, err := json.Marshal(s)
	if err != nil {
		metrics.StatusInternalServerError()
		return weft.StatusError{Code: http.StatusInternalServerError, Err: err}
	}

	h.Set("Content-Type", "application/json")
	if _, err := b.Write(out); err != nil {
		metrics.StatusInternalServerError()
		return weft.StatusError{Code: http.StatusInternalServerError, Err: err}
	}

	metrics.StatusOK()
	return nil
}

// serves rJB, rRup and rX from each rupture of one source to a site
// e.g. /source/distances?id=1&latitude=-41.2&longitude=174.7
func distancesHandler(r *http.Request, h http.Header, b *bytes.Buffer) error {
	metrics.Request()

	err := weft.CheckQuery(r, []string{"GET"}, []string{"id", "latitude", "longitude"}, []string{})
	if err != nil {
		metrics.StatusBadRequest()
		return err
	}

	var q distanceQuery
	if err := decoder.Decode(&q, r.URL.Query()); err != nil {
		metrics.StatusBadRequest()
		return weft.StatusError{Code: http.StatusBadRequest, Err: err}
	}

	if q.Latitude < -90.0 || q.Latitude > 90.0 || q.Longitude < -180.0 || q.Longitude > 180.0 {
		metrics.StatusBadRequest()
		return weft.StatusError{Code: http.StatusBadRequest,
			Err: fmt.Errorf("site %g, %g out of range", q.Longitude, q.Latitude)}
	}

	src, ok := sources.Get(q.ID)
	if !ok {
		metrics.StatusNotFound()
		return weft.StatusError{Code: http.StatusNotFound, Err: fmt.Errorf("no source with id %d", q.ID)}
	}

	rr, err := src.Ruptures()
	if err != nil {
		return sourceError(err)
	}

	t := metrics.Start()

	site := geo.Location{Lat: q.Latitude, Lon: q.Longitude}

	out := make([]distance, 0, src.Size())
	for rr.Next() {
		d := rr.Rupture().Surface.DistanceTo(site)
		out = append(out, distance{RJB: d.RJB, RRup: d.RRup, RX: d.RX})
	}

	if err := t.Track("distances"); err != nil {
		log.Println(err)
	}

	j, err := json.Marshal(out)
	if err != nil {
		metrics.StatusInternalServerError()
		return weft.StatusError{Code: http.StatusInternalServerError, Err: err}
	}

	h.Set("Content-Type", "application/json")
	if _, err := b.Write(j); err != nil {
		metrics.StatusInternalServerError()
		return weft.StatusError{Code: http.StatusInternalServerError, Err: err}
	}

	metrics.StatusOK()
	return nil
}

// serves the point of a source closest to a site with the ellipsoid distance
// and bearing to it, for coarse source filtering
// e.g. /source/nearest?id=1&latitude=-41.2&longitude=174.7
func nearestHandler(r *http.Request, h http.Header, b *bytes.Buffer) error {
	metrics.Request()

	err := weft.CheckQuery(r, []string{"GET"}, []string{"id", "latitude", "longitude"}, []string{})
	if err != nil {
		metrics.StatusBadRequest()
		return err
	}

	var q distanceQuery
	if err := decoder.Decode(&q, r.URL.Query()); err != nil {
		metrics.StatusBadRequest()
		return weft.StatusError{Code: http.StatusBadRequest, Err: err}
	}

	if q.Latitude < -90.0 || q.Latitude > 90.0 || q.Longitude < -180.0 || q.Longitude > 180.0 {
		metrics.StatusBadRequest()
		return weft.StatusError{Code: http.StatusBadRequest,
			Err: fmt.Errorf("site %g, %g out of range", q.Longitude, q.Latitude)}
	}

	src, ok := sources.Get(q.ID)
	if !ok {
		metrics.StatusNotFound()
		return weft.StatusError{Code: http.StatusNotFound, Err: fmt.Errorf("no source with id %d", q.ID)}
	}

	site := geo.Location{Lat: q.Latitude, Lon: q.Longitude}
	loc := src.Location(site)

	dist, bearing, err := geo.DistanceBearing(site, loc)
	if err != nil {
		metrics.StatusInternalServerError()
		return weft.StatusError{Code: http.StatusInternalServerError, Err: err}
	}

	out := nearest{
		Name:      src.Name(),
		Latitude:  loc.Lat,
		Longitude: loc.Lon,
		Depth:     loc.Depth,
		Distance:  dist,
		Bearing:   bearing,
	}

	j, err := json.Marshal(out)
	if err != nil {
		metrics.StatusInternalServerError()
		return weft.StatusError{Code: http.StatusInternalServerError, Err: err}
	}

	h.Set("Content-Type", "application/json")
	if _, err := b.Write(j); err != nil {
		metrics.StatusInternalServerError()
		return weft.StatusError{Code: http.StatusInternalServerError, Err: err}
	}

	metrics.StatusOK()
	return nil
}

// sourceError maps rupture enumeration errors to status errors.  Asking for
// ruptures from a cluster source is a client error, anything else is ours.
func sourceError(err error) error {
	var ue eq.UnsupportedError
	if errors.As(err, &ue) {
		metrics.StatusBadRequest()
		return weft.StatusError{Code: http.StatusBadRequest, Err: err}
	}

	metrics.StatusInternalServerError()
	return weft.StatusError{Code: http.StatusInternalServerError, Err: err}
}

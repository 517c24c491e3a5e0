package main

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/GeoNet/kit/weft"
)

var mux *http.ServeMux

func init() {
	mux = http.NewServeMux()

	mux.HandleFunc("/", weft.MakeHandler(weft.NoMatch, weft.TextError))
	mux.HandleFunc("/soh/up", weft.MakeHandler(weft.Up, weft.TextError))
	mux.HandleFunc("/soh", weft.MakeHandler(soh, weft.UseError))

	mux.HandleFunc("/source/ruptures", weft.MakeHandler(rupturesHandler, weft.TextError))
	mux.HandleFunc("/source/distances", weft.MakeHandler(distancesHandler, weft.TextError))
	mux.HandleFunc("/source/nearest", weft.MakeHandler(nearestHandler, weft.TextError))
}

func soh(r *http.Request, h http.Header, b *bytes.Buffer) error {
	err := weft.CheckQuery(r, []string{"GET"}, []string{}, []string{})
	if err != nil {
		return err
	}

	if sources == nil || len(sources.Sources) == 0 {
		b.WriteString("<html><head></head><body>have zero sources loaded.</body></html>")
		return weft.StatusError{Code: http.StatusServiceUnavailable}
	}

	b.WriteString(fmt.Sprintf("<html><head></head><body>serving %d sources.</body></html>", len(sources.Sources)))

	return nil
}

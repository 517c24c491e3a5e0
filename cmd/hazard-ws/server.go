package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/GeoNet/hazard/internal/modelfile"
	"github.com/GeoNet/hazard/internal/platform/metrics"
	"github.com/GeoNet/hazard/internal/rupcache"
	"github.com/gorilla/schema"
)

// default max size in bytes for the rupture summary RAM cache.
const defaultCacheSize = 100000000

var (
	decoder  = schema.NewDecoder() // decoder for URL queries.
	sources  *modelfile.Set
	ruptures *rupcache.Cache
)

func main() {
	path := os.Getenv("SOURCE_MODEL_PATH")
	if path == "" {
		log.Fatal("SOURCE_MODEL_PATH env var must be set")
	}

	cacheSize := int64(defaultCacheSize)
	if size := os.Getenv("RUPTURE_CACHE_SIZE"); size != "" {
		var err error
		cacheSize, err = strconv.ParseInt(size, 10, 64)
		if err != nil {
			log.Fatalf("error parsing RUPTURE_CACHE_SIZE env var %s", err.Error())
		}
	}

	t := metrics.Start()
	var err error
	sources, err = modelfile.Load(path)
	if err != nil {
		log.Fatalf("error loading the source model: %s", err)
	}
	if err = t.Track("loadModel"); err != nil {
		log.Println(err)
	}

	log.Printf("serving %d sources from %s", len(sources.Sources), path)

	ruptures = rupcache.InitCache("ruptures", cacheSize, sources.Get)

	go func() {
		for range time.Tick(time.Second * 30) {
			log.Printf("rupture cache: %+v", ruptures.Stats())
			for _, v := range metrics.ReadTimers() {
				log.Printf("timer %s count %d avg %d ms 95th %d ms", v.ID, v.Count, v.Average, v.Percentile95)
			}
		}
	}()

	log.Println("starting server")
	server := &http.Server{
		Addr:         ":8080",
		Handler:      mux,
		ReadTimeout:  1 * time.Minute,
		WriteTimeout: 1 * time.Minute,
	}
	log.Fatal(server.ListenAndServe())
}

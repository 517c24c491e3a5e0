// pkg metrics gathers in-process counters and timers for the web service.
package metrics

import (
	"sync/atomic"
	"time"
)

var httpCounters [5]uint64
var httpLast [5]uint64
var httpCurrent [5]uint64

// A HttpCounters records http counters.
type HttpCounters struct {
	// Request is the count of http requests.
	Request uint64

	// StatusOK is the count of http 200 responses.
	StatusOK uint64

	// StatusBadRequest is the count of http 400 responses.
	StatusBadRequest uint64

	// StatusNotFound is the count of http 404 responses.
	StatusNotFound uint64

	// StatusInternalServerError is the count of http 500 responses.
	StatusInternalServerError uint64

	// At is the time the counters were sampled at.
	At time.Time
}

// ReadHttpCounters populates m with http counter delta values
// since last time it was called.
func ReadHttpCounters(m *HttpCounters) {
	m.At = time.Now().UTC()

	for i := range httpCounters {
		httpCurrent[i] = atomic.LoadUint64(&httpCounters[i])
	}

	m.Request = httpCurrent[0] - httpLast[0]
	m.StatusOK = httpCurrent[1] - httpLast[1]
	m.StatusBadRequest = httpCurrent[2] - httpLast[2]
	m.StatusNotFound = httpCurrent[3] - httpLast[3]
	m.StatusInternalServerError = httpCurrent[4] - httpLast[4]

	for i := range httpCounters {
		httpLast[i] = httpCurrent[i]
	}
}

// Request increments the http request counter. It is safe for concurrent access.
func Request() {
	atomic.AddUint64(&httpCounters[0], 1)
}

// StatusOK increments the http response 200 counter. It is safe for concurrent access.
func StatusOK() {
	atomic.AddUint64(&httpCounters[1], 1)
}

// StatusBadRequest increments the http response 400 counter. It is safe for concurrent access.
func StatusBadRequest() {
	atomic.AddUint64(&httpCounters[2], 1)
}

// StatusNotFound increments the http response 404 counter. It is safe for concurrent access.
func StatusNotFound() {
	atomic.AddUint64(&httpCounters[3], 1)
}

// StatusInternalServerError increments the http response 500 counter. It is safe for concurrent access.
func StatusInternalServerError() {
	atomic.AddUint64(&httpCounters[4], 1)
}

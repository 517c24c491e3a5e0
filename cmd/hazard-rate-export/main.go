// hazard-rate-export loads a TOML source model definition, builds the
// sources, and exports per-rupture magnitudes and annual rates to the
// hazard.rupture_rate table for downstream aggregation.  Any rows from a
// previous export of the same model are replaced.
package main

import (
	"database/sql"
	"errors"
	"log"
	"os"

	"github.com/GeoNet/hazard/internal/eq"
	"github.com/GeoNet/hazard/internal/eq/model"
	"github.com/GeoNet/hazard/internal/modelfile"
	"github.com/GeoNet/hazard/internal/platform/metrics"
	"github.com/GeoNet/kit/cfg"
	_ "github.com/lib/pq"
)

var db *sql.DB

func main() {
	path := os.Getenv("SOURCE_MODEL_PATH")
	if path == "" {
		log.Fatal("SOURCE_MODEL_PATH env var must be set")
	}

	p, err := cfg.PostgresEnv()
	if err != nil {
		log.Fatalf("error reading DB config from the environment vars: %s", err)
	}

	db, err = sql.Open("postgres", p.Connection())
	if err != nil {
		log.Fatalf("error with DB config: %s", err)
	}
	defer db.Close()

	db.SetMaxIdleConns(p.MaxIdle)
	db.SetMaxOpenConns(p.MaxOpen)

	if err = db.Ping(); err != nil {
		log.Fatalf("problem pinging DB - is it up and contactable? %s", err)
	}

	t := metrics.Start()
	set, err := modelfile.Load(path)
	if err != nil {
		log.Fatalf("error loading the source model: %s", err)
	}
	if err = t.Track("loadModel"); err != nil {
		log.Println(err)
	}

	n, err := export(set)
	if err != nil {
		log.Fatalf("export failed: %s", err)
	}

	log.Printf("exported %d rupture rates from %d sources for model %q", n, len(set.Sources), set.Title)
}

// export replaces the rupture rates for the model in a single transaction.
func export(set *modelfile.Set) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM hazard.rupture_rate WHERE model = $1`, set.Title); err != nil {
		return 0, err
	}

	ins, err := tx.Prepare(`INSERT INTO hazard.rupture_rate(model, source_id, name, magnitude, rate)
	                        VALUES($1, $2, $3, $4, $5)`)
	if err != nil {
		return 0, err
	}
	defer ins.Close()

	var n int

	for _, src := range set.Sources {
		c, err := exportSource(ins, set.Title, src)
		if err != nil {
			return 0, err
		}
		n += c
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return n, nil
}

// exportSource writes one row per rupture.  Cluster sources cannot be
// enumerated so their scaled distributions are exported instead.
func exportSource(ins *sql.Stmt, title string, src model.Source) (int, error) {
	var n int

	rr, err := src.Ruptures()
	if err != nil {
		var ue eq.UnsupportedError
		if !errors.As(err, &ue) {
			return 0, err
		}

		for _, m := range src.Mfds() {
			for i := 0; i < m.Len(); i++ {
				if m.Rate(i) == 0 {
					continue
				}
				if _, err := ins.Exec(title, src.ID(), src.Name(), m.Mag(i), m.Rate(i)); err != nil {
					return 0, err
				}
				n++
			}
		}
		return n, nil
	}

	for rr.Next() {
		r := rr.Rupture()
		if r.Rate == 0 {
			continue
		}
		if _, err := ins.Exec(title, src.ID(), src.Name(), r.Mag, r.Rate); err != nil {
			return 0, err
		}
		n++
	}

	return n, nil
}

// Package repository persists trip records, buffering writes so the sqlite
// store sees one batched transaction instead of a commit per row.
package repository

import (
	"database/sql"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/munilab/transit-sampler-go/internal/database"
	"github.com/munilab/transit-sampler-go/internal/models"
	"github.com/munilab/transit-sampler-go/internal/spatial"
)

const createTableSQL = `
	CREATE TABLE IF NOT EXISTS google_responses (
		arrive_add TEXT,
		arrive_lat REAL,
		arrive_lon REAL,
		bicycle    INTEGER,
		depart_add TEXT,
		depart_lat REAL,
		depart_lon REAL,
		driving    INTEGER,
		transit    INTEGER,
		walk       INTEGER,
		timestamp  TEXT
	)
`

const insertSQL = `
	INSERT INTO google_responses (
		arrive_add, arrive_lat, arrive_lon, bicycle, depart_add,
		depart_lat, depart_lon, driving, transit, walk, timestamp
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// BufferedRecorder validates trip records, buffers them in memory, and
// flushes the buffer to the store in a single transaction once it reaches
// the configured size. The collection loop is the only writer, but the
// diagnostic API reads Len and Count from its own goroutine, so the buffer
// is guarded by a mutex.
type BufferedRecorder struct {
	db         *sql.DB
	log        *zap.Logger
	bufferSize int

	mu     sync.Mutex
	buffer []models.TripRecord
}

// NewBufferedRecorder bootstraps the schema and returns a recorder flushing
// every bufferSize rows
func NewBufferedRecorder(db *sql.DB, bufferSize int, log *zap.Logger) (*BufferedRecorder, error) {
	if bufferSize < 1 {
		return nil, fmt.Errorf("buffer size must be positive, got %d", bufferSize)
	}

	if _, err := db.Exec(createTableSQL); err != nil {
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &BufferedRecorder{
		db:         db,
		log:        log,
		bufferSize: bufferSize,
		buffer:     make([]models.TripRecord, 0, bufferSize),
	}, nil
}

// Record validates and buffers one trip record. Invalid rows are logged and
// rejected so a bad cycle never kills the collection loop. Returns true iff
// the row was buffered. Reaching the buffer size triggers a flush; a failed
// flush is logged and retried on the next Record call.
func (r *BufferedRecorder) Record(rec models.TripRecord) bool {
	if err := validate(&rec); err != nil {
		r.log.Warn("rejecting trip record", zap.Error(err))
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.buffer = append(r.buffer, rec)

	if len(r.buffer) >= r.bufferSize {
		if err := r.flushLocked(); err != nil {
			r.log.Error("flush failed, keeping buffer", zap.Error(err))
		}
	}
	return true
}

// Flush writes all buffered rows in one transaction and clears the buffer.
// Called automatically at the size threshold and explicitly on shutdown so
// no partial buffer is lost.
func (r *BufferedRecorder) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.flushLocked()
}

func (r *BufferedRecorder) flushLocked() error {
	if len(r.buffer) == 0 {
		return nil
	}

	err := database.Transaction(r.db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(insertSQL)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for _, rec := range r.buffer {
			_, err := stmt.Exec(
				rec.ArriveAddress,
				rec.ArriveLat,
				rec.ArriveLon,
				rec.Bicycle,
				rec.DepartAddress,
				rec.DepartLat,
				rec.DepartLon,
				rec.Driving,
				rec.Transit,
				rec.Walk,
				rec.Timestamp,
			)
			if err != nil {
				return fmt.Errorf("failed to insert record: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.log.Info("flushed trip records", zap.Int("rows", len(r.buffer)))
	r.buffer = r.buffer[:0]
	return nil
}

// Len returns the number of rows currently buffered
func (r *BufferedRecorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.buffer)
}

// Count returns the number of rows already persisted
func (r *BufferedRecorder) Count() (int64, error) {
	var n int64
	err := r.db.QueryRow("SELECT COUNT(*) FROM google_responses").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return n, nil
}

// Recent returns the latest stored records, newest first
func (r *BufferedRecorder) Recent(limit int) ([]models.TripRecord, error) {
	rows, err := r.db.Query(`
		SELECT arrive_add, arrive_lat, arrive_lon, bicycle, depart_add,
		       depart_lat, depart_lon, driving, transit, walk, timestamp
		FROM google_responses
		ORDER BY timestamp DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var recs []models.TripRecord
	for rows.Next() {
		var rec models.TripRecord
		err := rows.Scan(
			&rec.ArriveAddress,
			&rec.ArriveLat,
			&rec.ArriveLon,
			&rec.Bicycle,
			&rec.DepartAddress,
			&rec.DepartLat,
			&rec.DepartLon,
			&rec.Driving,
			&rec.Transit,
			&rec.Walk,
			&rec.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// validate checks each field against its expected semantic type: finite
// in-range coordinates, non-negative durations present for all four modes,
// and a non-empty timestamp
func validate(rec *models.TripRecord) error {
	arrive := spatial.Point{Lat: rec.ArriveLat, Lon: rec.ArriveLon}
	if !arrive.Valid() {
		return fmt.Errorf("invalid arrive coordinates (%v, %v)", rec.ArriveLat, rec.ArriveLon)
	}
	depart := spatial.Point{Lat: rec.DepartLat, Lon: rec.DepartLon}
	if !depart.Valid() {
		return fmt.Errorf("invalid depart coordinates (%v, %v)", rec.DepartLat, rec.DepartLon)
	}

	for mode, minutes := range map[models.TravelMode]*int{
		models.ModeBicycle: rec.Bicycle,
		models.ModeDriving: rec.Driving,
		models.ModeTransit: rec.Transit,
		models.ModeWalk:    rec.Walk,
	} {
		if minutes == nil {
			return fmt.Errorf("missing %s duration", mode)
		}
		if *minutes < 0 {
			return fmt.Errorf("negative %s duration: %d", mode, *minutes)
		}
	}

	if rec.Timestamp == "" {
		return fmt.Errorf("missing timestamp")
	}
	return nil
}

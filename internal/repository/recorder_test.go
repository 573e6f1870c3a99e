package repository

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/munilab/transit-sampler-go/internal/database"
	"github.com/munilab/transit-sampler-go/internal/models"
)

func newTestRecorder(t *testing.T, bufferSize int) *BufferedRecorder {
	t.Helper()

	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "trips.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rec, err := NewBufferedRecorder(db, bufferSize, zap.NewNop())
	require.NoError(t, err)
	return rec
}

func validRecord() models.TripRecord {
	rec := models.TripRecord{
		ArriveAddress: "1 Dr Carlton B Goodlett Pl, San Francisco",
		ArriveLat:     37.7793,
		ArriveLon:     -122.4193,
		DepartAddress: "Ferry Building, San Francisco",
		DepartLat:     37.7955,
		DepartLon:     -122.3937,
		Timestamp:     time.Now().Format(time.RFC3339),
	}
	for _, mode := range models.TravelModes {
		rec.SetDuration(mode, 15)
	}
	return rec
}

func TestRecordBuffersWithoutFlush(t *testing.T) {
	r := newTestRecorder(t, 5)

	assert.True(t, r.Record(validRecord()))
	assert.Equal(t, 1, r.Len())

	n, err := r.Count()
	require.NoError(t, err)
	assert.Zero(t, n, "no storage I/O before the threshold")
}

func TestFlushAtThreshold(t *testing.T) {
	r := newTestRecorder(t, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, r.Record(validRecord()))
	}

	assert.Equal(t, 0, r.Len(), "buffer resets after flush")
	n, err := r.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}

func TestTwoCycleScenario(t *testing.T) {
	// two cycles of 2 rows each against a threshold of 3: the first cycle
	// only buffers, the third row flushes, the fourth stays buffered
	r := newTestRecorder(t, 3)

	assert.True(t, r.Record(validRecord()))
	assert.True(t, r.Record(validRecord()))
	assert.Equal(t, 2, r.Len())

	assert.True(t, r.Record(validRecord()))
	assert.Equal(t, 0, r.Len())

	assert.True(t, r.Record(validRecord()))
	assert.Equal(t, 1, r.Len())

	n, err := r.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}

func TestRecordRejectsBadCoordinates(t *testing.T) {
	r := newTestRecorder(t, 5)

	rec := validRecord()
	rec.ArriveLat = math.NaN()
	assert.False(t, r.Record(rec))
	assert.Equal(t, 0, r.Len())

	rec = validRecord()
	rec.DepartLon = -200
	assert.False(t, r.Record(rec))
	assert.Equal(t, 0, r.Len())
}

func TestRecordRejectsMissingFields(t *testing.T) {
	r := newTestRecorder(t, 5)

	rec := validRecord()
	rec.Transit = nil
	assert.False(t, r.Record(rec))

	rec = validRecord()
	rec.Timestamp = ""
	assert.False(t, r.Record(rec))

	rec = validRecord()
	neg := -4
	rec.Walk = &neg
	assert.False(t, r.Record(rec))

	assert.Equal(t, 0, r.Len())
}

func TestExplicitFlush(t *testing.T) {
	r := newTestRecorder(t, 100)

	r.Record(validRecord())
	r.Record(validRecord())
	require.NoError(t, r.Flush())

	assert.Equal(t, 0, r.Len())
	n, err := r.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	// flushing an empty buffer is a no-op
	require.NoError(t, r.Flush())
}

func TestConcurrentRecordAndLen(t *testing.T) {
	// mirrors the production wiring: the collection loop records while the
	// diagnostic API polls Len and Count from its own goroutine
	r := newTestRecorder(t, 10)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			r.Record(validRecord())
		}
	}()

	for i := 0; i < 200; i++ {
		assert.GreaterOrEqual(t, r.Len(), 0)
		_, err := r.Count()
		assert.NoError(t, err)
	}
	<-done

	require.NoError(t, r.Flush())
	n, err := r.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 200, n)
}

func TestRecentRoundTrip(t *testing.T) {
	r := newTestRecorder(t, 1)

	rec := validRecord()
	assert.True(t, r.Record(rec))

	got, err := r.Recent(10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, rec.ArriveAddress, got[0].ArriveAddress)
	assert.Equal(t, rec.DepartLat, got[0].DepartLat)
	require.NotNil(t, got[0].Transit)
	assert.Equal(t, 15, *got[0].Transit)
}

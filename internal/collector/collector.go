// Package collector runs one full sampling-and-query cycle: pick two random
// locations, resolve their addresses, and read travel-time estimates for all
// four transport modes in both directions.
package collector

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/munilab/transit-sampler-go/internal/automation"
	"github.com/munilab/transit-sampler-go/internal/duration"
	"github.com/munilab/transit-sampler-go/internal/geocode"
	"github.com/munilab/transit-sampler-go/internal/models"
	"github.com/munilab/transit-sampler-go/internal/sampler"
	"github.com/munilab/transit-sampler-go/internal/spatial"
)

// DirectionsUI is the slice of the automation layer the collector needs.
// Selectors and browser concerns stay behind it.
type DirectionsUI interface {
	Initialize(ctx context.Context, depart, arrive spatial.Point) error
	SelectMode(ctx context.Context, mode models.TravelMode) error
	DurationText(ctx context.Context) (text string, found bool, err error)
	Reverse(ctx context.Context) error
}

// placeholderAddress stands in when reverse geocoding fails; an address miss
// never aborts the cycle
const placeholderAddress = "unresolved"

// DefaultWaitAttempts caps the per-mode polling loop
const DefaultWaitAttempts = 10

// DefaultWaitInterval is the polling interval while waiting for a duration
// to render (1/e seconds, as the original tuning had it)
var DefaultWaitInterval = time.Duration(math.Trunc(float64(time.Second) / math.E))

var errDurationPending = errors.New("duration not rendered yet")

// Collector orchestrates collection cycles. It holds no state across cycles
// beyond its collaborators.
type Collector struct {
	sampler  *sampler.Sampler
	geocoder geocode.ReverseGeocoder
	ui       DirectionsUI
	log      *zap.Logger

	waitAttempts uint64
	waitInterval time.Duration
}

// New creates a collector with default polling bounds
func New(s *sampler.Sampler, g geocode.ReverseGeocoder, ui DirectionsUI, log *zap.Logger) *Collector {
	return &Collector{
		sampler:      s,
		geocoder:     g,
		ui:           ui,
		log:          log,
		waitAttempts: DefaultWaitAttempts,
		waitInterval: DefaultWaitInterval,
	}
}

// SetWaitPolicy overrides the per-mode polling bounds
func (c *Collector) SetWaitPolicy(attempts uint64, interval time.Duration) {
	c.waitAttempts = attempts
	c.waitInterval = interval
}

// CollectCycle runs one full cycle and returns zero, one, or two trip
// records: outbound and return legs between two freshly sampled locations.
// A leg missing any mode's duration is dropped, never returned partial.
func (c *Collector) CollectCycle(ctx context.Context) ([]models.TripRecord, error) {
	arrive, depart, err := c.sampler.SampleTwo()
	if err != nil {
		return nil, fmt.Errorf("failed to sample locations: %w", err)
	}

	arriveAddr := c.lookupAddress(ctx, arrive)
	departAddr := c.lookupAddress(ctx, depart)

	if err := c.ui.Initialize(ctx, depart, arrive); err != nil {
		return nil, fmt.Errorf("failed to initialize directions: %w", err)
	}

	c.log.Info("collecting trip pair",
		zap.Float64("depart_lat", depart.Lat),
		zap.Float64("depart_lon", depart.Lon),
		zap.Float64("arrive_lat", arrive.Lat),
		zap.Float64("arrive_lon", arrive.Lon),
		zap.Float64("distance_m", spatial.HaversineDistance(depart.Lat, depart.Lon, arrive.Lat, arrive.Lon)),
	)

	outbound := models.TripRecord{
		ArriveAddress: arriveAddr,
		ArriveLat:     arrive.Lat,
		ArriveLon:     arrive.Lon,
		DepartAddress: departAddr,
		DepartLat:     depart.Lat,
		DepartLon:     depart.Lon,
	}
	outbound.ApplyEstimate(c.collectLeg(ctx))
	outbound.Timestamp = time.Now().Format(time.RFC3339)

	// the swap control reverses the endpoints in the UI; addresses are
	// swapped locally, no second geocode round trip
	if err := c.ui.Reverse(ctx); err != nil {
		return nil, fmt.Errorf("failed to reverse directions: %w", err)
	}

	ret := models.TripRecord{
		ArriveAddress: departAddr,
		ArriveLat:     depart.Lat,
		ArriveLon:     depart.Lon,
		DepartAddress: arriveAddr,
		DepartLat:     arrive.Lat,
		DepartLon:     arrive.Lon,
	}
	ret.ApplyEstimate(c.collectLeg(ctx))
	ret.Timestamp = time.Now().Format(time.RFC3339)

	records := make([]models.TripRecord, 0, 2)
	for _, rec := range []models.TripRecord{outbound, ret} {
		if rec.Complete() {
			records = append(records, rec)
		} else {
			c.log.Info("dropping incomplete leg",
				zap.String("depart", rec.DepartAddress),
				zap.String("arrive", rec.ArriveAddress))
		}
	}
	return records, nil
}

// collectLeg reads one duration per travel mode for the currently shown
// direction. A mode whose duration never renders is simply absent from the
// result.
func (c *Collector) collectLeg(ctx context.Context) models.DurationEstimate {
	est := models.DurationEstimate{}

	for _, mode := range models.TravelModes {
		if err := c.ui.SelectMode(ctx, mode); err != nil {
			c.log.Warn("failed to select travel mode",
				zap.String("mode", string(mode)), zap.Error(err))
			continue
		}

		text, err := c.waitForDuration(ctx)
		if err != nil {
			c.log.Debug("no duration for mode",
				zap.String("mode", string(mode)), zap.Error(err))
			continue
		}

		minutes, err := duration.Parse(text)
		if err != nil {
			c.log.Warn("unparseable duration text",
				zap.String("mode", string(mode)), zap.String("text", text), zap.Error(err))
			continue
		}
		est[mode] = minutes
	}
	return est
}

// waitForDuration polls the UI until a non-empty duration text appears,
// bounded by the wait policy. Transient read errors are retried within the
// same budget; an explicit "no directions" answer stops polling immediately.
func (c *Collector) waitForDuration(ctx context.Context) (string, error) {
	var text string

	backoff := retry.WithMaxRetries(c.waitAttempts, retry.NewConstant(c.waitInterval))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		t, found, err := c.ui.DurationText(ctx)
		if err != nil {
			if errors.Is(err, automation.ErrTimeout) {
				return err // directions declared unavailable, stop polling
			}
			return retry.RetryableError(err)
		}
		if !found {
			return retry.RetryableError(errDurationPending)
		}
		text = t
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", automation.ErrTimeout, err)
	}
	return text, nil
}

// lookupAddress resolves a street address, degrading to a placeholder on
// failure
func (c *Collector) lookupAddress(ctx context.Context, p spatial.Point) string {
	addr, err := c.geocoder.ReverseGeocode(ctx, p.Lat, p.Lon)
	if err != nil {
		c.log.Warn("reverse geocode failed, using placeholder",
			zap.Float64("lat", p.Lat), zap.Float64("lon", p.Lon), zap.Error(err))
		return placeholderAddress
	}
	return addr
}

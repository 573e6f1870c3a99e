// Package sampler draws uniformly distributed random locations inside a
// polygon boundary by rejection sampling over its bounding box.
package sampler

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/munilab/transit-sampler-go/internal/spatial"
)

// ErrSamplingExhausted is returned when no candidate is accepted within the
// attempt budget. With a sane boundary this indicates a misconfigured vertex
// table rather than bad luck: the SF perimeter accepts roughly half of all
// bounding-box draws.
var ErrSamplingExhausted = errors.New("sampling exhausted")

// DefaultMaxAttempts bounds one SampleOne call
const DefaultMaxAttempts = 10000

// Sampler draws random points inside a boundary
type Sampler struct {
	boundary    *Boundary
	rng         *rand.Rand
	maxAttempts int
}

// New creates a sampler over the given boundary, seeded with the supplied
// source
func New(boundary *Boundary, rng *rand.Rand) *Sampler {
	return &Sampler{
		boundary:    boundary,
		rng:         rng,
		maxAttempts: DefaultMaxAttempts,
	}
}

// Boundary returns the boundary this sampler draws from
func (s *Sampler) Boundary() *Boundary {
	return s.boundary
}

// SampleOne draws latitude and longitude independently and uniformly from
// the bounding box and retries until the candidate falls inside the polygon.
// Acceptance probability is polygon area over box area, so the expected
// number of draws is small and constant for a fixed boundary.
func (s *Sampler) SampleOne() (spatial.Point, error) {
	minLat, minLon, maxLat, maxLon := s.boundary.BBox()

	for i := 0; i < s.maxAttempts; i++ {
		p := spatial.Point{
			Lat: minLat + s.rng.Float64()*(maxLat-minLat),
			Lon: minLon + s.rng.Float64()*(maxLon-minLon),
		}
		if s.boundary.Contains(p) {
			return p, nil
		}
	}

	return spatial.Point{}, fmt.Errorf("%w after %d attempts", ErrSamplingExhausted, s.maxAttempts)
}

// SampleTwo draws two points with independent SampleOne calls. The two draws
// are not checked for distinctness: a duplicate pair is valid output and is
// passed through as-is.
func (s *Sampler) SampleTwo() (spatial.Point, spatial.Point, error) {
	a, err := s.SampleOne()
	if err != nil {
		return spatial.Point{}, spatial.Point{}, err
	}
	b, err := s.SampleOne()
	if err != nil {
		return spatial.Point{}, spatial.Point{}, err
	}
	return a, b, nil
}

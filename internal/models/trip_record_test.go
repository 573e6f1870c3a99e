package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTripRecordComplete(t *testing.T) {
	rec := &TripRecord{}
	assert.False(t, rec.Complete())

	for _, mode := range TravelModes {
		rec.SetDuration(mode, 10)
	}
	assert.True(t, rec.Complete())

	rec.Transit = nil
	assert.False(t, rec.Complete())
}

func TestApplyEstimate(t *testing.T) {
	est := DurationEstimate{ModeDriving: 12, ModeWalk: 47}

	rec := &TripRecord{}
	rec.ApplyEstimate(est)

	assert.Equal(t, 12, *rec.Driving)
	assert.Equal(t, 47, *rec.Walk)
	assert.Nil(t, rec.Transit)
	assert.Nil(t, rec.Bicycle)
	assert.False(t, rec.Complete())
}

func TestDurationEstimateComplete(t *testing.T) {
	est := DurationEstimate{}
	assert.False(t, est.Complete())

	for _, mode := range TravelModes {
		est[mode] = 5
	}
	assert.True(t, est.Complete())
}

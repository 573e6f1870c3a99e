package automation

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/munilab/transit-sampler-go/internal/models"
	"github.com/munilab/transit-sampler-go/internal/spatial"
)

type fakeElement struct {
	text    string
	clicks  int
	hovers  int
	typed   []string
	entered int
}

func (e *fakeElement) Click() error { e.clicks++; return nil }
func (e *fakeElement) Type(text string) error { e.typed = append(e.typed, text); return nil }
func (e *fakeElement) PressEnter() error { e.entered++; return nil }
func (e *fakeElement) Hover() error { e.hovers++; return nil }
func (e *fakeElement) Text() (string, error) { return e.text, nil }

type fakeSession struct {
	elements map[string]*fakeElement
	lists    map[string][]*fakeElement
	finds    []string
}

func (s *fakeSession) Navigate(ctx context.Context, url string) error { return nil }

func (s *fakeSession) Find(ctx context.Context, selector string) (Element, error) {
	s.finds = append(s.finds, selector)
	el, ok := s.elements[selector]
	if !ok {
		return nil, fmt.Errorf("no element for %q", selector)
	}
	return el, nil
}

func (s *fakeSession) FindAll(ctx context.Context, selector string) ([]Element, error) {
	out := make([]Element, 0)
	for _, el := range s.lists[selector] {
		out = append(out, el)
	}
	return out, nil
}

func (s *fakeSession) Restart(ctx context.Context) error { return nil }
func (s *fakeSession) Close() error { return nil }

func newFakeSession() *fakeSession {
	s := &fakeSession{
		elements: map[string]*fakeElement{
			"#directions-searchbox-0 .tactile-searchbox-input": {},
			"#directions-searchbox-1 .tactile-searchbox-input": {},
			modeExpander:   {},
			reverseControl: {},
		},
		lists: map[string][]*fakeElement{},
	}
	for _, selector := range modeSelectors {
		s.elements[selector] = &fakeElement{}
	}
	return s
}

func TestInitializeTypesBothEndpoints(t *testing.T) {
	s := newFakeSession()
	d := NewDirections(s, zap.NewNop())

	err := d.Initialize(context.Background(),
		spatial.Point{Lat: 37.75, Lon: -122.44},
		spatial.Point{Lat: 37.78, Lon: -122.41})
	require.NoError(t, err)

	box0 := s.elements["#directions-searchbox-0 .tactile-searchbox-input"]
	box1 := s.elements["#directions-searchbox-1 .tactile-searchbox-input"]
	require.Len(t, box0.typed, 1)
	require.Len(t, box1.typed, 1)
	assert.Contains(t, box0.typed[0], "37.75")
	assert.Contains(t, box1.typed[0], "37.78")
	assert.Equal(t, 1, box0.entered)
	assert.Equal(t, 1, box1.entered)
}

func TestSelectModeHoversExpander(t *testing.T) {
	s := newFakeSession()
	d := NewDirections(s, zap.NewNop())

	err := d.SelectMode(context.Background(), models.ModeTransit)
	require.NoError(t, err)

	assert.Equal(t, 1, s.elements[modeExpander].hovers)
	assert.Equal(t, 1, s.elements[modeSelectors[models.ModeTransit]].clicks)

	err = d.SelectMode(context.Background(), models.TravelMode("teleport"))
	assert.Error(t, err)
}

func TestDurationText(t *testing.T) {
	s := newFakeSession()
	d := NewDirections(s, zap.NewNop())

	// nothing rendered yet
	_, found, err := d.DurationText(context.Background())
	require.NoError(t, err)
	assert.False(t, found)

	// loading placeholder plus a real value: first non-empty wins
	s.lists[tripDuration] = []*fakeElement{{text: "  "}, {text: "1h 5m"}}
	text, found, err := d.DurationText(context.Background())
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "1h 5m", text)
}

func TestDurationTextReportsDirectionsError(t *testing.T) {
	s := newFakeSession()
	s.lists[directionsError] = []*fakeElement{{text: "Sorry, we could not calculate directions"}}
	d := NewDirections(s, zap.NewNop())

	_, _, err := d.DurationText(context.Background())
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestReverseClicksSwapControl(t *testing.T) {
	s := newFakeSession()
	d := NewDirections(s, zap.NewNop())

	require.NoError(t, d.Reverse(context.Background()))
	assert.Equal(t, 1, s.elements[reverseControl].clicks)
}

package automation

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/munilab/transit-sampler-go/internal/models"
	"github.com/munilab/transit-sampler-go/internal/spatial"
)

// Selectors for the map application's directions pane. These track the
// external site's DOM and are the churn-prone part of the system; nothing
// outside this package may reference them.
const (
	searchBoxID     = "#directions-searchbox-%d .tactile-searchbox-input"
	reverseControl  = ".widget-directions-icon.reverse"
	tripDuration    = ".widget-pane-section-directions-trip-duration"
	modeExpander    = ".directions-travel-mode-expander"
	directionsError = ".widget-pane-section-directions-error-primary-text"
)

// modeSelectors maps each travel mode to its icon in the mode expander
var modeSelectors = map[models.TravelMode]string{
	models.ModeDriving: ".directions-travel-mode-icon.directions-drive-icon",
	models.ModeTransit: ".directions-travel-mode-icon.directions-transit-icon",
	models.ModeWalk:    ".directions-travel-mode-icon.directions-walk-icon",
	models.ModeBicycle: ".directions-travel-mode-icon.directions-bicycle-icon",
}

// Directions drives the directions pane of the map application through a
// Session
type Directions struct {
	session Session
	log     *zap.Logger
}

// NewDirections wraps a session in the directions driver
func NewDirections(session Session, log *zap.Logger) *Directions {
	return &Directions{session: session, log: log}
}

// Initialize types both endpoints into the search boxes and submits,
// requesting mode-agnostic directions from depart to arrive
func (d *Directions) Initialize(ctx context.Context, depart, arrive spatial.Point) error {
	for i, p := range []spatial.Point{depart, arrive} {
		box, err := d.session.Find(ctx, fmt.Sprintf(searchBoxID, i))
		if err != nil {
			return fmt.Errorf("directions search box %d: %w", i, err)
		}
		if err := box.Type(fmt.Sprintf("%f, %f", p.Lat, p.Lon)); err != nil {
			return fmt.Errorf("failed to enter endpoint %d: %w", i, err)
		}
		if err := box.PressEnter(); err != nil {
			return fmt.Errorf("failed to submit endpoint %d: %w", i, err)
		}
	}
	return nil
}

// SelectMode hovers the mode expander so all mode icons are clickable, then
// clicks the icon for the given mode
func (d *Directions) SelectMode(ctx context.Context, mode models.TravelMode) error {
	selector, ok := modeSelectors[mode]
	if !ok {
		return fmt.Errorf("unknown travel mode %q", mode)
	}

	expander, err := d.session.Find(ctx, modeExpander)
	if err != nil {
		return fmt.Errorf("mode expander: %w", err)
	}
	if err := expander.Hover(); err != nil {
		return fmt.Errorf("failed to hover mode expander: %w", err)
	}

	icon, err := d.session.Find(ctx, selector)
	if err != nil {
		return fmt.Errorf("mode icon %s: %w", mode, err)
	}
	if err := icon.Click(); err != nil {
		return fmt.Errorf("failed to select mode %s: %w", mode, err)
	}
	return nil
}

// DurationText returns the first non-empty trip-duration text currently on
// the page. found is false while the pane is still loading. When the page
// shows an explicit "no directions" error, DurationText fails with ErrTimeout
// so the caller stops polling this mode.
func (d *Directions) DurationText(ctx context.Context) (string, bool, error) {
	if msg := d.errorText(ctx); msg != "" {
		d.log.Debug("directions unavailable", zap.String("reason", msg))
		return "", false, fmt.Errorf("%w: %s", ErrTimeout, msg)
	}

	els, err := d.session.FindAll(ctx, tripDuration)
	if err != nil {
		return "", false, err
	}
	for _, el := range els {
		text, err := el.Text()
		if err != nil {
			continue
		}
		if t := strings.TrimSpace(text); t != "" {
			return t, true, nil
		}
	}
	return "", false, nil
}

// Reverse clicks the swap control, exchanging depart and arrive
func (d *Directions) Reverse(ctx context.Context) error {
	control, err := d.session.Find(ctx, reverseControl)
	if err != nil {
		return fmt.Errorf("reverse control: %w", err)
	}
	if err := control.Click(); err != nil {
		return fmt.Errorf("failed to reverse directions: %w", err)
	}
	return nil
}

// Restart recycles the underlying browser session
func (d *Directions) Restart(ctx context.Context) error {
	return d.session.Restart(ctx)
}

func (d *Directions) errorText(ctx context.Context) string {
	els, err := d.session.FindAll(ctx, directionsError)
	if err != nil {
		return ""
	}
	for _, el := range els {
		if text, err := el.Text(); err == nil && strings.TrimSpace(text) != "" {
			return strings.TrimSpace(text)
		}
	}
	return ""
}

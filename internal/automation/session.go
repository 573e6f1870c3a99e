// Package automation drives the map application's browser UI. The rest of
// the system only sees the Session and Element capabilities plus the
// Directions driver; every concrete selector lives here, since those churn
// with the external site.
package automation

import (
	"context"
	"errors"
)

// ErrTimeout is returned when a UI element never becomes available within
// the bounded retry budget
var ErrTimeout = errors.New("automation timeout")

// Element is one DOM element found on the page
type Element interface {
	Click() error
	// Type replaces the element's current text with the given text
	Type(text string) error
	PressEnter() error
	Hover() error
	Text() (string, error)
}

// Session is a live browser automation session
type Session interface {
	Navigate(ctx context.Context, url string) error
	// Find waits (bounded) for a single element matching the selector
	Find(ctx context.Context, selector string) (Element, error)
	// FindAll returns all elements currently matching the selector without
	// waiting; an empty result is not an error
	FindAll(ctx context.Context, selector string) ([]Element, error)
	// Restart tears the browser down and brings a fresh session back to the
	// base URL. Used when consecutive cycles fail against a wedged page.
	Restart(ctx context.Context) error
	Close() error
}

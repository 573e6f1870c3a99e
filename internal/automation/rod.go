package automation

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"
)

// findTimeout bounds how long Find waits for a single element
const findTimeout = 10 * time.Second

// RodSession implements Session on top of a go-rod controlled Chromium
type RodSession struct {
	baseURL  string
	headless bool
	log      *zap.Logger

	browser *rod.Browser
	page    *rod.Page
}

// NewRodSession launches a browser and opens the base URL
func NewRodSession(ctx context.Context, baseURL string, headless bool, log *zap.Logger) (*RodSession, error) {
	s := &RodSession{baseURL: baseURL, headless: headless, log: log}
	if err := s.launch(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *RodSession) launch(ctx context.Context) error {
	controlURL, err := launcher.New().Headless(s.headless).Launch()
	if err != nil {
		return fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("failed to connect to browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: s.baseURL})
	if err != nil {
		browser.Close()
		return fmt.Errorf("failed to open page: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		browser.Close()
		return fmt.Errorf("failed to load %s: %w", s.baseURL, err)
	}

	s.browser = browser
	s.page = page
	return nil
}

// Navigate loads the given URL and waits for the page to be ready
func (s *RodSession) Navigate(ctx context.Context, url string) error {
	page := s.page.Context(ctx)
	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	return page.WaitLoad()
}

// Find waits up to findTimeout for an element matching the selector
func (s *RodSession) Find(ctx context.Context, selector string) (Element, error) {
	el, err := s.page.Context(ctx).Timeout(findTimeout).Element(selector)
	if err != nil {
		return nil, fmt.Errorf("element %q not found: %w", selector, err)
	}
	return &rodElement{el: el}, nil
}

// FindAll returns every element currently matching the selector
func (s *RodSession) FindAll(ctx context.Context, selector string) ([]Element, error) {
	els, err := s.page.Context(ctx).Elements(selector)
	if err != nil {
		return nil, fmt.Errorf("failed to query %q: %w", selector, err)
	}

	out := make([]Element, 0, len(els))
	for _, el := range els {
		out = append(out, &rodElement{el: el})
	}
	return out, nil
}

// Restart closes the browser and launches a fresh session at the base URL
func (s *RodSession) Restart(ctx context.Context) error {
	s.log.Warn("restarting browser session")
	if s.browser != nil {
		if err := s.browser.Close(); err != nil {
			s.log.Warn("failed to close browser before restart", zap.Error(err))
		}
	}
	// drop the dead handles first: if the relaunch fails, Close must not
	// touch the browser that was just shut down
	s.browser = nil
	s.page = nil
	return s.launch(ctx)
}

// Close shuts the browser down
func (s *RodSession) Close() error {
	if s.browser == nil {
		return nil
	}
	return s.browser.Close()
}

type rodElement struct {
	el *rod.Element
}

func (e *rodElement) Click() error {
	return e.el.Click(proto.InputMouseButtonLeft, 1)
}

func (e *rodElement) Type(text string) error {
	// select-all so the input replaces whatever the box held
	if err := e.el.SelectAllText(); err != nil {
		return err
	}
	return e.el.Input(text)
}

func (e *rodElement) PressEnter() error {
	return e.el.Type(input.Enter)
}

func (e *rodElement) Hover() error {
	return e.el.Hover()
}

func (e *rodElement) Text() (string, error) {
	return e.el.Text()
}

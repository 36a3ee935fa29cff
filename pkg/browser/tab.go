// Package browser drives the converter tab: navigation, load detection and
// reading the converted value out of the page.
package browser

import (
	"context"
	"errors"
	"time"

	"github.com/sw33tLie/bocheck/pkg/failure"
	"github.com/sw33tLie/bocheck/pkg/logging"
)

const (
	DefaultPollInterval = 500 * time.Millisecond
	DefaultLoadTimeout  = 60 * time.Second

	// DefaultSelector matches the converted-amount input of the converter page.
	DefaultSelector = `.MuiInputBase-input.MuiFilledInput-input[tabindex="4"]`

	readyComplete = "complete"
)

var (
	ErrLoadTimeout = errors.New("page did not finish loading")
	ErrNoTab       = errors.New("no active tab")
)

// Tab is a single browser tab that bocheck can drive.
type Tab interface {
	ID() string
	// Load starts navigating to url and returns without waiting.
	Load(ctx context.Context, url string) error
	// ReadyState reports the current document.readyState.
	ReadyState(ctx context.Context) (string, error)
	// Query returns the value of the first input matching selector.
	Query(ctx context.Context, selector string) (value string, found bool, err error)
	Focus(ctx context.Context) error
}

// Navigator loads pages in a tab and waits for them to finish.
type Navigator struct {
	PollInterval time.Duration
	// LoadTimeout bounds WaitForLoad. Zero waits forever.
	LoadTimeout time.Duration
	Log         logging.Logger
}

func NewNavigator(log logging.Logger) *Navigator {
	return &Navigator{
		PollInterval: DefaultPollInterval,
		LoadTimeout:  DefaultLoadTimeout,
		Log:          log,
	}
}

// Navigate points tab at url. A nil tab or an empty url is logged and
// otherwise ignored.
func (n *Navigator) Navigate(ctx context.Context, tab Tab, url string) error {
	log := logging.OrNop(n.Log)
	if tab == nil || url == "" {
		log.Errorf("Invalid tab id or URL")
		return nil
	}
	log.Debugf("Navigating tab %s to %s", tab.ID(), url)
	if err := tab.Load(ctx, url); err != nil {
		return failure.New(failure.Network, "navigate "+url, err)
	}
	return nil
}

// WaitForLoad polls the tab until its document reports "complete".
// Poll errors are treated as "still loading".
func (n *Navigator) WaitForLoad(ctx context.Context, tab Tab) error {
	if tab == nil {
		return failure.New(failure.FatalAbort, "wait for load", ErrNoTab)
	}
	log := logging.OrNop(n.Log)

	interval := n.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	var deadline <-chan time.Time
	if n.LoadTimeout > 0 {
		timer := time.NewTimer(n.LoadTimeout)
		defer timer.Stop()
		deadline = timer.C
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		pollCtx, cancel := context.WithTimeout(ctx, interval)
		state, err := tab.ReadyState(pollCtx)
		cancel()
		if err != nil {
			log.Debugf("Ready state poll on tab %s: %v", tab.ID(), err)
		} else if state == readyComplete {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline:
			return failure.New(failure.Timeout, "wait for load", ErrLoadTimeout)
		case <-ticker.C:
		}
	}
}

// Focus brings the tab to the front.
func (n *Navigator) Focus(ctx context.Context, tab Tab) error {
	if tab == nil {
		return failure.New(failure.FatalAbort, "focus", ErrNoTab)
	}
	return tab.Focus(ctx)
}

// Extractor reads the converted value from a loaded converter page.
type Extractor struct {
	Selector string
}

// ExtractValue returns the value of the converter field. found is false
// when the field is not on the page.
func (e *Extractor) ExtractValue(ctx context.Context, tab Tab) (string, bool, error) {
	if tab == nil {
		return "", false, failure.New(failure.FatalAbort, "extract value", ErrNoTab)
	}
	sel := e.Selector
	if sel == "" {
		sel = DefaultSelector
	}
	v, found, err := tab.Query(ctx, sel)
	if err != nil {
		return "", false, failure.New(failure.Extraction, "extract value", err)
	}
	return v, found, nil
}

package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/target"
	"github.com/chromedp/chromedp"
	"github.com/sw33tLie/bocheck/pkg/failure"
	"github.com/sw33tLie/bocheck/pkg/logging"
)

// Options selects how the browser is reached.
type Options struct {
	// CDPURL attaches to a running Chrome started with
	// --remote-debugging-port. Empty launches a new Chrome.
	CDPURL      string
	Headless    bool
	UserDataDir string
	Log         logging.Logger
}

// Session owns the connection to one Chrome instance.
type Session struct {
	opts        Options
	allocCtx    context.Context
	cancelAlloc context.CancelFunc
	browserCtx  context.Context
	cancel      context.CancelFunc

	mu        sync.Mutex
	tab       *chromeTab
	cancelTab context.CancelFunc
}

func NewSession(parent context.Context, opts Options) *Session {
	var (
		allocCtx    context.Context
		cancelAlloc context.CancelFunc
	)
	if opts.CDPURL != "" {
		allocCtx, cancelAlloc = chromedp.NewRemoteAllocator(parent, opts.CDPURL)
	} else {
		execOpts := append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", opts.Headless),
		)
		if opts.UserDataDir != "" {
			execOpts = append(execOpts, chromedp.UserDataDir(opts.UserDataDir))
		}
		allocCtx, cancelAlloc = chromedp.NewExecAllocator(parent, execOpts...)
	}
	browserCtx, cancel := chromedp.NewContext(allocCtx)
	return &Session{
		opts:        opts,
		allocCtx:    allocCtx,
		cancelAlloc: cancelAlloc,
		browserCtx:  browserCtx,
		cancel:      cancel,
	}
}

// ActiveTab returns the tab the session works on. The first call attaches
// to the first page target the browser reports, which is not necessarily
// the focused one, or opens a fresh tab when there is none. Later calls
// return the same tab until Close.
func (s *Session) ActiveTab(ctx context.Context) (Tab, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tab != nil {
		return s.tab, nil
	}

	log := logging.OrNop(s.opts.Log)

	targets, err := chromedp.Targets(s.browserCtx)
	if err != nil {
		return nil, failure.New(failure.FatalAbort, "active tab", fmt.Errorf("%w: %v", ErrNoTab, err))
	}
	for _, t := range targets {
		if t.Type != "page" {
			continue
		}
		tabCtx, cancel := chromedp.NewContext(s.browserCtx, chromedp.WithTargetID(t.TargetID))
		log.Debugf("Attached to tab %s (%s)", t.TargetID, t.URL)
		s.tab, s.cancelTab = &chromeTab{ctx: tabCtx, id: t.TargetID}, cancel
		return s.tab, nil
	}

	if err := chromedp.Run(s.browserCtx); err != nil {
		return nil, failure.New(failure.FatalAbort, "active tab", fmt.Errorf("%w: %v", ErrNoTab, err))
	}
	id := target.ID("")
	if c := chromedp.FromContext(s.browserCtx); c != nil && c.Target != nil {
		id = c.Target.TargetID
	}
	log.Debugf("Opened new tab %s", id)
	// The tab lives on the browser context, released by s.cancel.
	s.tab = &chromeTab{ctx: s.browserCtx, id: id}
	return s.tab, nil
}

// Close releases the session and its tab. A launched Chrome is shut down;
// an attached one keeps running.
func (s *Session) Close() {
	s.mu.Lock()
	if s.cancelTab != nil {
		s.cancelTab()
	}
	s.tab, s.cancelTab = nil, nil
	s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	if s.cancelAlloc != nil {
		s.cancelAlloc()
	}
}

type chromeTab struct {
	ctx context.Context
	id  target.ID
}

type valueResult struct {
	Found bool   `json:"found"`
	Value string `json:"value"`
}

func (t *chromeTab) ID() string { return string(t.id) }

func (t *chromeTab) Load(ctx context.Context, url string) error {
	lit, err := json.Marshal(url)
	if err != nil {
		return err
	}
	var ok bool
	return t.run(ctx, chromedp.Evaluate(fmt.Sprintf(navigateScript, lit), &ok))
}

func (t *chromeTab) ReadyState(ctx context.Context) (string, error) {
	var state string
	err := t.run(ctx, chromedp.Evaluate(readyStateScript, &state))
	return state, err
}

func (t *chromeTab) Query(ctx context.Context, selector string) (string, bool, error) {
	lit, err := json.Marshal(selector)
	if err != nil {
		return "", false, err
	}
	var res valueResult
	if err := t.run(ctx, chromedp.Evaluate(fmt.Sprintf(valueScript, lit), &res)); err != nil {
		return "", false, err
	}
	return res.Value, res.Found, nil
}

func (t *chromeTab) Focus(ctx context.Context) error {
	return t.run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		return page.BringToFront().Do(ctx)
	}))
}

// run executes actions on the tab, stopping early when ctx is cancelled.
func (t *chromeTab) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithCancel(t.ctx)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()
	return chromedp.Run(runCtx, actions...)
}

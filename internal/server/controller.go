package server

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/sw33tLie/bocheck/pkg/compare"
	"github.com/sw33tLie/bocheck/pkg/currency"
	"github.com/sw33tLie/bocheck/pkg/failure"
	"github.com/sw33tLie/bocheck/pkg/logging"
	"github.com/sw33tLie/bocheck/pkg/projects"
	"github.com/sw33tLie/bocheck/pkg/report"
	"github.com/sw33tLie/bocheck/pkg/scrape"
)

// Field ids that can be flashed after a failed Start.
const (
	FieldCampaigns  = "input-field"
	FieldCurrencies = "button-container"
	FieldStart      = "start-button"
	FieldProject    = "project"
)

var (
	ErrNoProject = errors.New("no project selected")
	ErrBusy      = errors.New("a run is already in progress")
)

type Runner interface {
	Run(ctx context.Context, req scrape.Request) (*scrape.Outcome, error)
	State() scrape.State
}

// Locker guards the browser against runs from other processes.
type Locker interface {
	TryLock() error
	Unlock() error
}

// Controller holds the UI state of one operator session.
type Controller struct {
	Selector *currency.Selector
	Runner   Runner
	Board    *report.Board
	Lock     Locker
	Log      logging.Logger
	// Split turns the campaign field into tokens. Defaults to strings.Fields.
	Split func(string) []string
	// BaseContext is the parent of every run started from the UI.
	BaseContext context.Context

	mu         sync.Mutex
	project    string
	campaigns  string
	percentage string
	busy       bool
	flash      string
	lastErr    string
	wg         sync.WaitGroup
}

func NewController(sel *currency.Selector, runner Runner, log logging.Logger) *Controller {
	return &Controller{
		Selector: sel,
		Runner:   runner,
		Board:    &report.Board{Log: log},
		Log:      log,
	}
}

// Snapshot is a consistent copy of the UI state for rendering.
type Snapshot struct {
	Project      string
	Campaigns    string
	Percentage   string
	Buttons      []currency.Button
	Busy         bool
	State        string
	Flash        string
	Error        string
	Tables       []report.Table
	ClearVisible bool
}

// Snapshot returns the state to render. With consumeFlash the pending
// flash is handed out once and then dropped.
func (c *Controller) Snapshot(ctx context.Context, consumeFlash bool) (Snapshot, error) {
	c.mu.Lock()
	s := Snapshot{
		Project:    c.project,
		Campaigns:  c.campaigns,
		Percentage: c.percentage,
		Busy:       c.busy,
		Flash:      c.flash,
		Error:      c.lastErr,
	}
	if consumeFlash {
		c.flash = ""
	}
	c.mu.Unlock()

	if c.Runner != nil {
		s.State = c.Runner.State().String()
	}
	s.Tables = c.Board.Tables()
	s.ClearVisible = c.Board.ClearVisible()

	if s.Project != "" {
		buttons, err := c.Selector.Buttons(ctx, s.Project)
		if err != nil {
			return s, err
		}
		s.Buttons = buttons
	}
	return s, nil
}

// SelectProject switches the session to project. The placeholder option
// is gone for good once a project was chosen.
func (c *Controller) SelectProject(name string) error {
	if _, ok := projects.Lookup(name); !ok {
		return failure.Newf(failure.UserInput, "select project", "unknown project %q", name)
	}
	c.mu.Lock()
	c.project = name
	c.mu.Unlock()
	return nil
}

func (c *Controller) Toggle(ctx context.Context, code string) (bool, error) {
	c.mu.Lock()
	project := c.project
	c.mu.Unlock()
	if project == "" {
		return false, failure.New(failure.UserInput, "toggle", ErrNoProject)
	}
	return c.Selector.Toggle(ctx, project, code)
}

// Start launches a run in the background with the given form values.
func (c *Controller) Start(campaigns, percentage string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.campaigns = campaigns
	c.percentage = percentage
	if c.project == "" {
		c.flash = FieldProject
		return failure.New(failure.UserInput, "start", ErrNoProject)
	}
	if c.busy {
		return failure.New(failure.UserInput, "start", ErrBusy)
	}
	if c.Lock != nil {
		if err := c.Lock.TryLock(); err != nil {
			c.flash = FieldStart
			return failure.New(failure.UserInput, "start", err)
		}
	}

	split := c.Split
	if split == nil {
		split = strings.Fields
	}
	req := scrape.Request{Project: c.project, Codes: split(campaigns)}
	threshold := compare.ParseNumber(percentage)

	c.busy = true
	c.lastErr = ""
	c.wg.Add(1)
	go c.run(req, threshold)
	return nil
}

func (c *Controller) run(req scrape.Request, threshold float64) {
	defer c.wg.Done()
	log := logging.OrNop(c.Log)

	ctx := c.BaseContext
	if ctx == nil {
		ctx = context.Background()
	}
	out, err := c.Runner.Run(ctx, req)

	if c.Lock != nil {
		if uerr := c.Lock.Unlock(); uerr != nil {
			log.Warnf("Could not release run lock: %v", uerr)
		}
	}

	if err == nil {
		c.Board.Show(report.Build(out.Campaigns, out.Converted, threshold))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false
	if err != nil {
		log.Errorf("Run failed: %v", err)
		c.lastErr = err.Error()
		c.flash = flashField(err)
	}
}

// Wait blocks until the background run, if any, has finished.
func (c *Controller) Wait() { c.wg.Wait() }

func (c *Controller) Clear() { c.Board.Clear() }

// flashField picks the form field that should turn red for err.
func flashField(err error) string {
	switch failure.KindOf(err) {
	case failure.UserInput:
		if errors.Is(err, scrape.ErrNoActiveCurrencies) {
			return FieldCurrencies
		}
		return FieldCampaigns
	case failure.Network:
		return FieldCampaigns
	}
	return FieldStart
}

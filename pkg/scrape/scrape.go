// Package scrape runs the reload loop: for every campaign it walks the
// converter tab through each active currency and collects the converted
// values the page shows.
package scrape

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/sw33tLie/bocheck/pkg/bonus"
	"github.com/sw33tLie/bocheck/pkg/browser"
	"github.com/sw33tLie/bocheck/pkg/failure"
	"github.com/sw33tLie/bocheck/pkg/logging"
)

const (
	DefaultURLTemplate   = "https://www.oanda.com/currency-converter/ru/?from=EUR&to={currency}&amount={amount}"
	DefaultSettleDelay   = 1000 * time.Millisecond
	DefaultCampaignDelay = 2000 * time.Millisecond

	// missingAmount is placed in the URL when a campaign has no EUR value.
	missingAmount = "undefined"
)

var (
	// ErrRunInProgress rejects a Start while another run holds the runner.
	ErrRunInProgress      = errors.New("a run is already in progress")
	ErrNoActiveCurrencies = errors.New("no active currencies")
	ErrCampaignMissing    = errors.New("campaign not found")
)

// Result maps campaign name to currency to the converted value text.
type Result map[string]map[string]string

// Outcome is what a full run produces.
type Outcome struct {
	Campaigns []*bonus.Campaign
	Converted Result
}

// Request describes one Start.
type Request struct {
	Project string
	Codes   []string
}

// ActiveSource reports the currencies currently toggled on for a project.
type ActiveSource interface {
	Active(ctx context.Context, project string) ([]string, error)
}

// CampaignSource fetches back-office campaigns restricted to active.
type CampaignSource interface {
	FetchCampaigns(ctx context.Context, project string, tokens, active []string) ([]*bonus.Campaign, error)
}

// TabSource hands out the converter tab a run drives.
type TabSource interface {
	ActiveTab(ctx context.Context) (browser.Tab, error)
}

// Runner owns the converter tab for the duration of a run. Only one run
// may be active at a time.
type Runner struct {
	Currencies ActiveSource
	Campaigns  CampaignSource
	Tabs       TabSource
	Navigator  *browser.Navigator
	Extractor  *browser.Extractor
	Sleeper    Sleeper
	Log        logging.Logger

	URLTemplate   string
	SettleDelay   time.Duration
	CampaignDelay time.Duration

	// OnState, when set, is called on every state change.
	OnState func(State)

	running atomic.Bool
	state   atomic.Int32
}

// State returns the current phase.
func (r *Runner) State() State { return State(r.state.Load()) }

// Running reports whether a run holds the runner.
func (r *Runner) Running() bool { return r.running.Load() }

// Run fetches the campaigns of req and scrapes them.
func (r *Runner) Run(ctx context.Context, req Request) (*Outcome, error) {
	if !r.running.CompareAndSwap(false, true) {
		return nil, failure.New(failure.UserInput, "start", ErrRunInProgress)
	}
	defer r.running.Store(false)

	log := logging.OrNop(r.Log)
	r.setState(FetchingCampaigns)

	active, err := r.Currencies.Active(ctx, req.Project)
	if err != nil {
		r.setState(Idle)
		return nil, err
	}
	if len(active) == 0 {
		r.setState(Idle)
		return nil, failure.New(failure.UserInput, "start", ErrNoActiveCurrencies)
	}

	campaigns, err := r.Campaigns.FetchCampaigns(ctx, req.Project, req.Codes, active)
	if err != nil {
		r.setState(Idle)
		return nil, err
	}
	if len(campaigns) == 0 {
		r.setState(Idle)
		return nil, failure.New(failure.UserInput, "start", bonus.ErrNoCampaigns)
	}
	log.Infof("Fetched %d campaign(s) for %s", len(campaigns), req.Project)

	converted, err := r.scrape(ctx, req.Project, campaigns)
	if err != nil {
		return nil, err
	}
	return &Outcome{Campaigns: campaigns, Converted: converted}, nil
}

// Scrape runs the reload loop over already fetched campaigns.
func (r *Runner) Scrape(ctx context.Context, project string, campaigns []*bonus.Campaign) (Result, error) {
	if !r.running.CompareAndSwap(false, true) {
		return nil, failure.New(failure.UserInput, "start", ErrRunInProgress)
	}
	defer r.running.Store(false)
	return r.scrape(ctx, project, campaigns)
}

func (r *Runner) scrape(ctx context.Context, project string, campaigns []*bonus.Campaign) (Result, error) {
	log := logging.OrNop(r.Log)
	defer r.setState(Done)

	tab, err := r.Tabs.ActiveTab(ctx)
	if err != nil {
		log.Errorf("Failed to get current tab: %v", err)
		return nil, failure.New(failure.FatalAbort, "active tab", err)
	}
	if tab == nil {
		log.Errorf("Failed to get current tab")
		return nil, failure.New(failure.FatalAbort, "active tab", browser.ErrNoTab)
	}
	if err := r.navigator().Focus(ctx, tab); err != nil {
		log.Warnf("Could not focus tab %s: %v", tab.ID(), err)
	}

	results := Result{}
	for index, campaign := range campaigns {
		if campaign == nil {
			log.Errorf("Campaign with index %d not found", index)
			return nil, failure.New(failure.FatalAbort, fmt.Sprintf("campaign %d", index), ErrCampaignMissing)
		}
		log.Infof("Starting reload for campaign: %s", campaign.Name)

		values, err := r.reloadCampaign(ctx, tab, project, campaign)
		if err != nil {
			return nil, err
		}
		results[campaign.Name] = values
		log.Debugf("Extracted values for %s: %v", campaign.Name, values)

		if index < len(campaigns)-1 {
			r.setState(CampaignDelay)
			if err := r.sleeper().Sleep(ctx, r.CampaignDelay); err != nil {
				return nil, err
			}
		}
	}
	return results, nil
}

func (r *Runner) reloadCampaign(ctx context.Context, tab browser.Tab, project string, campaign *bonus.Campaign) (map[string]string, error) {
	log := logging.OrNop(r.Log)
	nav := r.navigator()

	amount, ok := campaign.Get("EUR")
	if !ok {
		log.Warnf("Campaign %s has no EUR amount, converter URLs will carry %q", campaign.Name, missingAmount)
		amount = missingAmount
	}

	active, err := r.Currencies.Active(ctx, project)
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(active))
	for _, cur := range active {
		url := BuildURL(r.URLTemplate, cur, amount)
		log.Infof("Reloading with URL: %s", url)

		r.setState(Navigating)
		if err := nav.Navigate(ctx, tab, url); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Warnf("Skipping %s: %v", cur, err)
			continue
		}

		r.setState(AwaitingLoad)
		if err := nav.WaitForLoad(ctx, tab); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Warnf("Skipping %s: %v", cur, err)
			continue
		}

		r.setState(Settling)
		if err := r.sleeper().Sleep(ctx, r.SettleDelay); err != nil {
			return nil, err
		}

		r.setState(Extracting)
		v, found, err := r.extractor().ExtractValue(ctx, tab)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Warnf("Skipping %s: %v", cur, err)
			continue
		}
		if !found {
			log.Infof("Value for currency %s not found", cur)
			continue
		}

		r.setState(Recording)
		values[cur] = v
	}
	return values, nil
}

// BuildURL fills the {currency} and {amount} placeholders of template.
func BuildURL(template, currency, amount string) string {
	if template == "" {
		template = DefaultURLTemplate
	}
	return strings.NewReplacer("{currency}", currency, "{amount}", amount).Replace(template)
}

func (r *Runner) setState(s State) {
	r.state.Store(int32(s))
	if r.OnState != nil {
		r.OnState(s)
	}
}

func (r *Runner) navigator() *browser.Navigator {
	if r.Navigator == nil {
		r.Navigator = browser.NewNavigator(r.Log)
	}
	return r.Navigator
}

func (r *Runner) extractor() *browser.Extractor {
	if r.Extractor == nil {
		r.Extractor = &browser.Extractor{}
	}
	return r.Extractor
}

func (r *Runner) sleeper() Sleeper {
	if r.Sleeper == nil {
		return TimeSleeper
	}
	return r.Sleeper
}

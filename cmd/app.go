package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/viper"
	"github.com/sw33tLie/bocheck/internal/utils"
	"github.com/sw33tLie/bocheck/pkg/bonus"
	"github.com/sw33tLie/bocheck/pkg/browser"
	"github.com/sw33tLie/bocheck/pkg/currency"
	"github.com/sw33tLie/bocheck/pkg/scrape"
	"github.com/sw33tLie/bocheck/pkg/storage"
	"github.com/sw33tLie/bocheck/pkg/whttp"
)

// openSelector opens the toggle state store and wraps it in a selector.
// The caller closes the returned DB.
func openSelector() (*currency.Selector, *storage.DB, error) {
	path, err := utils.GetAbsStorePath(viper.GetString("store.path"))
	if err != nil {
		return nil, nil, fmt.Errorf("could not resolve store path: %w", err)
	}
	db, err := storage.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open state store: %w", err)
	}
	utils.Log.Debugf("Using state store %s", path)
	return currency.NewSelector(db), db, nil
}

// newRunner wires a scrape runner to a fresh browser session. The caller
// closes the session.
func newRunner(ctx context.Context, sel *currency.Selector) (*scrape.Runner, *browser.Session) {
	session := browser.NewSession(ctx, browser.Options{
		CDPURL:      viper.GetString("browser.cdp_url"),
		Headless:    viper.GetBool("browser.headless"),
		UserDataDir: viper.GetString("browser.user_data_dir"),
		Log:         utils.Log,
	})

	client := whttp.GetDefaultClient()
	client.RetryMax = viper.GetInt("http.retry_max")

	runner := &scrape.Runner{
		Currencies: sel,
		Campaigns:  &bonus.Fetcher{Client: client, Log: utils.Log},
		Tabs:       session,
		Navigator: &browser.Navigator{
			PollInterval: viper.GetDuration("scrape.poll_interval"),
			LoadTimeout:  viper.GetDuration("scrape.load_timeout"),
			Log:          utils.Log,
		},
		Extractor:     &browser.Extractor{Selector: viper.GetString("converter.selector")},
		Sleeper:       scrape.TimeSleeper,
		Log:           utils.Log,
		URLTemplate:   viper.GetString("converter.url_template"),
		SettleDelay:   viper.GetDuration("scrape.settle_delay"),
		CampaignDelay: viper.GetDuration("scrape.campaign_delay"),
		OnState: func(s scrape.State) {
			utils.Log.Debugf("Runner state: %s", s)
		},
	}
	return runner, session
}

package cmd

import (
	"github.com/spf13/viper"
	"github.com/sw33tLie/bocheck/pkg/browser"
	"github.com/sw33tLie/bocheck/pkg/scrape"
)

func setDefaults() {
	viper.SetDefault("browser.cdp_url", "")
	viper.SetDefault("browser.headless", false)
	viper.SetDefault("browser.user_data_dir", "")

	viper.SetDefault("scrape.settle_delay", scrape.DefaultSettleDelay)
	viper.SetDefault("scrape.campaign_delay", scrape.DefaultCampaignDelay)
	viper.SetDefault("scrape.poll_interval", browser.DefaultPollInterval)
	viper.SetDefault("scrape.load_timeout", browser.DefaultLoadTimeout)

	viper.SetDefault("converter.url_template", scrape.DefaultURLTemplate)
	viper.SetDefault("converter.selector", browser.DefaultSelector)

	viper.SetDefault("http.retry_max", 2)
	viper.SetDefault("store.path", "")

	viper.SetDefault("server.listen", "127.0.0.1:8686")
	viper.SetDefault("server.username", "")
	viper.SetDefault("server.password", "")
}

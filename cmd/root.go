package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/sw33tLie/bocheck/internal/utils"
	"github.com/sw33tLie/bocheck/pkg/whttp"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

const (
	LOGO = `	 _                _               _    
	| |__   ___   ___| |__   ___  ___| | __
	| '_ \ / _ \ / __| '_ \ / _ \/ __| |/ /
	| |_) | (_) | (__| | | |  __/ (__|   < 
	|_.__/ \___/ \___|_| |_|\___|\___|_|\_\
	                                       
`
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bocheck",
	Short: "Compare back-office bonus amounts against a currency converter.",
	Long: LOGO + `bocheck fetches campaign amounts from a project's back office, walks a real
Chrome tab through the converter page for every active currency and shows how
far each amount deviates from the converted value.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		proxy, _ := cmd.Flags().GetString("proxy")
		if proxy != "" {
			return whttp.SetupProxy(proxy)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, describeFailure(err))
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.bocheck.yaml)")

	// Global flags
	rootCmd.PersistentFlags().StringP("proxy", "", "", "HTTP Proxy for back-office requests (Example: http://127.0.0.1:8080)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
	rootCmd.PersistentFlags().String("store", "", "Toggle state database (default is ~/.config/bocheck/state.sqlite)")
	viper.BindPFlag("store.path", rootCmd.PersistentFlags().Lookup("store"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".bocheck")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("bocheck")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; create it with defaults.
			home, _ := homedir.Dir()
			configPath := home + "/.bocheck.yaml"
			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				fmt.Printf("Error creating config file: %s", err)
			}
		}
	}

	// Init log library
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)
}

package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/sw33tLie/bocheck/internal/utils"
	"github.com/sw33tLie/bocheck/pkg/failure"
	"github.com/sw33tLie/bocheck/pkg/report"
	"github.com/sw33tLie/bocheck/pkg/scrape"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch campaigns, scrape the converter and print the comparison",
	Example: `  bocheck run -p Viks -c "WELCOME_CAMPAIGN RELOAD_CAMPAIGN" -t 5
  bocheck run -p Slottica -c "BONUS_CAMPAIGN" -t 2.5 --html report.html`,
	RunE: func(cmd *cobra.Command, args []string) error {
		project, _ := cmd.Flags().GetString("project")
		field, _ := cmd.Flags().GetString("campaigns")
		threshold, _ := cmd.Flags().GetFloat64("threshold")
		htmlPath, _ := cmd.Flags().GetString("html")
		noColor, _ := cmd.Flags().GetBool("no-color")

		lock, err := utils.NewRunLock(viper.GetString("store.path"))
		if err != nil {
			return err
		}
		if err := lock.TryLock(); err != nil {
			return failure.New(failure.UserInput, "start", err)
		}
		defer lock.Unlock()

		sel, db, err := openSelector()
		if err != nil {
			return err
		}
		defer db.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		runner, session := newRunner(ctx, sel)
		defer session.Close()

		out, err := runner.Run(ctx, scrape.Request{
			Project: project,
			Codes:   utils.SplitCampaignField(field),
		})
		if err != nil {
			return err
		}
		utils.Log.Debugf("All results: %v", out.Converted)

		tbl := report.Build(out.Campaigns, out.Converted, threshold)
		if err := report.RenderText(os.Stdout, tbl, !noColor); err != nil {
			return err
		}
		pass, fail := tbl.Counts()
		utils.Log.Infof("%d row(s) within %.2f%%, %d outside", pass, threshold, fail)

		if htmlPath != "" {
			if err := writeHTMLReport(htmlPath, tbl); err != nil {
				return err
			}
			utils.Log.Infof("HTML report written to %s", htmlPath)
		}
		return nil
	},
}

func writeHTMLReport(path string, tbl report.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create report: %w", err)
	}
	if err := report.RenderHTML(f, tbl); err != nil {
		f.Close()
		return fmt.Errorf("could not write report: %w", err)
	}
	return f.Close()
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("project", "p", "", "Project name (see 'bocheck projects')")
	runCmd.Flags().StringP("campaigns", "c", "", "Campaign codes, space separated. Only codes containing CAMPAIGN are used")
	runCmd.Flags().Float64P("threshold", "t", 0, "Accepted deviation in percent")
	runCmd.Flags().String("html", "", "Also write the comparison as an HTML page")
	runCmd.Flags().Bool("no-color", false, "Do not color the result column")
	runCmd.MarkFlagRequired("project")
	runCmd.MarkFlagRequired("campaigns")
}


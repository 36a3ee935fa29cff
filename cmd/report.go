package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/sw33tLie/bocheck/pkg/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Work with saved HTML reports",
}

var reportShowCmd = &cobra.Command{
	Use:   "show FILE",
	Short: "Print a saved HTML report as terminal tables",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("could not open report: %w", err)
		}
		defer f.Close()

		tbl, err := report.ParseHTML(f)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("threshold") {
			threshold, _ := cmd.Flags().GetFloat64("threshold")
			tbl = tbl.Restyle(threshold)
		}
		noColor, _ := cmd.Flags().GetBool("no-color")
		return report.RenderText(os.Stdout, tbl, !noColor)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.AddCommand(reportShowCmd)
	reportShowCmd.Flags().Float64P("threshold", "t", 0, "Score the rows again with this deviation in percent")
	reportShowCmd.Flags().Bool("no-color", false, "Do not color the result column")
}

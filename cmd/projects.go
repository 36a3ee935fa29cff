package cmd

import (
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/sw33tLie/bocheck/pkg/projects"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List the known projects and their currencies",
	Run: func(cmd *cobra.Command, args []string) {
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Project", "Back office", "Currencies"})

		for _, p := range projects.All() {
			t.AppendRow(table.Row{p.Name, p.BaseURL, strings.Join(p.Currencies, " ")})
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}

func init() {
	rootCmd.AddCommand(projectsCmd)
}

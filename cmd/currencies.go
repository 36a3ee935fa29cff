package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/sw33tLie/bocheck/internal/utils"
	"github.com/sw33tLie/bocheck/pkg/currency"
)

// currenciesCmd represents the currencies command
var currenciesCmd = &cobra.Command{
	Use:   "currencies",
	Short: "Show and change which currencies get checked",
}

var currenciesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the currency toggles of a project",
	RunE: func(cmd *cobra.Command, args []string) error {
		project, _ := cmd.Flags().GetString("project")
		sel, db, err := openSelector()
		if err != nil {
			return err
		}
		defer db.Close()

		buttons, err := sel.Buttons(cmd.Context(), project)
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetTitle(project)
		t.AppendHeader(table.Row{"Currency", "State"})
		for _, b := range buttons {
			state := currency.StateInactive
			if b.Active {
				state = currency.StateActive
			}
			t.AppendRow(table.Row{b.Code, state})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
		return nil
	},
}

var currenciesToggleCmd = &cobra.Command{
	Use:   "toggle CODE...",
	Short: "Flip the state of one or more currencies",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, _ := cmd.Flags().GetString("project")
		sel, db, err := openSelector()
		if err != nil {
			return err
		}
		defer db.Close()

		for _, code := range args {
			active, err := sel.Toggle(cmd.Context(), project, strings.ToUpper(code))
			if err != nil {
				return err
			}
			utils.Log.Infof("%s is now %s", strings.ToUpper(code), stateName(active))
		}
		return nil
	},
}

var currenciesSetCmd = &cobra.Command{
	Use:   "set CODE on|off",
	Short: "Set the state of a single currency",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, _ := cmd.Flags().GetString("project")
		var active bool
		switch strings.ToLower(args[1]) {
		case "on", "active":
			active = true
		case "off", "inactive":
		default:
			return fmt.Errorf("state must be on or off, got %q", args[1])
		}

		sel, db, err := openSelector()
		if err != nil {
			return err
		}
		defer db.Close()

		code := strings.ToUpper(args[0])
		if err := sel.Set(cmd.Context(), project, code, active); err != nil {
			return err
		}
		utils.Log.Infof("%s is now %s", code, stateName(active))
		return nil
	},
}

var currenciesResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Turn every currency of a project off",
	RunE: func(cmd *cobra.Command, args []string) error {
		project, _ := cmd.Flags().GetString("project")
		sel, db, err := openSelector()
		if err != nil {
			return err
		}
		defer db.Close()
		return sel.Reset(cmd.Context(), project)
	},
}

func stateName(active bool) string {
	if active {
		return currency.StateActive
	}
	return currency.StateInactive
}

func init() {
	rootCmd.AddCommand(currenciesCmd)
	currenciesCmd.PersistentFlags().StringP("project", "p", "", "Project name (see 'bocheck projects')")
	currenciesCmd.MarkPersistentFlagRequired("project")

	currenciesCmd.AddCommand(currenciesListCmd)
	currenciesCmd.AddCommand(currenciesToggleCmd)
	currenciesCmd.AddCommand(currenciesSetCmd)
	currenciesCmd.AddCommand(currenciesResetCmd)
}

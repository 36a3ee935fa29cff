package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/sw33tLie/bocheck/internal/server"
	"github.com/sw33tLie/bocheck/internal/utils"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local web panel",
	RunE: func(cmd *cobra.Command, args []string) error {
		listenAddr, _ := cmd.Flags().GetString("listen")
		if !cmd.Flags().Changed("listen") {
			listenAddr = viper.GetString("server.listen")
		}

		sel, db, err := openSelector()
		if err != nil {
			return err
		}
		defer db.Close()

		lock, err := utils.NewRunLock(viper.GetString("store.path"))
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		runner, session := newRunner(ctx, sel)
		defer session.Close()

		ctl := server.NewController(sel, runner, utils.Log)
		ctl.Lock = lock
		ctl.Split = utils.SplitCampaignField
		ctl.BaseContext = ctx

		srv := server.New(ctl, viper.GetString("server.username"), viper.GetString("server.password"), utils.Log)
		errc := make(chan error, 1)
		go func() { errc <- srv.Start(listenAddr) }()

		select {
		case err := <-errc:
			return err
		case <-ctx.Done():
			utils.Log.Info("Shutting down, waiting for the current run")
			ctl.Wait()
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("listen", "127.0.0.1:8686", "HTTP listen address")
}

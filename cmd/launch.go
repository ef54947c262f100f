package cmd

import (
	"log"

	"fxtool/core/launcher"

	"github.com/spf13/cobra"
)

// launchCmd represents the launch command
var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Start the server and connect the client",
	Long: `Starts FXServer in the configured data directory and opens the fivem://
connect link so the installed client joins it. Both actions are
fire-and-forget: nothing waits on the server or the client, and the
command exits successfully once both requests have been issued.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg, err := initRuntime()
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		defer logg.Sync()

		runner := launcher.ExecRunner{}
		l := launcher.New(cfg.Launcher, runner, launcher.ShellOpener{Runner: runner}, logg)
		l.Run()
	},
}

func init() {
	RootCmd.AddCommand(launchCmd)
}

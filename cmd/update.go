package cmd

import (
	"fmt"
	"os"
	"strconv"

	"fxtool/core/artifact"

	"github.com/spf13/cobra"
)

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update [build]",
	Short: "Install or update the server artifact",
	Long: `Downloads the latest FXServer artifact (or the given build number) and
installs it under the server directory. The previous install is kept as a
version-suffixed backup, and already-installed builds are skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wanted := -1
		if len(args) == 1 {
			v, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid build number %q", args[0])
			}
			wanted = v
		}

		cfg, logg, err := initRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()

		root, err := os.Getwd()
		if err != nil {
			return err
		}

		client := artifact.NewClient(cfg.Artifact, logg)
		updater := artifact.NewUpdater(cfg.Artifact, client, root, logg)

		return updater.Update(cmd.Context(), wanted)
	},
}

func init() {
	RootCmd.AddCommand(updateCmd)
}

package cmd

import (
	"fxtool/feature/devmode"

	"github.com/spf13/cobra"
)

// devmodeCmd represents the devmode command
var devmodeCmd = &cobra.Command{
	Use:   "devmode <install-path>",
	Short: "Toggle dev mode for a client or server install",
	Long: `Detects whether the given folder is a FiveM client data folder or an
FXServer install and flips its dev mode: the adhesive signature-checking
component is renamed aside and removed from components.json, or restored
when already disabled.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logg, err := initRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()

		return devmode.NewService(logg).Toggle(args[0])
	},
}

func init() {
	RootCmd.AddCommand(devmodeCmd)
}

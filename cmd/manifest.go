package cmd

import (
	"fmt"
	"os"
	"strings"

	"fxtool/core/manifest"
	"fxtool/core/resource"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// manifestCmd represents the manifest command
var manifestCmd = &cobra.Command{
	Use:   "manifest [path]",
	Short: "Print parsed resource manifests",
	Long: `Parses an fxmanifest.lua or __resource.lua file and prints every entry
it declares, plus the manifest version the file implies. Without an
argument, every resource under the working directory is printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logg, err := initRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()

		if len(args) == 1 {
			m, err := manifest.Parse(args[0])
			if err != nil {
				return err
			}
			printManifest(cmd, m)
			return nil
		}

		cwd, err := os.Getwd()
		if err != nil {
			return err
		}

		resources, err := resource.Scan(cwd, resource.ScanOptions{}, logg)
		if err != nil {
			return err
		}

		header := color.New(color.FgCyan, color.Bold)
		for _, r := range resources {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", header.Sprint(r.Name), r.RelPath)
			printManifest(cmd, r.Manifest)
			fmt.Fprintln(cmd.OutOrStdout())
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(manifestCmd)
}

func printManifest(cmd *cobra.Command, m *manifest.Manifest) {
	key := color.New(color.FgCyan)

	if version, err := m.Version(); err == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", key.Sprint("version"), version)
	}

	for _, e := range m.Entries() {
		name := e.Key
		if e.Sub != "" {
			name += " " + e.Sub
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", key.Sprint(name), strings.Join(e.Values, ", "))
	}
}

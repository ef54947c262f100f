package cmd

import (
	"os"
	"strings"

	"fxtool/feature/events"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var eventsOpts struct {
	out             string
	reverse         bool
	ignoreEvents    []string
	ignoreResources []string
	ignorePaths     []string
}

// eventsCmd represents the events command
var eventsCmd = &cobra.Command{
	Use:   "events <resources-path>",
	Short: "Find orphaned event handlers and emitters",
	Long: `Scans every script under the given path, classifies event usage into
handlers, emitters and registrations, and prints the orphans: handlers no
script ever triggers, or with --reverse, emitted events no script
handles. Well-known framework events are ignored by default.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logg, err := initRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()

		svc := events.NewService(logg)
		idx, err := svc.Scan(args[0], events.Options{
			IgnoreEvents:    eventsOpts.ignoreEvents,
			IgnoreResources: eventsOpts.ignoreResources,
			IgnorePaths:     eventsOpts.ignorePaths,
		})
		if err != nil {
			return err
		}

		orphans := idx.Orphans(eventsOpts.reverse)

		if eventsOpts.out != "" {
			lines := events.Lines(orphans, eventsOpts.reverse)
			if err := os.WriteFile(eventsOpts.out, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
				return err
			}
			logg.Info("event report written", zap.String("path", eventsOpts.out))
			return nil
		}

		events.Print(cmd.OutOrStdout(), orphans, eventsOpts.reverse)
		return nil
	},
}

func init() {
	eventsCmd.Flags().StringVarP(&eventsOpts.out, "out", "o", "", "write plain text output to this file instead of stdout")
	eventsCmd.Flags().BoolVarP(&eventsOpts.reverse, "reverse", "r", false, "report triggered events nothing handles")
	eventsCmd.Flags().StringSliceVar(&eventsOpts.ignoreEvents, "ignore", nil, "additional event globs to ignore")
	eventsCmd.Flags().StringSliceVar(&eventsOpts.ignoreResources, "ignore-resource", nil, "resource names to skip")
	eventsCmd.Flags().StringSliceVar(&eventsOpts.ignorePaths, "ignore-path", nil, "path prefixes to skip")

	RootCmd.AddCommand(eventsCmd)
}

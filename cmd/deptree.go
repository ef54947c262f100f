package cmd

import (
	"os"
	"strings"

	"fxtool/feature/deptree"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var deptreeOpts struct {
	configPath      string
	out             string
	reverse         bool
	ignoreResources []string
	ignorePaths     []string
}

// deptreeCmd represents the deptree command
var deptreeCmd = &cobra.Command{
	Use:   "deptree <resources-path>",
	Short: "Print the resource dependency tree",
	Long: `Scans the resources under the given path and prints which resources each
one depends on, collected from manifest dependency keys, @resource script
references and exports usage inside scripts. With --reverse the tree is
inverted to show dependents instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logg, err := initRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()

		svc := deptree.NewService(logg)
		tree, err := svc.Scan(args[0], deptree.Options{
			ConfigPath:      deptreeOpts.configPath,
			IgnoreResources: deptreeOpts.ignoreResources,
			IgnorePaths:     deptreeOpts.ignorePaths,
		})
		if err != nil {
			return err
		}

		if deptreeOpts.reverse {
			tree = tree.Reversed()
		}

		if deptreeOpts.out != "" {
			lines := tree.Lines(deptreeOpts.reverse)
			if err := os.WriteFile(deptreeOpts.out, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
				return err
			}
			logg.Info("dependency tree written", zap.String("path", deptreeOpts.out))
			return nil
		}

		tree.Print(cmd.OutOrStdout(), deptreeOpts.reverse)
		return nil
	},
}

func init() {
	deptreeCmd.Flags().StringVar(&deptreeOpts.configPath, "cfg", "", "server.cfg to limit the scan to started resources")
	deptreeCmd.Flags().StringVarP(&deptreeOpts.out, "out", "o", "", "write plain text output to this file instead of stdout")
	deptreeCmd.Flags().BoolVarP(&deptreeOpts.reverse, "reverse", "r", false, "show dependents instead of dependencies")
	deptreeCmd.Flags().StringSliceVar(&deptreeOpts.ignoreResources, "ignore-resource", nil, "resource names to skip")
	deptreeCmd.Flags().StringSliceVar(&deptreeOpts.ignorePaths, "ignore-path", nil, "path prefixes to skip")

	RootCmd.AddCommand(deptreeCmd)
}

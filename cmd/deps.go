package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/joinstart/internal/config"
	"github.com/conneroisu/joinstart/internal/pkgset"
)

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Show the resolved third-party packages of the targets",
	Long: `Collect the packages declared by foo and its child targets bar and baz,
drop duplicates and print them in install order, deepest target first.

A package name declared with two different versions is an error.

Examples:
  joinstart deps                          # Built-in manifest, text output
  joinstart deps --format json            # JSON output
  joinstart deps --manifest ./deps.yml    # Resolve another manifest`,
	Args: cobra.NoArgs,
	RunE: runDeps,
}

func init() {
	rootCmd.AddCommand(depsCmd)

	depsCmd.Flags().String("manifest", "", "path to a YAML target manifest (default is the built-in one)")
	depsCmd.Flags().StringP("format", "f", "text", "Output format (text, json)")

	v := viper.GetViper()
	cobra.CheckErr(config.BindFlag(v, config.KeyDepsManifest, depsCmd.Flags(), "manifest"))
	cobra.CheckErr(config.BindFlag(v, config.KeyDepsFormat, depsCmd.Flags(), "format"))
}

func runDeps(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger, cfg, err := newLogger(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger = logger.WithComponent("deps")

	var root pkgset.Target
	if cfg.Deps.Manifest != "" {
		root, err = pkgset.LoadManifestFile(cfg.Deps.Manifest)
	} else {
		root, err = pkgset.DefaultManifest()
	}
	if err != nil {
		return err
	}

	collection, err := pkgset.Collect(ctx, root)
	if err != nil {
		return err
	}
	logger.Debug(ctx, "collected packages", "root", root.Name, "declarations", collection.Len())

	resolved, err := collection.Resolve(ctx)
	if err != nil {
		logger.Error(ctx, err, "resolve failed", "root", root.Name)
		return err
	}

	return pkgset.Write(cmd.OutOrStdout(), resolved, cfg.Deps.Format)
}

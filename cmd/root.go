package cmd

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tuannh982/sparsecoll/cmd/util"
	"github.com/tuannh982/sparsecoll/collection"
	"github.com/tuannh982/sparsecoll/script"
)

const (
	Version = "0.1.0"
)

var (
	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "sparsecoll",
		Short: "ordered sparse collection playground",
		Long: fmt.Sprintf(`sparsecoll (v%s)

Runs scripted sequences of calls against ordered sparse collections and
checks their results.`, Version),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			util.InitConfig()
			return util.BindCommandFlags(cmd)
		},
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of sparsecoll",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sparsecoll v%s\n", Version)
		},
	}
)

func init() {
	RootCmd.AddCommand(demoCmd)
	RootCmd.AddCommand(runCmd)
	RootCmd.AddCommand(versionCmd)

	util.SetupFlags(RootCmd)
}

// Execute runs the root command, exiting non-zero on failure.
func Execute(ctx context.Context) {
	if err := RootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// runScripts runs every script with its own registry.
func runScripts(cmd *cobra.Command, scripts ...*script.Script) error {
	conf := util.GetConfig()
	logger, err := util.NewLogger(conf, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	entry := logger.WithFields(log.Fields{"cmd": cmd.Name()})
	for _, s := range scripts {
		r := script.NewRunner(collection.NewRegistry[string, any](), cmd.OutOrStdout(), entry, conf.Seed)
		if err := r.Run(cmd.Context(), s); err != nil {
			return fmt.Errorf("%s: %w", s.Name, err)
		}
	}
	return nil
}

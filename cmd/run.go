package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tuannh982/sparsecoll/script"
)

var runCmd = &cobra.Command{
	Use:   "run FILE...",
	Short: "Run YAML collection scripts",
	Long: `Run YAML collection scripts in order. Each script gets a fresh set of
collections; the first failing step stops the run.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scripts := make([]*script.Script, 0, len(args))
		for _, path := range args {
			s, err := script.Load(path)
			if err != nil {
				return err
			}
			scripts = append(scripts, s)
		}
		return runScripts(cmd, scripts...)
	},
}

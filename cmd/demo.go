package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tuannh982/sparsecoll/script"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Replay the collection sample",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := script.Demo()
		if err != nil {
			return err
		}
		return runScripts(cmd, s)
	},
}

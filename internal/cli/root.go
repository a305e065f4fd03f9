// Package cli is the terminal front end of the workout planner.
package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

// Execute runs the fitplan command tree.
func Execute() error {
	return execute(newRootCmd(wireApp))
}

// execute runs root and closes the state store opened by the pre-run hook,
// also when the hook or the command fails.
func execute(root *cobra.Command, a *app) error {
	err := root.Execute()
	return errors.Join(err, a.close())
}

type wireFunc func(cmd *cobra.Command, configDir string) (*app, error)

func newRootCmd(wire wireFunc) (*cobra.Command, *app) {
	var configDir string
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "fitplan",
		Short:         "Personalized 5-day workout plans from the terminal",
		Long:          "fitplan stores your profile, asks the plan generation server for a 5-day workout plan for your goal, shows it and exports it as PDF or spreadsheet.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			wired, err := wire(cmd, configDir)
			if err != nil {
				return err
			}
			*a = *wired
			_, err = a.session.Load(cmd.Context())
			return err
		},
	}

	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory holding config.yaml")

	rootCmd.AddCommand(
		newLoginCmd(a),
		newGenerateCmd(a),
		newShowCmd(a),
		newExportCmd(a),
		newClearCmd(a),
		newLogoutCmd(a),
	)

	return rootCmd, a
}
